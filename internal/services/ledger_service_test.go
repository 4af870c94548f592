package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func newLedgerFixture() (*LedgerService, *fakeUnitRepository, *fakeRentalRepository) {
	units := &fakeUnitRepository{
		unit:        makeUnit(1000, 100),
		found:       true,
		ownerUserID: 1,
	}
	rentals := newFakeRentalRepository()
	return NewLedgerService(units, rentals), units, rentals
}

func TestUpsertMonthEntryCreatesResolvedRow(t *testing.T) {
	service, _, rentals := newLedgerFixture()

	rent := decimal.NewFromInt(1200)
	rental, created, err := service.UpsertMonthEntry(1, 5, UpsertMonthInput{
		Month:      3,
		Year:       2025,
		RentAmount: &rent,
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if !created {
		t.Fatal("expected a created row")
	}
	if !rental.RentAmount.Decimal.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("expected stored rent 1200, got %s", rental.RentAmount.Decimal)
	}
	if !rental.UtilitiesAmount.Decimal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected utilities resolved to standard 100, got %s", rental.UtilitiesAmount.Decimal)
	}
	if !rental.Amount.Equal(decimal.NewFromInt(1300)) {
		t.Fatalf("expected total 1300, got %s", rental.Amount)
	}
	if rental.IsPaid || rental.Notes != "" {
		t.Fatal("expected defaults for omitted isPaid and notes")
	}
	if rentals.count() != 1 {
		t.Fatalf("expected exactly one stored row, got %d", rentals.count())
	}
}

func TestUpsertMonthEntryRecomputesTotal(t *testing.T) {
	service, _, _ := newLedgerFixture()

	rent := decimal.NewFromFloat(950.50)
	utilities := decimal.NewFromFloat(120.25)
	rental, _, err := service.UpsertMonthEntry(1, 5, UpsertMonthInput{
		Month:           7,
		Year:            2025,
		RentAmount:      &rent,
		UtilitiesAmount: &utilities,
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if !rental.Amount.Equal(rental.RentAmount.Decimal.Add(rental.UtilitiesAmount.Decimal)) {
		t.Fatalf("amount %s does not equal rent %s + utilities %s",
			rental.Amount, rental.RentAmount.Decimal, rental.UtilitiesAmount.Decimal)
	}
	if !rental.Amount.Equal(decimal.NewFromFloat(1070.75)) {
		t.Fatalf("expected total 1070.75, got %s", rental.Amount)
	}
}

func TestUpsertMonthEntrySecondCallUpdatesFirstRow(t *testing.T) {
	service, _, rentals := newLedgerFixture()

	paid := true
	first, created, err := service.UpsertMonthEntry(1, 5, UpsertMonthInput{Month: 4, Year: 2025, IsPaid: &paid})
	if err != nil || !created {
		t.Fatalf("first upsert failed: created=%v err=%v", created, err)
	}

	rent := decimal.NewFromInt(1500)
	second, created, err := service.UpsertMonthEntry(1, 5, UpsertMonthInput{Month: 4, Year: 2025, RentAmount: &rent})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if created {
		t.Fatal("expected an update, not a second row")
	}
	if second.ID != first.ID {
		t.Fatalf("expected same row id %d, got %d", first.ID, second.ID)
	}
	if !second.IsPaid {
		t.Fatal("expected omitted isPaid to keep its prior value")
	}
	if !second.Amount.Equal(decimal.NewFromInt(1600)) {
		t.Fatalf("expected recomputed total 1600, got %s", second.Amount)
	}
	if rentals.count() != 1 {
		t.Fatalf("expected one stored row after both calls, got %d", rentals.count())
	}
}

func TestUpsertMonthEntryPreservesNotesOnPartialUpdate(t *testing.T) {
	service, _, _ := newLedgerFixture()

	notes := "deposit outstanding"
	if _, _, err := service.UpsertMonthEntry(1, 5, UpsertMonthInput{Month: 9, Year: 2025, Notes: &notes}); err != nil {
		t.Fatalf("seed upsert failed: %v", err)
	}

	paid := true
	updated, _, err := service.UpsertMonthEntry(1, 5, UpsertMonthInput{Month: 9, Year: 2025, IsPaid: &paid})
	if err != nil {
		t.Fatalf("partial update failed: %v", err)
	}
	if updated.Notes != "deposit outstanding" {
		t.Fatalf("expected notes preserved, got %q", updated.Notes)
	}

	empty := ""
	cleared, _, err := service.UpsertMonthEntry(1, 5, UpsertMonthInput{Month: 9, Year: 2025, Notes: &empty})
	if err != nil {
		t.Fatalf("clearing update failed: %v", err)
	}
	if cleared.Notes != "" {
		t.Fatalf("expected explicit empty string to clear notes, got %q", cleared.Notes)
	}
}

func TestUpsertMonthEntryValidation(t *testing.T) {
	service, _, _ := newLedgerFixture()

	cases := []UpsertMonthInput{
		{Year: 2025},
		{Month: 13, Year: 2025},
		{Month: -1, Year: 2025},
		{Month: 3},
	}
	for _, input := range cases {
		_, _, err := service.UpsertMonthEntry(1, 5, input)
		var validationError *ValidationError
		if !errors.As(err, &validationError) {
			t.Fatalf("input %+v: expected validation error, got %v", input, err)
		}
	}
}

func TestLedgerOperationsRejectForeignUnit(t *testing.T) {
	service, _, _ := newLedgerFixture()

	if _, _, err := service.YearlyOverview(2, 5, 2025); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for foreign user, got %v", err)
	}
	if _, _, err := service.UpsertMonthEntry(2, 5, UpsertMonthInput{Month: 1, Year: 2025}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for foreign user, got %v", err)
	}
}

func TestYearlyOverviewIncludesStoredRows(t *testing.T) {
	service, _, _ := newLedgerFixture()

	rent := decimal.NewFromInt(1200)
	if _, _, err := service.UpsertMonthEntry(1, 5, UpsertMonthInput{Month: 3, Year: 2025, RentAmount: &rent}); err != nil {
		t.Fatalf("seed upsert failed: %v", err)
	}

	_, entries, err := service.YearlyOverview(1, 5, 2025)
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if len(entries) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(entries))
	}
	if !entries[2].Exists || !entries[2].TotalAmount.Equal(decimal.NewFromInt(1300)) {
		t.Fatalf("expected stored march with total 1300, got exists=%v total=%s", entries[2].Exists, entries[2].TotalAmount)
	}
}
