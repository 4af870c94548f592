package services

import (
	"testing"

	"github.com/mietwerk/hauskasse/internal/models"
	"github.com/shopspring/decimal"
)

func TestBuildYearlyOverviewWithoutStoredRentals(t *testing.T) {
	unit := makeUnit(1000, 100)

	entries := BuildYearlyOverview(unit, nil, 2025)
	if len(entries) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(entries))
	}

	for index, entry := range entries {
		if entry.Month != index+1 {
			t.Fatalf("expected month %d at position %d, got %d", index+1, index, entry.Month)
		}
		if entry.Year != 2025 {
			t.Fatalf("expected year 2025, got %d", entry.Year)
		}
		if entry.Exists {
			t.Fatalf("month %d: expected synthesized entry", entry.Month)
		}
		if entry.RentalID != nil {
			t.Fatalf("month %d: expected nil rental id", entry.Month)
		}
		if !entry.RentAmount.Equal(decimal.NewFromInt(1000)) {
			t.Fatalf("month %d: expected rent 1000, got %s", entry.Month, entry.RentAmount)
		}
		if !entry.UtilitiesAmount.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("month %d: expected utilities 100, got %s", entry.Month, entry.UtilitiesAmount)
		}
		if !entry.TotalAmount.Equal(decimal.NewFromInt(1100)) {
			t.Fatalf("month %d: expected total 1100, got %s", entry.Month, entry.TotalAmount)
		}
		if entry.IsPaid || entry.Notes != "" {
			t.Fatalf("month %d: expected unpaid entry without notes", entry.Month)
		}
	}
}

func TestBuildYearlyOverviewMergesStoredRow(t *testing.T) {
	unit := makeUnit(1000, 100)
	stored := models.Rental{
		ID:              7,
		UnitID:          unit.ID,
		Month:           3,
		Year:            2025,
		RentAmount:      decimal.NewNullDecimal(decimal.NewFromInt(1200)),
		UtilitiesAmount: decimal.NewNullDecimal(decimal.NewFromInt(100)),
		Amount:          decimal.NewFromInt(1300),
		IsPaid:          true,
		Notes:           "raised",
	}

	entries := BuildYearlyOverview(unit, []models.Rental{stored}, 2025)
	if len(entries) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(entries))
	}

	march := entries[2]
	if !march.Exists {
		t.Fatal("expected march to be backed by the stored row")
	}
	if march.RentalID == nil || *march.RentalID != 7 {
		t.Fatalf("expected rental id 7, got %v", march.RentalID)
	}
	if !march.RentAmount.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("expected rent 1200, got %s", march.RentAmount)
	}
	if !march.IsPaid || march.Notes != "raised" {
		t.Fatal("expected paid flag and notes from the stored row")
	}

	april := entries[3]
	if april.Exists || !april.TotalAmount.Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("expected synthesized april with total 1100, got exists=%v total=%s", april.Exists, april.TotalAmount)
	}
}

func TestBuildYearlyOverviewNullPortionsFallBackToStandards(t *testing.T) {
	unit := makeUnit(800, 50)
	legacy := models.Rental{
		ID:     3,
		UnitID: unit.ID,
		Month:  6,
		Year:   2025,
		Amount: decimal.NewFromInt(850),
		IsPaid: true,
	}

	entries := BuildYearlyOverview(unit, []models.Rental{legacy}, 2025)
	june := entries[5]
	if !june.RentAmount.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("expected fallback rent 800, got %s", june.RentAmount)
	}
	if !june.UtilitiesAmount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected fallback utilities 50, got %s", june.UtilitiesAmount)
	}
}

func TestBuildYearlyOverviewTrustsStoredTotalVerbatim(t *testing.T) {
	unit := makeUnit(1000, 100)
	drifted := models.Rental{
		ID:              9,
		UnitID:          unit.ID,
		Month:           2,
		Year:            2025,
		RentAmount:      decimal.NewNullDecimal(decimal.NewFromInt(1000)),
		UtilitiesAmount: decimal.NewNullDecimal(decimal.NewFromInt(100)),
		Amount:          decimal.NewFromInt(999),
	}

	entries := BuildYearlyOverview(unit, []models.Rental{drifted}, 2025)
	if !entries[1].TotalAmount.Equal(decimal.NewFromInt(999)) {
		t.Fatalf("expected stored total 999 returned verbatim, got %s", entries[1].TotalAmount)
	}
}

func TestBuildYearlyOverviewIgnoresOtherYears(t *testing.T) {
	unit := makeUnit(1000, 0)
	otherYear := models.Rental{
		ID:     4,
		UnitID: unit.ID,
		Month:  1,
		Year:   2024,
		Amount: decimal.NewFromInt(900),
	}

	entries := BuildYearlyOverview(unit, []models.Rental{otherYear}, 2025)
	if entries[0].Exists {
		t.Fatal("expected january 2025 to be synthesized despite a 2024 row")
	}
}

func makeUnit(rent int64, utilities int64) models.Unit {
	unit := models.Unit{
		ID:          5,
		PropertyID:  2,
		Name:        "EG links",
		UnitType:    models.UnitTypeApartment,
		MonthlyRent: decimal.NewFromInt(rent),
		IsActive:    true,
	}
	if utilities > 0 {
		unit.MonthlyUtilities = decimal.NewNullDecimal(decimal.NewFromInt(utilities))
	}
	return unit
}
