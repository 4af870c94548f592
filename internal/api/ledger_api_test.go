package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
)

type overviewResponse struct {
	Year           int `json:"year"`
	Unit           struct {
		ID uint `json:"id"`
	} `json:"unit"`
	YearlyOverview []struct {
		Month           int             `json:"month"`
		Year            int             `json:"year"`
		RentAmount      decimal.Decimal `json:"rentAmount"`
		UtilitiesAmount decimal.Decimal `json:"utilitiesAmount"`
		TotalAmount     decimal.Decimal `json:"totalAmount"`
		IsPaid          bool            `json:"isPaid"`
		Notes           string          `json:"notes"`
		RentalID        *uint           `json:"rentalId"`
		Exists          bool            `json:"exists"`
	} `json:"yearlyOverview"`
}

func TestYearlyOverviewSynthesizesTwelveMonths(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "owner@example.com", "StrongPass1")
	cookie := loginAndExtractAuthCookie(t, app, "owner@example.com", "StrongPass1")

	_, unitID := createPropertyWithUnit(t, app, cookie, "Hauptstraße 1", "EG links", "1200", "100")

	response := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/units/%d/yearly-overview?year=2025", unitID), cookie, nil)
	defer response.Body.Close()
	requireStatus(t, response, http.StatusOK)

	var overview overviewResponse
	decodeBody(t, response, &overview)

	if overview.Year != 2025 {
		t.Fatalf("expected year 2025, got %d", overview.Year)
	}
	if len(overview.YearlyOverview) != 12 {
		t.Fatalf("expected 12 months, got %d", len(overview.YearlyOverview))
	}
	for _, entry := range overview.YearlyOverview {
		if entry.Exists || entry.RentalID != nil {
			t.Fatalf("expected synthesized entry for month %d, got %+v", entry.Month, entry)
		}
		if !entry.TotalAmount.Equal(decimal.NewFromInt(1300)) {
			t.Fatalf("month %d: expected total 1300, got %s", entry.Month, entry.TotalAmount)
		}
	}
}

func TestUpsertMonthEntryCreatesThenUpdates(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "owner@example.com", "StrongPass1")
	cookie := loginAndExtractAuthCookie(t, app, "owner@example.com", "StrongPass1")

	_, unitID := createPropertyWithUnit(t, app, cookie, "Hauptstraße 1", "EG links", "1200", "100")
	path := fmt.Sprintf("/api/units/%d/yearly-overview", unitID)

	created := doJSON(t, app, http.MethodPost, path, cookie, map[string]any{
		"month":  5,
		"year":   2025,
		"isPaid": true,
		"notes":  "bar bezahlt",
	})
	defer created.Body.Close()
	requireStatus(t, created, http.StatusCreated)

	var createdBody struct {
		Message string `json:"message"`
		Rental  struct {
			ID     uint            `json:"id"`
			Amount decimal.Decimal `json:"amount"`
			IsPaid bool            `json:"is_paid"`
		} `json:"rental"`
	}
	decodeBody(t, created, &createdBody)
	if !createdBody.Rental.Amount.Equal(decimal.NewFromInt(1300)) {
		t.Fatalf("expected resolved total 1300, got %s", createdBody.Rental.Amount)
	}
	if !createdBody.Rental.IsPaid {
		t.Fatal("expected paid flag to persist")
	}

	updated := doJSON(t, app, http.MethodPost, path, cookie, map[string]any{
		"month":      5,
		"year":       2025,
		"rentAmount": "1500",
	})
	defer updated.Body.Close()
	requireStatus(t, updated, http.StatusOK)

	var updatedBody struct {
		Rental struct {
			ID     uint            `json:"id"`
			Amount decimal.Decimal `json:"amount"`
			IsPaid bool            `json:"is_paid"`
			Notes  string          `json:"notes"`
		} `json:"rental"`
	}
	decodeBody(t, updated, &updatedBody)
	if updatedBody.Rental.ID != createdBody.Rental.ID {
		t.Fatalf("expected same rental row, got %d then %d", createdBody.Rental.ID, updatedBody.Rental.ID)
	}
	if !updatedBody.Rental.Amount.Equal(decimal.NewFromInt(1600)) {
		t.Fatalf("expected recomputed total 1600, got %s", updatedBody.Rental.Amount)
	}
	if !updatedBody.Rental.IsPaid || updatedBody.Rental.Notes != "bar bezahlt" {
		t.Fatalf("partial update clobbered fields: %+v", updatedBody.Rental)
	}
}

func TestUpsertMonthEntryValidatesMonth(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "owner@example.com", "StrongPass1")
	cookie := loginAndExtractAuthCookie(t, app, "owner@example.com", "StrongPass1")

	_, unitID := createPropertyWithUnit(t, app, cookie, "Hauptstraße 1", "EG links", "1200", "")

	response := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/units/%d/yearly-overview", unitID), cookie, map[string]any{
		"month": 13,
		"year":  2025,
	})
	defer response.Body.Close()
	requireStatus(t, response, http.StatusBadRequest)
}

func TestYearlyOverviewForeignUnitIsNotFound(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "owner@example.com", "StrongPass1")
	createTestUser(t, database, "other@example.com", "StrongPass1")

	ownerCookie := loginAndExtractAuthCookie(t, app, "owner@example.com", "StrongPass1")
	_, unitID := createPropertyWithUnit(t, app, ownerCookie, "Hauptstraße 1", "EG links", "1200", "")

	otherCookie := loginAndExtractAuthCookie(t, app, "other@example.com", "StrongPass1")
	response := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/units/%d/yearly-overview", unitID), otherCookie, nil)
	defer response.Body.Close()
	requireStatus(t, response, http.StatusNotFound)
}
