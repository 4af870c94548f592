package services

import (
	"github.com/mietwerk/hauskasse/internal/models"
	"github.com/shopspring/decimal"
)

// MonthEntry is one row of the 12-month ledger for a unit and year. Entries
// without a stored rental row are synthesized from the unit's standards and
// carry Exists=false and a nil RentalID.
type MonthEntry struct {
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	RentAmount      decimal.Decimal `json:"rentAmount"`
	UtilitiesAmount decimal.Decimal `json:"utilitiesAmount"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	IsPaid          bool            `json:"isPaid"`
	Notes           string          `json:"notes"`
	RentalID        *uint           `json:"rentalId"`
	Exists          bool            `json:"exists"`
}

// BuildYearlyOverview merges the stored rentals of one year with the unit's
// current standard amounts into a gap-free sequence of months 1..12.
//
// For stored rows the total is the persisted amount verbatim, even when it
// no longer equals rent+utilities after historical edits; only synthesized
// entries compute their total. NULL portions fall back to the standards.
func BuildYearlyOverview(unit models.Unit, rentals []models.Rental, year int) []MonthEntry {
	byMonth := make(map[int]models.Rental, len(rentals))
	for _, rental := range rentals {
		if rental.Year != year {
			continue
		}
		byMonth[rental.Month] = rental
	}

	standardRent := unit.MonthlyRent
	standardUtilities := unit.StandardUtilities()

	entries := make([]MonthEntry, 0, 12)
	for month := 1; month <= 12; month++ {
		stored, exists := byMonth[month]
		if !exists {
			entries = append(entries, MonthEntry{
				Month:           month,
				Year:            year,
				RentAmount:      standardRent,
				UtilitiesAmount: standardUtilities,
				TotalAmount:     standardRent.Add(standardUtilities),
			})
			continue
		}

		rent := standardRent
		if stored.RentAmount.Valid {
			rent = stored.RentAmount.Decimal
		}
		utilities := standardUtilities
		if stored.UtilitiesAmount.Valid {
			utilities = stored.UtilitiesAmount.Decimal
		}

		rentalID := stored.ID
		entries = append(entries, MonthEntry{
			Month:           month,
			Year:            year,
			RentAmount:      rent,
			UtilitiesAmount: utilities,
			TotalAmount:     stored.Amount,
			IsPaid:          stored.IsPaid,
			Notes:           stored.Notes,
			RentalID:        &rentalID,
			Exists:          true,
		})
	}
	return entries
}
