package services

import (
	"github.com/mietwerk/hauskasse/internal/models"
	"github.com/shopspring/decimal"
)

type LedgerUnitRepository interface {
	FindOwned(userID uint, unitID uint) (models.Unit, bool, error)
}

type LedgerRentalRepository interface {
	ListByUnitAndYear(unitID uint, year int) ([]models.Rental, error)
	FindByUnitMonthYear(unitID uint, month int, year int) (models.Rental, bool, error)
	Create(rental *models.Rental) error
	Save(rental *models.Rental) error
}

type LedgerService struct {
	units   LedgerUnitRepository
	rentals LedgerRentalRepository
}

func NewLedgerService(units LedgerUnitRepository, rentals LedgerRentalRepository) *LedgerService {
	return &LedgerService{units: units, rentals: rentals}
}

// UpsertMonthInput carries a partial month-entry write. Pointer fields
// distinguish "not supplied, keep or default" from explicit values.
type UpsertMonthInput struct {
	Month           int
	Year            int
	IsPaid          *bool
	Notes           *string
	RentAmount      *decimal.Decimal
	UtilitiesAmount *decimal.Decimal
}

func (input UpsertMonthInput) Validate() error {
	if input.Month == 0 {
		return newValidationError("month", "required")
	}
	if input.Month < 1 || input.Month > 12 {
		return newValidationError("month", "must be between 1 and 12")
	}
	if input.Year == 0 {
		return newValidationError("year", "required")
	}
	if input.RentAmount != nil && input.RentAmount.IsNegative() {
		return newValidationError("rentAmount", "must not be negative")
	}
	if input.UtilitiesAmount != nil && input.UtilitiesAmount.IsNegative() {
		return newValidationError("utilitiesAmount", "must not be negative")
	}
	return nil
}

// YearlyOverview returns the unit and its reconciled 12-month ledger. A unit
// with no stored rentals yields twelve synthesized entries; that is not an
// error.
func (service *LedgerService) YearlyOverview(userID uint, unitID uint, year int) (models.Unit, []MonthEntry, error) {
	unit, found, err := service.units.FindOwned(userID, unitID)
	if err != nil {
		return models.Unit{}, nil, err
	}
	if !found {
		return models.Unit{}, nil, ErrNotFound
	}

	rentals, err := service.rentals.ListByUnitAndYear(unitID, year)
	if err != nil {
		return models.Unit{}, nil, err
	}

	return unit, BuildYearlyOverview(unit, rentals, year), nil
}

// UpsertMonthEntry creates or partially updates the stored row for one
// month. The stored portions are the resolved effective values and the
// total is always recomputed from them; unlike the read path, a write never
// trusts a previously stored total. Returns the row and whether it was
// created.
func (service *LedgerService) UpsertMonthEntry(userID uint, unitID uint, input UpsertMonthInput) (models.Rental, bool, error) {
	if err := input.Validate(); err != nil {
		return models.Rental{}, false, err
	}

	unit, found, err := service.units.FindOwned(userID, unitID)
	if err != nil {
		return models.Rental{}, false, err
	}
	if !found {
		return models.Rental{}, false, ErrNotFound
	}

	effectiveRent := unit.MonthlyRent
	if input.RentAmount != nil {
		effectiveRent = *input.RentAmount
	}
	effectiveUtilities := unit.StandardUtilities()
	if input.UtilitiesAmount != nil {
		effectiveUtilities = *input.UtilitiesAmount
	}
	total := effectiveRent.Add(effectiveUtilities)

	existing, exists, err := service.rentals.FindByUnitMonthYear(unitID, input.Month, input.Year)
	if err != nil {
		return models.Rental{}, false, err
	}

	if exists {
		existing.RentAmount = decimal.NewNullDecimal(effectiveRent)
		existing.UtilitiesAmount = decimal.NewNullDecimal(effectiveUtilities)
		existing.Amount = total
		if input.IsPaid != nil {
			existing.IsPaid = *input.IsPaid
		}
		if input.Notes != nil {
			existing.Notes = *input.Notes
		}
		if err := service.rentals.Save(&existing); err != nil {
			return models.Rental{}, false, err
		}
		return existing, false, nil
	}

	rental := models.Rental{
		UnitID:          unitID,
		Month:           input.Month,
		Year:            input.Year,
		RentAmount:      decimal.NewNullDecimal(effectiveRent),
		UtilitiesAmount: decimal.NewNullDecimal(effectiveUtilities),
		Amount:          total,
	}
	if input.IsPaid != nil {
		rental.IsPaid = *input.IsPaid
	}
	if input.Notes != nil {
		rental.Notes = *input.Notes
	}
	if err := service.rentals.Create(&rental); err != nil {
		return models.Rental{}, false, err
	}
	return rental, true, nil
}
