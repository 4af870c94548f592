package services

import (
	"github.com/mietwerk/hauskasse/internal/models"
	"github.com/shopspring/decimal"
)

type StandardRentUnitRepository interface {
	FindOwned(userID uint, unitID uint) (models.Unit, bool, error)
	SaveStandardsWithRentals(unit *models.Unit, rentals []models.Rental) error
}

type StandardRentRentalRepository interface {
	ListFrom(unitID uint, fromMonth int, fromYear int) ([]models.Rental, error)
}

type StandardRentService struct {
	units   StandardRentUnitRepository
	rentals StandardRentRentalRepository
}

func NewStandardRentService(units StandardRentUnitRepository, rentals StandardRentRentalRepository) *StandardRentService {
	return &StandardRentService{units: units, rentals: rentals}
}

type StandardRentInput struct {
	MonthlyRent        decimal.Decimal
	MonthlyUtilities   *decimal.Decimal
	EffectiveFromMonth int
	EffectiveFromYear  int
	ForceUpdate        bool
}

func (input StandardRentInput) Validate() error {
	if !input.MonthlyRent.IsPositive() {
		return newValidationError("monthlyRent", "must be greater than zero")
	}
	if input.MonthlyUtilities != nil && input.MonthlyUtilities.IsNegative() {
		return newValidationError("monthlyUtilities", "must not be negative")
	}
	if input.EffectiveFromMonth < 1 || input.EffectiveFromMonth > 12 {
		return newValidationError("effectiveFromMonth", "must be between 1 and 12")
	}
	if input.EffectiveFromYear == 0 {
		return newValidationError("effectiveFromYear", "required")
	}
	return nil
}

// UpdateStandardRent changes a unit's standard amounts from a month forward.
//
// Stored rows at or after the effective month whose portions were explicitly
// customized away from the current standards block the change: without
// ForceUpdate the call fails with a StandardRentConflictError listing each
// row's current total and the total it would get, and nothing is written.
// With ForceUpdate the conflicting rows are overwritten with the new
// standards in the same transaction that updates the unit.
func (service *StandardRentService) UpdateStandardRent(userID uint, unitID uint, input StandardRentInput) (models.Unit, error) {
	if err := input.Validate(); err != nil {
		return models.Unit{}, err
	}

	unit, found, err := service.units.FindOwned(userID, unitID)
	if err != nil {
		return models.Unit{}, err
	}
	if !found {
		return models.Unit{}, ErrNotFound
	}

	stored, err := service.rentals.ListFrom(unitID, input.EffectiveFromMonth, input.EffectiveFromYear)
	if err != nil {
		return models.Unit{}, err
	}

	newUtilities := decimal.Zero
	if input.MonthlyUtilities != nil {
		newUtilities = *input.MonthlyUtilities
	}
	newTotal := input.MonthlyRent.Add(newUtilities)

	conflicting := collectNonStandardRentals(unit, stored)
	if len(conflicting) > 0 && !input.ForceUpdate {
		affected := make([]AffectedRental, 0, len(conflicting))
		for _, rental := range conflicting {
			affected = append(affected, AffectedRental{
				Month:         rental.Month,
				Year:          rental.Year,
				CurrentAmount: rental.Amount,
				NewAmount:     newTotal,
			})
		}
		return models.Unit{}, &StandardRentConflictError{Affected: affected}
	}

	unit.MonthlyRent = input.MonthlyRent
	if input.MonthlyUtilities != nil {
		unit.MonthlyUtilities = decimal.NewNullDecimal(*input.MonthlyUtilities)
	} else {
		unit.MonthlyUtilities = decimal.NullDecimal{}
	}

	for index := range conflicting {
		conflicting[index].RentAmount = decimal.NewNullDecimal(input.MonthlyRent)
		conflicting[index].UtilitiesAmount = decimal.NewNullDecimal(newUtilities)
		conflicting[index].Amount = newTotal
	}

	if err := service.units.SaveStandardsWithRentals(&unit, conflicting); err != nil {
		return models.Unit{}, err
	}
	return unit, nil
}

// collectNonStandardRentals picks the rows whose rent or utilities portion
// was explicitly stored and differs from the unit's current standards. Rows
// with NULL portions follow the standards automatically and never conflict.
func collectNonStandardRentals(unit models.Unit, rentals []models.Rental) []models.Rental {
	standardRent := unit.MonthlyRent
	standardUtilities := unit.StandardUtilities()

	conflicting := make([]models.Rental, 0)
	for _, rental := range rentals {
		rentDiffers := rental.RentAmount.Valid && !rental.RentAmount.Decimal.Equal(standardRent)
		utilitiesDiffer := rental.UtilitiesAmount.Valid && !rental.UtilitiesAmount.Decimal.Equal(standardUtilities)
		if rentDiffers || utilitiesDiffer {
			conflicting = append(conflicting, rental)
		}
	}
	return conflicting
}
