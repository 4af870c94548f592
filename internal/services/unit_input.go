package services

import (
	"strconv"
	"strings"

	"github.com/mietwerk/hauskasse/internal/models"
	"github.com/shopspring/decimal"
)

type UnitInput struct {
	Name             string
	UnitType         string
	MonthlyRent      decimal.Decimal
	MonthlyUtilities *decimal.Decimal
	Size             string
	IsActive         *bool
}

func (input UnitInput) Validate() error {
	if strings.TrimSpace(input.Name) == "" {
		return newValidationError("name", "required")
	}
	if !isValidUnitType(input.UnitType) {
		return newValidationError("unit_type", "unknown type")
	}
	if !input.MonthlyRent.IsPositive() {
		return newValidationError("monthly_rent", "must be greater than zero")
	}
	if input.MonthlyUtilities != nil && input.MonthlyUtilities.IsNegative() {
		return newValidationError("monthly_utilities", "must not be negative")
	}
	return nil
}

func isValidUnitType(unitType string) bool {
	for _, valid := range models.ValidUnitTypes() {
		if unitType == valid {
			return true
		}
	}
	return false
}

// ParseUnitArea extracts a numeric area from the free-text size field, e.g.
// "54", "54.5 m²" or "54,5 qm". Returns false when no positive number leads
// the text.
func ParseUnitArea(size string) (float64, bool) {
	trimmed := strings.TrimSpace(size)
	if trimmed == "" {
		return 0, false
	}

	end := 0
	for end < len(trimmed) {
		char := trimmed[end]
		if (char >= '0' && char <= '9') || char == '.' || char == ',' {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, false
	}

	numeric := strings.ReplaceAll(trimmed[:end], ",", ".")
	area, err := strconv.ParseFloat(numeric, 64)
	if err != nil || area <= 0 {
		return 0, false
	}
	return area, true
}

// RentPerArea computes the standard rent per area unit when the size text
// parses to a positive number.
func RentPerArea(unit models.Unit) (float64, bool) {
	area, ok := ParseUnitArea(unit.Size)
	if !ok {
		return 0, false
	}
	rent := unit.MonthlyRent.InexactFloat64()
	return roundCents(rent / area), true
}
