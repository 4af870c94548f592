package models

import "time"

const (
	DefaultGrossRentMultiplier   = 20.0
	DefaultOperatingExpenseRatio = 25.0
	DefaultValueAdjustment       = 0.0
	DefaultAppreciationRate      = 2.0
	DefaultEtfRate               = 7.0
	DefaultComparisonYears       = 10
)

// PropertySettings keeps the valuation and investment-comparison assumptions
// a user last chose for a property. All rates are percentages.
type PropertySettings struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	PropertyID            uint      `gorm:"not null;uniqueIndex" json:"property_id"`
	GrossRentMultiplier   float64   `gorm:"not null;default:20" json:"gross_rent_multiplier"`
	OperatingExpenseRatio float64   `gorm:"not null;default:25" json:"operating_expense_ratio"`
	ValueAdjustment       float64   `gorm:"not null;default:0" json:"value_adjustment"`
	AppreciationRate      float64   `gorm:"not null;default:2" json:"appreciation_rate"`
	EtfRate               float64   `gorm:"not null;default:7" json:"etf_rate"`
	ComparisonYears       int       `gorm:"not null;default:10" json:"comparison_years"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func DefaultPropertySettings(propertyID uint) PropertySettings {
	return PropertySettings{
		PropertyID:            propertyID,
		GrossRentMultiplier:   DefaultGrossRentMultiplier,
		OperatingExpenseRatio: DefaultOperatingExpenseRatio,
		ValueAdjustment:       DefaultValueAdjustment,
		AppreciationRate:      DefaultAppreciationRate,
		EtfRate:               DefaultEtfRate,
		ComparisonYears:       DefaultComparisonYears,
	}
}
