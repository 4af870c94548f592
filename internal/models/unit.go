package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	UnitTypeApartment  = "apartment"
	UnitTypeGarage     = "garage"
	UnitTypeParking    = "parking"
	UnitTypeStorage    = "storage"
	UnitTypeAttic      = "attic"
	UnitTypeGarden     = "garden"
	UnitTypeCommercial = "commercial"
	UnitTypeOther      = "other"
)

func ValidUnitTypes() []string {
	return []string{
		UnitTypeApartment,
		UnitTypeGarage,
		UnitTypeParking,
		UnitTypeStorage,
		UnitTypeAttic,
		UnitTypeGarden,
		UnitTypeCommercial,
		UnitTypeOther,
	}
}

type Unit struct {
	ID               uint                `gorm:"primaryKey" json:"id"`
	PropertyID       uint                `gorm:"not null;index" json:"property_id"`
	Name             string              `gorm:"not null" json:"name"`
	UnitType         string              `gorm:"not null;default:apartment" json:"unit_type"`
	MonthlyRent      decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"monthly_rent"`
	MonthlyUtilities decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"monthly_utilities"`
	Size             string              `json:"size"`
	IsActive         bool                `gorm:"not null;default:true" json:"is_active"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// StandardUtilities resolves the optional utilities column to a concrete
// amount, treating NULL as zero.
func (unit Unit) StandardUtilities() decimal.Decimal {
	if unit.MonthlyUtilities.Valid {
		return unit.MonthlyUtilities.Decimal
	}
	return decimal.Zero
}
