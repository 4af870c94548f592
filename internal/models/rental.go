package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rental is the per-month ledger row for a unit. The rent and utilities
// portions are nullable: NULL means "follow the unit's current standard
// amount". Amount always stores the total that was in effect when the row
// was last written.
type Rental struct {
	ID              uint                `gorm:"primaryKey" json:"id"`
	UnitID          uint                `gorm:"not null;uniqueIndex:uidx_unit_month_year" json:"unit_id"`
	Month           int                 `gorm:"not null;uniqueIndex:uidx_unit_month_year" json:"month"`
	Year            int                 `gorm:"not null;uniqueIndex:uidx_unit_month_year" json:"year"`
	RentAmount      decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"rent_amount"`
	UtilitiesAmount decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"utilities_amount"`
	Amount          decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"amount"`
	IsPaid          bool                `gorm:"not null;default:false" json:"is_paid"`
	Notes           string              `json:"notes"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}
