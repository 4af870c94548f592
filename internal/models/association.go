package models

import "time"

// Customary role vocabulary. Roles are stored as free-form strings; these
// constants only document the values the clients use.
const (
	PropertyRoleHausmeister = "hausmeister"
	PropertyRoleEigentuemer = "eigentümer"
	UnitRoleMieter          = "mieter"
	UnitRoleBuerge          = "bürge"
)

// PropertyPerson links a person to a property. There is at most one row per
// (property, person) pair; unassigning flips IsActive off and a later
// re-assign reactivates the same row with the new role.
type PropertyPerson struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"not null;uniqueIndex:uidx_property_person" json:"property_id"`
	PersonID   uint      `gorm:"not null;uniqueIndex:uidx_property_person" json:"person_id"`
	Role       string    `json:"role"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Person *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

// TableName maps the model onto the property_persons table created by the
// migrations (GORM would otherwise pluralize to "property_people").
func (PropertyPerson) TableName() string { return "property_persons" }

// UnitPerson is the unit-level counterpart of PropertyPerson.
type UnitPerson struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UnitID    uint      `gorm:"not null;uniqueIndex:uidx_unit_person" json:"unit_id"`
	PersonID  uint      `gorm:"not null;uniqueIndex:uidx_unit_person" json:"person_id"`
	Role      string    `json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Person *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

// TableName maps the model onto the unit_persons table created by the
// migrations (GORM would otherwise pluralize to "unit_people").
func (UnitPerson) TableName() string { return "unit_persons" }
