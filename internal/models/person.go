package models

import "time"

type Person struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName maps the model onto the persons table created by the migrations
// (GORM would otherwise pluralize Person to "people").
func (Person) TableName() string { return "persons" }
