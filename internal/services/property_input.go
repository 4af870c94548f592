package services

import "strings"

type PropertyInput struct {
	Name        string
	Address     string
	Description string
	IsActive    *bool
}

func (input PropertyInput) Validate() error {
	if strings.TrimSpace(input.Name) == "" {
		return newValidationError("name", "required")
	}
	return nil
}

type PersonInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Notes     string
	IsActive  *bool
}

func (input PersonInput) Validate() error {
	if strings.TrimSpace(input.LastName) == "" {
		return newValidationError("last_name", "required")
	}
	if strings.TrimSpace(input.Email) != "" && NormalizeAuthEmail(input.Email) == "" {
		return newValidationError("email", "not a valid address")
	}
	return nil
}
