package services

import (
	"strings"

	"github.com/mietwerk/hauskasse/internal/models"
)

type AssignmentRepository interface {
	FindByPropertyAndPerson(propertyID uint, personID uint) (models.PropertyPerson, bool, error)
	CreatePropertyAssignment(assignment *models.PropertyPerson) error
	SavePropertyAssignment(assignment *models.PropertyPerson) error
	FindByUnitAndPerson(unitID uint, personID uint) (models.UnitPerson, bool, error)
	CreateUnitAssignment(assignment *models.UnitPerson) error
	SaveUnitAssignment(assignment *models.UnitPerson) error
}

// AssignmentService keeps one association row per (person, target) pair.
// Assigning is a single upsert transition: absent rows are created, inactive
// history rows are reactivated with the new role, active rows get the role
// updated in place. Removing soft-deactivates, preserving history.
type AssignmentService struct {
	assignments AssignmentRepository
}

func NewAssignmentService(assignments AssignmentRepository) *AssignmentService {
	return &AssignmentService{assignments: assignments}
}

func (service *AssignmentService) AssignToProperty(propertyID uint, personID uint, role string) (models.PropertyPerson, error) {
	role = strings.TrimSpace(role)

	existing, found, err := service.assignments.FindByPropertyAndPerson(propertyID, personID)
	if err != nil {
		return models.PropertyPerson{}, err
	}
	if found {
		existing.Role = role
		existing.IsActive = true
		if err := service.assignments.SavePropertyAssignment(&existing); err != nil {
			return models.PropertyPerson{}, err
		}
		return existing, nil
	}

	assignment := models.PropertyPerson{
		PropertyID: propertyID,
		PersonID:   personID,
		Role:       role,
		IsActive:   true,
	}
	if err := service.assignments.CreatePropertyAssignment(&assignment); err != nil {
		return models.PropertyPerson{}, err
	}
	return assignment, nil
}

func (service *AssignmentService) RemoveFromProperty(propertyID uint, personID uint) error {
	existing, found, err := service.assignments.FindByPropertyAndPerson(propertyID, personID)
	if err != nil {
		return err
	}
	if !found || !existing.IsActive {
		return ErrNotFound
	}
	existing.IsActive = false
	return service.assignments.SavePropertyAssignment(&existing)
}

func (service *AssignmentService) AssignToUnit(unitID uint, personID uint, role string) (models.UnitPerson, error) {
	role = strings.TrimSpace(role)

	existing, found, err := service.assignments.FindByUnitAndPerson(unitID, personID)
	if err != nil {
		return models.UnitPerson{}, err
	}
	if found {
		existing.Role = role
		existing.IsActive = true
		if err := service.assignments.SaveUnitAssignment(&existing); err != nil {
			return models.UnitPerson{}, err
		}
		return existing, nil
	}

	assignment := models.UnitPerson{
		UnitID:   unitID,
		PersonID: personID,
		Role:     role,
		IsActive: true,
	}
	if err := service.assignments.CreateUnitAssignment(&assignment); err != nil {
		return models.UnitPerson{}, err
	}
	return assignment, nil
}

func (service *AssignmentService) RemoveFromUnit(unitID uint, personID uint) error {
	existing, found, err := service.assignments.FindByUnitAndPerson(unitID, personID)
	if err != nil {
		return err
	}
	if !found || !existing.IsActive {
		return ErrNotFound
	}
	existing.IsActive = false
	return service.assignments.SaveUnitAssignment(&existing)
}
