package db

import (
	"github.com/mietwerk/hauskasse/internal/models"
	"gorm.io/gorm"
)

// AssignmentRepository persists the person-to-property and person-to-unit
// association rows. There is at most one row per pair; the services layer
// decides between create, reactivate and role update.
type AssignmentRepository struct {
	database *gorm.DB
}

func NewAssignmentRepository(database *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{database: database}
}

func (repo *AssignmentRepository) ListActiveByProperty(propertyID uint) ([]models.PropertyPerson, error) {
	assignments := make([]models.PropertyPerson, 0)
	if err := repo.database.
		Preload("Person").
		Where("property_id = ? AND is_active = ?", propertyID, true).
		Order("id ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *AssignmentRepository) FindByPropertyAndPerson(propertyID uint, personID uint) (models.PropertyPerson, bool, error) {
	var assignment models.PropertyPerson
	result := repo.database.
		Where("property_id = ? AND person_id = ?", propertyID, personID).
		Limit(1).
		Find(&assignment)
	if result.Error != nil {
		return models.PropertyPerson{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PropertyPerson{}, false, nil
	}
	return assignment, true, nil
}

func (repo *AssignmentRepository) CreatePropertyAssignment(assignment *models.PropertyPerson) error {
	return repo.database.Create(assignment).Error
}

func (repo *AssignmentRepository) SavePropertyAssignment(assignment *models.PropertyPerson) error {
	return repo.database.Save(assignment).Error
}

func (repo *AssignmentRepository) ListActiveByUnit(unitID uint) ([]models.UnitPerson, error) {
	assignments := make([]models.UnitPerson, 0)
	if err := repo.database.
		Preload("Person").
		Where("unit_id = ? AND is_active = ?", unitID, true).
		Order("id ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *AssignmentRepository) FindByUnitAndPerson(unitID uint, personID uint) (models.UnitPerson, bool, error) {
	var assignment models.UnitPerson
	result := repo.database.
		Where("unit_id = ? AND person_id = ?", unitID, personID).
		Limit(1).
		Find(&assignment)
	if result.Error != nil {
		return models.UnitPerson{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UnitPerson{}, false, nil
	}
	return assignment, true, nil
}

func (repo *AssignmentRepository) CreateUnitAssignment(assignment *models.UnitPerson) error {
	return repo.database.Create(assignment).Error
}

func (repo *AssignmentRepository) SaveUnitAssignment(assignment *models.UnitPerson) error {
	return repo.database.Save(assignment).Error
}
