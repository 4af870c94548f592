package db

import (
	"github.com/mietwerk/hauskasse/internal/models"
	"gorm.io/gorm"
)

type PersonRepository struct {
	database *gorm.DB
}

func NewPersonRepository(database *gorm.DB) *PersonRepository {
	return &PersonRepository{database: database}
}

func (repo *PersonRepository) ListByUser(userID uint) ([]models.Person, error) {
	persons := make([]models.Person, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("last_name ASC, first_name ASC, id ASC").
		Find(&persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}

func (repo *PersonRepository) FindOwned(userID uint, personID uint) (models.Person, bool, error) {
	var person models.Person
	result := repo.database.
		Where("id = ? AND user_id = ?", personID, userID).
		Limit(1).
		Find(&person)
	if result.Error != nil {
		return models.Person{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Person{}, false, nil
	}
	return person, true, nil
}

func (repo *PersonRepository) Create(person *models.Person) error {
	return repo.database.Create(person).Error
}

func (repo *PersonRepository) Save(person *models.Person) error {
	return repo.database.Save(person).Error
}
