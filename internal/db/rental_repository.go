package db

import (
	"github.com/mietwerk/hauskasse/internal/models"
	"gorm.io/gorm"
)

type RentalRepository struct {
	database *gorm.DB
}

func NewRentalRepository(database *gorm.DB) *RentalRepository {
	return &RentalRepository{database: database}
}

func (repo *RentalRepository) ListByUnitAndYear(unitID uint, year int) ([]models.Rental, error) {
	rentals := make([]models.Rental, 0)
	if err := repo.database.
		Where("unit_id = ? AND year = ?", unitID, year).
		Order("month ASC").
		Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}

// ListFrom returns the unit's stored rows at or after the given month/year.
func (repo *RentalRepository) ListFrom(unitID uint, fromMonth int, fromYear int) ([]models.Rental, error) {
	rentals := make([]models.Rental, 0)
	if err := repo.database.
		Where("unit_id = ? AND (year > ? OR (year = ? AND month >= ?))", unitID, fromYear, fromYear, fromMonth).
		Order("year ASC, month ASC").
		Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}

func (repo *RentalRepository) FindByUnitMonthYear(unitID uint, month int, year int) (models.Rental, bool, error) {
	var rental models.Rental
	result := repo.database.
		Where("unit_id = ? AND month = ? AND year = ?", unitID, month, year).
		Limit(1).
		Find(&rental)
	if result.Error != nil {
		return models.Rental{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Rental{}, false, nil
	}
	return rental, true, nil
}

func (repo *RentalRepository) Create(rental *models.Rental) error {
	return repo.database.Create(rental).Error
}

func (repo *RentalRepository) Save(rental *models.Rental) error {
	return repo.database.Save(rental).Error
}
