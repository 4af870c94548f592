package db

import (
	"github.com/mietwerk/hauskasse/internal/models"
	"gorm.io/gorm"
)

type UnitRepository struct {
	database *gorm.DB
}

func NewUnitRepository(database *gorm.DB) *UnitRepository {
	return &UnitRepository{database: database}
}

func (repo *UnitRepository) ListByProperty(propertyID uint) ([]models.Unit, error) {
	units := make([]models.Unit, 0)
	if err := repo.database.
		Where("property_id = ?", propertyID).
		Order("name ASC, id ASC").
		Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (repo *UnitRepository) ListActiveByProperty(propertyID uint) ([]models.Unit, error) {
	units := make([]models.Unit, 0)
	if err := repo.database.
		Where("property_id = ? AND is_active = ?", propertyID, true).
		Order("name ASC, id ASC").
		Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// FindOwned resolves a unit through its property's owner. Missing rows and
// rows owned by someone else look identical to the caller.
func (repo *UnitRepository) FindOwned(userID uint, unitID uint) (models.Unit, bool, error) {
	var unit models.Unit
	result := repo.database.
		Joins("JOIN properties ON properties.id = units.property_id").
		Where("units.id = ? AND properties.user_id = ?", unitID, userID).
		Limit(1).
		Find(&unit)
	if result.Error != nil {
		return models.Unit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Unit{}, false, nil
	}
	return unit, true, nil
}

func (repo *UnitRepository) Create(unit *models.Unit) error {
	return repo.database.Create(unit).Error
}

func (repo *UnitRepository) Save(unit *models.Unit) error {
	return repo.database.Save(unit).Error
}

func (repo *UnitRepository) Delete(unitID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("unit_id = ?", unitID).Delete(&models.Rental{}).Error; err != nil {
			return err
		}
		if err := tx.Where("unit_id = ?", unitID).Delete(&models.UnitPerson{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Unit{}, unitID).Error
	})
}

// SaveStandardsWithRentals persists a standard-rent change together with the
// forced rewrite of previously customized ledger rows as one atomic write.
func (repo *UnitRepository) SaveStandardsWithRentals(unit *models.Unit, rentals []models.Rental) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(unit).Error; err != nil {
			return err
		}
		for index := range rentals {
			if err := tx.Save(&rentals[index]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
