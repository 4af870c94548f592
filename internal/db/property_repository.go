package db

import (
	"github.com/mietwerk/hauskasse/internal/models"
	"gorm.io/gorm"
)

type PropertyRepository struct {
	database *gorm.DB
}

func NewPropertyRepository(database *gorm.DB) *PropertyRepository {
	return &PropertyRepository{database: database}
}

func (repo *PropertyRepository) ListByUser(userID uint) ([]models.Property, error) {
	properties := make([]models.Property, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("name ASC, id ASC").
		Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// FindOwned resolves a property only when it belongs to the given user.
// A missing row and a foreign row are indistinguishable by design.
func (repo *PropertyRepository) FindOwned(userID uint, propertyID uint) (models.Property, bool, error) {
	var property models.Property
	result := repo.database.
		Where("id = ? AND user_id = ?", propertyID, userID).
		Limit(1).
		Find(&property)
	if result.Error != nil {
		return models.Property{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Property{}, false, nil
	}
	return property, true, nil
}

func (repo *PropertyRepository) FindOwnedWithUnits(userID uint, propertyID uint) (models.Property, bool, error) {
	var property models.Property
	result := repo.database.
		Preload("Units", func(query *gorm.DB) *gorm.DB {
			return query.Order("units.name ASC, units.id ASC")
		}).
		Where("id = ? AND user_id = ?", propertyID, userID).
		Limit(1).
		Find(&property)
	if result.Error != nil {
		return models.Property{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Property{}, false, nil
	}
	return property, true, nil
}

func (repo *PropertyRepository) Create(property *models.Property) error {
	return repo.database.Create(property).Error
}

func (repo *PropertyRepository) Save(property *models.Property) error {
	return repo.database.Save(property).Error
}

// Delete removes the property and everything hanging off it. The foreign
// keys carry ON DELETE CASCADE, but the related rows are deleted explicitly
// as well so the cascade does not depend on the connection's pragma state.
func (repo *PropertyRepository) Delete(propertyID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		unitIDs := make([]uint, 0)
		if err := tx.Model(&models.Unit{}).
			Where("property_id = ?", propertyID).
			Pluck("id", &unitIDs).Error; err != nil {
			return err
		}
		if len(unitIDs) > 0 {
			if err := tx.Where("unit_id IN ?", unitIDs).Delete(&models.Rental{}).Error; err != nil {
				return err
			}
			if err := tx.Where("unit_id IN ?", unitIDs).Delete(&models.UnitPerson{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("property_id = ?", propertyID).Delete(&models.Unit{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", propertyID).Delete(&models.PropertyPerson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", propertyID).Delete(&models.PropertySettings{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Property{}, propertyID).Error
	})
}
