package db

import (
	"github.com/mietwerk/hauskasse/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

func (repo *SettingsRepository) FindByProperty(propertyID uint) (models.PropertySettings, bool, error) {
	var settings models.PropertySettings
	result := repo.database.
		Where("property_id = ?", propertyID).
		Limit(1).
		Find(&settings)
	if result.Error != nil {
		return models.PropertySettings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PropertySettings{}, false, nil
	}
	return settings, true, nil
}

// FindOrCreateByProperty returns the stored assumptions, lazily seeding the
// defaults on first access so valuation pages always have a row to edit.
func (repo *SettingsRepository) FindOrCreateByProperty(propertyID uint) (models.PropertySettings, error) {
	settings, found, err := repo.FindByProperty(propertyID)
	if err != nil {
		return models.PropertySettings{}, err
	}
	if found {
		return settings, nil
	}

	settings = models.DefaultPropertySettings(propertyID)
	if err := repo.database.Create(&settings).Error; err != nil {
		return models.PropertySettings{}, err
	}
	return settings, nil
}

func (repo *SettingsRepository) Save(settings *models.PropertySettings) error {
	return repo.database.Save(settings).Error
}
