package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get returns the value for a key, or "" when the key is absent.
func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	var settingModel model.SettingModel
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return settingModel.Value, nil
}

// Set stores the value for a key, overwriting any previous value.
func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	setting := model.SettingModel{Key: key, Value: value}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (r *settingsRepository) Delete(ctx context.Context, key string) error {
	result := r.db.WithContext(ctx).Delete(&model.SettingModel{}, "key = ?", key)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
