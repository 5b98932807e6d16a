package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"smarttodo/internal/model"
)

// SettingsRepository stores application settings, one record per user.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings record keyed by the user's ID, or ErrNotFound
// when the user has never saved any.
func (r *SettingsRepository) Get(ctx context.Context, userID string) (*model.AppSettings, error) {
	var settings model.AppSettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

// Save upserts the settings record for its user.
func (r *SettingsRepository) Save(ctx context.Context, settings *model.AppSettings) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(settings).Error; err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
