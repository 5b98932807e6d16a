package service

import (
	"context"
	"errors"
	"fmt"

	"smarttodo/internal/model"
	"smarttodo/internal/repository"
)

// SettingsService manages the per-user application settings record.
type SettingsService struct {
	repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the user's settings, falling back to defaults when the
// user has never saved any. The fallback is not persisted.
func (s *SettingsService) Get(ctx context.Context, userID string) (model.AppSettings, error) {
	settings, err := s.repo.Get(ctx, userID)
	switch {
	case err == nil:
		return *settings, nil
	case errors.Is(err, repository.ErrNotFound):
		return model.DefaultAppSettings(userID), nil
	default:
		return model.AppSettings{}, err
	}
}

// SettingsUpdate is a partial update of a settings record.
type SettingsUpdate struct {
	Theme               *model.Theme
	EnableNotifications *bool
	DefaultView         *model.View
}

// Update merges the given preferences into the stored record (or the
// defaults, for a first save) and persists the result.
func (s *SettingsService) Update(ctx context.Context, userID string, update SettingsUpdate) (model.AppSettings, error) {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		return model.AppSettings{}, err
	}

	if update.Theme != nil {
		if !update.Theme.IsValid() {
			return model.AppSettings{}, fmt.Errorf("%w: unknown theme %q", ErrInvalidInput, *update.Theme)
		}
		settings.Theme = *update.Theme
	}
	if update.EnableNotifications != nil {
		settings.EnableNotifications = *update.EnableNotifications
	}
	if update.DefaultView != nil {
		if !update.DefaultView.IsValid() {
			return model.AppSettings{}, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, *update.DefaultView)
		}
		settings.DefaultView = *update.DefaultView
	}

	if err := s.repo.Save(ctx, &settings); err != nil {
		return model.AppSettings{}, err
	}
	return settings, nil
}
