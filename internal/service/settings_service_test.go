package service

import (
	"context"
	"errors"
	"testing"

	"smarttodo/internal/model"
)

func TestSettings_DefaultsForNewUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.mustRegister(t, "a@b.com")

	got, err := env.settings.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := model.DefaultAppSettings(user.ID)
	if got != want {
		t.Errorf("Get = %+v, want defaults %+v", got, want)
	}
}

func TestSettings_UpdatePersists(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.mustRegister(t, "a@b.com")

	theme := model.ThemeDark
	view := model.ViewKanban
	saved, err := env.settings.Update(ctx, user.ID, SettingsUpdate{Theme: &theme, DefaultView: &view})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if saved.Theme != model.ThemeDark || saved.DefaultView != model.ViewKanban {
		t.Errorf("saved = %+v", saved)
	}
	// The field we did not touch keeps its default.
	if !saved.EnableNotifications {
		t.Error("EnableNotifications flipped by an unrelated update")
	}

	got, err := env.settings.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != saved {
		t.Errorf("Get = %+v, want %+v", got, saved)
	}

	off := false
	second, err := env.settings.Update(ctx, user.ID, SettingsUpdate{EnableNotifications: &off})
	if err != nil {
		t.Fatalf("second Update: %v", err)
	}
	if second.Theme != model.ThemeDark || second.EnableNotifications {
		t.Errorf("second = %+v, want dark theme with notifications off", second)
	}
}

func TestSettings_UpdateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.mustRegister(t, "a@b.com")

	theme := model.Theme("neon")
	if _, err := env.settings.Update(ctx, user.ID, SettingsUpdate{Theme: &theme}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("invalid theme error = %v, want ErrInvalidInput", err)
	}

	view := model.View("timeline")
	if _, err := env.settings.Update(ctx, user.ID, SettingsUpdate{DefaultView: &view}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("invalid view error = %v, want ErrInvalidInput", err)
	}
}
