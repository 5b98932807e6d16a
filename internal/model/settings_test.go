package model

import "testing"

func TestView_IsValid(t *testing.T) {
	tests := []struct {
		view  View
		valid bool
	}{
		{ViewList, true},
		{ViewKanban, true},
		{ViewCalendar, true},
		{View("grid"), false},
		{View(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			if got := tt.view.IsValid(); got != tt.valid {
				t.Errorf("View(%q).IsValid() = %v, want %v", tt.view, got, tt.valid)
			}
		})
	}
}

func TestTheme_IsValid(t *testing.T) {
	tests := []struct {
		theme Theme
		valid bool
	}{
		{ThemeLight, true},
		{ThemeDark, true},
		{Theme("solarized"), false},
		{Theme(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.theme), func(t *testing.T) {
			if got := tt.theme.IsValid(); got != tt.valid {
				t.Errorf("Theme(%q).IsValid() = %v, want %v", tt.theme, got, tt.valid)
			}
		})
	}
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings("user-1")
	if settings.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", settings.UserID)
	}
	if settings.Theme != ThemeLight || settings.DefaultView != ViewList || !settings.EnableNotifications {
		t.Errorf("defaults = %+v, want light/list/notifications on", settings)
	}
}
