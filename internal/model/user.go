package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Theme selects the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid reports whether the theme is a known value.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// UserSettings are per-account preferences embedded in the user record.
type UserSettings struct {
	Theme              Theme  `json:"theme"`
	NotificationSounds bool   `json:"notificationSounds"`
	DefaultCategory    string `json:"defaultCategory"`
}

// DefaultUserSettings returns the preferences a fresh account starts with.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		Theme:              ThemeLight,
		NotificationSounds: true,
		DefaultCategory:    "Personal",
	}
}

// Value serializes the settings to JSON for storage.
func (s UserSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan deserializes the settings from their stored JSON form.
func (s *UserSettings) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported settings column type %T", value)
	}
}

// User is an account record. Email doubles as the login identifier and
// carries a unique index, so a duplicate registration is rejected by the
// store even if the caller skips its own pre-check. CreatedAt is set once
// at registration and never changed.
type User struct {
	ID           string       `gorm:"primaryKey" json:"id"`
	Username     string       `gorm:"index" json:"username"`
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string       `json:"-"`
	Settings     UserSettings `gorm:"type:json" json:"settings"`
	CreatedAt    time.Time    `gorm:"index" json:"createdAt"`
}
