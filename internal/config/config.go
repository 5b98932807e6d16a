package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the app.
type Config struct {
	DatabaseURL   string
	SessionFile   string
	LogLevel      string
	AdminEmail    string
	AdminPassword string
	RecurInterval time.Duration
}

// Load reads configuration from a .env file (when present) and the
// environment, with sane defaults. The admin pair is the bootstrap
// credential for the built-in administrative account; it is a local-app
// convenience, not a secret.
func Load() (Config, error) {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SessionFile:   strings.TrimSpace(os.Getenv("SESSION_FILE")),
		LogLevel:      strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		AdminEmail:    strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		RecurInterval: parseInterval(strings.TrimSpace(os.Getenv("RECUR_INTERVAL"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "smarttodo.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@smarttodo.local"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin"
	}
	if cfg.RecurInterval == 0 {
		cfg.RecurInterval = time.Hour
	}

	return cfg, nil
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	interval, err := time.ParseDuration(raw)
	if err != nil || interval <= 0 {
		return 0
	}
	return interval
}
