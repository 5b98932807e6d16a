package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"smarttodo/internal/model"
	"smarttodo/internal/repository"
)

// AuthService resolves credentials to user records. Passwords are stored
// as bcrypt hashes; the record is never returned with the hash cleared
// here because callers inside this module need it, but the field is
// excluded from JSON either way.
type AuthService struct {
	users *repository.UserRepository

	// Bootstrap pair for the built-in administrative account. The
	// account is created lazily the first time this exact pair is used
	// to log in, then behaves like any other user.
	adminEmail    string
	adminPassword string
}

func NewAuthService(users *repository.UserRepository, adminEmail, adminPassword string) *AuthService {
	return &AuthService{
		users:         users,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// Register creates an account with a hashed credential and default
// preferences. The email pre-check gives a friendly error; the store's
// unique index on email backstops the race between check and insert.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:           model.NewID(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Settings:     model.DefaultUserSettings(),
		CreatedAt:    time.Now(),
	}

	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login resolves an identifier and credential to a user record. When the
// identifier is the configured admin email and no such account exists
// yet, presenting the matching bootstrap password creates it on the
// spot. Every failure path reports ErrInvalidCredentials; callers get no
// hint whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*model.User, error) {
	identifier = normalizeEmail(identifier)

	user, err := s.users.FindByEmail(ctx, identifier)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return user, nil
	case errors.Is(err, repository.ErrNotFound):
		if identifier == normalizeEmail(s.adminEmail) && password == s.adminPassword && s.adminPassword != "" {
			return s.bootstrapAdmin(ctx)
		}
		return nil, ErrInvalidCredentials
	default:
		return nil, err
	}
}

func (s *AuthService) bootstrapAdmin(ctx context.Context) (*model.User, error) {
	user, err := s.Register(ctx, "Administrator", s.adminEmail, s.adminPassword)
	if errors.Is(err, ErrEmailTaken) {
		// Someone beat us to it; fall back to the stored record.
		return s.users.FindByEmail(ctx, normalizeEmail(s.adminEmail))
	}
	return user, err
}

// UpdateSettings replaces a user's embedded preferences.
func (s *AuthService) UpdateSettings(ctx context.Context, userID string, settings model.UserSettings) error {
	if !settings.Theme.IsValid() {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidInput, settings.Theme)
	}
	return s.users.UpdateSettings(ctx, userID, settings)
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
