package repository

import (
	"context"
	"errors"
	"testing"

	"smarttodo/internal/model"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := newTestUser("a@b.com")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Email != "a@b.com" {
		t.Errorf("Email = %q, want %q", got.Email, "a@b.com")
	}
	if got.Settings != model.DefaultUserSettings() {
		t.Errorf("Settings = %+v, want defaults", got.Settings)
	}

	byEmail, err := repo.FindByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("FindByEmail ID = %q, want %q", byEmail.ID, user.ID)
	}
}

func TestUserRepository_FindMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	if _, err := repo.FindByID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID error = %v, want ErrNotFound", err)
	}
	if _, err := repo.FindByEmail(ctx, "nope@b.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByEmail error = %v, want ErrNotFound", err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	if err := repo.Create(ctx, newTestUser("a@b.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, newTestUser("a@b.com"))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("Create duplicate email error = %v, want ErrDuplicate", err)
	}
}

func TestUserRepository_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := newTestUser("a@b.com")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	clone := newTestUser("other@b.com")
	clone.ID = user.ID
	if err := repo.Create(ctx, clone); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Create duplicate id error = %v, want ErrDuplicate", err)
	}
}

func TestUserRepository_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := newTestUser("a@b.com")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated := model.UserSettings{
		Theme:              model.ThemeDark,
		NotificationSounds: false,
		DefaultCategory:    "work",
	}
	if err := repo.UpdateSettings(ctx, user.ID, updated); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	got, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Settings != updated {
		t.Errorf("Settings = %+v, want %+v", got.Settings, updated)
	}

	if err := repo.UpdateSettings(ctx, "nope", updated); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateSettings missing user error = %v, want ErrNotFound", err)
	}
}

func TestUserRepository_ListAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	for _, email := range []string{"a@b.com", "b@b.com", "c@b.com"} {
		if err := repo.Create(ctx, newTestUser(email)); err != nil {
			t.Fatalf("Create %s: %v", email, err)
		}
	}

	users, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(users) != 3 {
		t.Errorf("ListAll len = %d, want 3", len(users))
	}
	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
}
