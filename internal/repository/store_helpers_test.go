package repository

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"smarttodo/internal/model"
)

// newTestDB opens an isolated database in a temp dir, closed when the
// test finishes.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() {
		if err := Close(db); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return db
}

func newTestUser(email string) *model.User {
	return &model.User{
		ID:           model.NewID(),
		Username:     "Test User",
		Email:        email,
		PasswordHash: "x",
		Settings:     model.DefaultUserSettings(),
		CreatedAt:    time.Now(),
	}
}

func newTestTask(userID, title string) *model.Task {
	now := time.Now()
	return &model.Task{
		ID:           model.NewID(),
		UserID:       userID,
		Title:        title,
		Status:       model.StatusPending,
		Priority:     model.PriorityMedium,
		Tags:         []string{},
		Subtasks:     []model.Subtask{},
		Dependencies: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
