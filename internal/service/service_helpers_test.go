package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"smarttodo/internal/model"
	"smarttodo/internal/repository"
)

const (
	testAdminEmail    = "admin@smarttodo.local"
	testAdminPassword = "admin"
)

// testEnv wires every service onto one throwaway database.
type testEnv struct {
	userRepo     *repository.UserRepository
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
	settingsRepo *repository.SettingsRepository

	auth       *AuthService
	tasks      *TaskService
	categories *CategoryService
	settings   *SettingsService
	summary    *SummaryService
	admin      *AdminService
	recurrence *RecurrenceService
	sample     *SampleDataService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = repository.Close(db) })

	env := &testEnv{
		userRepo:     repository.NewUserRepository(db),
		taskRepo:     repository.NewTaskRepository(db),
		categoryRepo: repository.NewCategoryRepository(db),
		settingsRepo: repository.NewSettingsRepository(db),
	}
	env.auth = NewAuthService(env.userRepo, testAdminEmail, testAdminPassword)
	env.tasks = NewTaskService(env.taskRepo, env.categoryRepo)
	env.categories = NewCategoryService(env.categoryRepo)
	env.settings = NewSettingsService(env.settingsRepo)
	env.summary = NewSummaryService(env.taskRepo)
	env.admin = NewAdminService(env.userRepo, env.taskRepo)
	env.recurrence = NewRecurrenceService(env.taskRepo)
	env.sample = NewSampleDataService(env.userRepo, env.auth, env.tasks)
	return env
}

func (env *testEnv) mustRegister(t *testing.T, email string) *model.User {
	t.Helper()
	user, err := env.auth.Register(context.Background(), "Test User", email, "secret123")
	if err != nil {
		t.Fatalf("Register %s: %v", email, err)
	}
	return user
}

func (env *testEnv) mustCreateTask(t *testing.T, userID string, input TaskInput) *model.Task {
	t.Helper()
	task, err := env.tasks.CreateTask(context.Background(), userID, input)
	if err != nil {
		t.Fatalf("CreateTask %q: %v", input.Title, err)
	}
	return task
}

func timePtr(t time.Time) *time.Time {
	return &t
}
