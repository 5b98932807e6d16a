package main

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smarttodo/internal/model"
	"smarttodo/internal/repository"
	"smarttodo/internal/service"
	"smarttodo/internal/session"
)

// app wires the store and services for one command invocation.
type app struct {
	db *gorm.DB

	auth       *service.AuthService
	tasks      *service.TaskService
	categories *service.CategoryService
	settings   *service.SettingsService
	summary    *service.SummaryService
	admin      *service.AdminService
	recurrence *service.RecurrenceService
	sample     *service.SampleDataService
}

func openApp() (*app, error) {
	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	auth := service.NewAuthService(userRepo, cfg.AdminEmail, cfg.AdminPassword)
	tasks := service.NewTaskService(taskRepo, categoryRepo)

	return &app{
		db:         db,
		auth:       auth,
		tasks:      tasks,
		categories: service.NewCategoryService(categoryRepo),
		settings:   service.NewSettingsService(settingsRepo),
		summary:    service.NewSummaryService(taskRepo),
		admin:      service.NewAdminService(userRepo, taskRepo),
		recurrence: service.NewRecurrenceService(taskRepo),
		sample:     service.NewSampleDataService(userRepo, auth, tasks),
	}, nil
}

func (a *app) close() {
	_ = repository.Close(a.db)
}

// sessionPath resolves the session file location, preferring the
// configured override.
func sessionPath() (string, error) {
	if cfg.SessionFile != "" {
		return cfg.SessionFile, nil
	}
	return session.DefaultPath()
}

// currentUser resolves the logged-in user from the session file.
func (a *app) currentUser(ctx context.Context) (*model.User, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}
	sess, err := session.Load(path)
	if err != nil {
		return nil, err
	}
	user, err := a.auth.GetUser(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve session user: %w", err)
	}
	return user, nil
}
