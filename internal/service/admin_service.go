package service

import (
	"context"

	"smarttodo/internal/model"
	"smarttodo/internal/repository"
)

// AdminOverview aggregates store-wide counters for administrative views.
type AdminOverview struct {
	Users          int64
	Tasks          int64
	Completed      int64
	CompletionRate float64
}

// AdminService computes aggregates over full collection scans.
type AdminService struct {
	users *repository.UserRepository
	tasks *repository.TaskRepository
}

func NewAdminService(users *repository.UserRepository, tasks *repository.TaskRepository) *AdminService {
	return &AdminService{users: users, tasks: tasks}
}

// Overview returns user/task counts and the overall completion rate.
// The counts come from separate queries, so the snapshot is not atomic;
// that matches the single-writer assumption of the store.
func (s *AdminService) Overview(ctx context.Context) (AdminOverview, error) {
	var overview AdminOverview

	users, err := s.users.Count(ctx)
	if err != nil {
		return overview, err
	}
	tasks, err := s.tasks.Count(ctx)
	if err != nil {
		return overview, err
	}
	completed, err := s.tasks.CountByStatus(ctx, model.StatusCompleted)
	if err != nil {
		return overview, err
	}

	overview.Users = users
	overview.Tasks = tasks
	overview.Completed = completed
	if tasks > 0 {
		overview.CompletionRate = float64(completed) / float64(tasks)
	}
	return overview, nil
}
