package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"smarttodo/internal/model"
	"smarttodo/internal/repository"
)

// defaultCategoryColor is assigned to categories created implicitly from
// a task label.
const defaultCategoryColor = "#6366f1"

// TaskInput carries the caller-supplied fields for a new task. Omitted
// status and priority default to pending/medium; nil slices become empty.
type TaskInput struct {
	Title           string
	Description     string
	Status          model.Status
	Priority        model.Priority
	DueDate         *time.Time
	DueTime         string
	EstimatedEffort *float64
	Tags            []string
	Category        string
	Subtasks        []model.Subtask
	Recurring       *model.Recurrence
	Dependencies    []string
	TimeSpent       float64
}

// TaskUpdate is a partial update: nil fields are left untouched. There
// is no status gate; any status may be written directly, the
// pending/completed toggle lives in ToggleComplete.
type TaskUpdate struct {
	Title           *string
	Description     *string
	Status          *model.Status
	Priority        *model.Priority
	DueDate         *time.Time
	DueTime         *string
	EstimatedEffort *float64
	Tags            []string
	Category        *string
	Subtasks        []model.Subtask
	Recurring       *model.Recurrence
	Dependencies    []string
	TimeSpent       *float64
}

// TaskService wraps task lifecycle logic on top of the store.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

// CreateTask validates the input, stamps id and timestamps, and inserts
// the task. CreatedAt and UpdatedAt are set to the same instant.
func (s *TaskService) CreateTask(ctx context.Context, userID string, input TaskInput) (*model.Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = model.StatusPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, priority)
	}

	if input.Recurring != nil {
		if !input.Recurring.Type.IsValid() {
			return nil, fmt.Errorf("%w: unknown recurrence type %q", ErrInvalidInput, input.Recurring.Type)
		}
		if input.Recurring.Interval < 1 {
			return nil, fmt.Errorf("%w: recurrence interval must be positive", ErrInvalidInput)
		}
	}

	// Categories are auto-registered from the label; the task keeps a
	// plain string reference either way.
	if input.Category != "" {
		if _, err := s.categoryRepo.GetOrCreate(ctx, userID, input.Category, defaultCategoryColor); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	task := model.Task{
		ID:              model.NewID(),
		UserID:          userID,
		Title:           input.Title,
		Description:     input.Description,
		Status:          status,
		Priority:        priority,
		DueDate:         input.DueDate,
		DueTime:         input.DueTime,
		EstimatedEffort: input.EstimatedEffort,
		Tags:            emptyIfNil(input.Tags),
		Category:        input.Category,
		Subtasks:        emptyIfNil(input.Subtasks),
		Recurring:       input.Recurring,
		Dependencies:    emptyIfNil(input.Dependencies),
		TimeSpent:       input.TimeSpent,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask merges the supplied fields into an existing task and
// returns the refreshed record. UpdatedAt moves forward on every call,
// even one that supplies no fields.
func (s *TaskService) UpdateTask(ctx context.Context, id string, update TaskUpdate) (*model.Task, error) {
	fields, err := update.columns()
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.taskRepo.FindByID(ctx, id)
}

// DeleteTask removes a task. Deleting an unknown id succeeds as a no-op.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

// GetUserTasks returns every task owned by the user, with no implicit
// status filtering.
func (s *TaskService) GetUserTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

// ToggleComplete flips a task between pending and completed: a completed
// task reopens as pending, anything else becomes completed.
func (s *TaskService) ToggleComplete(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := model.StatusCompleted
	if task.Status == model.StatusCompleted {
		next = model.StatusPending
	}

	return s.UpdateTask(ctx, id, TaskUpdate{Status: &next})
}

func (u TaskUpdate) columns() (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	if u.Title != nil {
		if *u.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Status != nil {
		if !u.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *u.Status)
		}
		fields["status"] = *u.Status
	}
	if u.Priority != nil {
		if !u.Priority.IsValid() {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *u.Priority)
		}
		fields["priority"] = *u.Priority
	}
	if u.DueDate != nil {
		fields["due_date"] = *u.DueDate
	}
	if u.DueTime != nil {
		fields["due_time"] = *u.DueTime
	}
	if u.EstimatedEffort != nil {
		fields["estimated_effort"] = *u.EstimatedEffort
	}
	if u.Tags != nil {
		fields["tags"] = datatypes.JSONSlice[string](u.Tags)
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Subtasks != nil {
		fields["subtasks"] = datatypes.JSONSlice[model.Subtask](u.Subtasks)
	}
	if u.Recurring != nil {
		if !u.Recurring.Type.IsValid() {
			return nil, fmt.Errorf("%w: unknown recurrence type %q", ErrInvalidInput, u.Recurring.Type)
		}
		fields["recurring"] = u.Recurring
	}
	if u.Dependencies != nil {
		fields["dependencies"] = datatypes.JSONSlice[string](u.Dependencies)
	}
	if u.TimeSpent != nil {
		if *u.TimeSpent < 0 {
			return nil, fmt.Errorf("%w: time spent cannot be negative", ErrInvalidInput)
		}
		fields["time_spent"] = *u.TimeSpent
	}

	return fields, nil
}

func emptyIfNil[T any](s []T) datatypes.JSONSlice[T] {
	if s == nil {
		return datatypes.JSONSlice[T]{}
	}
	return datatypes.JSONSlice[T](s)
}
