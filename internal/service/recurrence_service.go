package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"smarttodo/internal/model"
	"smarttodo/internal/repository"
)

// RecurrenceService reopens completed recurring tasks at their next
// occurrence. Tasks whose rule has run past its end date stay completed.
type RecurrenceService struct {
	taskRepo *repository.TaskRepository
}

func NewRecurrenceService(taskRepo *repository.TaskRepository) *RecurrenceService {
	return &RecurrenceService{taskRepo: taskRepo}
}

// Roll scans completed recurring tasks and moves each one forward: the
// due date advances to the first occurrence after now and the status
// resets to pending. Tasks without a due date are skipped; the rule has
// nothing to advance from. Returns the number of tasks reopened.
func (s *RecurrenceService) Roll(ctx context.Context, now time.Time) (int, error) {
	tasks, err := s.taskRepo.ListRecurringCompleted(ctx)
	if err != nil {
		return 0, err
	}

	rolled := 0
	for _, task := range tasks {
		if task.Recurring == nil || task.DueDate == nil {
			continue
		}

		next := nextOccurrence(*task.DueDate, *task.Recurring, now)
		if task.Recurring.EndDate != nil && next.After(*task.Recurring.EndDate) {
			continue
		}

		fields := map[string]interface{}{
			"status":   model.StatusPending,
			"due_date": next,
		}
		if err := s.taskRepo.Update(ctx, task.ID, fields); err != nil {
			log.Error().Err(err).Str("task_id", task.ID).Msg("roll recurring task")
			continue
		}
		rolled++
	}
	return rolled, nil
}

// nextOccurrence returns the first occurrence after now, stepping from
// the current due date by the rule's interval. Custom rules step in
// days, like daily with a multiplier.
func nextOccurrence(due time.Time, rule model.Recurrence, now time.Time) time.Time {
	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}

	step := func(t time.Time) time.Time {
		switch rule.Type {
		case model.RecurWeekly:
			return t.AddDate(0, 0, 7*interval)
		case model.RecurMonthly:
			return t.AddDate(0, interval, 0)
		default: // daily, custom
			return t.AddDate(0, 0, interval)
		}
	}

	next := step(due)
	for !next.After(now) {
		next = step(next)
	}
	return next
}
