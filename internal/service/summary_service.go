package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smarttodo/internal/model"
	"smarttodo/internal/repository"
)

// SummaryService builds human-readable daily overviews of a user's list.
type SummaryService struct {
	taskRepo *repository.TaskRepository
}

func NewSummaryService(taskRepo *repository.TaskRepository) *SummaryService {
	return &SummaryService{taskRepo: taskRepo}
}

// DailySummary renders the user's open tasks as plain text: overdue and
// upcoming work first, then counters for the day.
func (s *SummaryService) DailySummary(ctx context.Context, userID string, now time.Time) (string, error) {
	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	var open []model.Task
	for _, task := range tasks {
		switch task.Status {
		case model.StatusCompleted, model.StatusArchived:
			continue
		default:
			open = append(open, task)
		}
	}
	SortByDueDate(open)

	stats := Stats(tasks, now)

	var builder strings.Builder
	builder.WriteString("Daily summary\n")
	builder.WriteString(now.Format("2006-01-02"))
	builder.WriteString("\n\nOpen tasks\n")

	if len(open) == 0 {
		builder.WriteString("  (nothing open)\n")
	} else {
		for _, task := range open {
			builder.WriteString(formatTaskLine(task, now))
		}
	}

	builder.WriteString(fmt.Sprintf("\n%d total, %d pending, %d completed, %d overdue\n",
		stats.Total, stats.Pending, stats.Completed, stats.Overdue))

	return builder.String(), nil
}

func formatTaskLine(task model.Task, now time.Time) string {
	var sb strings.Builder

	marker := "*"
	if task.DueDate != nil && task.DueDate.Before(now) {
		marker = "!"
	}
	sb.WriteString(fmt.Sprintf("  %s %s", marker, strings.TrimSpace(task.Title)))

	if task.Category != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", task.Category))
	}
	if task.Recurring != nil {
		sb.WriteString(" [recurring]")
	}

	if task.DueDate != nil {
		due := task.DueDate.In(now.Location())
		if now.After(due) {
			sb.WriteString(fmt.Sprintf(" — due %s, overdue", due.Format("2006-01-02")))
		} else {
			daysLeft := int(due.Sub(now).Hours()/24) + 1
			sb.WriteString(fmt.Sprintf(" — due %s, ~%dd left", due.Format("2006-01-02"), daysLeft))
		}
	}

	sb.WriteByte('\n')
	return sb.String()
}
