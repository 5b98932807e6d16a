package service

import (
	"sort"
	"strings"
	"time"

	"smarttodo/internal/model"
)

// TaskStats are the dashboard counters for a loaded task list.
type TaskStats struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
}

// Stats counts task states in memory. A task is overdue when it has a
// due date in the past and is not completed; completed tasks never count
// as overdue no matter how old their due date is.
func Stats(tasks []model.Task, now time.Time) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case model.StatusCompleted:
			stats.Completed++
		case model.StatusPending:
			stats.Pending++
		}
		if task.DueDate != nil && task.DueDate.Before(now) && task.Status != model.StatusCompleted {
			stats.Overdue++
		}
	}
	return stats
}

// FilterByText returns the tasks matching a free-text query: a
// case-insensitive substring of the title, the description, or any tag.
// An empty query matches everything.
func FilterByText(tasks []model.Task, query string) []model.Task {
	if query == "" {
		return tasks
	}
	needle := strings.ToLower(query)

	matched := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if matchesText(task, needle) {
			matched = append(matched, task)
		}
	}
	return matched
}

func matchesText(task model.Task, needle string) bool {
	if strings.Contains(strings.ToLower(task.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(task.Description), needle) {
		return true
	}
	for _, tag := range task.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// SortByDueDate orders tasks by due date ascending with undated tasks
// last, newest-first within each group.
func SortByDueDate(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		switch {
		case tasks[i].DueDate == nil && tasks[j].DueDate == nil:
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		case tasks[i].DueDate == nil:
			return false
		case tasks[j].DueDate == nil:
			return true
		default:
			return tasks[i].DueDate.Before(*tasks[j].DueDate)
		}
	})
}
