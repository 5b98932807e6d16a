package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusArchived   Status = "archived"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted, StatusArchived}
}

// IsValid reports whether the status is a known value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid reports whether the priority is a known value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Subtask is a checklist entry nested inside a task.
type Subtask struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// RecurrenceType describes how often a recurring task repeats.
type RecurrenceType string

const (
	RecurDaily   RecurrenceType = "daily"
	RecurWeekly  RecurrenceType = "weekly"
	RecurMonthly RecurrenceType = "monthly"
	RecurCustom  RecurrenceType = "custom"
)

// IsValid reports whether the recurrence type is a known value.
func (t RecurrenceType) IsValid() bool {
	switch t {
	case RecurDaily, RecurWeekly, RecurMonthly, RecurCustom:
		return true
	default:
		return false
	}
}

// Recurrence describes the repetition rule of a recurring task.
// Interval multiplies the type (every N days/weeks/months); custom
// means every Interval days.
type Recurrence struct {
	Type     RecurrenceType `json:"type"`
	Interval int            `json:"interval"`
	EndDate  *time.Time     `json:"endDate,omitempty"`
}

// Value serializes the rule to JSON for storage.
func (r Recurrence) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan deserializes the rule from its stored JSON form.
func (r *Recurrence) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("unsupported recurrence column type %T", value)
	}
}

// Task represents a single item in a user's list. Tags, subtasks and
// dependencies live in JSON columns. Category is a free-text label, not
// a foreign key, and Dependencies hold task IDs without integrity checks.
type Task struct {
	ID              string                       `gorm:"primaryKey" json:"id"`
	UserID          string                       `gorm:"index;not null" json:"userId"`
	Title           string                       `gorm:"not null" json:"title"`
	Description     string                       `json:"description"`
	Status          Status                       `gorm:"index;default:pending" json:"status"`
	Priority        Priority                     `gorm:"index;default:medium" json:"priority"`
	DueDate         *time.Time                   `gorm:"index" json:"dueDate,omitempty"`
	DueTime         string                       `json:"dueTime,omitempty"`
	EstimatedEffort *float64                     `json:"estimatedEffort,omitempty"`
	Tags            datatypes.JSONSlice[string]  `json:"tags"`
	Category        string                       `gorm:"index" json:"category"`
	Subtasks        datatypes.JSONSlice[Subtask] `json:"subtasks"`
	Recurring       *Recurrence                  `gorm:"type:json" json:"recurring,omitempty"`
	Dependencies    datatypes.JSONSlice[string]  `json:"dependencies"`
	TimeSpent       float64                      `json:"timeSpent"`
	CreatedAt       time.Time                    `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time                    `json:"updatedAt"`
}
