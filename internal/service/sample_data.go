package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"smarttodo/internal/model"
	"smarttodo/internal/repository"
)

// SampleDataService seeds demo accounts and tasks for a fresh database.
type SampleDataService struct {
	users *repository.UserRepository
	auth  *AuthService
	tasks *TaskService
}

func NewSampleDataService(users *repository.UserRepository, auth *AuthService, tasks *TaskService) *SampleDataService {
	return &SampleDataService{users: users, auth: auth, tasks: tasks}
}

type sampleTask struct {
	title           string
	description     string
	status          model.Status
	priority        model.Priority
	category        string
	tags            []string
	estimatedEffort float64
}

var sampleUsers = []struct {
	username string
	email    string
	password string
}{
	{"John Doe", "john@example.com", "password123"},
	{"Jane Smith", "jane@example.com", "password123"},
	{"Mike Johnson", "mike@example.com", "password123"},
}

var sampleTasks = []sampleTask{
	{
		title:           "Complete project proposal",
		description:     "Finish the quarterly project proposal for the marketing team",
		status:          model.StatusInProgress,
		priority:        model.PriorityHigh,
		category:        "work",
		tags:            []string{"work", "urgent"},
		estimatedEffort: 4,
	},
	{
		title:           "Review design mockups",
		description:     "Review and provide feedback on the new app design mockups",
		status:          model.StatusPending,
		priority:        model.PriorityMedium,
		category:        "work",
		tags:            []string{"design", "review"},
		estimatedEffort: 2,
	},
	{
		title:           "Update documentation",
		description:     "Update the API documentation with new endpoints",
		status:          model.StatusCompleted,
		priority:        model.PriorityLow,
		category:        "development",
		tags:            []string{"docs", "api"},
		estimatedEffort: 3,
	},
	{
		title:           "Team meeting preparation",
		description:     "Prepare agenda and materials for the weekly team meeting",
		status:          model.StatusPending,
		priority:        model.PriorityMedium,
		category:        "work",
		tags:            []string{"meeting", "preparation"},
		estimatedEffort: 1,
	},
	{
		title:           "Bug fix - User authentication",
		description:     "Fix the authentication bug reported by QA team",
		status:          model.StatusInProgress,
		priority:        model.PriorityCritical,
		category:        "development",
		tags:            []string{"bug", "critical", "auth"},
		estimatedEffort: 6,
	},
}

// Seed populates the store with demo users and tasks. It is a no-op on a
// database that already has users, so it is safe to run at every start.
func (s *SampleDataService) Seed(ctx context.Context) error {
	existing, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if existing > 0 {
		log.Debug().Int64("users", existing).Msg("skipping sample data, store not empty")
		return nil
	}

	for _, demo := range sampleUsers {
		user, err := s.auth.Register(ctx, demo.username, demo.email, demo.password)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", demo.email, err)
		}

		for _, tpl := range sampleTasks {
			effort := tpl.estimatedEffort
			due := time.Now().Add(time.Duration(rand.Intn(7*24)) * time.Hour)
			input := TaskInput{
				Title:           fmt.Sprintf("%s - %s", tpl.title, user.Username),
				Description:     tpl.description,
				Status:          tpl.status,
				Priority:        tpl.priority,
				Category:        tpl.category,
				Tags:            tpl.tags,
				EstimatedEffort: &effort,
				DueDate:         &due,
				TimeSpent:       float64(rand.Intn(8)),
			}
			if _, err := s.tasks.CreateTask(ctx, user.ID, input); err != nil {
				return fmt.Errorf("seed task for %s: %w", demo.email, err)
			}
		}
	}

	log.Info().Int("users", len(sampleUsers)).Msg("sample data generated")
	return nil
}
