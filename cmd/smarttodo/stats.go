package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"smarttodo/internal/service"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a daily overview of your tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		user, err := a.currentUser(cmd.Context())
		if err != nil {
			return err
		}
		text, err := a.summary.DailySummary(cmd.Context(), user.ID, time.Now())
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store-wide statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		user, err := a.currentUser(cmd.Context())
		if err != nil {
			return err
		}

		overview, err := a.admin.Overview(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("users:           %d\n", overview.Users)
		fmt.Printf("tasks:           %d\n", overview.Tasks)
		fmt.Printf("completed:       %d\n", overview.Completed)
		fmt.Printf("completion rate: %.0f%%\n", overview.CompletionRate*100)

		tasks, err := a.tasks.GetUserTasks(cmd.Context(), user.ID)
		if err != nil {
			return err
		}
		mine := service.Stats(tasks, time.Now())
		fmt.Printf("\nyours: %d total, %d pending, %d completed, %d overdue\n",
			mine.Total, mine.Pending, mine.Completed, mine.Overdue)
		return nil
	},
}
