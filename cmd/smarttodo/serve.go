package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"smarttodo/internal/service"
)

var serveDaily string

// serveCmd runs the recurrence worker until interrupted: completed
// recurring tasks are reopened at their next occurrence on a schedule.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the recurring-task worker",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		roll := func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			rolled, err := a.recurrence.Roll(jobCtx, time.Now())
			if err != nil {
				log.Error().Err(err).Msg("recurrence roll")
				return
			}
			if rolled > 0 {
				log.Info().Int("tasks", rolled).Msg("reopened recurring tasks")
			}
		}

		scheduler := service.NewSchedulerService(time.Local)
		if serveDaily != "" {
			if _, err := scheduler.ScheduleDaily(serveDaily, roll); err != nil {
				return fmt.Errorf("schedule daily roll: %w", err)
			}
		} else {
			if _, err := scheduler.ScheduleInterval(cfg.RecurInterval, roll); err != nil {
				return fmt.Errorf("schedule roll: %w", err)
			}
		}

		// Catch up immediately on start, then follow the schedule.
		roll()

		scheduler.Start()
		defer scheduler.Stop()

		log.Info().Msg("recurrence worker started")
		<-cmd.Context().Done()
		log.Info().Msg("shutting down")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveDaily, "daily", "", "roll once a day at HH:MM instead of on an interval")
}
