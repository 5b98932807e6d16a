package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty database with demo users and tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.sample.Seed(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Done. Try: smarttodo login john@example.com password123")
		return nil
	},
}
