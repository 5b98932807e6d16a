package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smarttodo/internal/model"
	"smarttodo/internal/service"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change application settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your settings",
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
		settings, err := a.settings.Get(cmd.Context(), user.ID)
		if err != nil {
			return err
		}
		fmt.Printf("theme:         %s\n", settings.Theme)
		fmt.Printf("notifications: %v\n", settings.EnableNotifications)
		fmt.Printf("default view:  %s\n", settings.DefaultView)
		return nil
	},
}

var (
	settingsTheme         string
	settingsView          string
	settingsNotifications string
)

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings",
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

		var update service.SettingsUpdate
		if settingsTheme != "" {
			theme := model.Theme(settingsTheme)
			update.Theme = &theme
		}
		if settingsView != "" {
			view := model.View(settingsView)
			update.DefaultView = &view
		}
		switch settingsNotifications {
		case "":
		case "on":
			enabled := true
			update.EnableNotifications = &enabled
		case "off":
			enabled := false
			update.EnableNotifications = &enabled
		default:
			return fmt.Errorf("invalid --notifications %q, expected on or off", settingsNotifications)
		}

		settings, err := a.settings.Update(cmd.Context(), user.ID, update)
		if err != nil {
			return err
		}
		fmt.Printf("Settings saved: theme=%s view=%s notifications=%v\n",
			settings.Theme, settings.DefaultView, settings.EnableNotifications)
		return nil
	},
}

func init() {
	settingsSetCmd.Flags().StringVar(&settingsTheme, "theme", "", "light or dark")
	settingsSetCmd.Flags().StringVar(&settingsView, "view", "", "list, kanban or calendar")
	settingsSetCmd.Flags().StringVar(&settingsNotifications, "notifications", "", "on or off")
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
