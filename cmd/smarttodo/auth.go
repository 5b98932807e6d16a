package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"smarttodo/internal/model"
	"smarttodo/internal/session"
)

var registerCmd = &cobra.Command{
	Use:   "register <username> <email> <password>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		user, err := a.auth.Register(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		if err := saveSession(user); err != nil {
			return err
		}
		fmt.Printf("Welcome to SmartToDo, %s!\n", user.Username)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in with an email and password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		user, err := a.auth.Login(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if err := saveSession(user); err != nil {
			return err
		}
		fmt.Printf("Welcome back, %s!\n", user.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the active session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := sessionPath()
		if err != nil {
			return err
		}
		if err := session.Clear(path); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
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
		fmt.Printf("%s <%s>\n", user.Username, user.Email)
		return nil
	},
}

func saveSession(user *model.User) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	return session.Save(path, session.Session{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		LoginAt:  time.Now(),
	})
}
