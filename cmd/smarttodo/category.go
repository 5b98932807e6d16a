package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage your category labels",
}

var categoryAddColor string

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
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
		category, err := a.categories.Create(cmd.Context(), user.ID, args[0], categoryAddColor)
		if err != nil {
			return err
		}
		fmt.Printf("Category %q (%s)\n", category.Name, category.Color)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your categories",
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
		categories, err := a.categories.List(cmd.Context(), user.ID)
		if err != nil {
			return err
		}
		if len(categories) == 0 {
			fmt.Println("No categories.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCOLOR")
		for _, c := range categories {
			fmt.Fprintf(w, "%s\t%s\t%s\n", shortID(c.ID), c.Name, c.Color)
		}
		return w.Flush()
	},
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a category (tasks keep their label)",
	Args:  cobra.ExactArgs(1),
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
		id, err := a.resolveCategoryID(cmd.Context(), user.ID, args[0])
		if err != nil {
			return err
		}
		if err := a.categories.Delete(cmd.Context(), user.ID, id); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

// resolveCategoryID accepts a category ID, an ID prefix, or the exact
// category name.
func (a *app) resolveCategoryID(ctx context.Context, userID, arg string) (string, error) {
	categories, err := a.categories.List(ctx, userID)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, c := range categories {
		if c.ID == arg || c.Name == arg {
			return c.ID, nil
		}
		if strings.HasPrefix(c.ID, arg) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no category matching %q", arg)
	default:
		return "", fmt.Errorf("ambiguous category id %q (%d matches)", arg, len(matches))
	}
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryAddColor, "color", "", "display color, e.g. #6366f1")
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryRmCmd)
}
