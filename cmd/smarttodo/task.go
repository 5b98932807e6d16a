package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"smarttodo/internal/model"
	"smarttodo/internal/service"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage your tasks",
}

var (
	taskAddDescription string
	taskAddPriority    string
	taskAddCategory    string
	taskAddTags        []string
	taskAddDue         string
	taskAddDueTime     string
	taskAddEffort      float64
	taskAddRecur       string
	taskAddRecurEvery  int
)

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskAdd,
}

var taskListQuery string

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your tasks",
	Args:  cobra.NoArgs,
	RunE:  runTaskList,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task between pending and completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskRm,
}

var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one task in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskShow,
}

func init() {
	taskAddCmd.Flags().StringVarP(&taskAddDescription, "description", "d", "", "task description")
	taskAddCmd.Flags().StringVarP(&taskAddPriority, "priority", "p", "", "priority: critical, high, medium, low")
	taskAddCmd.Flags().StringVarP(&taskAddCategory, "category", "c", "", "category label")
	taskAddCmd.Flags().StringSliceVarP(&taskAddTags, "tag", "t", nil, "tag (repeatable)")
	taskAddCmd.Flags().StringVar(&taskAddDue, "due", "", "due date (YYYY-MM-DD)")
	taskAddCmd.Flags().StringVar(&taskAddDueTime, "due-time", "", "due time (HH:MM)")
	taskAddCmd.Flags().Float64Var(&taskAddEffort, "effort", 0, "estimated effort in hours")
	taskAddCmd.Flags().StringVar(&taskAddRecur, "recur", "", "recurrence: daily, weekly, monthly, custom")
	taskAddCmd.Flags().IntVar(&taskAddRecurEvery, "recur-every", 1, "recurrence interval")

	taskListCmd.Flags().StringVarP(&taskListQuery, "search", "s", "", "free-text filter over title, description and tags")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskRmCmd)
	taskCmd.AddCommand(taskShowCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.currentUser(cmd.Context())
	if err != nil {
		return err
	}

	input := service.TaskInput{
		Title:       strings.Join(args, " "),
		Description: taskAddDescription,
		Priority:    model.Priority(taskAddPriority),
		Category:    taskAddCategory,
		Tags:        taskAddTags,
		DueTime:     taskAddDueTime,
	}
	if taskAddDue != "" {
		due, err := time.ParseInLocation("2006-01-02", taskAddDue, time.Local)
		if err != nil {
			return fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", taskAddDue)
		}
		input.DueDate = &due
	}
	if taskAddEffort > 0 {
		input.EstimatedEffort = &taskAddEffort
	}
	if taskAddRecur != "" {
		input.Recurring = &model.Recurrence{
			Type:     model.RecurrenceType(taskAddRecur),
			Interval: taskAddRecurEvery,
		}
	}

	task, err := a.tasks.CreateTask(cmd.Context(), user.ID, input)
	if err != nil {
		return err
	}
	fmt.Printf("Created task %s\n", task.ID)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.currentUser(cmd.Context())
	if err != nil {
		return err
	}

	tasks, err := a.tasks.GetUserTasks(cmd.Context(), user.ID)
	if err != nil {
		return err
	}
	tasks = service.FilterByText(tasks, taskListQuery)
	service.SortByDueDate(tasks)

	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRIORITY\tDUE\tCATEGORY\tTITLE")
	for _, task := range tasks {
		due := "-"
		if task.DueDate != nil {
			due = task.DueDate.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(task.ID), task.Status, task.Priority, due, task.Category, task.Title)
	}
	return w.Flush()
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.currentUser(cmd.Context())
	if err != nil {
		return err
	}

	id, err := a.resolveTaskID(cmd.Context(), user.ID, args[0])
	if err != nil {
		return err
	}

	task, err := a.tasks.ToggleComplete(cmd.Context(), id)
	if err != nil {
		return err
	}
	if task.Status == model.StatusCompleted {
		fmt.Printf("Completed %q\n", task.Title)
	} else {
		fmt.Printf("Reopened %q\n", task.Title)
	}
	return nil
}

func runTaskRm(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.currentUser(cmd.Context())
	if err != nil {
		return err
	}

	id, err := a.resolveTaskID(cmd.Context(), user.ID, args[0])
	if err != nil {
		return err
	}

	if err := a.tasks.DeleteTask(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.currentUser(cmd.Context())
	if err != nil {
		return err
	}

	id, err := a.resolveTaskID(cmd.Context(), user.ID, args[0])
	if err != nil {
		return err
	}
	task, err := a.tasks.GetTask(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", task.Title)
	fmt.Printf("  id:        %s\n", task.ID)
	fmt.Printf("  status:    %s\n", task.Status)
	fmt.Printf("  priority:  %s\n", task.Priority)
	if task.Description != "" {
		fmt.Printf("  about:     %s\n", task.Description)
	}
	if task.Category != "" {
		fmt.Printf("  category:  %s\n", task.Category)
	}
	if len(task.Tags) > 0 {
		fmt.Printf("  tags:      %s\n", strings.Join(task.Tags, ", "))
	}
	if task.DueDate != nil {
		due := task.DueDate.Format("2006-01-02")
		if task.DueTime != "" {
			due += " " + task.DueTime
		}
		fmt.Printf("  due:       %s\n", due)
	}
	if task.Recurring != nil {
		fmt.Printf("  recurring: %s, every %d\n", task.Recurring.Type, task.Recurring.Interval)
	}
	for _, st := range task.Subtasks {
		mark := " "
		if st.Done {
			mark = "x"
		}
		fmt.Printf("  [%s] %s\n", mark, st.Title)
	}
	fmt.Printf("  created:   %s\n", task.CreatedAt.Format(time.RFC3339))
	fmt.Printf("  updated:   %s\n", task.UpdatedAt.Format(time.RFC3339))
	return nil
}

// resolveTaskID accepts a full task ID or an unambiguous prefix of one,
// scoped to the user's own tasks.
func (a *app) resolveTaskID(ctx context.Context, userID, arg string) (string, error) {
	tasks, err := a.tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, task := range tasks {
		if task.ID == arg {
			return task.ID, nil
		}
		if strings.HasPrefix(task.ID, arg) {
			matches = append(matches, task.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no task matching %q", arg)
	default:
		return "", fmt.Errorf("ambiguous task id %q (%d matches)", arg, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
