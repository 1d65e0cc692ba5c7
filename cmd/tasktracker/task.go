package main

import (
	"fmt"

	"github.com/metalagman/tasktracker/internal/render"
	"github.com/metalagman/tasktracker/internal/task"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new task",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := a.tracker.Add(cmd.Context(), joinArgs(args))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Task added successfully (ID: %d)\n", added.ID)
			return err
		},
	}
}

func (a *app) updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <description>",
		Short: "Update a task description",
		Args:  usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			updated, err := a.tracker.Update(cmd.Context(), id, joinArgs(args[1:]))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Task updated successfully (ID: %d)\n", updated.ID)
			return err
		},
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			removed, err := a.tracker.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Task deleted successfully (ID: %d)\n", removed.ID)
			return err
		},
	}
}

func (a *app) markCmd(use string, status task.Status) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: fmt.Sprintf("Mark a task as %s", status),
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			marked, err := a.tracker.Mark(cmd.Context(), id, status)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Task marked as %s successfully (ID: %d)\n", status, marked.ID)
			return err
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var output string
	validArgs := make([]string, 0, len(task.Statuses))
	for _, st := range task.Statuses {
		validArgs = append(validArgs, st.String())
	}
	cmd := &cobra.Command{
		Use:       "list [status]",
		Short:     "List tasks, optionally filtered by status",
		Args:      usageArgs(cobra.MaximumNArgs(1)),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(output)
			if err != nil {
				return usageError{err: err}
			}
			var statusPtr *task.Status
			if len(args) == 1 {
				status, err := task.ParseStatus(args[0])
				if err != nil {
					return err
				}
				statusPtr = &status
			}
			items, err := a.tracker.List(cmd.Context(), statusPtr)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				log.Info().Msg("no tasks")
			}
			return render.Tasks(cmd.OutOrStdout(), items, format)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(render.FormatJSON), "output format (json|yaml|table)")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single task",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(output)
			if err != nil {
				return usageError{err: err}
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			item, err := a.tracker.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return render.Task(cmd.OutOrStdout(), item, format)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(render.FormatJSON), "output format (json|yaml|table)")
	return cmd
}
