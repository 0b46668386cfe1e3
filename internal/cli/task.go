// Package cli defines the cobra commands for the todo tool.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/todo/internal/wire"
)

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a new task with the given title and optional description.

Examples:
  todo add "Write docs"
  todo add "Write docs" -d "Draft v1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")

			adapter, err := wire.TaskAdapter()
			if err != nil {
				return err
			}
			return adapter.Add(context.Background(), args[0], description)
		},
	}

	cmd.Flags().StringP("description", "d", "", "Optional task description")

	return cmd
}

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.TaskAdapter()
			if err != nil {
				return err
			}
			return adapter.List(context.Background())
		},
	}
}

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [task-id]",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.TaskAdapter()
			if err != nil {
				return err
			}
			return adapter.Show(context.Background(), args[0])
		},
	}
}

// CompleteCmd returns the complete command
func CompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [task-id]",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.TaskAdapter()
			if err != nil {
				return err
			}
			return adapter.Complete(context.Background(), args[0])
		},
	}
}

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.TaskAdapter()
			if err != nil {
				return err
			}
			return adapter.Delete(context.Background(), args[0])
		},
	}
}
