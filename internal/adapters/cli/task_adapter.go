// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/todo/internal/models"
	"github.com/example/todo/internal/ports/primary"
)

// TaskAdapter is a thin adapter that translates CLI operations to
// TaskService calls. It depends only on the TaskService interface,
// enabling easy testing with mocks.
type TaskAdapter struct {
	service primary.TaskService
	out     io.Writer
}

// NewTaskAdapter creates a new TaskAdapter with the given service.
func NewTaskAdapter(service primary.TaskService, out io.Writer) *TaskAdapter {
	return &TaskAdapter{
		service: service,
		out:     out,
	}
}

// Add creates a new task.
func (a *TaskAdapter) Add(ctx context.Context, title, description string) error {
	resp, err := a.service.CreateTask(ctx, primary.CreateTaskRequest{
		Title:       title,
		Description: description,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created task %s: %s\n", resp.TaskID, resp.Task.Title)
	return nil
}

// List renders all tasks as a table.
func (a *TaskAdapter) List(ctx context.Context) error {
	tasks, err := a.service.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks found.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDESCRIPTION\tSTATUS\tCREATED\tCOMPLETED")
	for _, t := range tasks {
		desc := t.Description
		if desc == "" {
			desc = "-"
		}
		completed := t.CompletedAt
		if completed == "" {
			completed = "-"
		}
		line := fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s", t.ID, t.Title, desc, statusLabel(t.Status), t.CreatedAt, completed)
		if t.Status == models.TaskStatusCompleted {
			line = color.New(color.Faint).Sprint(line)
		}
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\n%d task(s)\n", len(tasks))

	return nil
}

// Show displays details for a single task. An absent id is reported as a
// message, not an error.
func (a *TaskAdapter) Show(ctx context.Context, taskID string) error {
	task, err := a.service.GetTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		fmt.Fprintf(a.out, "Task %s not found.\n", taskID)
		return nil
	}

	fmt.Fprintf(a.out, "\nTask:    %s\n", task.ID)
	fmt.Fprintf(a.out, "Title:   %s\n", task.Title)
	fmt.Fprintf(a.out, "Status:  %s\n", statusLabel(task.Status))
	if task.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", task.Description)
	}
	fmt.Fprintf(a.out, "Created: %s\n", task.CreatedAt)
	if task.CompletedAt != "" {
		fmt.Fprintf(a.out, "Completed: %s\n", task.CompletedAt)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Complete marks a task as completed.
func (a *TaskAdapter) Complete(ctx context.Context, taskID string) error {
	task, err := a.service.CompleteTask(ctx, taskID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Completed task %s: %s\n", task.ID, task.Title)
	return nil
}

// Delete removes a task.
func (a *TaskAdapter) Delete(ctx context.Context, taskID string) error {
	if err := a.service.DeleteTask(ctx, taskID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted task %s\n", taskID)
	return nil
}

func statusLabel(status string) string {
	switch status {
	case models.TaskStatusOpen:
		return color.New(color.FgYellow).Sprint(status)
	case models.TaskStatusCompleted:
		return color.New(color.FgGreen).Sprint(status)
	default:
		return status
	}
}
