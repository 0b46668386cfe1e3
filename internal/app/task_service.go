// Package app implements the primary ports on top of the secondary ports.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/todo/internal/core/task"
	"github.com/example/todo/internal/models"
	"github.com/example/todo/internal/ports/primary"
	"github.com/example/todo/internal/ports/secondary"
)

// TaskServiceImpl implements the TaskService interface. It depends only on
// the TaskStore port, never a concrete backend, and holds no task state
// across calls: every operation round-trips through storage.
type TaskServiceImpl struct {
	store secondary.TaskStore
}

// NewTaskService creates a new TaskService with the injected store.
func NewTaskService(store secondary.TaskStore) *TaskServiceImpl {
	return &TaskServiceImpl{store: store}
}

// CreateTask creates a new task. The service assigns the id and creation
// timestamp here; backends never do.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, req primary.CreateTaskRequest) (*primary.CreateTaskResponse, error) {
	if err := task.CanCreateTask(req.Title).Error(); err != nil {
		return nil, err
	}

	// Random ids cannot collide across concurrent CLI processes the way a
	// max+1 counter read under a separate lock acquisition can, and they
	// are never reused after deletion. The store's duplicate check stays
	// as a tamper guard.
	t := &models.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatusOpen,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.AddTask(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &primary.CreateTaskResponse{
		TaskID: t.ID,
		Task:   taskToView(t),
	}, nil
}

// GetTask retrieves a task by id. Absence is (nil, nil), not an error.
func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID string) (*primary.Task, error) {
	t, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if t == nil {
		return nil, nil
	}
	return taskToView(t), nil
}

// ListTasks lists all tasks.
func (s *TaskServiceImpl) ListTasks(ctx context.Context) ([]*primary.Task, error) {
	records, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*primary.Task, len(records))
	for i, t := range records {
		tasks[i] = taskToView(t)
	}
	return tasks, nil
}

// CompleteTask marks an open task as completed. Completing an absent task
// fails with ErrTaskNotFound; completing a completed task fails with
// ErrAlreadyCompleted.
func (s *TaskServiceImpl) CompleteTask(ctx context.Context, taskID string) (*primary.Task, error) {
	t, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("task %s: %w", taskID, secondary.ErrTaskNotFound)
	}

	if err := task.CanCompleteTask(t).Error(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t.Status = models.TaskStatusCompleted
	t.CompletedAt = &now

	if err := s.store.UpdateTask(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	return taskToView(t), nil
}

// DeleteTask deletes a task. The store reports ErrTaskNotFound for an
// absent id.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.store.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// taskToView converts a domain task to its port boundary representation.
func taskToView(t *models.Task) *primary.Task {
	view := &primary.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.CompletedAt != nil {
		view.CompletedAt = t.CompletedAt.Format(time.RFC3339)
	}
	return view
}
