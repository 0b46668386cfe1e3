package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/todo/internal/adapters/sqlite"
	"github.com/example/todo/internal/models"
	"github.com/example/todo/internal/ports/secondary"
)

// setupTestStore opens a store over a throwaway database file so tests
// exercise the same Open + schema path production uses.
func setupTestStore(t *testing.T) *sqlite.TaskStore {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return store
}

func seedTask(t *testing.T, store *sqlite.TaskStore, id, title string) *models.Task {
	t.Helper()

	task := &models.Task{
		ID:        id,
		Title:     title,
		Status:    models.TaskStatusOpen,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddTask(context.Background(), task); err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return task
}

func TestAddAndGetTask(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	completedAt := time.Date(2026, 8, 30, 12, 30, 0, 123456789, time.UTC)
	want := &models.Task{
		ID:          "task-1",
		Title:       "Write docs",
		Description: "Draft v1",
		Status:      models.TaskStatusCompleted,
		CreatedAt:   time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		CompletedAt: &completedAt,
	}
	if err := store.AddTask(ctx, want); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	got, err := store.GetTask(ctx, "task-1")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got == nil {
		t.Fatal("task not found after add")
	}
	if got.Title != want.Title || got.Description != want.Description || got.Status != want.Status {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(completedAt) {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, completedAt)
	}
}

func TestGetTaskAbsent(t *testing.T) {
	store := setupTestStore(t)

	got, err := store.GetTask(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got != nil {
		t.Errorf("got = %+v, want nil", got)
	}
}

func TestAddTaskDuplicateID(t *testing.T) {
	store := setupTestStore(t)
	seedTask(t, store, "task-1", "first")

	err := store.AddTask(context.Background(), &models.Task{
		ID:        "task-1",
		Title:     "second",
		Status:    models.TaskStatusOpen,
		CreatedAt: time.Now().UTC(),
	})
	if !errors.Is(err, secondary.ErrDuplicateTaskID) {
		t.Errorf("err = %v, want ErrDuplicateTaskID", err)
	}
}

func TestListTasksOrderedByCreation(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		task := &models.Task{
			ID:        fmt.Sprintf("task-%d", i),
			Title:     fmt.Sprintf("title %d", i),
			Status:    models.TaskStatusOpen,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.AddTask(ctx, task); err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("len = %d, want 3", len(tasks))
	}
	for i, task := range tasks {
		if task.ID != fmt.Sprintf("task-%d", i) {
			t.Errorf("position %d holds %s, want task-%d", i, task.ID, i)
		}
	}
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	task := seedTask(t, store, "task-1", "Write docs")

	now := time.Now().UTC()
	task.Status = models.TaskStatusCompleted
	task.CompletedAt = &now
	if err := store.UpdateTask(ctx, task); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	got, err := store.GetTask(ctx, "task-1")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Status != models.TaskStatusCompleted || got.CompletedAt == nil {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	store := setupTestStore(t)

	err := store.UpdateTask(context.Background(), &models.Task{
		ID:        "no-such-id",
		Title:     "ghost",
		Status:    models.TaskStatusOpen,
		CreatedAt: time.Now().UTC(),
	})
	if !errors.Is(err, secondary.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	seedTask(t, store, "task-1", "Write docs")

	if err := store.DeleteTask(ctx, "task-1"); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	got, err := store.GetTask(ctx, "task-1")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got != nil {
		t.Errorf("got = %+v, want nil after delete", got)
	}

	err = store.DeleteTask(ctx, "task-1")
	if !errors.Is(err, secondary.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound on second delete", err)
	}
}
