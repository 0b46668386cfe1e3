// Package sqlite contains a SQLite implementation of the TaskStore
// interface. SQLite serializes concurrent writers itself, so unlike the
// JSON file backend no explicit file lock is needed.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/example/todo/internal/models"
	"github.com/example/todo/internal/ports/secondary"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS tasks (
    id           TEXT PRIMARY KEY,
    title        TEXT NOT NULL,
    description  TEXT,
    status       TEXT NOT NULL,
    created_at   TEXT NOT NULL,
    completed_at TEXT
);
`

const taskSelectCols = "id, title, description, status, created_at, completed_at"

// TaskStore implements secondary.TaskStore with SQLite.
type TaskStore struct {
	db *sql.DB
}

// NewTaskStore creates a SQLite task store over an open connection.
func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{db: db}
}

// Open opens (creating if needed) the task database at path and ensures
// the schema exists.
func Open(path string) (*TaskStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", secondary.ErrStorageCorrupt, err)
	}

	return NewTaskStore(db), nil
}

// AddTask persists a new task.
func (s *TaskStore) AddTask(ctx context.Context, task *models.Task) error {
	var desc, completedAt sql.NullString
	if task.Description != "" {
		desc = sql.NullString{String: task.Description, Valid: true}
	}
	if task.CompletedAt != nil {
		completedAt = sql.NullString{String: task.CompletedAt.Format(time.RFC3339Nano), Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (id, title, description, status, created_at, completed_at) VALUES (?, ?, ?, ?, ?, ?)",
		task.ID, task.Title, desc, task.Status, task.CreatedAt.Format(time.RFC3339Nano), completedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return fmt.Errorf("task %s: %w", task.ID, secondary.ErrDuplicateTaskID)
		}
		return fmt.Errorf("failed to add task: %w", err)
	}

	return nil
}

// GetTask retrieves a task by id; (nil, nil) when absent.
func (s *TaskStore) GetTask(ctx context.Context, id string) (*models.Task, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+taskSelectCols+" FROM tasks WHERE id = ?",
		id,
	)

	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// ListTasks returns all tasks ordered by creation time.
func (s *TaskStore) ListTasks(ctx context.Context) ([]*models.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+taskSelectCols+" FROM tasks ORDER BY created_at ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask replaces the stored task matching task.ID.
func (s *TaskStore) UpdateTask(ctx context.Context, task *models.Task) error {
	var desc, completedAt sql.NullString
	if task.Description != "" {
		desc = sql.NullString{String: task.Description, Valid: true}
	}
	if task.CompletedAt != nil {
		completedAt = sql.NullString{String: task.CompletedAt.Format(time.RFC3339Nano), Valid: true}
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET title = ?, description = ?, status = ?, created_at = ?, completed_at = ? WHERE id = ?",
		task.Title, desc, task.Status, task.CreatedAt.Format(time.RFC3339Nano), completedAt, task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("task %s: %w", task.ID, secondary.ErrTaskNotFound)
	}

	return nil
}

// DeleteTask removes a task by id.
func (s *TaskStore) DeleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("task %s: %w", id, secondary.ErrTaskNotFound)
	}

	return nil
}

// scanTask scans a task row into a domain task.
func scanTask(scanner interface {
	Scan(dest ...any) error
}) (*models.Task, error) {
	var (
		desc        sql.NullString
		createdAt   string
		completedAt sql.NullString
	)

	task := &models.Task{}
	err := scanner.Scan(&task.ID, &task.Title, &desc, &task.Status, &createdAt, &completedAt)
	if err != nil {
		return nil, err
	}

	task.Description = desc.String

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: task %s has invalid created_at %q", secondary.ErrStorageCorrupt, task.ID, createdAt)
	}
	task.CreatedAt = created

	if completedAt.Valid {
		completed, err := time.Parse(time.RFC3339Nano, completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("%w: task %s has invalid completed_at %q", secondary.ErrStorageCorrupt, task.ID, completedAt.String)
		}
		task.CompletedAt = &completed
	}

	return task, nil
}
