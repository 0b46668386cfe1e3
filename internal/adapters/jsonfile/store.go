// Package jsonfile contains a JSON file implementation of the TaskStore
// interface. The full task set lives in one human-readable file; every
// operation reads and rewrites it under an exclusive file lock, so any
// number of processes on the same machine can share the file safely.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/example/todo/internal/models"
	"github.com/example/todo/internal/ports/secondary"
)

// Store implements secondary.TaskStore with a single JSON file.
type Store struct {
	path string
}

// taskRecord is the on-disk representation of a task. Timestamps are
// RFC3339Nano so they sort lexically and round-trip exactly.
type taskRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// NewStore creates a JSON file store at path. A missing file is created
// holding an empty task set; an existing but malformed file fails with
// ErrStorageCorrupt rather than being silently discarded.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	s := &Store{path: path}

	err := s.withLock(func() error {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return writeAtomic(path, []taskRecord{})
		}
		_, err := s.loadLocked()
		return err
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// AddTask persists a new task.
func (s *Store) AddTask(ctx context.Context, task *models.Task) error {
	return s.withLock(func() error {
		records, err := s.loadLocked()
		if err != nil {
			return err
		}
		for _, r := range records {
			if r.ID == task.ID {
				return fmt.Errorf("task %s: %w", task.ID, secondary.ErrDuplicateTaskID)
			}
		}
		records = append(records, toRecord(task))
		return writeAtomic(s.path, records)
	})
}

// GetTask retrieves a task by id; (nil, nil) when absent.
func (s *Store) GetTask(ctx context.Context, id string) (*models.Task, error) {
	var found *models.Task
	err := s.withLock(func() error {
		records, err := s.loadLocked()
		if err != nil {
			return err
		}
		for _, r := range records {
			if r.ID == id {
				t, err := fromRecord(r)
				if err != nil {
					return err
				}
				found = t
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ListTasks returns all tasks in insertion order.
func (s *Store) ListTasks(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := s.withLock(func() error {
		records, err := s.loadLocked()
		if err != nil {
			return err
		}
		tasks = make([]*models.Task, 0, len(records))
		for _, r := range records {
			t, err := fromRecord(r)
			if err != nil {
				return err
			}
			tasks = append(tasks, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask replaces the stored task matching task.ID.
func (s *Store) UpdateTask(ctx context.Context, task *models.Task) error {
	return s.withLock(func() error {
		records, err := s.loadLocked()
		if err != nil {
			return err
		}
		for i, r := range records {
			if r.ID == task.ID {
				records[i] = toRecord(task)
				return writeAtomic(s.path, records)
			}
		}
		return fmt.Errorf("task %s: %w", task.ID, secondary.ErrTaskNotFound)
	})
}

// DeleteTask removes a task by id.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.withLock(func() error {
		records, err := s.loadLocked()
		if err != nil {
			return err
		}
		for i, r := range records {
			if r.ID == id {
				records = append(records[:i], records[i+1:]...)
				return writeAtomic(s.path, records)
			}
		}
		return fmt.Errorf("task %s: %w", id, secondary.ErrTaskNotFound)
	})
}

// loadLocked reads and decodes the full task set. Callers must hold the
// file lock.
func (s *Store) loadLocked() ([]taskRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: task file %s: %v", secondary.ErrStorageCorrupt, s.path, err)
	}
	return records, nil
}

// writeAtomic replaces path with the encoded records. The write goes to a
// temp file in the same directory followed by a rename, so a concurrent
// reader never observes a partially-written file.
func writeAtomic(path string, records []taskRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tasks-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write task file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write task file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write task file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace task file: %w", err)
	}
	return nil
}

func toRecord(t *models.Task) taskRecord {
	r := taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
	}
	if t.CompletedAt != nil {
		r.CompletedAt = t.CompletedAt.Format(time.RFC3339Nano)
	}
	return r
}

func fromRecord(r taskRecord) (*models.Task, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: task %s has invalid created_at %q", secondary.ErrStorageCorrupt, r.ID, r.CreatedAt)
	}

	t := &models.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		CreatedAt:   createdAt,
	}
	if r.CompletedAt != "" {
		completedAt, err := time.Parse(time.RFC3339Nano, r.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: task %s has invalid completed_at %q", secondary.ErrStorageCorrupt, r.ID, r.CompletedAt)
		}
		t.CompletedAt = &completedAt
	}
	return t, nil
}
