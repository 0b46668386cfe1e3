// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import (
	"context"
	"errors"

	"github.com/example/todo/internal/models"
)

// Storage error kinds. Backends wrap these with operation detail; callers
// match them with errors.Is.
var (
	// ErrTaskNotFound indicates an update or delete targeted a nonexistent id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateTaskID indicates an add collided with an existing id.
	// A correct id-generation strategy should never trigger this; it guards
	// against generation bugs and external tampering with stored ids.
	ErrDuplicateTaskID = errors.New("duplicate task id")

	// ErrStorageCorrupt indicates the backing data is unreadable or malformed.
	ErrStorageCorrupt = errors.New("storage corrupt")
)

// TaskStore defines the secondary port for task persistence. Any backend
// implementing it is substitutable without service changes; the only
// backend-specific input is its construction-time parameter map.
type TaskStore interface {
	// AddTask persists a new task. Fails with ErrDuplicateTaskID if the
	// task's id already exists.
	AddTask(ctx context.Context, task *models.Task) error

	// GetTask retrieves a task by id. Absence is a normal result, not an
	// error: a nil task with a nil error means no task has that id.
	GetTask(ctx context.Context, id string) (*models.Task, error)

	// ListTasks returns all tasks. Order is backend-defined unless a
	// backend documents otherwise.
	ListTasks(ctx context.Context) ([]*models.Task, error)

	// UpdateTask replaces the stored task matching task.ID. Fails with
	// ErrTaskNotFound if no such id exists.
	UpdateTask(ctx context.Context, task *models.Task) error

	// DeleteTask removes a task by id. Fails with ErrTaskNotFound if absent.
	DeleteTask(ctx context.Context, id string) error
}
