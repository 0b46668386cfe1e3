// Package task contains the pure business logic for task operations.
// Guards are pure functions that evaluate preconditions without side effects.
package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/todo/internal/models"
)

// Business-rule error kinds raised by the guards. Callers match them
// with errors.Is.
var (
	// ErrEmptyTitle rejects task creation with a missing or blank title.
	ErrEmptyTitle = errors.New("task title must not be empty")

	// ErrAlreadyCompleted rejects completing a task a second time.
	// Re-completion is an error, not an idempotent no-op.
	ErrAlreadyCompleted = errors.New("task is already completed")
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Err     error
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return r.Err
}

// CanCreateTask evaluates whether a task can be created.
// Rules:
// - Title must be non-empty after trimming whitespace
func CanCreateTask(title string) GuardResult {
	if strings.TrimSpace(title) == "" {
		return GuardResult{
			Allowed: false,
			Err:     ErrEmptyTitle,
		}
	}

	return GuardResult{Allowed: true}
}

// CanCompleteTask evaluates whether a task can be completed.
// Rules:
// - Status must be "open" (open -> completed is one-way)
func CanCompleteTask(t *models.Task) GuardResult {
	if t.Status != models.TaskStatusOpen {
		return GuardResult{
			Allowed: false,
			Err:     fmt.Errorf("cannot complete task %s: %w", t.ID, ErrAlreadyCompleted),
		}
	}

	return GuardResult{Allowed: true}
}
