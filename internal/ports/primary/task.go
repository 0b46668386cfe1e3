package primary

import "context"

// TaskService defines the primary port for task operations. This is the
// interface the CLI consumes; it is the only layer allowed to assign ids
// and timestamps or enforce status transitions.
type TaskService interface {
	// CreateTask creates a new task with status open.
	CreateTask(ctx context.Context, req CreateTaskRequest) (*CreateTaskResponse, error)

	// GetTask retrieves a task by id. A nil task with a nil error means
	// no task has that id.
	GetTask(ctx context.Context, taskID string) (*Task, error)

	// ListTasks lists all tasks.
	ListTasks(ctx context.Context) ([]*Task, error)

	// CompleteTask marks an open task as completed and returns the
	// updated task.
	CompleteTask(ctx context.Context, taskID string) (*Task, error)

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, taskID string) error
}

// CreateTaskRequest contains parameters for creating a task.
type CreateTaskRequest struct {
	Title       string
	Description string // Optional
}

// CreateTaskResponse contains the result of creating a task.
type CreateTaskResponse struct {
	TaskID string
	Task   *Task
}

// Task represents a task entity at the port boundary. Timestamps are
// RFC3339 strings; CompletedAt is empty while the task is open.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      string
	CreatedAt   string
	CompletedAt string
}
