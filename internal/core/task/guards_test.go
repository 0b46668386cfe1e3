package task

import (
	"errors"
	"testing"
	"time"

	"github.com/example/todo/internal/models"
)

func TestCanCreateTask(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		wantAllowed bool
		wantErr     error
	}{
		{
			name:        "can create task with title",
			title:       "Write docs",
			wantAllowed: true,
		},
		{
			name:        "cannot create task with empty title",
			title:       "",
			wantAllowed: false,
			wantErr:     ErrEmptyTitle,
		},
		{
			name:        "cannot create task with whitespace title",
			title:       "   \t",
			wantAllowed: false,
			wantErr:     ErrEmptyTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCreateTask(tt.title)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if tt.wantErr != nil && !errors.Is(result.Error(), tt.wantErr) {
				t.Errorf("Error() = %v, want %v", result.Error(), tt.wantErr)
			}
			if tt.wantAllowed && result.Error() != nil {
				t.Errorf("Error() = %v, want nil", result.Error())
			}
		})
	}
}

func TestCanCompleteTask(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		task        *models.Task
		wantAllowed bool
		wantErr     error
	}{
		{
			name: "can complete open task",
			task: &models.Task{
				ID:     "task-1",
				Status: models.TaskStatusOpen,
			},
			wantAllowed: true,
		},
		{
			name: "cannot complete completed task",
			task: &models.Task{
				ID:          "task-2",
				Status:      models.TaskStatusCompleted,
				CompletedAt: &now,
			},
			wantAllowed: false,
			wantErr:     ErrAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCompleteTask(tt.task)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if tt.wantErr != nil && !errors.Is(result.Error(), tt.wantErr) {
				t.Errorf("Error() = %v, want %v", result.Error(), tt.wantErr)
			}
		})
	}
}
