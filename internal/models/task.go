// Package models contains domain types for todo entities.
// Persistence lives behind the store interfaces in ports/secondary.
package models

import (
	"time"
)

// Task represents a single todo item, the system's sole persisted entity.
// This is the domain type used within the models package.
// For persistence, use the TaskStore interface in ports/secondary.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Task status constants
const (
	TaskStatusOpen      = "open"
	TaskStatusCompleted = "completed"
)
