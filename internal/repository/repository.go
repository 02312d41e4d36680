// Package repository defines the storage port for tasks. Implementations
// live in the memory and sqlite subpackages.
package repository

import (
	"context"

	"time-travel-tasks/internal/domain"
)

// Repository defines the interface for task storage operations.
//
// Implementations assign identifiers on CreateTask, starting at 1 and never
// reusing one, and return tasks in insertion order. Missing tasks are
// reported with errors.NewTaskNotFoundError.
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *domain.Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context, filter domain.ListFilter) ([]*domain.Task, error)
	CountTasks(ctx context.Context) (int, error)

	// Update operations
	UpdateTask(ctx context.Context, task *domain.Task) error

	// Delete operations
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	Close() error
}
