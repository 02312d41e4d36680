package services

import (
	"context"

	"time-travel-tasks/internal/domain"
)

// DeleteConfirmation is the message returned by a successful Delete.
const DeleteConfirmation = "Task deleted successfully"

// TaskService handles the task store operations. Each call runs under a
// single lock, so read-modify-write operations such as Replace and
// ToggleCompleted are atomic with respect to each other.
type TaskService interface {
	// Task CRUD operations
	Create(ctx context.Context, in domain.TaskInput) (*domain.Task, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Replace(ctx context.Context, id int64, in domain.TaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id int64) (string, error)

	// Task workflow operations
	ToggleCompleted(ctx context.Context, id int64) (*domain.Task, error)

	// Store maintenance
	Count(ctx context.Context) (int, error)
	SeedSamples(ctx context.Context) (int, error)
}
