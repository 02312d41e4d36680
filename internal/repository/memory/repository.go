// Package memory keeps tasks in an ordered in-process slice.
package memory

import (
	"context"
	"sync"

	"time-travel-tasks/internal/domain"
	"time-travel-tasks/internal/errors"
	"time-travel-tasks/internal/repository"
)

// Repository stores tasks in insertion order together with the next id.
type Repository struct {
	mu     sync.RWMutex
	nextID int64
	tasks  []domain.Task
}

var _ repository.Repository = (*Repository)(nil)

// New creates an empty repository whose first id is 1.
func New() *Repository {
	return &Repository{
		nextID: 1,
		tasks:  make([]domain.Task, 0),
	}
}

func (r *Repository) CreateTask(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = r.nextID
	r.nextID++
	r.tasks = append(r.tasks, *task)
	return nil
}

func (r *Repository) GetTask(_ context.Context, id int64) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, errors.NewTaskNotFoundError(id)
	}
	task := r.tasks[idx]
	return &task, nil
}

func (r *Repository) ListTasks(_ context.Context, filter domain.ListFilter) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if filter.Matches(t) {
			task := t
			out = append(out, &task)
		}
	}
	return out, nil
}

func (r *Repository) CountTasks(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tasks), nil
}

// UpdateTask overwrites the stored record in place, keeping its position.
func (r *Repository) UpdateTask(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(task.ID)
	if idx < 0 {
		return errors.NewTaskNotFoundError(task.ID)
	}
	r.tasks[idx] = *task
	return nil
}

func (r *Repository) DeleteTask(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return errors.NewTaskNotFoundError(id)
	}
	r.tasks = append(r.tasks[:idx], r.tasks[idx+1:]...)
	return nil
}

func (r *Repository) Close() error {
	return nil
}

// indexOf returns the slice position of id or -1. Callers hold the lock.
func (r *Repository) indexOf(id int64) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
