package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"time-travel-tasks/internal/domain"
	"time-travel-tasks/internal/repository"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	mu     sync.Mutex
	repo   repository.Repository
	logger *slog.Logger
	now    func() time.Time
}

// Option customises a TaskService at construction.
type Option func(*taskServiceImpl)

// WithClock replaces time.Now as the source of created_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *taskServiceImpl) {
		t.now = now
	}
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo repository.Repository, logger *slog.Logger, opts ...Option) TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	svc := &taskServiceImpl{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Create stores a new task built from in with a fresh id
func (t *taskServiceImpl) Create(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.create(ctx, in)
}

func (t *taskServiceImpl) create(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	task := domain.NewTask(in, t.now())
	if err := t.repo.CreateTask(ctx, &task); err != nil {
		return nil, err
	}

	t.logger.Debug("task created", slog.Int64("id", task.ID), slog.String("priority", task.Priority.String()))
	return &task, nil
}

// List returns the tasks matching every criterion of filter, in insertion order
func (t *taskServiceImpl) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.repo.ListTasks(ctx, filter)
}

// GetByID retrieves a task by its ID
func (t *taskServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.repo.GetTask(ctx, id)
}

// Replace overwrites text, priority and category of an existing task.
// The id, creation time and completion flag are kept.
func (t *taskServiceImpl) Replace(ctx context.Context, id int64, in domain.TaskInput) (*domain.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	replaced := existing.Replaced(in)
	if err := t.repo.UpdateTask(ctx, &replaced); err != nil {
		return nil, err
	}
	return &replaced, nil
}

// Delete removes a task and returns the confirmation message
func (t *taskServiceImpl) Delete(ctx context.Context, id int64) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.repo.DeleteTask(ctx, id); err != nil {
		return "", err
	}

	t.logger.Debug("task deleted", slog.Int64("id", id))
	return DeleteConfirmation, nil
}

// ToggleCompleted flips the completion flag and returns the updated task
func (t *taskServiceImpl) ToggleCompleted(ctx context.Context, id int64) (*domain.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	toggled := existing.Toggled()
	if err := t.repo.UpdateTask(ctx, &toggled); err != nil {
		return nil, err
	}
	return &toggled, nil
}

// Count returns the number of stored tasks
func (t *taskServiceImpl) Count(ctx context.Context) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.repo.CountTasks(ctx)
}

// SeedSamples inserts the sample tasks when the store is empty and reports
// how many were added.
func (t *taskServiceImpl) SeedSamples(ctx context.Context) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	count, err := t.repo.CountTasks(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		t.logger.Debug("store not empty, skipping sample tasks", slog.Int("count", count))
		return 0, nil
	}

	samples := domain.SampleTasks()
	for _, in := range samples {
		if _, err := t.create(ctx, in); err != nil {
			return 0, err
		}
	}

	t.logger.Info("sample tasks loaded", slog.Int("count", len(samples)))
	return len(samples), nil
}
