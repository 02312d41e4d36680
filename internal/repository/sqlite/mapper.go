package sqlite

import (
	"fmt"

	"time-travel-tasks/internal/domain"
)

// ToDomainTask converts a tasks row to a domain task
func ToDomainTask(row *Task) (*domain.Task, error) {
	if row == nil {
		return nil, nil
	}

	priority, err := domain.ParsePriority(row.Priority)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", row.ID, err)
	}

	createdAt, err := ParseTimeFromDB(row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("task %d: parse created_at: %w", row.ID, err)
	}

	return &domain.Task{
		ID:        row.ID,
		Text:      row.Text,
		Priority:  priority,
		Category:  row.Category,
		Completed: row.Completed,
		CreatedAt: createdAt,
	}, nil
}

// FromDomainTask converts a domain task to a tasks row
func FromDomainTask(task *domain.Task) *Task {
	if task == nil {
		return nil
	}
	return &Task{
		ID:        task.ID,
		Text:      task.Text,
		Priority:  task.Priority.String(),
		Category:  task.Category,
		Completed: task.Completed,
		CreatedAt: FormatTimeForDB(task.CreatedAt),
	}
}

// ToDomainTasks converts a slice of rows, stopping at the first bad row
func ToDomainTasks(rows []*Task) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := ToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
