package domain

import "time"

// DefaultCategory is applied when a task is created or replaced without one.
const DefaultCategory = "general"

// Task represents a to-do record in the domain model.
// This is a pure domain model without transport or storage concerns.
type Task struct {
	ID        int64
	Text      string
	Priority  Priority
	Category  string
	Completed bool
	CreatedAt time.Time
}

// TaskInput carries the client-writable fields of a task.
// Zero values mean "not supplied" and are replaced by defaults.
type TaskInput struct {
	Text     string
	Priority Priority
	Category *string
}

// WithDefaults returns a copy of the input with default priority and category applied.
func (in TaskInput) WithDefaults() TaskInput {
	if in.Priority == "" {
		in.Priority = DefaultPriority
	}
	if in.Category == nil {
		category := DefaultCategory
		in.Category = &category
	}
	return in
}

// NewTask creates a new, not yet stored, Task from the given input.
// The ID is assigned by the repository.
func NewTask(in TaskInput, createdAt time.Time) Task {
	in = in.WithDefaults()
	return Task{
		Text:      in.Text,
		Priority:  in.Priority,
		Category:  *in.Category,
		Completed: false,
		CreatedAt: createdAt,
	}
}

// Replaced builds the record that results from replacing t's writable fields with in.
// ID, CreatedAt and Completed are carried over from t.
func (t Task) Replaced(in TaskInput) Task {
	in = in.WithDefaults()
	return Task{
		ID:        t.ID,
		Text:      in.Text,
		Priority:  in.Priority,
		Category:  *in.Category,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
	}
}

// Toggled returns a copy of t with Completed flipped.
func (t Task) Toggled() Task {
	t.Completed = !t.Completed
	return t
}
