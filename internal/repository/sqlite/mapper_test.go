package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"time-travel-tasks/internal/domain"
)

func TestToDomainTask(t *testing.T) {
	tests := []struct {
		name      string
		row       *Task
		expected  *domain.Task
		expectErr bool
	}{
		{
			name: "valid row",
			row: &Task{
				ID: 4, Text: "Draw a futuristic city", Priority: "medium", Category: "art",
				Completed: true, CreatedAt: "2025-02-03T04:05:06.7Z",
			},
			expected: &domain.Task{
				ID: 4, Text: "Draw a futuristic city", Priority: domain.PriorityMedium, Category: "art",
				Completed: true, CreatedAt: time.Date(2025, 2, 3, 4, 5, 6, 700000000, time.UTC),
			},
		},
		{
			name:     "nil row",
			row:      nil,
			expected: nil,
		},
		{
			name:      "unknown priority",
			row:       &Task{ID: 1, Text: "x", Priority: "urgent", CreatedAt: "2025-02-03T04:05:06Z"},
			expectErr: true,
		},
		{
			name:      "bad timestamp",
			row:       &Task{ID: 1, Text: "x", Priority: "low", CreatedAt: "02/03/2025"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDomainTask(tt.row)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFromDomainTask(t *testing.T) {
	task := &domain.Task{
		ID: 9, Text: "List items", Priority: domain.PriorityLow, Category: "planning",
		CreatedAt: time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC),
	}

	row := FromDomainTask(task)

	assert.Equal(t, &Task{
		ID: 9, Text: "List items", Priority: "low", Category: "planning",
		Completed: false, CreatedAt: "2025-02-03T04:05:06Z",
	}, row)
	assert.Nil(t, FromDomainTask(nil))
}

func TestToDomainTasks_StopsAtBadRow(t *testing.T) {
	rows := []*Task{
		{ID: 1, Text: "ok", Priority: "low", CreatedAt: "2025-02-03T04:05:06Z"},
		{ID: 2, Text: "bad", Priority: "none", CreatedAt: "2025-02-03T04:05:06Z"},
	}

	tasks, err := ToDomainTasks(rows)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "task 2")
	assert.Nil(t, tasks)
}
