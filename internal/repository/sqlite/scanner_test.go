package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *bool:
			*v = ts.data[i].(bool)
		case *string:
			*v = ts.data[i].(string)
		}
	}

	return nil
}

// TestRows implements the Rows interface over a fixed set of scanners
type TestRows struct {
	rows []*TestScanner
	pos  int
	err  error
}

func (tr *TestRows) Next() bool {
	if tr.pos >= len(tr.rows) {
		return false
	}
	tr.pos++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	return tr.rows[tr.pos-1].Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func taskRow(id int64, text string) *TestScanner {
	return &TestScanner{
		data: []interface{}{id, text, "high", "crafts", true, "2025-03-04T05:06:07.000000008Z"},
	}
}

func TestScanTask(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Task
		expectError bool
	}{
		{
			name:    "valid task",
			scanner: taskRow(2, "Create a time machine from a cardboard box"),
			expected: &Task{
				ID:        2,
				Text:      "Create a time machine from a cardboard box",
				Priority:  "high",
				Category:  "crafts",
				Completed: true,
				CreatedAt: "2025-03-04T05:06:07.000000008Z",
			},
		},
		{
			name:        "scan error",
			scanner:     &TestScanner{err: errors.New("scan failed")},
			expectError: true,
		},
		{
			name:        "column mismatch",
			scanner:     &TestScanner{data: []interface{}{int64(1), "short"}},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanTask(tt.scanner)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestScanTasks(t *testing.T) {
	t.Run("multiple rows", func(t *testing.T) {
		rows := &TestRows{rows: []*TestScanner{taskRow(1, "one"), taskRow(3, "three")}}

		tasks, err := ScanTasks(rows)
		assert.NoError(t, err)
		assert.Len(t, tasks, 2)
		assert.Equal(t, int64(1), tasks[0].ID)
		assert.Equal(t, "three", tasks[1].Text)
	})

	t.Run("no rows gives empty slice", func(t *testing.T) {
		tasks, err := ScanTasks(&TestRows{})
		assert.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("row scan error", func(t *testing.T) {
		rows := &TestRows{rows: []*TestScanner{taskRow(1, "one"), {err: errors.New("bad row")}}}

		tasks, err := ScanTasks(rows)
		assert.Error(t, err)
		assert.Nil(t, tasks)
	})

	t.Run("iteration error", func(t *testing.T) {
		rows := &TestRows{rows: []*TestScanner{taskRow(1, "one")}, err: errors.New("connection lost")}

		tasks, err := ScanTasks(rows)
		assert.EqualError(t, err, "connection lost")
		assert.Nil(t, tasks)
	})
}
