package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNewTaskNotFoundError(t *testing.T) {
	err := NewTaskNotFoundError(42)

	if err.Type != ErrorTypeNotFound {
		t.Errorf("type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.TaskID != 42 {
		t.Errorf("task id = %d, want 42", err.TaskID)
	}
	if !IsNotFound(fmt.Errorf("delete task: %w", err)) {
		t.Errorf("IsNotFound should see through wrapping")
	}
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantTimeout bool
	}{
		{"deadline", context.DeadlineExceeded, true},
		{"canceled", context.Canceled, true},
		{"wrapped deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), true},
		{"driver error", errors.New("no such table: tasks"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromContext("list tasks", tt.err)
			if !tt.wantTimeout {
				if got != nil {
					t.Errorf("FromContext() = %v, want nil", got)
				}
				return
			}
			if got == nil || got.Type != ErrorTypeTimeout || got.Operation != "list tasks" {
				t.Errorf("FromContext() = %v, want timeout for list tasks", got)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("timeout should keep the context error as cause")
			}
		})
	}
}

func TestIsErrorType(t *testing.T) {
	dbErr := fmt.Errorf("create task: %w", NewDatabaseError("insert task", nil))

	if !IsErrorType(dbErr, ErrorTypeDatabase) {
		t.Errorf("wrapped database error should have database type")
	}
	if IsErrorType(dbErr, ErrorTypeTimeout) {
		t.Errorf("database error should not have timeout type")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeInternal) {
		t.Errorf("plain error has no type")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"not found", NewTaskNotFoundError(3), "Task not found"},
		{"timeout", NewTimeoutError("get task", context.DeadlineExceeded), "The operation timed out. Please try again."},
		{"database hides driver detail", NewDatabaseError("get task", errors.New("SQLITE_CORRUPT")), "Internal Server Error"},
		{"internal", NewInternalError("GET /", nil), "Internal Server Error"},
		{"plain error", errors.New("boom"), "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"not found is a client error", NewTaskNotFoundError(1), false},
		{"database", NewDatabaseError("count tasks", nil), true},
		{"timeout", NewTimeoutError("count tasks", nil), true},
		{"plain error", errors.New("boom"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLogError(tt.err); got != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", got, tt.expected)
			}
		})
	}
}
