package errors

import (
	"context"
	"errors"
)

// ErrTaskNotFound matches every not found error under errors.Is.
var ErrTaskNotFound = &AppError{Type: ErrorTypeNotFound}

// NewTaskNotFoundError reports that no task has the given id.
func NewTaskNotFoundError(id int64) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Operation: "find task", TaskID: id}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{Type: ErrorTypeDatabase, Operation: operation, Cause: cause}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(operation string, cause error) *AppError {
	return &AppError{Type: ErrorTypeTimeout, Operation: operation, Cause: cause}
}

// NewInternalError wraps a failure that has no structured type.
func NewInternalError(operation string, cause error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Operation: operation, Cause: cause}
}

// FromContext converts a context cancellation into a timeout error.
// It returns nil when err is not caused by the context.
func FromContext(operation string, err error) *AppError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewTimeoutError(operation, err)
	}
	return nil
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Type == errorType
}

// IsNotFound reports whether err is a missing task.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound)
}

// GetUserMessage returns a message that is safe to show to API clients
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return "Internal Server Error"
	}
	switch appErr.Type {
	case ErrorTypeNotFound:
		return "Task not found"
	case ErrorTypeTimeout:
		return "The operation timed out. Please try again."
	default:
		return "Internal Server Error"
	}
}

// ShouldLogError reports whether err points at a server side fault.
// A missing task is the client's problem and is not logged.
func ShouldLogError(err error) bool {
	return !IsNotFound(err)
}
