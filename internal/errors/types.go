package errors

import (
	"fmt"
	"strings"
)

// ErrorType classifies a failure raised below the HTTP layer
type ErrorType int

const (
	ErrorTypeNotFound ErrorType = iota + 1
	ErrorTypeDatabase
	ErrorTypeTimeout
	ErrorTypeInternal
)

func (et ErrorType) String() string {
	switch et {
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeDatabase:
		return "database"
	case ErrorTypeTimeout:
		return "timeout"
	case ErrorTypeInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// AppError is a store or request failure. Operation names what was being
// done when it happened; TaskID is set when a specific task was involved.
type AppError struct {
	Type      ErrorType
	Operation string
	TaskID    int64
	Cause     error
}

func (e *AppError) Error() string {
	var b strings.Builder
	if e.Operation != "" {
		b.WriteString(e.Operation)
		b.WriteString(": ")
	}
	b.WriteString(e.Type.String())
	if e.TaskID != 0 {
		fmt.Fprintf(&b, " (task %d)", e.TaskID)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches a bare sentinel such as ErrTaskNotFound by type alone.
func (e *AppError) Is(target error) bool {
	appErr, ok := target.(*AppError)
	return ok && appErr.Operation == "" && appErr.TaskID == 0 && e.Type == appErr.Type
}
