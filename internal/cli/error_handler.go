package cli

import (
	"fmt"

	"time-travel-tasks/internal/errors"
)

// ErrorHandler turns startup errors into messages for the terminal
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle prefixes err with the failed operation, using the user facing
// message for structured errors.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}

	if appErr, ok := errors.AsAppError(err); ok {
		// Startup failures go to an operator, so keep the cause visible.
		if appErr.Cause != nil && errors.ShouldLogError(err) {
			return fmt.Errorf("failed to %s: %s: %w", operation, errors.GetUserMessage(err), appErr.Cause)
		}
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}
