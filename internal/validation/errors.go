package validation

import (
	"fmt"
	"strings"
)

// ValidationErrorType represents the type of validation error
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidType   ValidationErrorType = "invalid_type"
	ErrorTypeInvalidFormat ValidationErrorType = "invalid_format"
	ErrorTypeInvalidLength ValidationErrorType = "invalid_length"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
)

// Location names the part of the request a field came from.
type Location string

const (
	LocationBody  Location = "body"
	LocationQuery Location = "query"
	LocationPath  Location = "path"
)

// FieldError represents a validation error for a specific field
type FieldError struct {
	Location Location
	Field    string
	Type     ValidationErrorType
	Message  string
	Value    interface{}
}

// Error implements the error interface for FieldError
func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// Loc returns the location path of the field, e.g. ["body", "text"].
// Errors about the request as a whole have no field and a one-element path.
func (fe FieldError) Loc() []string {
	if fe.Field == "" {
		return []string{string(fe.Location)}
	}
	return []string{string(fe.Location), fe.Field}
}

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []FieldError
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation error"
	}

	if len(ve.Errors) == 1 {
		return ve.Errors[0].Error()
	}

	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if the ValidationError has any errors
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// Merge appends the field errors of other, if it is a ValidationError.
func (ve *ValidationError) Merge(other error) {
	if o, ok := other.(*ValidationError); ok {
		ve.Errors = append(ve.Errors, o.Errors...)
	}
}

// ErrOrNil returns ve when it holds errors and nil otherwise.
func (ve *ValidationError) ErrOrNil() error {
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// AddError adds a new field error to the validation error
func (ve *ValidationError) AddError(loc Location, field string, errorType ValidationErrorType, message string, value interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Location: loc,
		Field:    field,
		Type:     errorType,
		Message:  message,
		Value:    value,
	})
}

// AddRequiredError adds a required field error
func (ve *ValidationError) AddRequiredError(loc Location, field string) {
	ve.AddError(loc, field, ErrorTypeRequired, "field required", nil)
}

// AddInvalidTypeError adds an error for a value of the wrong JSON or query type
func (ve *ValidationError) AddInvalidTypeError(loc Location, field string, value interface{}, expected string) {
	ve.AddError(loc, field, ErrorTypeInvalidType, fmt.Sprintf("value is not a valid %s", expected), value)
}

// AddInvalidFormatError adds an invalid format error
func (ve *ValidationError) AddInvalidFormatError(loc Location, field string, value interface{}, expectedFormat string) {
	message := fmt.Sprintf("invalid format, expected: %s", expectedFormat)
	ve.AddError(loc, field, ErrorTypeInvalidFormat, message, value)
}

// AddInvalidLengthError adds an invalid length error
func (ve *ValidationError) AddInvalidLengthError(loc Location, field string, value interface{}, min, max int) {
	var message string
	if min > 0 && max > 0 {
		message = fmt.Sprintf("ensure this value has between %d and %d characters", min, max)
	} else if min > 0 {
		message = fmt.Sprintf("ensure this value has at least %d characters", min)
	} else if max > 0 {
		message = fmt.Sprintf("ensure this value has at most %d characters", max)
	} else {
		message = "invalid length"
	}
	ve.AddError(loc, field, ErrorTypeInvalidLength, message, value)
}

// AddInvalidValueError adds an invalid value error
func (ve *ValidationError) AddInvalidValueError(loc Location, field string, value interface{}, reason string) {
	ve.AddError(loc, field, ErrorTypeInvalidValue, reason, value)
}

// NewValidationError creates a new ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{
		Errors: make([]FieldError, 0),
	}
}
