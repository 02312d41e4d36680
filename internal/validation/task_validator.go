package validation

import (
	"strings"

	"time-travel-tasks/internal/config"
	"time-travel-tasks/internal/domain"
)

// TaskFields holds the raw, optional fields of a create or replace request.
// A nil pointer means the field was absent.
type TaskFields struct {
	Text     *string
	Priority *string
	Category *string
}

// ListParams holds the raw list query parameters.
// A nil pointer means the parameter was absent.
type ListParams struct {
	Priority  *string
	Category  *string
	Completed *string
	Search    *string
}

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator that uses configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateText validates task text for creation or replacement
func (tv *TaskValidator) ValidateText(text *string) error {
	validationError := NewValidationError()

	if text == nil {
		validationError.AddRequiredError(LocationBody, "text")
		return validationError
	}

	if *text == "" {
		validationError.AddError(LocationBody, "text", ErrorTypeInvalidLength, "text must not be empty", *text)
		return validationError
	}

	if !tv.validator.IsValidTextLength(*text) {
		validationError.AddInvalidLengthError(LocationBody, "text", *text, 0, tv.validator.TextMaxLength())
	}

	return validationError.ErrOrNil()
}

// ValidatePriority converts a raw priority into the closed domain type.
// Absent priorities yield the zero value so defaults apply later.
func (tv *TaskValidator) ValidatePriority(loc Location, raw *string) (domain.Priority, error) {
	if raw == nil {
		return "", nil
	}

	p, err := domain.ParsePriority(*raw)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidValueError(loc, "priority", *raw, enumMessage())
		return "", validationError
	}
	return p, nil
}

// ValidateTaskInput validates a create or replace payload and returns the domain input
func (tv *TaskValidator) ValidateTaskInput(fields TaskFields) (domain.TaskInput, error) {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateText(fields.Text))

	priority, err := tv.ValidatePriority(LocationBody, fields.Priority)
	validationError.Merge(err)

	if validationError.HasErrors() {
		return domain.TaskInput{}, validationError
	}

	return domain.TaskInput{
		Text:     *fields.Text,
		Priority: priority,
		Category: fields.Category,
	}, nil
}

// ValidateTaskID validates a task identifier taken from the request path
func (tv *TaskValidator) ValidateTaskID(raw string) (int64, error) {
	id, ok := tv.validator.ParseID(raw)
	if !ok {
		validationError := NewValidationError()
		validationError.AddInvalidTypeError(LocationPath, "task_id", raw, "integer")
		return 0, validationError
	}
	return id, nil
}

// ValidateListParams validates list query parameters and builds the domain filter.
// Empty priority and category values are treated as absent.
func (tv *TaskValidator) ValidateListParams(params ListParams) (domain.ListFilter, error) {
	validationError := NewValidationError()
	var filter domain.ListFilter

	if params.Priority != nil && *params.Priority != "" {
		p, err := tv.ValidatePriority(LocationQuery, params.Priority)
		if err != nil {
			validationError.Merge(err)
		} else {
			filter.Priority = &p
		}
	}

	if params.Category != nil && *params.Category != "" {
		category := *params.Category
		filter.Category = &category
	}

	if params.Completed != nil {
		completed, ok := tv.validator.ParseBool(*params.Completed)
		if !ok {
			validationError.AddInvalidTypeError(LocationQuery, "completed", *params.Completed, "boolean")
		} else {
			filter.Completed = &completed
		}
	}

	if params.Search != nil {
		if !tv.validator.IsValidSearchTerm(*params.Search) {
			validationError.AddInvalidLengthError(LocationQuery, "search", *params.Search, tv.validator.SearchMinLength(), 0)
		} else {
			search := *params.Search
			filter.Search = &search
		}
	}

	if validationError.HasErrors() {
		return domain.ListFilter{}, validationError
	}
	return filter, nil
}

func enumMessage() string {
	quoted := make([]string, 0, len(domain.Priorities()))
	for _, p := range domain.Priorities() {
		quoted = append(quoted, "'"+string(p)+"'")
	}
	return "value is not a valid enumeration member; permitted: " + strings.Join(quoted, ", ")
}
