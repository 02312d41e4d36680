package validation

import (
	"strings"
	"testing"

	"time-travel-tasks/internal/config"
	"time-travel-tasks/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTaskValidator_ValidateText(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       *string
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid text", strPtr("Task 1"), false, ""},
		{"Missing text", nil, true, ErrorTypeRequired},
		{"Empty text", strPtr(""), true, ErrorTypeInvalidLength},
		{"Whitespace only", strPtr("   "), false, ""},
		{"Long text", strPtr(strings.Repeat("a", 5000)), false, ""},
		{"Any characters", strPtr("Task@#$% 🚀"), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateText(tt.input)

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.errorType, validationErr.Errors[0].Type)
			assert.Equal(t, []string{"body", "text"}, validationErr.Errors[0].Loc())
		})
	}
}

func TestTaskValidator_ValidateTaskInput(t *testing.T) {
	validator := NewTaskValidator()

	t.Run("full payload", func(t *testing.T) {
		in, err := validator.ValidateTaskInput(TaskFields{
			Text:     strPtr("Test"),
			Priority: strPtr("high"),
			Category: strPtr("demo"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Test", in.Text)
		assert.Equal(t, domain.PriorityHigh, in.Priority)
		assert.Equal(t, "demo", *in.Category)
	})

	t.Run("optional fields left for defaults", func(t *testing.T) {
		in, err := validator.ValidateTaskInput(TaskFields{Text: strPtr("Test")})
		require.NoError(t, err)
		assert.Equal(t, domain.Priority(""), in.Priority)
		assert.Nil(t, in.Category)
	})

	t.Run("collects every field error", func(t *testing.T) {
		_, err := validator.ValidateTaskInput(TaskFields{Priority: strPtr("urgent")})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Errors, 2)
		assert.Equal(t, "text", validationErr.Errors[0].Field)
		assert.Equal(t, "priority", validationErr.Errors[1].Field)
		assert.Contains(t, validationErr.Errors[1].Message, "'low', 'medium', 'high'")
	})

	t.Run("priority is case sensitive", func(t *testing.T) {
		_, err := validator.ValidateTaskInput(TaskFields{Text: strPtr("Test"), Priority: strPtr("HIGH")})
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestTaskValidator_ValidateText_Messages(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TextMaxLength = 5
	validator := NewTaskValidatorWithConfig(cfg)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", "text must not be empty"},
		{"over configured maximum", "abcdef", "ensure this value has at most 5 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateText(strPtr(tt.input))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Len(t, validationErr.Errors, 1)
			assert.Equal(t, tt.expected, validationErr.Errors[0].Message)
		})
	}

	assert.NoError(t, validator.ValidateText(strPtr("     ")), "whitespace within the limit is text")
}

func TestTaskValidator_ValidateTaskID(t *testing.T) {
	validator := NewTaskValidator()

	id, err := validator.ValidateTaskID("6")
	require.NoError(t, err)
	assert.Equal(t, int64(6), id)

	_, err = validator.ValidateTaskID("six")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"path", "task_id"}, validationErr.Errors[0].Loc())
	assert.Equal(t, ErrorTypeInvalidType, validationErr.Errors[0].Type)
}

func TestTaskValidator_ValidateListParams(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		params      ListParams
		expectField string
		check       func(t *testing.T, f domain.ListFilter)
	}{
		{
			name:   "no params",
			params: ListParams{},
			check: func(t *testing.T, f domain.ListFilter) {
				assert.Equal(t, domain.ListFilter{}, f)
			},
		},
		{
			name:   "all params",
			params: ListParams{Priority: strPtr("low"), Category: strPtr("planning"), Completed: strPtr("false"), Search: strPtr("trip")},
			check: func(t *testing.T, f domain.ListFilter) {
				assert.Equal(t, domain.PriorityLow, *f.Priority)
				assert.Equal(t, "planning", *f.Category)
				assert.False(t, *f.Completed)
				assert.Equal(t, "trip", *f.Search)
			},
		},
		{
			name:   "empty priority and category are ignored",
			params: ListParams{Priority: strPtr(""), Category: strPtr("")},
			check: func(t *testing.T, f domain.ListFilter) {
				assert.Equal(t, domain.ListFilter{}, f)
			},
		},
		{name: "unknown priority", params: ListParams{Priority: strPtr("urgent")}, expectField: "priority"},
		{name: "bad completed", params: ListParams{Completed: strPtr("maybe")}, expectField: "completed"},
		{name: "short search", params: ListParams{Search: strPtr("ab")}, expectField: "search"},
		{name: "empty search", params: ListParams{Search: strPtr("")}, expectField: "search"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := validator.ValidateListParams(tt.params)

			if tt.expectField != "" {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Len(t, validationErr.Errors, 1)
				assert.Equal(t, []string{"query", tt.expectField}, validationErr.Errors[0].Loc())
				return
			}

			require.NoError(t, err)
			tt.check(t, filter)
		})
	}
}
