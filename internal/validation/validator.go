package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"time-travel-tasks/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsValidStringLength checks if the character count of s is within [min, max].
// A max of zero means no upper bound.
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(s)
	if length < min {
		return false
	}
	return max <= 0 || length <= max
}

// IsValidTextLength checks task text against the configured maximum, if any.
// Whitespace counts as text.
func (v *Validator) IsValidTextLength(text string) bool {
	return v.IsValidStringLength(text, 1, v.TextMaxLength())
}

// IsValidSearchTerm checks that a search term meets the configured minimum length
func (v *Validator) IsValidSearchTerm(term string) bool {
	return utf8.RuneCountInString(term) >= v.SearchMinLength()
}

// ParseBool parses the boolean spellings accepted in query strings.
func (v *Validator) ParseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "t", "y":
		return true, true
	case "false", "0", "no", "off", "f", "n":
		return false, true
	default:
		return false, false
	}
}

// ParseID parses a path identifier. Any base-10 int64 is accepted; whether
// it names an existing task is decided by the store.
func (v *Validator) ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// SearchMinLength returns configured minimum search length or default
func (v *Validator) SearchMinLength() int {
	if v.config != nil {
		return v.config.Validation.SearchMinLength
	}
	return config.DefaultSearchMinLength
}

// TextMaxLength returns configured maximum task text length or default.
// Zero means unbounded.
func (v *Validator) TextMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TextMaxLength
	}
	return config.DefaultTextMaxLength
}
