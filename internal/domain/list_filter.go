package domain

import "strings"

// ListFilter represents the optional criteria for listing tasks.
// Nil fields are ignored; the remaining ones are combined with AND.
type ListFilter struct {
	Priority  *Priority
	Category  *string
	Completed *bool
	Search    *string
}

// Matches reports whether t satisfies every criterion of the filter.
func (f ListFilter) Matches(t Task) bool {
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	return f.MatchesSearch(t)
}

// MatchesSearch reports whether the search term, if any, occurs in the task
// text ignoring case.
func (f ListFilter) MatchesSearch(t Task) bool {
	if f.Search == nil {
		return true
	}
	return strings.Contains(strings.ToLower(t.Text), strings.ToLower(*f.Search))
}
