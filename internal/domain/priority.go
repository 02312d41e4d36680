package domain

import (
	"fmt"
	"strings"
)

// Priority is the urgency of a task. Only the values declared below are valid.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is applied when a task is created or replaced without one.
const DefaultPriority = PriorityMedium

// Priorities returns every valid priority in ascending order of urgency.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ParsePriority converts raw input into a Priority.
// Matching is exact: "High" is rejected the same way "urgent" is.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("unknown priority %q, expected one of: %s", s, priorityList())
	}
}

func (p Priority) String() string {
	return string(p)
}

func priorityList() string {
	names := make([]string, 0, len(Priorities()))
	for _, p := range Priorities() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}
