package models

import (
	"fmt"
	"strings"
)

// Priority is the ordinal classification of a task.
// It only drives display and filtering, never scheduling.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every valid priority, lowest first
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// OrDefault returns p, or PriorityMedium when p is empty
func (p Priority) OrDefault() Priority {
	if p == "" {
		return PriorityMedium
	}
	return p
}

// Color returns the hex color used to badge the priority
func (p Priority) Color() string {
	switch p {
	case PriorityHigh:
		return "#EF4444"
	case PriorityLow:
		return "#22C55E"
	default:
		return "#EAB308"
	}
}

func (p Priority) String() string {
	return string(p)
}

// ParsePriority maps user input to a Priority (case-insensitive)
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w '%s' (must be: low, medium, high)", ErrInvalidPriority, s)
	}
	return p, nil
}
