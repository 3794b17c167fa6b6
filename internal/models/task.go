package models

import (
	"fmt"
	"strings"
	"time"
)

// Task represents a single to-do item in the list
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"` // ISO-8601, not validated
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
}

// TaskInput holds the caller-supplied fields for a new task.
// ID and completion state are always assigned by the store.
type TaskInput struct {
	Title       string
	Description string
	DueDate     string
	Priority    Priority // Optional: empty means PriorityMedium
}

// TaskPatch is a partial update for an existing task.
// Fields with pointers are optional - nil means don't update
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *Priority
	Completed   *bool
}

// IsEmpty reports whether the patch changes nothing
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.Priority == nil && p.Completed == nil
}

// Apply returns a copy of t with the non-nil patch fields merged in
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}

// Due parses DueDate. ok is false when the task has no due date or the stored
// string is not a timestamp we understand.
func (t Task) Due() (due time.Time, ok bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, DateLayout} {
		if parsed, err := time.Parse(layout, t.DueDate); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// IsOverdue reports whether an incomplete task's due date lies before now.
// A date-only due date (stored as UTC midnight) covers the whole calendar day
// in now's location, so the task turns overdue once that day has ended.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Completed {
		return false
	}
	due, ok := t.Due()
	if !ok {
		return false
	}
	if isCalendarDate(due) {
		y, m, d := due.Date()
		endOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		return !now.Before(endOfDay)
	}
	return due.Before(now)
}

// isCalendarDate matches what NormalizeDueDate produces for YYYY-MM-DD input
func isCalendarDate(due time.Time) bool {
	_, offset := due.Zone()
	return offset == 0 && due.Hour() == 0 && due.Minute() == 0 && due.Second() == 0 && due.Nanosecond() == 0
}

// NormalizeDueDate converts user input into the stored due date form.
// A calendar date (2006-01-02) becomes an RFC 3339 timestamp at UTC midnight,
// an RFC 3339 timestamp is kept as-is and blank input clears the date.
func NormalizeDueDate(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	if d, err := time.Parse(DateLayout, input); err == nil {
		return d.UTC().Format("2006-01-02T15:04:05.000Z"), nil
	}
	if _, err := time.Parse(time.RFC3339, input); err == nil {
		return input, nil
	}
	return "", fmt.Errorf("%w '%s' (use YYYY-MM-DD)", ErrInvalidDueDate, input)
}

// GetID lets output formatters print just the id in quiet mode
func (t Task) GetID() string {
	return t.ID
}
