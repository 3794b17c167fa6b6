package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/flowlist/internal/models"
)

// FormState holds the task form and the values its fields write into.
// The huh fields keep pointers to these values, so FormState must not be copied.
type FormState struct {
	Form          *huh.Form
	EditingTaskID string // empty when adding

	Title       string
	Description string
	Priority    models.Priority
	DueDate     string // as typed, YYYY-MM-DD
	Confirm     bool

	// originalDue is the stored value shown when editing; it is accepted
	// unchanged even when it is not a valid date
	originalDue string
}

// NewFormState creates an empty FormState
func NewFormState() *FormState {
	return &FormState{Priority: models.PriorityMedium, Confirm: true}
}

// ResetForAdd clears all fields for a new task
func (s *FormState) ResetForAdd() {
	*s = FormState{Priority: models.PriorityMedium, Confirm: true}
}

// ResetForEdit fills the fields from t
func (s *FormState) ResetForEdit(t models.Task) {
	due := t.DueDate
	if d, ok := t.Due(); ok {
		due = d.Format(models.DateLayout)
	}
	*s = FormState{
		EditingTaskID: t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Priority:      t.Priority.OrDefault(),
		DueDate:       due,
		Confirm:       true,
		originalDue:   due,
	}
}

// IsEditing reports whether the form edits an existing task
func (s *FormState) IsEditing() bool {
	return s.EditingTaskID != ""
}

// OriginalDue returns the due date shown when the edit started
func (s *FormState) OriginalDue() string {
	return s.originalDue
}

// Clear drops the form once it is closed
func (s *FormState) Clear() {
	s.Form = nil
	s.EditingTaskID = ""
}
