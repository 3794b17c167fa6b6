package state

import (
	"testing"

	"github.com/thenoetrevino/flowlist/internal/models"
)

func TestUIState_ClampSelection(t *testing.T) {
	s := NewUIState()

	s.SetSelected(5)
	s.ClampSelection(3)
	if s.Selected() != 2 {
		t.Errorf("Selected() = %d, want 2", s.Selected())
	}

	s.ClampSelection(0)
	if s.Selected() != 0 {
		t.Errorf("Selected() on empty list = %d, want 0", s.Selected())
	}
}

func TestUIState_SetFilterResetsSelection(t *testing.T) {
	s := NewUIState()
	s.SetSelected(2)

	s.SetFilter(models.FilterAll)
	if s.Selected() != 2 {
		t.Errorf("same filter should keep selection, got %d", s.Selected())
	}

	s.SetFilter(models.FilterHigh)
	if s.Selected() != 0 {
		t.Errorf("new filter should reset selection, got %d", s.Selected())
	}
}

func TestFormState_ResetForEdit(t *testing.T) {
	s := NewFormState()
	s.ResetForEdit(models.Task{
		ID:       "id-1",
		Title:    "Pay rent",
		DueDate:  "2025-03-05T00:00:00.000Z",
		Priority: models.PriorityHigh,
	})

	if !s.IsEditing() || s.EditingTaskID != "id-1" {
		t.Errorf("EditingTaskID = %q, want id-1", s.EditingTaskID)
	}
	if s.DueDate != "2025-03-05" {
		t.Errorf("DueDate = %q, want date-only form", s.DueDate)
	}
	if s.Priority != models.PriorityHigh {
		t.Errorf("Priority = %s, want high", s.Priority)
	}

	s.ResetForAdd()
	if s.IsEditing() || s.Title != "" || s.Priority != models.PriorityMedium {
		t.Errorf("ResetForAdd left %+v", s)
	}
}

func TestNotificationState_Latest(t *testing.T) {
	s := NewNotificationState()
	if _, ok := s.Latest(); ok {
		t.Error("empty state should have no latest notification")
	}

	s.Add(LevelInfo, "first")
	s.Add(LevelWarning, "second")
	n, ok := s.Latest()
	if !ok || n.Message != "second" || n.Level != LevelWarning {
		t.Errorf("Latest() = %+v, want second warning", n)
	}

	s.Clear()
	if s.HasAny() {
		t.Error("Clear() should remove all notifications")
	}
}
