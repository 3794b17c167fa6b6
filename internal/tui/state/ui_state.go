package state

import "github.com/thenoetrevino/flowlist/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	TaskFormMode                  // Adding or editing a task with huh
	DeleteConfirmMode             // Confirming task deletion
	DetailMode                    // Reading one task with its rendered description
	HelpMode                      // Displaying help screen
)

// UIState manages the user interface state: the active filter, the selected
// row, terminal dimensions and the current interaction mode.
type UIState struct {
	filter   models.Filter
	selected int
	width    int
	height   int
	mode     Mode
}

// NewUIState creates a new UIState showing all tasks
func NewUIState() *UIState {
	return &UIState{
		filter: models.FilterAll,
		mode:   NormalMode,
	}
}

func (s *UIState) Filter() models.Filter { return s.filter }

// SetFilter switches the visible view and resets the selection to the top
func (s *UIState) SetFilter(f models.Filter) {
	if f != s.filter {
		s.selected = 0
	}
	s.filter = f
}

func (s *UIState) Selected() int { return s.selected }

func (s *UIState) SetSelected(i int) { s.selected = i }

// ClampSelection keeps the selection inside a list of n rows
func (s *UIState) ClampSelection(n int) {
	switch {
	case n == 0:
		s.selected = 0
	case s.selected >= n:
		s.selected = n - 1
	case s.selected < 0:
		s.selected = 0
	}
}

func (s *UIState) Width() int  { return s.width }
func (s *UIState) Height() int { return s.height }

func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *UIState) Mode() Mode { return s.mode }

func (s *UIState) SetMode(m Mode) { s.mode = m }
