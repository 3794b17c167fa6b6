package models

// ============================================================================
// PERSISTENCE KEYS
// ============================================================================

// Keys under which the model layer persists its state
const (
	TasksKey = "flowlist-tasks"
	ThemeKey = "flowlist-theme"
)

// ============================================================================
// DATE LAYOUTS
// ============================================================================

const (
	// DateLayout is the calendar-date form users type for due dates
	DateLayout = "2006-01-02"

	// DisplayDateLayout is used when showing a due date
	DisplayDateLayout = "Jan 2, 2006"
)
