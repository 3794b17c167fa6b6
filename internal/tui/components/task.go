package components

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/flowlist/internal/models"
)

// TaskRowProps holds what one row of the list needs
type TaskRowProps struct {
	Task     models.Task
	Selected bool
	Width    int
	Now      time.Time
}

// RenderTaskRow renders a task as a card:
//
//	╭──────────────────────────────────────────╮
//	│ [ ] Title                  [high] Mar 5   │
//	│ first line of the description             │
//	╰──────────────────────────────────────────╯
func RenderTaskRow(props TaskRowProps) string {
	t := props.Task

	check := "[ ]"
	title := TaskTitleStyle.Render(t.Title)
	if t.Completed {
		check = "[x]"
		title = DoneTitleStyle.Render(t.Title)
	}

	var meta []string
	meta = append(meta, PriorityBadge(t.Priority))
	if due := FormatDue(t); due != "" {
		if t.IsOverdue(props.Now) {
			meta = append(meta, OverdueStyle.Render("Overdue · "+due))
		} else {
			meta = append(meta, SubtleStyle.Render(due))
		}
	}

	left := check + " " + title
	right := strings.Join(meta, " ")

	// Inner width excludes the border and padding
	inner := max(props.Width-4, 20)
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	lines := []string{left + strings.Repeat(" ", gap) + right}

	if desc := firstLine(t.Description); desc != "" {
		lines = append(lines, SubtleStyle.Render(truncate(desc, inner)))
	}

	style := TaskStyle
	if props.Selected {
		style = SelectedTaskStyle
	}
	return style.Width(inner + 4).Render(strings.Join(lines, "\n"))
}

// PriorityBadge renders a priority as "[high]" in its color
func PriorityBadge(p models.Priority) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Color())).
		Bold(true).
		Render("[" + p.String() + "]")
}

// FormatDue renders a stored due date for display, keeping unparseable
// values as they are
func FormatDue(t models.Task) string {
	if t.DueDate == "" {
		return ""
	}
	if due, ok := t.Due(); ok {
		return due.Format(models.DisplayDateLayout)
	}
	return t.DueDate
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
