// Package styles holds the lipgloss styles for human-readable CLI output.
package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/flowlist/internal/config/colors"
	"github.com/thenoetrevino/flowlist/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Priority:", "Due:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	DoneStyle    lipgloss.Style
	OverdueStyle lipgloss.Style
	SuccessStyle lipgloss.Style
)

func init() {
	Init(*colors.Dark())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle)).
		Strikethrough(true)

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Overdue))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Create))
}

// PriorityBadge renders a priority as "[high]" in its color
func PriorityBadge(p models.Priority) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Color())).
		Bold(true).
		Render("[" + p.String() + "]")
}

// Checkbox renders the completion marker
func Checkbox(completed bool) string {
	if completed {
		return SuccessStyle.Render("[x]")
	}
	return SubtitleStyle.Render("[ ]")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
