package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/flowlist/internal/tui/state"
)

// RenderStatusBar renders the latest notification on the left (or the app
// tagline) and the help hint on the right
func RenderStatusBar(width int, latest *state.Notification) string {
	left := SubtleStyle.Render("FlowList - tasks in your terminal")
	if latest != nil {
		switch latest.Level {
		case state.LevelWarning:
			left = WarningStatusStyle.Render("⚠ " + latest.Message)
		case state.LevelError:
			left = ErrorStatusStyle.Render("✗ " + latest.Message)
		default:
			left = InfoStatusStyle.Render(latest.Message)
		}
	}
	right := SubtleStyle.Render("press ? for help")

	gapWidth := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapWidth), right)
}
