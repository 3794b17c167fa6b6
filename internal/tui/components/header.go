package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/flowlist/internal/models"
)

// RenderHeader renders "FlowList  [3 active]" on the left and the theme on the right
func RenderHeader(active int, theme models.Theme, width int) string {
	left := lipgloss.JoinHorizontal(lipgloss.Center,
		HeaderStyle.Render("FlowList"),
		"  ",
		BadgeStyle.Render(fmt.Sprintf("%d active", active)),
	)

	icon := "☀"
	if theme.IsDark() {
		icon = "☾"
	}
	right := ThemeIndicatorStyle.Render(icon + " " + theme.String())

	gapWidth := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gapWidth) + right
}
