package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/flowlist/internal/models"
)

// RenderFilterTabs draws one tab per filter with its task count, the active
// filter raised, and the rest of the line filled with the tab baseline:
//
//	╭─────────╮ ╭────────────╮
//	│ All  4  │ │ Active  3  │──────────────
func RenderFilterTabs(filters []models.Filter, active models.Filter, counts models.Counts, width int) string {
	tabs := make([]string, 0, len(filters))
	for _, f := range filters {
		tabs = append(tabs, renderFilterTab(f, counts.For(f), f == active))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	// Too narrow for the bar: fall back to the active filter alone
	if lipgloss.Width(row) > width && len(tabs) > 1 {
		row = renderFilterTab(active, counts.For(active), true)
	}

	gapWidth := max(width-lipgloss.Width(row)-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}

func renderFilterTab(f models.Filter, count int, selected bool) string {
	badge := TabCountStyle
	style := TabStyle
	if selected {
		badge = ActiveTabCountStyle
		style = ActiveTabStyle
	}
	if count == 0 && !selected {
		badge = badge.Faint(true)
	}
	return style.Render(f.Label() + "  " + badge.Render(strconv.Itoa(count)))
}
