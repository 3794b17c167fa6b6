// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/flowlist/internal/config/colors"
)

// These are cached to avoid recomputing on every redraw.
var (
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// Scheme is the color scheme the styles were built from
	Scheme colors.ColorScheme

	// TabStyle defines inactive filter tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected filter tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// TabCountStyle and ActiveTabCountStyle color the task count in a tab
	TabCountStyle       lipgloss.Style
	ActiveTabCountStyle lipgloss.Style

	// HeaderStyle renders the app name
	HeaderStyle lipgloss.Style

	// BadgeStyle renders the active-task counter
	BadgeStyle lipgloss.Style

	// ThemeIndicatorStyle renders the current theme name
	ThemeIndicatorStyle lipgloss.Style

	// TaskStyle and SelectedTaskStyle frame one task row
	TaskStyle         lipgloss.Style
	SelectedTaskStyle lipgloss.Style

	// TaskTitleStyle and DoneTitleStyle render titles of active and completed tasks
	TaskTitleStyle lipgloss.Style
	DoneTitleStyle lipgloss.Style

	SubtleStyle  lipgloss.Style
	OverdueStyle lipgloss.Style

	// FormBoxStyle surrounds the add form (green border)
	FormBoxStyle lipgloss.Style

	// EditFormBoxStyle surrounds the edit form (blue border)
	EditFormBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// DetailBoxStyle and HelpBoxStyle surround the detail and help overlays
	DetailBoxStyle lipgloss.Style
	HelpBoxStyle   lipgloss.Style

	// Status line styles per notification level
	InfoStatusStyle    lipgloss.Style
	WarningStatusStyle lipgloss.Style
	ErrorStatusStyle   lipgloss.Style
)

// InitStyles initializes all component styles from a color scheme.
// It is called again whenever the theme changes.
func InitStyles(scheme colors.ColorScheme) {
	Scheme = scheme

	accent := lipgloss.Color(scheme.Accent)
	border := lipgloss.Color(scheme.Border)
	subtle := lipgloss.Color(scheme.Subtle)
	normal := lipgloss.Color(scheme.Normal)

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(border).
		Foreground(subtle).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.
		Border(activeTabBorder, true).
		BorderForeground(accent).
		Foreground(lipgloss.Color(scheme.Title)).
		Bold(true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	TabCountStyle = lipgloss.NewStyle().Foreground(subtle)
	ActiveTabCountStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	BadgeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Background)).
		Background(accent).
		Padding(0, 1).
		Bold(true)

	ThemeIndicatorStyle = lipgloss.NewStyle().
		Foreground(subtle).
		Italic(true)

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	SelectedTaskStyle = TaskStyle.
		BorderForeground(lipgloss.Color(scheme.SelectedBorder)).
		Background(lipgloss.Color(scheme.SelectedBg))

	TaskTitleStyle = lipgloss.NewStyle().
		Foreground(normal).
		Bold(true)

	DoneTitleStyle = lipgloss.NewStyle().
		Foreground(subtle).
		Strikethrough(true)

	SubtleStyle = lipgloss.NewStyle().Foreground(subtle)

	OverdueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Overdue)).
		Bold(true)

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Create)).
		Background(lipgloss.Color(scheme.Surface)).
		Padding(1, 2)

	EditFormBoxStyle = FormBoxStyle.
		BorderForeground(lipgloss.Color(scheme.Edit))

	DeleteConfirmBoxStyle = FormBoxStyle.
		BorderForeground(lipgloss.Color(scheme.Delete))

	DetailBoxStyle = FormBoxStyle.
		BorderForeground(accent)

	HelpBoxStyle = FormBoxStyle.
		BorderForeground(lipgloss.Color(scheme.Edit))

	InfoStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.InfoFg))
	WarningStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.WarningFg)).Bold(true)
	ErrorStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.ErrorFg)).Bold(true)
}

func init() {
	InitStyles(*colors.Dark())
}
