package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/flowlist/internal/models"
	"github.com/thenoetrevino/flowlist/internal/tui/components"
	"github.com/thenoetrevino/flowlist/internal/tui/state"
)

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(components.Scheme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.viewList())}

	var modal string
	switch m.UiState.Mode() {
	case state.TaskFormMode:
		modal = m.viewTaskForm()
	case state.DeleteConfirmMode:
		modal = m.viewDeleteConfirm()
	case state.DetailMode:
		modal = m.viewDetail()
	case state.HelpMode:
		modal = m.viewHelp()
	}
	if modal != "" {
		layers = append(layers, centeredLayer(modal, m.UiState.Width(), m.UiState.Height()))
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// centeredLayer positions content in the middle of the screen
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// viewList renders header, filter tabs, the visible rows and the status bar
func (m Model) viewList() string {
	width := m.UiState.Width()
	counts := m.App.Tasks.Counts()

	header := components.RenderHeader(counts.Active, m.App.Theme.Current(), width)
	tabBar := components.RenderFilterTabs(models.Filters, m.UiState.Filter(), counts, width)

	var latest *state.Notification
	if n, ok := m.NotificationState.Latest(); ok {
		latest = &n
	}
	status := components.RenderStatusBar(width, latest)

	used := lipgloss.Height(header) + lipgloss.Height(tabBar) + lipgloss.Height(status)
	body := m.viewRows(width, max(m.UiState.Height()-used, 1))

	return lipgloss.JoinVertical(lipgloss.Left, header, tabBar, body, status)
}

// viewRows renders as many rows as fit, scrolled so the selection is visible
func (m Model) viewRows(width, height int) string {
	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		empty := components.SubtleStyle.Render(emptyMessage(m.UiState.Filter()))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	now := m.now()
	rows := make([]string, len(tasks))
	for i, t := range tasks {
		rows[i] = components.RenderTaskRow(components.TaskRowProps{
			Task:     t,
			Selected: i == m.UiState.Selected(),
			Width:    width,
			Now:      now,
		})
	}

	// Drop rows from the top until the selected one fits
	start := 0
	for start < m.UiState.Selected() && lipgloss.Height(strings.Join(rows[start:m.UiState.Selected()+1], "\n")) > height {
		start++
	}
	end := start
	for end < len(rows) && lipgloss.Height(strings.Join(rows[start:end+1], "\n")) <= height {
		end++
	}
	if end == start {
		end = start + 1
	}

	return lipgloss.NewStyle().Height(height).Render(strings.Join(rows[start:end], "\n"))
}

func emptyMessage(f models.Filter) string {
	switch f {
	case models.FilterActive:
		return "Nothing left to do."
	case models.FilterCompleted:
		return "No completed tasks yet."
	case models.FilterHigh:
		return "No urgent tasks."
	default:
		return "No tasks yet. Press a to add one."
	}
}

func (m Model) viewTaskForm() string {
	if m.FormState.Form == nil {
		return ""
	}

	title := "New Task"
	box := components.FormBoxStyle
	if m.FormState.IsEditing() {
		title = "Edit Task"
		box = components.EditFormBoxStyle
	}

	hint := components.SubtleStyle.Render(m.Config.KeyMappings.SaveForm + ": save  esc: cancel")
	content := lipgloss.JoinVertical(lipgloss.Left,
		components.HeaderStyle.Render(title),
		"",
		m.FormState.Form.View(),
		"",
		hint,
	)

	return box.Width(max(m.UiState.Width()*6/10, 50)).Render(content)
}

func (m Model) viewDeleteConfirm() string {
	t, ok := m.currentTask()
	if !ok {
		return ""
	}
	return components.DeleteConfirmBoxStyle.
		Width(50).
		Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", t.Title))
}

func (m Model) viewDetail() string {
	t, ok := m.currentTask()
	if !ok {
		return ""
	}

	width := max(m.UiState.Width()*7/10, 40)
	status := "Active"
	if t.Completed {
		status = "Completed"
	}

	meta := []string{status, "Priority " + components.PriorityBadge(t.Priority)}
	if due := components.FormatDue(t); due != "" {
		if t.IsOverdue(m.now()) {
			due = components.OverdueStyle.Render("Overdue · " + due)
		}
		meta = append(meta, "Due "+due)
	}

	desc := components.RenderDescription(components.DescriptionProps{
		Description: t.Description,
		Width:       width - 6,
		Dark:        m.App.Theme.Current().IsDark(),
	})

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.HeaderStyle.Render(t.Title),
		components.SubtleStyle.Render(strings.Join(meta, "  ·  ")),
		"",
		desc,
		"",
		components.SubtleStyle.Render("e: edit  "+m.Config.KeyMappings.ToggleTask+": toggle  esc: close"),
	)
	return components.DetailBoxStyle.Width(width).Render(content)
}

func (m Model) viewHelp() string {
	h := m.help
	s := components.Scheme
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Accent)).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Normal))
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Subtle))

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.HeaderStyle.Render("Keyboard Shortcuts"),
		"",
		h.FullHelpView(m.keys.FullHelp()),
		"",
		components.SubtleStyle.Render("press "+m.Config.KeyMappings.ShowHelp+" or esc to close"),
	)
	return components.HelpBoxStyle.Render(content)
}
