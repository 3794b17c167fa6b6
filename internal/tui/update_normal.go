package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/flowlist/internal/models"
	"github.com/thenoetrevino/flowlist/internal/services/task"
	"github.com/thenoetrevino/flowlist/internal/tui/components"
	"github.com/thenoetrevino/flowlist/internal/tui/huhforms"
	"github.com/thenoetrevino/flowlist/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.UiState.SetMode(state.HelpMode)
	case key.Matches(msg, m.keys.Add):
		return m.handleAddTask()
	case key.Matches(msg, m.keys.Edit):
		return m.handleEditTask()
	case key.Matches(msg, m.keys.Toggle):
		m.handleToggleTask()
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.currentTask(); ok {
			m.UiState.SetMode(state.DeleteConfirmMode)
		}
	case key.Matches(msg, m.keys.View):
		if _, ok := m.currentTask(); ok {
			m.UiState.SetMode(state.DetailMode)
		}
	case key.Matches(msg, m.keys.Up):
		if i := m.UiState.Selected(); i > 0 {
			m.UiState.SetSelected(i - 1)
		}
	case key.Matches(msg, m.keys.Down):
		if i := m.UiState.Selected(); i < len(m.visibleTasks())-1 {
			m.UiState.SetSelected(i + 1)
		}
	case key.Matches(msg, m.keys.NextFilter):
		m.UiState.SetFilter(m.UiState.Filter().Next())
	case key.Matches(msg, m.keys.PrevFilter):
		m.UiState.SetFilter(m.UiState.Filter().Prev())
	case key.Matches(msg, m.keys.JumpFilter):
		idx := int(msg.String()[0] - '1')
		m.UiState.SetFilter(models.Filters[idx])
	case key.Matches(msg, m.keys.ToggleTheme):
		m.handleToggleTheme()
	}

	return m, nil
}

func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()
	m.FormState.ResetForAdd()
	return m.openTaskForm()
}

func (m Model) handleEditTask() (tea.Model, tea.Cmd) {
	t, ok := m.currentTask()
	if !ok {
		return m, nil
	}
	m.NotificationState.Clear()
	m.FormState.ResetForEdit(t)
	return m.openTaskForm()
}

func (m Model) openTaskForm() (tea.Model, tea.Cmd) {
	lines := max(m.UiState.Height()/5, 3)
	m.FormState.Form = huhforms.CreateTaskForm(m.FormState, lines, m.Config.KeyMappings.SaveForm).
		WithTheme(huhforms.CreateFormTheme(components.Scheme, m.FormState.IsEditing()))
	m.UiState.SetMode(state.TaskFormMode)
	return m, m.FormState.Form.Init()
}

func (m Model) handleToggleTask() {
	t, ok := m.currentTask()
	if !ok {
		return
	}
	res := m.App.Tasks.ToggleComplete(m.ctx, t.ID)
	m.reportPersist(res)
	m.clampSelection()
}

func (m Model) handleToggleTheme() {
	th, persist := m.App.Theme.Toggle(m.ctx)
	if !persist.OK() {
		m.NotificationState.Add(state.LevelWarning, "Theme changed to "+th.String()+" but could not be saved")
	}
}

// reportPersist surfaces a failed write in the status line.
// The change itself stays in memory.
func (m Model) reportPersist(res task.Result) {
	if !res.Found {
		slog.Debug("Task vanished before the change", "id", res.Task.ID)
		return
	}
	if !res.Persist.OK() {
		m.NotificationState.Add(state.LevelWarning, "Changes not saved: storage unavailable")
	}
}

// handleHelpMode closes the help overlay
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleDetailMode closes the detail overlay; edit and toggle work from it
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		return m.handleEditTask()
	case key.Matches(msg, m.keys.Toggle):
		m.handleToggleTask()
		if _, ok := m.currentTask(); !ok {
			m.UiState.SetMode(state.NormalMode)
		}
	case msg.String() == "esc", key.Matches(msg, m.keys.View), msg.String() == m.Config.KeyMappings.Quit:
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
