package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/flowlist/internal/tui/state"
)

// handleDeleteConfirm deletes the selected task on y and backs out on n or esc
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if t, ok := m.currentTask(); ok {
			res := m.App.Tasks.Delete(m.ctx, t.ID)
			m.reportPersist(res)
			if res.Found && res.Persist.OK() {
				m.NotificationState.Add(state.LevelInfo, "Deleted '"+t.Title+"'")
			}
		}
		m.clampSelection()
		m.UiState.SetMode(state.NormalMode)
	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
