package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/flowlist/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.UiState.SetSize(ws.Width, ws.Height)
	}

	// Forms need to receive every message, not only key presses
	if m.UiState.Mode() == state.TaskFormMode {
		return m.updateTaskForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(keyMsg)
	case state.DetailMode:
		return m.handleDetailMode(keyMsg)
	case state.HelpMode:
		return m.handleHelpMode(keyMsg)
	default:
		return m.handleNormalMode(keyMsg)
	}
}
