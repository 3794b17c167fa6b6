// Package tui is the interactive front end: a filtered task list with
// add/edit forms, delete confirmation and a light/dark theme toggle.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/flowlist/internal/app"
	"github.com/thenoetrevino/flowlist/internal/config"
	"github.com/thenoetrevino/flowlist/internal/models"
	"github.com/thenoetrevino/flowlist/internal/tui/components"
	"github.com/thenoetrevino/flowlist/internal/tui/state"
)

// Model represents the application state for the TUI.
// Task and theme data live in the App; the model only keeps what the screen
// needs on top of it.
type Model struct {
	ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	keys keyMap
	help help.Model
	now  func() time.Time
}

// InitialModel creates the TUI model over a.
// The model subscribes to theme changes so styles follow the preference.
func InitialModel(ctx context.Context, a *app.App) Model {
	cfg := a.Config
	if cfg == nil {
		cfg = config.Default()
	}

	m := Model{
		ctx:               ctx,
		App:               a,
		Config:            cfg,
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
		now:               time.Now,
	}

	a.Theme.Subscribe(func(th models.Theme) {
		components.InitStyles(cfg.Theme.For(th))
	})

	if load := a.Tasks.LoadResult(); !load.OK() {
		m.NotificationState.Add(state.LevelWarning, "Saved tasks could not be read; starting empty")
	}

	return m
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}

// visibleTasks returns the tasks under the active filter
func (m Model) visibleTasks() []models.Task {
	return m.App.Tasks.Filtered(m.UiState.Filter())
}

// currentTask returns the selected task, if the view has any
func (m Model) currentTask() (models.Task, bool) {
	tasks := m.visibleTasks()
	i := m.UiState.Selected()
	if i < 0 || i >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[i], true
}

// clampSelection keeps the cursor on a visible row after the list changed
func (m Model) clampSelection() {
	m.UiState.ClampSelection(len(m.visibleTasks()))
}
