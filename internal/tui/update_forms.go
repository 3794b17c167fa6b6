package tui

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/flowlist/internal/models"
	"github.com/thenoetrevino/flowlist/internal/tui/huhforms"
	"github.com/thenoetrevino/flowlist/internal/tui/state"
)

type taskFormValues struct {
	title       string
	description string
	priority    models.Priority
	due         string
	confirm     bool
}

// extractTaskFormValues reads the values the huh fields wrote into FormState
func (m Model) extractTaskFormValues() taskFormValues {
	return taskFormValues{
		title:       strings.TrimSpace(m.FormState.Title),
		description: strings.TrimSpace(m.FormState.Description),
		priority:    m.FormState.Priority.OrDefault(),
		due:         strings.TrimSpace(m.FormState.DueDate),
		confirm:     m.FormState.Confirm,
	}
}

// updateTaskForm handles all messages in TaskFormMode
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.FormState.Form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m.cancelTaskForm()
		case m.Config.KeyMappings.SaveForm:
			m.FormState.Confirm = true
			return m.submitTaskForm()
		}
	}

	model, cmd := m.FormState.Form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.Form = f
	}

	switch m.FormState.Form.State {
	case huh.StateCompleted:
		return m.submitTaskForm()
	case huh.StateAborted:
		return m.cancelTaskForm()
	}

	return m, cmd
}

func (m Model) cancelTaskForm() (tea.Model, tea.Cmd) {
	if m.FormState.IsEditing() {
		m.NotificationState.Add(state.LevelInfo, "Edit cancelled")
	}
	m.closeTaskForm()
	return m, tea.ClearScreen
}

// submitTaskForm saves the form when it was confirmed and the title is valid.
// An invalid title keeps the form open.
func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	values := m.extractTaskFormValues()

	if !values.confirm {
		m.closeTaskForm()
		return m, tea.ClearScreen
	}

	if err := huhforms.ValidateTitle(values.title); err != nil {
		m.NotificationState.Add(state.LevelError, "Title is required")
		m.reopenIfCompleted()
		return m, nil
	}

	due, keepDue, err := m.resolveDue(values.due)
	if err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		m.reopenIfCompleted()
		return m, nil
	}

	if m.FormState.IsEditing() {
		m.saveEdit(values, due, keepDue)
	} else {
		m.saveNew(values, due)
	}

	m.closeTaskForm()
	return m, tea.ClearScreen
}

// resolveDue converts the typed date to the stored form. keep is true when
// an edit left the date untouched, so the stored string survives as-is.
func (m Model) resolveDue(typed string) (due string, keep bool, err error) {
	if m.FormState.IsEditing() && typed == m.FormState.OriginalDue() {
		return "", true, nil
	}
	due, err = models.NormalizeDueDate(typed)
	return due, false, err
}

func (m Model) saveNew(values taskFormValues, due string) {
	res := m.App.Tasks.Create(m.ctx, models.TaskInput{
		Title:       values.title,
		Description: values.description,
		DueDate:     due,
		Priority:    values.priority,
	})
	slog.Debug("Task added from form", "id", res.Task.ID)

	// Show the new task: it is first in every view that contains it
	if !m.UiState.Filter().Match(res.Task) {
		m.UiState.SetFilter(models.FilterAll)
	}
	m.UiState.SetSelected(0)
	m.reportPersist(res)
}

func (m Model) saveEdit(values taskFormValues, due string, keepDue bool) {
	patch := models.TaskPatch{
		Title:       &values.title,
		Description: &values.description,
		Priority:    &values.priority,
	}
	if !keepDue {
		patch.DueDate = &due
	}

	res := m.App.Tasks.Update(m.ctx, m.FormState.EditingTaskID, patch)
	if !res.Found {
		m.NotificationState.Add(state.LevelWarning, "Task no longer exists")
		return
	}
	m.reportPersist(res)
	m.clampSelection()
}

// reopenIfCompleted lets the user fix a value after huh finished the form
func (m Model) reopenIfCompleted() {
	if m.FormState.Form != nil && m.FormState.Form.State != huh.StateNormal {
		m.FormState.Form.State = huh.StateNormal
	}
}

func (m Model) closeTaskForm() {
	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
}
