package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/flowlist/internal/config"
)

// keyMap holds the normal-mode bindings. It implements help.KeyMap so the
// help overlay lists exactly what the user configured.
type keyMap struct {
	Add         key.Binding
	Edit        key.Binding
	Toggle      key.Binding
	Delete      key.Binding
	View        key.Binding
	Up          key.Binding
	Down        key.Binding
	PrevFilter  key.Binding
	NextFilter  key.Binding
	JumpFilter  key.Binding
	ToggleTheme key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// newKeyMap builds bindings from the configured key mappings
func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Add: key.NewBinding(
			key.WithKeys(km.AddTask),
			key.WithHelp(km.AddTask, "add task"),
		),
		Edit: key.NewBinding(
			key.WithKeys(km.EditTask),
			key.WithHelp(km.EditTask, "edit task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(km.ToggleTask, "x"),
			key.WithHelp(km.ToggleTask+"/x", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys(km.DeleteTask),
			key.WithHelp(km.DeleteTask, "delete task"),
		),
		View: key.NewBinding(
			key.WithKeys(km.ViewTask),
			key.WithHelp(km.ViewTask, "view details"),
		),
		Up: key.NewBinding(
			key.WithKeys(km.PrevTask, "up"),
			key.WithHelp(km.PrevTask+"/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(km.NextTask, "down"),
			key.WithHelp(km.NextTask+"/↓", "down"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys(km.PrevFilter),
			key.WithHelp(km.PrevFilter, "previous filter"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys(km.NextFilter),
			key.WithHelp(km.NextFilter, "next filter"),
		),
		JumpFilter: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump to filter"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys(km.ToggleTheme),
			key.WithHelp(km.ToggleTheme, "toggle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.NextFilter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Toggle, k.Delete, k.View},
		{k.Up, k.Down, k.PrevFilter, k.NextFilter, k.JumpFilter},
		{k.ToggleTheme, k.Help, k.Quit},
	}
}
