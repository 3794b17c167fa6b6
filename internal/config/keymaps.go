package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	EditTask   string `yaml:"edit_task"`
	ToggleTask string `yaml:"toggle_task"`
	DeleteTask string `yaml:"delete_task"`
	ViewTask   string `yaml:"view_task"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`
	PrevFilter string `yaml:"prev_filter"`
	NextFilter string `yaml:"next_filter"`

	// Other
	ToggleTheme string `yaml:"toggle_theme"`
	ShowHelp    string `yaml:"show_help"`
	Quit        string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:    "a",
		EditTask:   "e",
		ToggleTask: "space",
		DeleteTask: "d",
		ViewTask:   "enter",
		SaveForm:   "ctrl+s",

		// Navigation
		PrevTask:   "k",
		NextTask:   "j",
		PrevFilter: "shift+tab",
		NextFilter: "tab",

		// Other
		ToggleTheme: "t",
		ShowHelp:    "?",
		Quit:        "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.EditTask == "" {
		k.EditTask = defaults.EditTask
	}
	if k.ToggleTask == "" {
		k.ToggleTask = defaults.ToggleTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.ViewTask == "" {
		k.ViewTask = defaults.ViewTask
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.PrevFilter == "" {
		k.PrevFilter = defaults.PrevFilter
	}
	if k.NextFilter == "" {
		k.NextFilter = defaults.NextFilter
	}
	if k.ToggleTheme == "" {
		k.ToggleTheme = defaults.ToggleTheme
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
