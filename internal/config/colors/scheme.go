package colors

// ColorScheme defines all configurable color values for one theme
type ColorScheme struct {
	// Preset name ("light" or "dark")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Backgrounds
	Background string `yaml:"background"`
	Surface    string `yaml:"surface"` // task rows and dialogs

	// Semantic colors
	Create  string `yaml:"create"`  // Green - creation dialogs, completed tasks
	Edit    string `yaml:"edit"`    // Blue - edit dialogs
	Delete  string `yaml:"delete"`  // Red - delete confirmations
	Overdue string `yaml:"overdue"` // Due date in the past

	// UI element colors
	Border         string `yaml:"border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status line colors
	InfoFg    string `yaml:"info_fg"`
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "light":
		return Light()
	default:
		return Dark()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	c.MergeMissing(GetPreset(c.Preset))
}

// MergeMissing copies every color from base that c leaves empty
func (c *ColorScheme) MergeMissing(base *ColorScheme) {
	for _, f := range c.fields(base) {
		if *f.dst == "" {
			*f.dst = *f.src
		}
	}
}

// MergeFrom overrides c with every non-empty color of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	for _, f := range c.fields(&other) {
		if *f.src != "" {
			*f.dst = *f.src
		}
	}
}

type fieldPair struct {
	dst, src *string
}

// fields pairs each color of c with the same color of o
func (c *ColorScheme) fields(o *ColorScheme) []fieldPair {
	return []fieldPair{
		{&c.Accent, &o.Accent},
		{&c.Background, &o.Background},
		{&c.Surface, &o.Surface},
		{&c.Create, &o.Create},
		{&c.Edit, &o.Edit},
		{&c.Delete, &o.Delete},
		{&c.Overdue, &o.Overdue},
		{&c.Border, &o.Border},
		{&c.SelectedBorder, &o.SelectedBorder},
		{&c.SelectedBg, &o.SelectedBg},
		{&c.Title, &o.Title},
		{&c.Subtle, &o.Subtle},
		{&c.Normal, &o.Normal},
		{&c.InfoFg, &o.InfoFg},
		{&c.WarningFg, &o.WarningFg},
		{&c.ErrorFg, &o.ErrorFg},
	}
}
