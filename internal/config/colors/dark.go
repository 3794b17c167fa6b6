package colors

// Dark returns the dark color scheme (purple accent on charcoal)
func Dark() *ColorScheme {
	return &ColorScheme{
		Preset: "dark",

		// Primary
		Accent: "#874BFD",

		// Background
		Background: "#1C1C1C",
		Surface:    "#262626",

		// Semantic
		Create:  "#5FD75F",
		Edit:    "#5F87D7",
		Delete:  "#FF5F5F",
		Overdue: "#FFAF00",

		// UI elements
		Border:         "#585858",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",

		// Text
		Title:  "#D75FD7",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		// Status line
		InfoFg:    "#00AFFF",
		WarningFg: "#FFD700",
		ErrorFg:   "#FF5F5F",
	}
}
