package colors

// Light returns the light color scheme (ink on cream paper)
func Light() *ColorScheme {
	return &ColorScheme{
		Preset: "light",

		// Primary
		Accent: "#624C83",

		// Background
		Background: "#F2ECBC",
		Surface:    "#E7DBA0",

		// Semantic
		Create:  "#6F894E",
		Edit:    "#4D699B",
		Delete:  "#C84053",
		Overdue: "#CC6D00",

		// UI elements
		Border:         "#C7B98B",
		SelectedBorder: "#597B75",
		SelectedBg:     "#C7D7E0",

		// Text
		Title:  "#4D699B",
		Subtle: "#8A8980",
		Normal: "#545464",

		// Status line
		InfoFg:    "#597B75",
		WarningFg: "#E98A00",
		ErrorFg:   "#D7474B",
	}
}
