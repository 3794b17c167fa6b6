package huhforms

import (
	"image/color"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/flowlist/internal/config/colors"
)

// CreateFormTheme builds the task form theme from the active color scheme.
// The add form is drawn in the scheme's create color and the edit form in its
// edit color, matching the dialogs in the list view.
func CreateFormTheme(scheme colors.ColorScheme, editing bool) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		frame := formFrameColor(scheme, editing)
		subtle := lipgloss.Color(scheme.Subtle)
		normal := lipgloss.Color(scheme.Normal)
		errorColor := lipgloss.Color(scheme.ErrorFg)

		t.Focused.Base = t.Focused.Base.BorderForeground(frame)
		t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color(scheme.Title)).Bold(true)
		t.Focused.Description = t.Focused.Description.Foreground(subtle)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorColor)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorColor)

		// Priority picker
		t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(frame)
		t.Focused.Option = t.Focused.Option.Foreground(normal)
		t.Focused.SelectedOption = t.Focused.SelectedOption.
			Foreground(lipgloss.Color(scheme.Accent)).
			Background(lipgloss.Color(scheme.SelectedBg))

		// Confirm buttons
		t.Focused.FocusedButton = t.Focused.FocusedButton.
			Foreground(lipgloss.Color(scheme.Background)).
			Background(frame).
			Bold(true)
		t.Focused.BlurredButton = t.Focused.BlurredButton.
			Foreground(normal).
			Background(lipgloss.Color(scheme.Surface))

		t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(frame)
		t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)
		t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(frame)
		t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(normal)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle).Bold(false)
		t.Blurred.SelectedOption = t.Blurred.SelectedOption.UnsetBackground()

		return t
	})
}

func formFrameColor(scheme colors.ColorScheme, editing bool) color.Color {
	if editing {
		return lipgloss.Color(scheme.Edit)
	}
	return lipgloss.Color(scheme.Create)
}
