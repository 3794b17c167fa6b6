package models

import (
	"fmt"
	"strings"
)

// Theme is the binary appearance setting
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is exactly light or dark
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the opposite theme. Anything that is not dark toggles to dark.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether t is the dark theme
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

func (t Theme) String() string {
	return string(t)
}

// ParseTheme maps user input to a Theme (case-insensitive)
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w '%s' (must be: light, dark)", ErrInvalidTheme, s)
	}
	return t, nil
}
