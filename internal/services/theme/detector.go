package theme

import (
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/term"
	"github.com/lucasb-eyer/go-colorful"
)

// PrefersDarkEnv overrides environment detection when set to a boolean word
const PrefersDarkEnv = "FLOWLIST_PREFERS_DARK"

// Detector reports the environment's appearance preference
type Detector interface {
	PrefersDark() bool
}

// StaticDetector always answers the same
type StaticDetector bool

func (s StaticDetector) PrefersDark() bool { return bool(s) }

// TerminalDetector asks the terminal for its background color.
// When neither end is a terminal, or the terminal does not answer, the
// answer is light.
type TerminalDetector struct {
	In  *os.File
	Out *os.File
}

// PrefersDark queries the terminal background
func (d TerminalDetector) PrefersDark() bool {
	in, out := d.In, d.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if !term.IsTerminal(in.Fd()) && !term.IsTerminal(out.Fd()) {
		return false
	}

	bg, err := lipgloss.BackgroundColor(in, out)
	if err != nil {
		return false
	}
	return isDarkColor(bg)
}

// isDarkColor reports whether c has HSL lightness below one half.
// A nil color counts as light.
func isDarkColor(c color.Color) bool {
	if c == nil {
		return false
	}
	col, ok := colorful.MakeColor(c)
	if !ok {
		return false
	}
	_, _, l := col.Hsl()
	return l < 0.5
}

// EnvDetector consults FLOWLIST_PREFERS_DARK and falls back to another detector
type EnvDetector struct {
	Fallback Detector
	Lookup   func(string) (string, bool) // defaults to os.LookupEnv
}

// PrefersDark returns the env override when it parses, else the fallback's answer
func (d EnvDetector) PrefersDark() bool {
	lookup := d.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if raw, ok := lookup(PrefersDarkEnv); ok {
		if dark, ok := parseBool(raw); ok {
			return dark
		}
	}
	if d.Fallback == nil {
		return false
	}
	return d.Fallback.PrefersDark()
}

func parseBool(raw string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "dark":
		return true, true
	case "0", "false", "no", "off", "light":
		return false, true
	}
	return false, false
}

// DefaultDetector is the env override over terminal detection
func DefaultDetector() Detector {
	return EnvDetector{Fallback: TerminalDetector{}}
}
