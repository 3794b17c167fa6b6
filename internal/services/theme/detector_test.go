package theme

import (
	"context"
	"image/color"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/flowlist/internal/models"
	"github.com/thenoetrevino/flowlist/internal/testutil"
)

func pipeFiles(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	return r, w
}

func TestTerminalDetector_NoTerminalIsLight(t *testing.T) {
	r, w := pipeFiles(t)

	assert.False(t, TerminalDetector{In: r, Out: w}.PrefersDark())
}

func TestInitialize_PipedRunDefaultsToLight(t *testing.T) {
	r, w := pipeFiles(t)
	kv := testutil.NewFakeKV()
	detector := EnvDetector{
		Fallback: TerminalDetector{In: r, Out: w},
		Lookup:   func(string) (string, bool) { return "", false },
	}
	p := NewPreference(kv, WithDetector(detector))

	load, persist := p.Initialize(context.Background())

	assert.Equal(t, models.ThemeLight, load.Theme)
	assert.Equal(t, SourceEnvironment, load.Source)
	require.True(t, persist.OK())
	raw, _ := kv.Raw(models.ThemeKey)
	assert.Equal(t, "light", raw)
}

func TestIsDarkColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want bool
	}{
		{"nil", nil, false},
		{"black", color.RGBA{R: 0x1c, G: 0x1c, B: 0x1c, A: 0xff}, true},
		{"white", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"cream", color.RGBA{R: 0xf2, G: 0xec, B: 0xbc, A: 0xff}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDarkColor(tt.c))
		})
	}
}
