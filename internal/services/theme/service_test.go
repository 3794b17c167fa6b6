package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/flowlist/internal/models"
	"github.com/thenoetrevino/flowlist/internal/testutil"
)

func TestInitialize_NoStoredValuePrefersDark(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewFakeKV()
	p := NewPreference(kv, WithDetector(StaticDetector(true)))

	load, persist := p.Initialize(ctx)

	if load.Theme != models.ThemeDark || load.Source != SourceEnvironment {
		t.Fatalf("Initialize() = %+v, want dark from environment", load)
	}
	if !persist.OK() {
		t.Errorf("initial theme not persisted: %v", persist.Err)
	}
	if raw, _ := kv.Raw(models.ThemeKey); raw != "dark" {
		t.Errorf("stored theme = %q, want dark", raw)
	}

	if th, _ := p.Toggle(ctx); th != models.ThemeLight {
		t.Errorf("first Toggle() = %s, want light", th)
	}
	if th, _ := p.Toggle(ctx); th != models.ThemeDark {
		t.Errorf("second Toggle() = %s, want dark", th)
	}
	if raw, _ := kv.Raw(models.ThemeKey); raw != "dark" {
		t.Errorf("stored theme after toggles = %q, want dark", raw)
	}
}

func TestInitialize_NoStoredValuePrefersLight(t *testing.T) {
	p := NewPreference(testutil.NewFakeKV(), WithDetector(StaticDetector(false)))

	load, _ := p.Initialize(context.Background())

	if load.Theme != models.ThemeLight {
		t.Errorf("Initialize() theme = %s, want light", load.Theme)
	}
}

func TestInitialize_StoredValueWins(t *testing.T) {
	kv := testutil.NewFakeKV()
	kv.Put(models.ThemeKey, "light")
	p := NewPreference(kv, WithDetector(StaticDetector(true)))

	load, _ := p.Initialize(context.Background())

	if load.Theme != models.ThemeLight || load.Source != SourceStored {
		t.Errorf("Initialize() = %+v, want stored light", load)
	}
	if load.Err != nil {
		t.Errorf("Initialize() err = %v, want nil", load.Err)
	}
}

func TestInitialize_InvalidStoredValueFallsThrough(t *testing.T) {
	tests := []string{"Dark", "", "purple", `"dark"`}

	for _, stored := range tests {
		kv := testutil.NewFakeKV()
		kv.Put(models.ThemeKey, stored)
		p := NewPreference(kv, WithDetector(StaticDetector(true)))

		load, _ := p.Initialize(context.Background())

		if load.Theme != models.ThemeDark || load.Source != SourceEnvironment {
			t.Errorf("stored %q: Initialize() = %+v, want dark from environment", stored, load)
		}
		if !errors.Is(load.Err, ErrInvalidStoredTheme) {
			t.Errorf("stored %q: err = %v, want ErrInvalidStoredTheme", stored, load.Err)
		}
		if raw, _ := kv.Raw(models.ThemeKey); raw != "dark" {
			t.Errorf("stored %q: value not repaired, got %q", stored, raw)
		}
	}
}

func TestInitialize_ReadFailureFallsThrough(t *testing.T) {
	kv := testutil.NewFakeKV()
	kv.Put(models.ThemeKey, "light")
	kv.FailGet = true
	p := NewPreference(kv, WithDetector(StaticDetector(true)))

	load, _ := p.Initialize(context.Background())

	if load.Theme != models.ThemeDark {
		t.Errorf("Initialize() theme = %s, want dark from environment", load.Theme)
	}
	if !errors.Is(load.Err, testutil.ErrInjected) {
		t.Errorf("Initialize() err = %v, want injected failure", load.Err)
	}
}

func TestWriteFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewFakeKV()
	kv.FailSet = true
	p := NewPreference(kv, WithDetector(StaticDetector(false)))

	_, persist := p.Initialize(ctx)
	if persist.OK() {
		t.Error("expected failed persist result")
	}

	th, persist := p.Toggle(ctx)
	if th != models.ThemeDark || p.Current() != models.ThemeDark {
		t.Errorf("Toggle() with failing storage = %s, want dark in memory", th)
	}
	if !errors.Is(persist.Err, testutil.ErrInjected) {
		t.Errorf("persist.Err = %v, want injected failure", persist.Err)
	}
}

func TestSet(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewFakeKV()
	p := NewPreference(kv, WithDetector(StaticDetector(false)))
	p.Initialize(ctx)

	if _, err := p.Set(ctx, models.ThemeDark); err != nil {
		t.Fatalf("Set(dark) failed: %v", err)
	}
	if p.Current() != models.ThemeDark {
		t.Errorf("Current() = %s, want dark", p.Current())
	}

	if _, err := p.Set(ctx, "sepia"); !errors.Is(err, models.ErrInvalidTheme) {
		t.Errorf("Set(sepia) err = %v, want ErrInvalidTheme", err)
	}
	if p.Current() != models.ThemeDark {
		t.Errorf("invalid Set changed the theme to %s", p.Current())
	}
}

func TestSubscribe_NotifiedOnEveryChange(t *testing.T) {
	ctx := context.Background()
	p := NewPreference(testutil.NewFakeKV(), WithDetector(StaticDetector(true)))

	var seen []models.Theme
	p.Subscribe(func(th models.Theme) { seen = append(seen, th) })
	p.Initialize(ctx)
	p.Toggle(ctx)

	want := []models.Theme{models.ThemeLight, models.ThemeDark, models.ThemeLight}
	if len(seen) != len(want) {
		t.Fatalf("observer saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("observer call %d = %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestEnvDetector(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		fallback bool
		want     bool
	}{
		{"unset uses fallback", nil, true, true},
		{"true overrides", map[string]string{PrefersDarkEnv: "true"}, false, true},
		{"zero overrides", map[string]string{PrefersDarkEnv: "0"}, true, false},
		{"dark word", map[string]string{PrefersDarkEnv: " Dark "}, false, true},
		{"off word", map[string]string{PrefersDarkEnv: "off"}, true, false},
		{"light word", map[string]string{PrefersDarkEnv: "LIGHT"}, true, false},
		{"garbage uses fallback", map[string]string{PrefersDarkEnv: "maybe"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := EnvDetector{
				Fallback: StaticDetector(tt.fallback),
				Lookup: func(k string) (string, bool) {
					v, ok := tt.env[k]
					return v, ok
				},
			}
			if got := d.PrefersDark(); got != tt.want {
				t.Errorf("PrefersDark() = %v, want %v", got, tt.want)
			}
		})
	}
}
