package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/art-timeline/pkg/viewport"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ART_TIMELINE_THEME", "ART_TIMELINE_DATASET", "ART_TIMELINE_PROTOCOL"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Window() != viewport.Default() {
		t.Errorf("Window() = %v, want %v", cfg.Window(), viewport.Default())
	}
	if cfg.WheelFactors() != viewport.WheelFactors || cfg.ButtonFactors() != viewport.ButtonFactors {
		t.Error("default factors should match the viewport package")
	}
	if cfg.General.StatusTimeout.Duration != 2*time.Second {
		t.Errorf("StatusTimeout = %v", cfg.General.StatusTimeout)
	}
}

func TestLoadFromReader(t *testing.T) {
	clearEnv(t)
	doc := `
[general]
log_level = "debug"
status_timeout = "750ms"

[viewport]
start_year = 1400
end_year = 1600

[zoom]
wheel_in = 0.5
pan_fraction = 0.25

[theme]
name = "nord"
`
	cfg, err := LoadFromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.General.LogLevel != "debug" || cfg.General.StatusTimeout.Duration != 750*time.Millisecond {
		t.Errorf("general = %+v", cfg.General)
	}
	if got := cfg.Window(); got.StartYear != 1400 || got.EndYear != 1600 {
		t.Errorf("Window() = %v", got)
	}
	if cfg.Zoom.WheelIn != 0.5 || cfg.Zoom.WheelOut != viewport.WheelFactors.Out {
		t.Errorf("zoom = %+v, untouched keys should keep defaults", cfg.Zoom)
	}
	if cfg.Theme.Name != "nord" {
		t.Errorf("theme = %q", cfg.Theme.Name)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFromReaderUnknownKey(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("[zoom]\nwheel_inn = 0.5\n"))
	if err == nil || !strings.Contains(err.Error(), "wheel_inn") {
		t.Errorf("err = %v, want unknown key error", err)
	}
}

func TestLoadFromReaderBadDuration(t *testing.T) {
	for _, doc := range []string{
		"[general]\nstatus_timeout = \"soon\"\n",
		"[general]\nstatus_timeout = \"-1s\"\n",
	} {
		if _, err := LoadFromReader(strings.NewReader(doc)); err == nil {
			t.Errorf("expected error for %q", doc)
		}
	}
}

func TestLayoutPresetFromFile(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromReader(strings.NewReader("[layout]\npreset = \"compact\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Layout.ShowDetail || !cfg.Layout.ShowIndicator {
		t.Errorf("compact layout = %+v", cfg.Layout)
	}

	cfg, err = LoadFromReader(strings.NewReader("[layout]\npreset = \"canvas\"\nlane_height = 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Layout.LaneHeight != 3 || cfg.Layout.ShowIndicator {
		t.Errorf("explicit keys should win over the preset: %+v", cfg.Layout)
	}
}

func TestLayoutPresetUnknownFallsBack(t *testing.T) {
	if got := LayoutPreset("nope"); got.Preset != "full" || !got.ShowDetail {
		t.Errorf("LayoutPreset(nope) = %+v", got)
	}
}

func TestWindowPresets(t *testing.T) {
	for _, name := range WindowPresetNames() {
		w, ok := WindowPreset(name)
		if !ok {
			t.Fatalf("preset %q missing", name)
		}
		if w != viewport.Normalize(w) {
			t.Errorf("preset %q = %v is not normalised", name, w)
		}
	}

	cfg := DefaultConfig()
	cfg.Viewport.Preset = "renaissance"
	if got := cfg.Window(); got.StartYear != 1380 {
		t.Errorf("Window() with preset = %v", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ART_TIMELINE_THEME", "dracula")
	t.Setenv("ART_TIMELINE_DATASET", "/tmp/set.yaml")
	t.Setenv("ART_TIMELINE_PROTOCOL", "sixel")

	cfg, err := LoadFromReader(strings.NewReader("[theme]\nname = \"nord\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme.Name != "dracula" || cfg.General.Dataset != "/tmp/set.yaml" || cfg.Image.Protocol != "sixel" {
		t.Errorf("env overrides not applied: %+v %+v %+v", cfg.Theme, cfg.General, cfg.Image)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should give defaults, got %v", err)
	}
	if cfg.Theme.Name != "default" {
		t.Errorf("theme = %q", cfg.Theme.Name)
	}
}

func TestLoadSearchPath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "art-timeline"), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "art-timeline", "config.toml")
	if err := os.WriteFile(path, []byte("[theme]\nname = \"gruvbox\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme.Name != "gruvbox" {
		t.Errorf("Load() theme = %q, want gruvbox", cfg.Theme.Name)
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.LogLevel = "chatty"
	cfg.Viewport.StartYear, cfg.Viewport.EndYear = 10, 5
	cfg.Zoom.WheelIn = 1.2
	cfg.Zoom.ButtonOut = 0.5
	cfg.Zoom.PanFraction = 0
	cfg.Image.Protocol = "braille"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"log_level", "end_year", "wheel_in", "button_out", "pan_fraction", "protocol"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestValidateUnknownWindowPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Viewport.Preset = "jurassic"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "jurassic") {
		t.Errorf("err = %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"debug", "INFO", "", "warn", "error"} {
		if _, err := ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q): %v", s, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
}

func TestDurationMarshalRoundTrip(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatal(err)
	}
	text, _ := d.MarshalText()
	if string(text) != "1m30s" {
		t.Errorf("MarshalText = %q", text)
	}
}

func TestDurationForms(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"1500ms", 1500 * time.Millisecond},
		{"3", 3 * time.Second},
		{"0.25", 250 * time.Millisecond},
		{"off", 0},
		{" 2s ", 2 * time.Second},
	}
	for _, tt := range tests {
		var d Duration
		if err := d.UnmarshalText([]byte(tt.in)); err != nil {
			t.Errorf("UnmarshalText(%q): %v", tt.in, err)
			continue
		}
		if d.Duration != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, d.Duration, tt.want)
		}
	}
	if _, err := (Duration{}).MarshalText(); err != nil {
		t.Fatal(err)
	}
	if text, _ := (Duration{}).MarshalText(); string(text) != "off" {
		t.Errorf("zero MarshalText = %q, want off", text)
	}
	var d Duration
	if err := d.UnmarshalText([]byte("-2")); err == nil {
		t.Error("negative seconds should fail")
	}
}
