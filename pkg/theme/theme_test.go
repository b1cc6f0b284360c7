package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

const thTestTOML = `
name = "sepia"

[base]
background = "#20170f"
foreground = "#eadbc8"
dim = "#7a6a58"
accent = "#c08a3e"

[ruler]
line = "#4a3c2e"
tick_major = "#eadbc8"
tick_minor = "#7a6a58"
label = "#b9a78f"

[canvas]
lane_guide = "#2b2017"
event_marker = "#c0392b"
event_selected = "#f4d03f"
hover_marker = "#e74c3c"

[panel]
border = "#3d2f22"
indicator = "#eadbc8"
modal = "#c08a3e"

[help]
notice = "#f4d03f"
key = "#c08a3e"
desc = "#7a6a58"
`

func TestGetDefault(t *testing.T) {
	th := Get("default")
	if th.Name != "default" {
		t.Errorf("Get(\"default\").Name = %q", th.Name)
	}
	if th.Accent != "#d4a72c" {
		t.Errorf("Get(\"default\").Accent = %q, want %q", th.Accent, "#d4a72c")
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	if Get("NORD").Name != "nord" {
		t.Error("Get should ignore case")
	}
}

func TestGetUnknownFallsBackToDefault(t *testing.T) {
	if th := Get("unknown-theme-xyz"); th.Name != "default" {
		t.Errorf("Get(unknown) = %q, want default", th.Name)
	}
	if _, ok := Lookup("unknown-theme-xyz"); ok {
		t.Error("Lookup(unknown) should report false")
	}
}

func TestNamesIncludesBuiltins(t *testing.T) {
	names := strings.Join(Names(), ",")
	for _, want := range []string{"default", "dracula", "gruvbox", "nord", "parchment"} {
		if !strings.Contains(names, want) {
			t.Errorf("Names() = %s, missing %s", names, want)
		}
	}
}

func TestSetCurrent(t *testing.T) {
	defer SetCurrent("default")
	SetCurrent("parchment")
	if Current.Name != "parchment" {
		t.Errorf("Current.Name = %q after SetCurrent(parchment)", Current.Name)
	}
}

func TestBuiltinsValidate(t *testing.T) {
	for _, name := range []string{"default", "parchment", "gruvbox", "nord", "dracula"} {
		if err := thValidateTheme(Get(name)); err != nil {
			t.Errorf("builtin %s: %v", name, err)
		}
	}
}

func TestTo256Color(t *testing.T) {
	tests := []struct {
		hex, want string
	}{
		{"#ff0000", "196"},
		{"#00ff00", "46"},
		{"#000000", "16"},
		{"#ffffff", "231"},
		{"#808080", "244"},
		{"#767676", "243"},
		{"#303030", "236"},
		{"#050505", "232"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		if got := thTo256Color(tt.hex); got != tt.want {
			t.Errorf("thTo256Color(%q) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

func TestAdapt(t *testing.T) {
	orig := Get("gruvbox")
	if got := Adapt(orig, 24); got != orig {
		t.Error("Adapt at 24-bit should not change the theme")
	}

	adapted := Adapt(orig, 8)
	for _, f := range adapted.thColorFields() {
		if strings.HasPrefix(*f.ptr, "#") {
			t.Errorf("field %s still hex after Adapt: %q", f.name, *f.ptr)
		}
	}
	if Get("gruvbox").Background != "#282828" {
		t.Error("Adapt must not modify the registered theme")
	}
}

func TestAdaptColor(t *testing.T) {
	if got := AdaptColor("#ff0000", 24); got != "#ff0000" {
		t.Errorf("AdaptColor 24-bit = %q", got)
	}
	if got := AdaptColor("#ff0000", 8); got != "196" {
		t.Errorf("AdaptColor 8-bit = %q", got)
	}
}

func TestAdaptColorSixteen(t *testing.T) {
	if got := AdaptColor("#ff0000", 4); got != "9" {
		t.Errorf("AdaptColor 4-bit = %q, want 9", got)
	}
	if got := AdaptColor("brown", 4); got != "brown" {
		t.Errorf("AdaptColor of a name = %q", got)
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		bg, want string
	}{
		{"#f4fbf4", "#1e1e1e"},
		{"#101010", "#d4d4d4"},
		{"#556B2F", "#d4d4d4"},
		{"nope", "#d4d4d4"},
	}
	for _, tt := range tests {
		if got := Contrast(tt.bg, "#d4d4d4", "#1e1e1e"); got != tt.want {
			t.Errorf("Contrast(%q) = %q, want %q", tt.bg, got, tt.want)
		}
	}
}

func TestColorDepth(t *testing.T) {
	tests := []struct {
		p    termenv.Profile
		want int
	}{
		{termenv.TrueColor, 24},
		{termenv.ANSI256, 8},
		{termenv.ANSI, 4},
		{termenv.Ascii, 1},
	}
	for _, tt := range tests {
		if got := ColorDepth(tt.p); got != tt.want {
			t.Errorf("ColorDepth(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestLoadFromTOMLValid(t *testing.T) {
	th, err := LoadFromTOML([]byte(thTestTOML))
	if err != nil {
		t.Fatalf("LoadFromTOML: %v", err)
	}
	if th.Name != "sepia" || th.TickLabel != "#b9a78f" || th.HelpDesc != "#7a6a58" {
		t.Errorf("unexpected theme: %+v", th)
	}
}

func TestLoadFromTOMLMissingField(t *testing.T) {
	data := strings.Replace(thTestTOML, `hover_marker = "#e74c3c"`, "", 1)
	_, err := LoadFromTOML([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "hover_marker") {
		t.Errorf("err = %v, want missing hover_marker", err)
	}
}

func TestLoadFromTOMLInvalidHexColor(t *testing.T) {
	data := strings.Replace(thTestTOML, `"#20170f"`, `"brown"`, 1)
	_, err := LoadFromTOML([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "invalid hex color") {
		t.Errorf("err = %v, want invalid hex color", err)
	}
}

func TestLoadFromTOMLSyntaxError(t *testing.T) {
	if _, err := LoadFromTOML([]byte("name = ")); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveToTOMLRoundtrip(t *testing.T) {
	for _, name := range Names() {
		original := Get(name)
		data, err := SaveToTOML(original)
		if err != nil {
			t.Fatalf("SaveToTOML(%s): %v", name, err)
		}
		loaded, err := LoadFromTOML(data)
		if err != nil {
			t.Fatalf("LoadFromTOML(%s roundtrip): %v", name, err)
		}
		if loaded != original {
			t.Errorf("roundtrip %s:\n got %+v\nwant %+v", name, loaded, original)
		}
	}
}

func TestLoadFileRegisters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sepia.toml")
	if err := os.WriteFile(path, []byte(thTestTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if th, ok := Lookup("sepia"); !ok || th.Accent != "#c08a3e" {
		t.Errorf("Lookup(sepia) = %+v, %v", th, ok)
	}
}

func TestStylesColorFallback(t *testing.T) {
	s := NewStyles(Get("default"), 24)
	if got := s.Color("not-hex"); got.GetForeground() != s.Text.GetForeground() {
		t.Error("invalid dataset colour should fall back to the text style")
	}
	if s.Theme.Accent != "#d4a72c" {
		t.Errorf("Styles.Theme.Accent = %q", s.Theme.Accent)
	}

	low := NewStyles(Get("default"), 8)
	if strings.HasPrefix(low.Theme.Accent, "#") {
		t.Error("NewStyles at 8-bit should adapt the palette")
	}
}
