package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Base   thTOMLBase   `toml:"base"`
	Ruler  thTOMLRuler  `toml:"ruler"`
	Canvas thTOMLCanvas `toml:"canvas"`
	Panel  thTOMLPanel  `toml:"panel"`
	Help   thTOMLHelp   `toml:"help"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLRuler struct {
	Line      string `toml:"line"`
	TickMajor string `toml:"tick_major"`
	TickMinor string `toml:"tick_minor"`
	Label     string `toml:"label"`
}

type thTOMLCanvas struct {
	LaneGuide     string `toml:"lane_guide"`
	EventMarker   string `toml:"event_marker"`
	EventSelected string `toml:"event_selected"`
	HoverMarker   string `toml:"hover_marker"`
}

type thTOMLPanel struct {
	Border    string `toml:"border"`
	Indicator string `toml:"indicator"`
	Modal     string `toml:"modal"`
}

type thTOMLHelp struct {
	Notice string `toml:"notice"`
	Key    string `toml:"key"`
	Desc   string `toml:"desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		RulerLine: tt.Ruler.Line,
		TickMajor: tt.Ruler.TickMajor,
		TickMinor: tt.Ruler.TickMinor,
		TickLabel: tt.Ruler.Label,

		LaneGuide:     tt.Canvas.LaneGuide,
		EventMarker:   tt.Canvas.EventMarker,
		EventSelected: tt.Canvas.EventSelected,
		HoverMarker:   tt.Canvas.HoverMarker,

		Border:    tt.Panel.Border,
		Indicator: tt.Panel.Indicator,
		Modal:     tt.Panel.Modal,

		Notice:   tt.Help.Notice,
		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a theme file and registers it.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	Register(t)
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Ruler: thTOMLRuler{
			Line:      t.RulerLine,
			TickMajor: t.TickMajor,
			TickMinor: t.TickMinor,
			Label:     t.TickLabel,
		},
		Canvas: thTOMLCanvas{
			LaneGuide:     t.LaneGuide,
			EventMarker:   t.EventMarker,
			EventSelected: t.EventSelected,
			HoverMarker:   t.HoverMarker,
		},
		Panel: thTOMLPanel{
			Border:    t.Border,
			Indicator: t.Indicator,
			Modal:     t.Modal,
		},
		Help: thTOMLHelp{
			Notice: t.Notice,
			Key:    t.HelpKey,
			Desc:   t.HelpDesc,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thValidateTheme checks that the name is set and every colour is #RRGGBB.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	for _, f := range t.thColorFields() {
		v := *f.ptr
		if v == "" {
			return fmt.Errorf("theme: missing required field %q", f.name)
		}
		if !thHexColorRegex.MatchString(v) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", v, f.name)
		}
	}
	return nil
}

// ValidHex reports whether s is a #RRGGBB colour.
func ValidHex(s string) bool {
	return thHexColorRegex.MatchString(s)
}
