// Package theme holds the named colour palettes used by every surface.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete colour palette for the timeline. Era and
// movement colours come from the dataset; the theme covers everything else.
type Theme struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#1a1b26"
	Foreground string
	Dim        string // inactive eras, minor labels
	Accent     string // title, buttons, focused rows

	// Ruler
	RulerLine string
	TickMajor string
	TickMinor string
	TickLabel string

	// Canvas
	LaneGuide     string // faint swimlane separators
	EventMarker   string
	EventSelected string
	HoverMarker   string // ruler marker for the hovered event

	// Panels
	Border    string
	Indicator string // floating range indicator text
	Modal     string // modal border

	// Status line
	Notice   string
	HelpKey  string
	HelpDesc string
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
	Current = thDefaultTheme()
}

// Get returns a named theme, falling back to "default" if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Lookup returns a named theme and whether it exists.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// Register adds a theme, typically one loaded from a file, to the registry
// under its lowercase name. An existing theme of the same name is replaced.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

// thColorField pairs a TOML-style field name with a pointer into a Theme.
type thColorField struct {
	name string
	ptr  *string
}

// thColorFields lists every colour field of t in a fixed order.
func (t *Theme) thColorFields() []thColorField {
	return []thColorField{
		{"background", &t.Background},
		{"foreground", &t.Foreground},
		{"dim", &t.Dim},
		{"accent", &t.Accent},
		{"ruler_line", &t.RulerLine},
		{"tick_major", &t.TickMajor},
		{"tick_minor", &t.TickMinor},
		{"tick_label", &t.TickLabel},
		{"lane_guide", &t.LaneGuide},
		{"event_marker", &t.EventMarker},
		{"event_selected", &t.EventSelected},
		{"hover_marker", &t.HoverMarker},
		{"border", &t.Border},
		{"indicator", &t.Indicator},
		{"modal", &t.Modal},
		{"notice", &t.Notice},
		{"help_key", &t.HelpKey},
		{"help_desc", &t.HelpDesc},
	}
}
