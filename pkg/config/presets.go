package config

import (
	"sort"

	"gitlab.com/tinyland/lab/art-timeline/pkg/viewport"
)

// LayoutPreset returns the layout for a named preset. Unknown names get
// "full".
//
//	full:    ruler, canvas, indicator, detail panel (35% of the body)
//	compact: ruler, canvas, indicator; one row per lane
//	canvas:  ruler and canvas only, two rows per lane
func LayoutPreset(name string) LayoutConfig {
	switch name {
	case "compact":
		return LayoutConfig{
			Preset:        "compact",
			ShowDetail:    false,
			ShowIndicator: true,
			LaneHeight:    1,
		}
	case "canvas":
		return LayoutConfig{
			Preset:     "canvas",
			LaneHeight: 2,
		}
	default:
		return LayoutConfig{
			Preset:        "full",
			ShowDetail:    true,
			ShowIndicator: true,
			DetailRatio:   35,
			LaneHeight:    1,
		}
	}
}

var windowPresets = map[string]viewport.Viewport{
	"all":         {StartYear: -41000, EndYear: 2050},
	"history":     {StartYear: viewport.DefaultStartYear, EndYear: viewport.DefaultEndYear},
	"ancient":     {StartYear: -4000, EndYear: 500},
	"medieval":    {StartYear: 350, EndYear: 1450},
	"renaissance": {StartYear: 1380, EndYear: 1620},
	"modern":      {StartYear: 1750, EndYear: 2030},
	"1889":        {StartYear: 1889, EndYear: 1890},
}

// WindowPreset returns the named initial window.
func WindowPreset(name string) (viewport.Viewport, bool) {
	w, ok := windowPresets[name]
	return w, ok
}

// WindowPresetNames returns the preset names in sorted order.
func WindowPresetNames() []string {
	names := make([]string, 0, len(windowPresets))
	for n := range windowPresets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
