// Package config provides TOML-based configuration for art-timeline.
package config

// Config is the top-level configuration.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Viewport ViewportConfig `toml:"viewport"`
	Zoom     ZoomConfig     `toml:"zoom"`
	Layout   LayoutConfig   `toml:"layout"`
	Theme    ThemeConfig    `toml:"theme"`
	Image    ImageConfig    `toml:"image"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel      string   `toml:"log_level"`
	CacheDir      string   `toml:"cache_dir"`
	Dataset       string   `toml:"dataset"`
	StatusTimeout Duration `toml:"status_timeout"`
}

// ViewportConfig sets the initial window. Preset, when set, wins over the
// explicit years.
type ViewportConfig struct {
	Preset    string  `toml:"preset"`
	StartYear float64 `toml:"start_year"`
	EndYear   float64 `toml:"end_year"`
}

// ZoomConfig holds the step factors and keyboard pan fraction.
type ZoomConfig struct {
	WheelIn     float64 `toml:"wheel_in"`
	WheelOut    float64 `toml:"wheel_out"`
	ButtonIn    float64 `toml:"button_in"`
	ButtonOut   float64 `toml:"button_out"`
	PanFraction float64 `toml:"pan_fraction"`
}

// LayoutConfig controls which panels are shown and how tall they are.
type LayoutConfig struct {
	Preset        string `toml:"preset"`
	ShowDetail    bool   `toml:"show_detail"`
	ShowIndicator bool   `toml:"show_indicator"`
	// DetailRatio is the share of the body height, in percent, given to the
	// detail panel.
	DetailRatio int `toml:"detail_ratio"`
	// LaneHeight is the number of rows each swimlane occupies.
	LaneHeight int `toml:"lane_height"`
}

// ThemeConfig selects a palette.
type ThemeConfig struct {
	Name string `toml:"name"`
	File string `toml:"file"`
}

// ImageConfig controls artwork previews in the event modal.
type ImageConfig struct {
	Protocol       string `toml:"protocol"`
	MaxCacheSizeMB int    `toml:"max_cache_mb"`
	Width          int    `toml:"width"`
	Height         int    `toml:"height"`
}
