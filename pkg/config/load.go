package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/art-timeline/pkg/viewport"
)

const appName = "art-timeline"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/art-timeline/config.toml
//  2. ~/.config/art-timeline/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing file
// yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader. Keys not present in
// the document keep their defaults; unknown keys are an error.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	if md.IsDefined("layout", "preset") {
		applyLayoutPreset(cfg, md)
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	cacheDir := filepath.Join(xdgCacheHome(home), appName)

	return &Config{
		General: GeneralConfig{
			LogLevel:      "info",
			CacheDir:      cacheDir,
			StatusTimeout: Duration{2 * time.Second},
		},
		Viewport: ViewportConfig{
			StartYear: viewport.DefaultStartYear,
			EndYear:   viewport.DefaultEndYear,
		},
		Zoom: ZoomConfig{
			WheelIn:     viewport.WheelFactors.In,
			WheelOut:    viewport.WheelFactors.Out,
			ButtonIn:    viewport.ButtonFactors.In,
			ButtonOut:   viewport.ButtonFactors.Out,
			PanFraction: 0.1,
		},
		Layout: LayoutPreset("full"),
		Theme: ThemeConfig{
			Name: "default",
		},
		Image: ImageConfig{
			Protocol:       "auto",
			MaxCacheSizeMB: 32,
			Width:          40,
			Height:         16,
		},
	}
}

// applyLayoutPreset fills layout fields from the named preset unless the
// document set them explicitly.
func applyLayoutPreset(cfg *Config, md toml.MetaData) {
	p := LayoutPreset(cfg.Layout.Preset)
	if !md.IsDefined("layout", "show_detail") {
		cfg.Layout.ShowDetail = p.ShowDetail
	}
	if !md.IsDefined("layout", "show_indicator") {
		cfg.Layout.ShowIndicator = p.ShowIndicator
	}
	if !md.IsDefined("layout", "detail_ratio") {
		cfg.Layout.DetailRatio = p.DetailRatio
	}
	if !md.IsDefined("layout", "lane_height") {
		cfg.Layout.LaneHeight = p.LaneHeight
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ART_TIMELINE_PROTOCOL"); v != "" {
		cfg.Image.Protocol = v
	}
	if v := os.Getenv("ART_TIMELINE_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("ART_TIMELINE_DATASET"); v != "" {
		cfg.General.Dataset = v
	}
}

// Window returns the initial viewport the configuration describes,
// normalised so that it satisfies the range limits.
func (c *Config) Window() viewport.Viewport {
	if c.Viewport.Preset != "" {
		if w, ok := WindowPreset(c.Viewport.Preset); ok {
			return w
		}
	}
	return viewport.Normalize(viewport.Viewport{
		StartYear: c.Viewport.StartYear,
		EndYear:   c.Viewport.EndYear,
	})
}

// WheelFactors returns the configured wheel step factors.
func (c *Config) WheelFactors() viewport.Factors {
	return viewport.Factors{In: c.Zoom.WheelIn, Out: c.Zoom.WheelOut}
}

// ButtonFactors returns the configured button step factors.
func (c *Config) ButtonFactors() viewport.Factors {
	return viewport.Factors{In: c.Zoom.ButtonIn, Out: c.Zoom.ButtonOut}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appName, "config.toml"))

	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgCacheHome returns XDG_CACHE_HOME or ~/.cache as fallback.
func xdgCacheHome(home string) string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".cache")
}
