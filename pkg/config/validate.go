package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/art-timeline/pkg/viewport"
)

var validProtocols = map[string]bool{
	"auto": true, "kitty": true, "iterm2": true, "sixel": true,
	"halfblocks": true, "none": true,
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := ParseLevel(c.General.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if c.Viewport.Preset != "" {
		if _, ok := WindowPreset(c.Viewport.Preset); !ok {
			errs = append(errs, fmt.Errorf("viewport.preset: unknown preset %q (have %s)",
				c.Viewport.Preset, strings.Join(WindowPresetNames(), ", ")))
		}
	} else if !(viewport.Viewport{StartYear: c.Viewport.StartYear, EndYear: c.Viewport.EndYear}).Valid() {
		errs = append(errs, fmt.Errorf("viewport: end_year %v must be after start_year %v",
			c.Viewport.EndYear, c.Viewport.StartYear))
	}

	errs = append(errs,
		checkFactor("zoom.wheel_in", c.Zoom.WheelIn, true),
		checkFactor("zoom.wheel_out", c.Zoom.WheelOut, false),
		checkFactor("zoom.button_in", c.Zoom.ButtonIn, true),
		checkFactor("zoom.button_out", c.Zoom.ButtonOut, false),
	)
	if !(c.Zoom.PanFraction > 0 && c.Zoom.PanFraction <= 1) {
		errs = append(errs, fmt.Errorf("zoom.pan_fraction: %v not in (0, 1]", c.Zoom.PanFraction))
	}

	if c.Layout.DetailRatio < 0 || c.Layout.DetailRatio > 90 {
		errs = append(errs, fmt.Errorf("layout.detail_ratio: %d not in [0, 90]", c.Layout.DetailRatio))
	}
	if c.Layout.LaneHeight < 1 || c.Layout.LaneHeight > 4 {
		errs = append(errs, fmt.Errorf("layout.lane_height: %d not in [1, 4]", c.Layout.LaneHeight))
	}

	if !validProtocols[strings.ToLower(c.Image.Protocol)] {
		errs = append(errs, fmt.Errorf("image.protocol: unknown protocol %q", c.Image.Protocol))
	}
	if c.Image.MaxCacheSizeMB < 0 {
		errs = append(errs, fmt.Errorf("image.max_cache_mb: %d is negative", c.Image.MaxCacheSizeMB))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// checkFactor requires zoom-in factors in (0, 1) and zoom-out factors above 1.
func checkFactor(name string, f float64, in bool) error {
	switch {
	case in && !(f > 0 && f < 1):
		return fmt.Errorf("%s: %v not in (0, 1)", name, f)
	case !in && !(f > 1):
		return fmt.Errorf("%s: %v must be greater than 1", name, f)
	}
	return nil
}

// ParseLevel maps a log_level string to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("general.log_level: unknown level %q", s)
}
