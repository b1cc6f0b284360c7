package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Duration is a time.Duration read from TOML text. Besides Go duration
// strings ("2s", "1500ms") a bare number is taken as seconds, and "off"
// disables the timer.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	switch strings.ToLower(s) {
	case "", "off", "0":
		d.Duration = 0
		return nil
	}

	var parsed time.Duration
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(secs) || math.IsInf(secs, 0) {
			return fmt.Errorf("duration %q: not a number of seconds", s)
		}
		parsed = time.Duration(secs * float64(time.Second))
	} else if parsed, err = time.ParseDuration(s); err != nil {
		return fmt.Errorf("duration %q: want a value like 2s or 1500ms", s)
	}
	if parsed < 0 {
		return fmt.Errorf("duration %q: must not be negative", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler. A zero duration is
// written as "off".
func (d Duration) MarshalText() ([]byte, error) {
	if d.Duration == 0 {
		return []byte("off"), nil
	}
	return []byte(d.Duration.String()), nil
}
