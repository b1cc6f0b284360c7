// Package viewport owns the visible year window of the timeline and the
// arithmetic that changes it: cursor-anchored and centre-anchored zoom,
// pixel-based pan, and range clamping.
//
// A Viewport is an immutable value. Every operation returns a new Viewport;
// the Controller replaces its current value wholesale and notifies
// subscribers, so there is never a partially updated window.
package viewport

import (
	"fmt"
	"math"

	"gitlab.com/tinyland/lab/art-timeline/pkg/calendar"
)

// Range limits. MinZoomRange is roughly one day, which keeps day ticks
// (1/365 year) meaningful at full zoom.
const (
	MinZoomRange = 0.003
	MaxZoomRange = 50000.0
)

// Default window: the start of written history to the near future.
const (
	DefaultStartYear = -4000.0
	DefaultEndYear   = 2050.0
)

// Viewport is the visible inclusive year interval [StartYear, EndYear].
type Viewport struct {
	StartYear float64
	EndYear   float64
}

// Default returns the initial window.
func Default() Viewport {
	return Viewport{StartYear: DefaultStartYear, EndYear: DefaultEndYear}
}

// Range returns EndYear - StartYear.
func (v Viewport) Range() float64 {
	return v.EndYear - v.StartYear
}

// Center returns the midpoint year.
func (v Viewport) Center() float64 {
	return (v.StartYear + v.EndYear) / 2
}

// Valid reports whether both bounds are finite and EndYear > StartYear.
func (v Viewport) Valid() bool {
	if math.IsNaN(v.StartYear) || math.IsNaN(v.EndYear) ||
		math.IsInf(v.StartYear, 0) || math.IsInf(v.EndYear, 0) {
		return false
	}
	return v.EndYear > v.StartYear
}

// Contains reports whether year lies inside the window (inclusive).
func (v Viewport) Contains(year float64) bool {
	return year >= v.StartYear && year <= v.EndYear
}

// Overlaps reports whether [start, end] intersects the window. It is the
// three-way test used for era columns: start inside, end inside, or the span
// covering the whole window.
func (v Viewport) Overlaps(start, end float64) bool {
	return (start >= v.StartYear && start <= v.EndYear) ||
		(end >= v.StartYear && end <= v.EndYear) ||
		(start < v.StartYear && end > v.EndYear)
}

// String renders the window for logs.
func (v Viewport) String() string {
	return fmt.Sprintf("[%.4f, %.4f]", v.StartYear, v.EndYear)
}

// ClampRange limits r to [MinZoomRange, MaxZoomRange]. NaN clamps to the
// minimum.
func ClampRange(r float64) float64 {
	if math.IsNaN(r) || r < MinZoomRange {
		return MinZoomRange
	}
	if r > MaxZoomRange {
		return MaxZoomRange
	}
	return r
}

// Normalize repairs a window so that end > start and the range is legal:
// bounds are swapped if inverted, and the range is clamped around the
// centre. Non-finite input returns Default().
func Normalize(v Viewport) Viewport {
	if math.IsNaN(v.StartYear) || math.IsNaN(v.EndYear) ||
		math.IsInf(v.StartYear, 0) || math.IsInf(v.EndYear, 0) {
		return Default()
	}
	if v.EndYear < v.StartYear {
		v.StartYear, v.EndYear = v.EndYear, v.StartYear
	}

	r := v.Range()
	clamped := ClampRange(r)
	if clamped == r {
		return v
	}

	center := v.Center()
	return Viewport{StartYear: center - clamped/2, EndYear: center + clamped/2}
}

// PrecisionFor picks the date precision for labelling a window of the given
// range: day below 0.1 years, month below one year, year otherwise.
func PrecisionFor(rangeYears float64) calendar.Precision {
	switch {
	case rangeYears < 0.1:
		return calendar.Day
	case rangeYears < 1:
		return calendar.Month
	default:
		return calendar.Year
	}
}

// Precision is PrecisionFor(v.Range()).
func (v Viewport) Precision() calendar.Precision {
	return PrecisionFor(v.Range())
}

// Label renders "start – end" at the window's display precision, as shown
// by the floating range indicator.
func (v Viewport) Label() string {
	p := v.Precision()
	return calendar.Format(v.StartYear, p) + " – " + calendar.Format(v.EndYear, p)
}
