package viewport

import "math"

// Direction is the sense of a zoom step.
type Direction int

const (
	// In narrows the range.
	In Direction = iota
	// Out widens the range.
	Out
)

// String returns "in" or "out".
func (d Direction) String() string {
	if d == Out {
		return "out"
	}
	return "in"
}

// DirectionFromWheel maps a wheel delta to a zoom direction: positive deltas
// (scrolling down) zoom out.
func DirectionFromWheel(deltaY float64) Direction {
	if deltaY > 0 {
		return Out
	}
	return In
}

// Factors holds the multiplicative range change per zoom step.
type Factors struct {
	In  float64
	Out float64
}

// Step factors for wheel input and for the zoom buttons.
var (
	WheelFactors  = Factors{In: 0.9, Out: 1.1}
	ButtonFactors = Factors{In: 0.8, Out: 1.25}
)

// For returns the factor for d.
func (f Factors) For(d Direction) float64 {
	if d == Out {
		return f.Out
	}
	return f.In
}

// newRange applies a zoom step and clamps the result. Clamping happens before
// any bound is derived so the anchor math always uses a legal range.
func newRange(current float64, d Direction, f Factors) float64 {
	return ClampRange(current * f.For(d))
}

// ZoomAt zooms around the year under the cursor. cursorRatio is the
// cursor's horizontal position on the surface in [0,1]; values outside are
// clamped and NaN is treated as the centre. The year at cursorRatio maps to
// the same ratio before and after the zoom.
//
// An invalid input window is normalised first.
func ZoomAt(v Viewport, cursorRatio float64, d Direction, f Factors) Viewport {
	if !v.Valid() {
		v = Normalize(v)
	}
	cursorRatio = clampRatio(cursorRatio)

	current := v.Range()
	r := newRange(current, d, f)

	cursorYear := v.StartYear + current*cursorRatio
	start := cursorYear - r*cursorRatio
	return Viewport{StartYear: start, EndYear: start + r}
}

// ZoomCentered zooms around the midpoint of the window, as the zoom buttons
// do.
func ZoomCentered(v Viewport, d Direction, f Factors) Viewport {
	if !v.Valid() {
		v = Normalize(v)
	}
	r := newRange(v.Range(), d, f)
	center := v.Center()
	return Viewport{StartYear: center - r/2, EndYear: center + r/2}
}

func clampRatio(r float64) float64 {
	switch {
	case math.IsNaN(r):
		return 0.5
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}
