// Package projection maps years onto positions within a viewport. Every
// surface (ruler, canvas, indicator, SVG export) goes through these functions
// so that ticks, swimlanes and markers agree for any given window.
package projection

import (
	"math"

	"gitlab.com/tinyland/lab/art-timeline/pkg/viewport"
)

// Visibility buffers, in percent beyond [0, 100].
const (
	EventBuffer = 2.0
	TickBuffer  = 5.0
)

// ToPercent returns the position of year within v as a percentage of the
// window width. Off-screen years fall outside [0, 100]. A degenerate window
// yields 0.
func ToPercent(year float64, v viewport.Viewport) float64 {
	r := v.Range()
	if !(r > 0) {
		return 0
	}
	if year == v.EndYear {
		return 100
	}
	return (year - v.StartYear) / r * 100
}

// FromPercent is the inverse of ToPercent.
func FromPercent(pct float64, v viewport.Viewport) float64 {
	return v.StartYear + v.Range()*pct/100
}

// ToColumn maps year to a cell column on a surface width cells wide. The
// result may lie outside [0, width) for off-screen years.
func ToColumn(year float64, v viewport.Viewport, width int) int {
	if width <= 0 {
		return 0
	}
	col := math.Floor(ToPercent(year, v) * float64(width) / 100)
	switch {
	case math.IsNaN(col):
		return 0
	case col > math.MaxInt32:
		return math.MaxInt32
	case col < math.MinInt32:
		return math.MinInt32
	}
	return int(col)
}

// YearAtColumn returns the year at the centre of cell col.
func YearAtColumn(col int, v viewport.Viewport, width int) float64 {
	if width <= 0 {
		return v.Center()
	}
	return FromPercent((float64(col)+0.5)/float64(width)*100, v)
}

// Ratio returns the horizontal position of cell col as a fraction of the
// surface, the cursor ratio used for anchored zoom.
func Ratio(col, width int) float64 {
	if width <= 0 {
		return 0.5
	}
	r := (float64(col) + 0.5) / float64(width)
	return math.Max(0, math.Min(1, r))
}

// Span returns the left and right percentages of [start, end].
func Span(start, end float64, v viewport.Viewport) (left, right float64) {
	return ToPercent(start, v), ToPercent(end, v)
}

// Visible reports whether pct lies within [-buffer, 100+buffer].
func Visible(pct, buffer float64) bool {
	return pct >= -buffer && pct <= 100+buffer
}

// SpanVisible reports whether any part of [left, right] lies within
// [-buffer, 100+buffer].
func SpanVisible(left, right, buffer float64) bool {
	if left > right {
		left, right = right, left
	}
	return right >= -buffer && left <= 100+buffer
}

// ColumnSpan maps [start, end] to an inclusive cell range clipped to the
// surface. Spans narrower than a cell still occupy one. ok is false when the
// span lies entirely off the surface.
func ColumnSpan(start, end float64, v viewport.Viewport, width int) (from, to int, ok bool) {
	if width <= 0 {
		return 0, 0, false
	}
	if end < start {
		start, end = end, start
	}
	left, right := Span(start, end, v)
	if !SpanVisible(left, right, 0) {
		return 0, 0, false
	}
	from = ToColumn(start, v, width)
	to = ToColumn(end, v, width)
	if right >= 100 {
		to = width - 1
	}
	if to > from && ToPercent(end, v)*float64(width)/100 == float64(to) {
		// end falls exactly on a boundary; the cell to its right is outside
		to--
	}
	from = max(from, 0)
	to = min(to, width-1)
	if to < from {
		to = from
	}
	return from, to, true
}
