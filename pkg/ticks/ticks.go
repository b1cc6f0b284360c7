// Package ticks plans ruler graduations for a visible year range: it picks a
// human-meaningful spacing, enumerates tick positions, and classifies each
// tick as major or minor.
package ticks

import (
	"math"

	"gitlab.com/tinyland/lab/art-timeline/pkg/calendar"
)

// MaxTicks bounds the number of ticks Generate returns. Truncation near the
// far end of a range is accepted in exchange for bounded render cost.
const MaxTicks = 500

// labelNudge shifts a tick forward before labelling so that a tick computed
// as 2020.08333 (Feb) that lands a few ulps short is not labelled Jan.
const labelNudge = 1e-9

// majorTolerance is how close to a year (or month) boundary a tick must be
// to count as major.
const majorTolerance = 1e-3

// Sub-year spacings.
const (
	Quarter = 0.25
	Month   = 1.0 / 12
	Week    = 1.0 / 52
	Day     = 1.0 / 365
)

// step is one row of the interval table: ranges strictly greater than
// above use interval.
type step struct {
	above    float64
	interval float64
}

var intervalTable = []step{
	{10000, 1000},
	{2000, 500},
	{500, 100},
	{100, 20},
	{40, 5},
	{10, 1},
	{2, Quarter},
	{0.5, Month},
	{0.1, Week},
}

// ChooseInterval returns the tick spacing in years for a visible range.
// It is a non-increasing step function of rangeYears.
func ChooseInterval(rangeYears float64) float64 {
	for _, s := range intervalTable {
		if rangeYears > s.above {
			return s.interval
		}
	}
	return Day
}

// Generate enumerates ticks from the smallest multiple of interval that is
// >= start up to end inclusive, capped at MaxTicks. A non-positive or
// non-finite interval, or an inverted range, yields nil.
func Generate(start, end, interval float64) []float64 {
	if !(interval > 0) || math.IsInf(interval, 0) {
		return nil
	}
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return nil
	}
	if end < start {
		return nil
	}

	first := math.Ceil(start/interval) * interval

	var out []float64
	for i := 0; i < MaxTicks; i++ {
		tick := first + float64(i)*interval
		if tick > end {
			break
		}
		out = append(out, tick)
	}
	return out
}

// IsMajor reports whether tick sits on a whole-year boundary, or, when the
// spacing is below a year, on a whole-month boundary. It only drives visual
// weight.
func IsMajor(tick, interval float64) bool {
	if nearInteger(tick) {
		return true
	}
	return interval < 1 && nearInteger(tick*12)
}

func nearInteger(v float64) bool {
	frac := math.Abs(math.Mod(v, 1))
	return frac < majorTolerance || 1-frac < majorTolerance
}

// LabelPrecision picks the label precision for ticks spaced interval apart:
// day for spacings finer than a month, month for sub-year spacings, year
// otherwise.
func LabelPrecision(interval float64) calendar.Precision {
	switch {
	case interval < Month-majorTolerance:
		return calendar.Day
	case interval < 1:
		return calendar.Month
	default:
		return calendar.Year
	}
}

// Tick is one planned graduation.
type Tick struct {
	Year  float64
	Major bool
	Label string
}

// Plan chooses an interval for [start, end] and returns the labelled ticks
// together with the interval used.
func Plan(start, end float64) ([]Tick, float64) {
	interval := ChooseInterval(end - start)
	precision := LabelPrecision(interval)

	years := Generate(start, end, interval)
	out := make([]Tick, 0, len(years))
	for _, y := range years {
		out = append(out, Tick{
			Year:  y,
			Major: IsMajor(y, interval),
			Label: calendar.Format(y+labelNudge, precision),
		})
	}
	return out, interval
}
