package surface

import (
	"gitlab.com/tinyland/lab/art-timeline/pkg/projection"
	"gitlab.com/tinyland/lab/art-timeline/pkg/ticks"
)

// RulerHeight is the number of rows Ruler renders: labels, tick marks and
// the baseline carrying the highlight band.
const RulerHeight = 3

const (
	rulerLabelRow = 0
	rulerTickRow  = 1
	rulerBaseRow  = 2
)

// Ruler glyphs.
const (
	glyphMajor    = '│'
	glyphMinor    = '╷'
	glyphBaseline = '─'
	glyphBand     = '━'
	glyphHoverEvt = '▼'
)

// rulerTick is a planned tick resolved to a column.
type rulerTick struct {
	ticks.Tick
	col int
}

// placedTicks returns the ticks of the current window that land on the
// surface. Ticks outside the buffered window are culled first.
func placedTicks(s Scene) []rulerTick {
	v := s.Viewport
	planned, _ := ticks.Plan(v.StartYear, v.EndYear)
	out := make([]rulerTick, 0, len(planned))
	for _, t := range planned {
		if !projection.Visible(projection.ToPercent(t.Year, v), projection.TickBuffer) {
			continue
		}
		col := projection.ToColumn(t.Year, v, s.Width)
		if col < 0 || col >= s.Width {
			continue
		}
		out = append(out, rulerTick{Tick: t, col: col})
	}
	return out
}

// Ruler renders the tick ruler for the scene.
func Ruler(s Scene) string {
	g := newGrid(s.Width, RulerHeight)
	if s.Width <= 0 {
		return g.String()
	}
	st := s.Styles

	lineID := g.style("ruler.line", st.RulerLine)
	g.fill(0, s.Width-1, rulerBaseRow, glyphBaseline, lineID)

	placed := placedTicks(s)
	majorID := g.style("tick.major", st.TickMajor)
	minorID := g.style("tick.minor", st.TickMinor)
	for _, t := range placed {
		if t.Major {
			g.set(t.col, rulerTickRow, glyphMajor, majorID)
		} else {
			g.set(t.col, rulerTickRow, glyphMinor, minorID)
		}
	}

	drawTickLabels(g, placed, g.style("tick.label", st.TickLabel))

	if m, ok := s.hoveredMovement(); ok {
		if from, to, ok := projection.ColumnSpan(m.StartYear, m.EndYear, s.Viewport, s.Width); ok {
			g.fill(from, to, rulerBaseRow, glyphBand, g.style("band."+m.ID, st.Color(m.Color).Bold(true)))
		}
	}
	if ref, ok := s.hoveredEvent(); ok {
		col := projection.ToColumn(ref.Event.Year, s.Viewport, s.Width)
		g.set(col, rulerTickRow, glyphHoverEvt, g.style("hover", st.Hover))
	}
	return g.String()
}

// drawTickLabels centres labels over their ticks. Major labels are placed
// first; minor labels fill the gaps left between them. A label is dropped
// rather than allowed to touch a neighbour.
func drawTickLabels(g *grid, placed []rulerTick, label styleID) {
	taken := make([]bool, g.w)
	free := func(from, to int) bool {
		for x := max(from-1, 0); x <= min(to+1, g.w-1); x++ {
			if taken[x] {
				return false
			}
		}
		return true
	}
	place := func(t rulerTick) {
		w := visibleLen(t.Label)
		if w == 0 || w > g.w {
			return
		}
		from := min(max(t.col-w/2, 0), g.w-w)
		to := from + w - 1
		if !free(from, to) {
			return
		}
		g.text(from, rulerLabelRow, t.Label, to+1, label)
		for x := from; x <= to; x++ {
			taken[x] = true
		}
	}
	for _, t := range placed {
		if t.Major {
			place(t)
		}
	}
	for _, t := range placed {
		if !t.Major {
			place(t)
		}
	}
}
