package app

import "gitlab.com/tinyland/lab/art-timeline/pkg/surface"

// geometry is the row layout of one frame. Rows set to -1 are not shown.
type geometry struct {
	header    int
	ruler     int
	canvas    int
	canvasH   int
	indicator int
	detail    int
	detailH   int
	status    int
	// fits is false when the terminal cannot hold the ruler and canvas.
	fits bool
}

// minDetailRows is the smallest useful era panel: a border and three rows.
const minDetailRows = 5

func (m Model) geometry() geometry {
	g := geometry{
		header:    0,
		ruler:     1,
		canvas:    1 + surface.RulerHeight,
		canvasH:   surface.CanvasHeight(m.scene()),
		indicator: -1,
		detail:    -1,
		status:    m.height - 1,
	}
	next := g.canvas + g.canvasH
	if m.layout.ShowIndicator {
		g.indicator = next
		next++
	}
	g.fits = m.width >= minWidth && next <= g.status

	if m.layout.ShowDetail && g.fits {
		avail := g.status - next
		want := max(m.height*m.layout.DetailRatio/100, minDetailRows)
		if h := min(avail, want); h >= minDetailRows {
			g.detail, g.detailH = next, h
		}
	}
	return g
}

// onTimeline reports whether row y belongs to the ruler, the canvas or the
// range indicator, the rows that pan and zoom.
func (g geometry) onTimeline(y int) bool {
	if g.indicator >= 0 && y == g.indicator {
		return true
	}
	return y >= g.ruler && y < g.canvas+g.canvasH
}

func (g geometry) onCanvas(y int) bool {
	return y >= g.canvas && y < g.canvas+g.canvasH
}

// onDetail reports whether row y is inside the era panel's border.
func (g geometry) onDetail(y int) bool {
	return g.detailH > 0 && y > g.detail && y < g.detail+g.detailH-1
}
