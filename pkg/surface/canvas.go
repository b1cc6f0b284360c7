package surface

import (
	"gitlab.com/tinyland/lab/art-timeline/pkg/dataset"
	"gitlab.com/tinyland/lab/art-timeline/pkg/projection"
)

// Canvas glyphs.
const (
	glyphEraGuide = '┊'
	glyphEvent    = '◆'
)

// The canvas is an era strip, the swimlanes, then a row of event markers.
const canvasEraRow = 0

// CanvasHeight returns the number of rows Canvas renders for s.
func CanvasHeight(s Scene) int {
	return 1 + laneCount(s)*s.laneHeight() + 1
}

func laneCount(s Scene) int {
	if s.Data == nil {
		return 0
	}
	return s.Data.Lanes()
}

func markerRow(s Scene) int {
	return CanvasHeight(s) - 1
}

// laneAt returns the lane under canvas row y, or -1.
func laneAt(s Scene, y int) int {
	if y <= canvasEraRow || y >= markerRow(s) {
		return -1
	}
	return (y - 1) / s.laneHeight()
}

// marker is an event placed on the marker row.
type marker struct {
	ref dataset.EventRef
	col int
}

// markers returns the events within the buffered window, by year.
func markers(s Scene) []marker {
	if s.Data == nil || s.Width <= 0 {
		return nil
	}
	var out []marker
	for _, ref := range s.Data.EventsByYear() {
		pct := projection.ToPercent(ref.Event.Year, s.Viewport)
		if !projection.Visible(pct, projection.EventBuffer) {
			continue
		}
		out = append(out, marker{ref: ref, col: projection.ToColumn(ref.Event.Year, s.Viewport, s.Width)})
	}
	return out
}

// Canvas renders the era strip, the movement swimlanes and the event
// markers.
func Canvas(s Scene) string {
	h := CanvasHeight(s)
	g := newGrid(s.Width, h)
	if s.Width <= 0 || s.Data == nil {
		return g.String()
	}
	st := s.Styles
	lh := s.laneHeight()
	lanes := laneCount(s)

	guideID := g.style("lane.guide", st.LaneGuide)
	for _, era := range s.Data.Eras {
		from, to, ok := projection.ColumnSpan(era.StartYear, era.EndYear, s.Viewport, s.Width)
		if !ok {
			continue
		}
		bandID := g.style("era."+era.ID, st.Background(era.ColorHex))
		g.fill(from, to, canvasEraRow, ' ', bandID)
		g.text(from+1, canvasEraRow, era.ShortTitle(), to, bandID)

		if from > 0 && projection.ToColumn(era.StartYear, s.Viewport, s.Width) == from {
			for y := 1; y < h-1; y++ {
				g.set(from, y, glyphEraGuide, guideID)
			}
		}
	}

	for _, m := range s.Data.Movements {
		if m.Lane < 0 || m.Lane >= lanes {
			continue
		}
		from, to, ok := projection.ColumnSpan(m.StartYear, m.EndYear, s.Viewport, s.Width)
		if !ok {
			continue
		}
		bar := st.Background(m.Color)
		key := "bar." + m.ID
		if s.Hover.IsMovement(m.ID) {
			bar = bar.Bold(true).Underline(true)
			key += ".hover"
		}
		barID := g.style(key, bar)
		top := 1 + m.Lane*lh
		for y := top; y < top+lh; y++ {
			g.fill(from, to, y, ' ', barID)
		}
		if to-from >= 2 {
			g.text(from+1, top, m.ShortName(), to, barID)
		}
	}

	row := markerRow(s)
	eventID := g.style("event", st.Event)
	var hovered, selected *marker
	all := markers(s)
	for i := range all {
		mk := &all[i]
		g.set(mk.col, row, glyphEvent, eventID)
		switch {
		case s.Selected.IsEvent(mk.ref.Event.ID):
			selected = mk
		case s.Hover.IsEvent(mk.ref.Event.ID):
			hovered = mk
		}
	}
	if hovered != nil {
		g.set(hovered.col, row, glyphEvent, g.style("hover", st.Hover))
	}
	if selected != nil {
		g.set(selected.col, row, glyphEvent, g.style("selected", st.Selected))
	}
	return g.String()
}
