package surface

import (
	"gitlab.com/tinyland/lab/art-timeline/pkg/projection"
)

// markerReach is how many cells either side of a marker still hit it.
const markerReach = 1

// HitCanvas returns what lies under canvas cell (x, y), with y relative to
// the first canvas row. Later-drawn items win, matching what is visible.
func HitCanvas(s Scene, x, y int) Target {
	if s.Data == nil || x < 0 || x >= s.Width || y < 0 || y >= CanvasHeight(s) {
		return None
	}

	switch {
	case y == canvasEraRow:
		for i := len(s.Data.Eras) - 1; i >= 0; i-- {
			era := s.Data.Eras[i]
			from, to, ok := projection.ColumnSpan(era.StartYear, era.EndYear, s.Viewport, s.Width)
			if ok && x >= from && x <= to {
				return Target{Kind: TargetEra, EraID: era.ID}
			}
		}
	case y == markerRow(s):
		return hitMarker(s, x)
	default:
		lane := laneAt(s, y)
		for i := len(s.Data.Movements) - 1; i >= 0; i-- {
			m := s.Data.Movements[i]
			if m.Lane != lane {
				continue
			}
			from, to, ok := projection.ColumnSpan(m.StartYear, m.EndYear, s.Viewport, s.Width)
			if ok && x >= from && x <= to {
				return MovementTarget(m.ID)
			}
		}
	}
	return None
}

// hitMarker returns the marker nearest to x within markerReach. On a tie
// the later event wins, since it is drawn on top.
func hitMarker(s Scene, x int) Target {
	best, bestDist := None, markerReach+1
	for _, mk := range markers(s) {
		d := mk.col - x
		if d < 0 {
			d = -d
		}
		if d <= bestDist && d <= markerReach {
			best, bestDist = EventTarget(mk.ref.Event.ID), d
		}
	}
	return best
}
