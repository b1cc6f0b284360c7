package surface

import (
	"strings"

	"gitlab.com/tinyland/lab/art-timeline/pkg/calendar"
	"gitlab.com/tinyland/lab/art-timeline/pkg/dataset"
)

// Tooltip describes the hovered item, or returns "" when nothing is
// hovered.
func Tooltip(s Scene) string {
	if m, ok := s.hoveredMovement(); ok {
		return m.Name + "  " + calendar.FormatSpan(m.StartYear, m.EndYear)
	}
	if ref, ok := s.hoveredEvent(); ok {
		parts := []string{ref.Event.Title()}
		if ref.Event.Artist != "" {
			artist, _ := dataset.Bilingual(ref.Event.Artist)
			parts = append(parts, artist)
		}
		parts = append(parts, calendar.FormatYear(ref.Event.Year))
		return strings.Join(parts, " · ")
	}
	return ""
}

// Indicator renders one row: the tooltip on the left and the visible range
// label on the right. The range label always wins the space.
func Indicator(s Scene) string {
	if s.Width <= 0 {
		return ""
	}
	st := s.Styles
	label := truncate(" "+s.Viewport.Label()+" ", s.Width, "…")
	room := s.Width - visibleLen(label)

	var tip string
	if room > 1 {
		tip = fit(Tooltip(s), room-1) + " "
	} else {
		tip = strings.Repeat(" ", max(room, 0))
	}
	return st.Text.Render(tip) + st.Indicator.Render(label)
}
