package surface

import (
	"strings"

	"gitlab.com/tinyland/lab/art-timeline/pkg/calendar"
)

// MinDetailColumn is the narrowest era column; narrower surfaces stack the
// columns into several bands.
const MinDetailColumn = 22

// detailHeaderRows is the number of rows above an era's event list: the
// title, the span and a rule.
const detailHeaderRows = 3

type detailHit struct {
	line, from, to int
	target         Target
}

// DetailLayout is the rendered era panel together with a map from content
// cells back to eras and events.
type DetailLayout struct {
	Lines []string
	hits  []detailHit
}

// Content joins the rendered lines.
func (l DetailLayout) Content() string {
	return strings.Join(l.Lines, "\n")
}

// Hit returns the target at column x of content line line.
func (l DetailLayout) Hit(x, line int) Target {
	for _, h := range l.hits {
		if h.line == line && x >= h.from && x <= h.to {
			return h.target
		}
	}
	return None
}

// LineOf returns the content line listing event id, or -1.
func (l DetailLayout) LineOf(id int) int {
	for _, h := range l.hits {
		if h.target.IsEvent(id) {
			return h.line
		}
	}
	return -1
}

// Detail lays out one column per era in dataset order. Eras overlapping the
// viewport are drawn in their colour; the rest are dimmed.
func Detail(s Scene) DetailLayout {
	var out DetailLayout
	if s.Data == nil || s.Width <= 0 || len(s.Data.Eras) == 0 {
		return out
	}
	st := s.Styles
	active := s.Data.ActiveEras(s.Viewport)

	perBand := max(1, min(len(s.Data.Eras), s.Width/MinDetailColumn))
	colW := s.Width / perBand
	inner := max(colW-1, 1)

	for bandStart := 0; bandStart < len(s.Data.Eras); bandStart += perBand {
		bandEnd := min(bandStart+perBand, len(s.Data.Eras))
		top := len(out.Lines)

		var cols [][]string
		for i := bandStart; i < bandEnd; i++ {
			era := s.Data.Eras[i]
			x0 := (i - bandStart) * colW
			eraTarget := Target{Kind: TargetEra, EraID: era.ID}

			head, text := st.Color(era.ColorHex).Bold(true), st.Text
			if !active[i] {
				head, text = st.Dim, st.Dim
			}

			col := []string{
				head.Render(fit(era.ShortTitle(), inner)),
				text.Render(fit(calendar.FormatSpan(era.StartYear, era.EndYear), inner)),
				st.LaneGuide.Render(strings.Repeat("─", inner)),
			}
			out.hits = append(out.hits,
				detailHit{line: top, from: x0, to: x0 + inner - 1, target: eraTarget},
				detailHit{line: top + 1, from: x0, to: x0 + inner - 1, target: eraTarget},
			)

			for j, ev := range era.Events {
				row := fit(calendar.FormatYear(ev.Year)+"  "+ev.Title(), inner)
				rs := text
				switch {
				case s.Selected.IsEvent(ev.ID):
					rs = st.Selected
				case s.Hover.IsEvent(ev.ID):
					rs = st.Hover
				}
				col = append(col, rs.Render(row))
				out.hits = append(out.hits, detailHit{
					line:   top + detailHeaderRows + j,
					from:   x0,
					to:     x0 + inner - 1,
					target: EventTarget(ev.ID),
				})
			}
			cols = append(cols, col)
		}

		height := 0
		for _, c := range cols {
			height = max(height, len(c))
		}
		blank := strings.Repeat(" ", inner)
		for y := 0; y < height; y++ {
			var sb strings.Builder
			for _, c := range cols {
				if y < len(c) {
					sb.WriteString(c[y])
				} else {
					sb.WriteString(blank)
				}
				sb.WriteByte(' ')
			}
			out.Lines = append(out.Lines, strings.TrimRight(sb.String(), " "))
		}
		if bandEnd < len(s.Data.Eras) {
			out.Lines = append(out.Lines, "")
		}
	}
	return out
}
