package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/art-timeline/pkg/calendar"
	"gitlab.com/tinyland/lab/art-timeline/pkg/dataset"
	"gitlab.com/tinyland/lab/art-timeline/pkg/theme"
)

// ModalOptions describes an event modal.
type ModalOptions struct {
	Event dataset.EventRef
	// Artwork is pre-rendered image text, or "".
	Artwork string
	// Width is the outer width including the border.
	Width int
	// Close is the close control, possibly already wrapped in a click zone.
	Close string
}

// Modal renders the event detail box.
func Modal(st theme.Styles, opts ModalOptions) string {
	ev := opts.Event.Event
	inner := max(opts.Width-4, 10)

	title, titleAlt := dataset.Bilingual(ev.Label)
	lines := []string{st.Title.Render(truncate(title, inner, "…"))}
	if titleAlt != "" {
		lines = append(lines, st.Dim.Render(truncate(titleAlt, inner, "…")))
	}

	if ev.Artist != "" {
		artist, artistAlt := dataset.Bilingual(ev.Artist)
		if artistAlt != "" {
			artist += " (" + artistAlt + ")"
		}
		lines = append(lines, st.Text.Render(truncate(artist, inner, "…")))
	}

	when := calendar.FormatYear(ev.Year)
	if opts.Event.Era != nil {
		when += " · " + opts.Event.Era.ShortTitle()
	}
	lines = append(lines, st.Indicator.Render(truncate(when, inner, "…")))

	desc, descAlt := ev.SplitDescription()
	if desc != "" {
		lines = append(lines, "")
		for _, l := range wrap(desc, inner) {
			lines = append(lines, st.Text.Render(l))
		}
	}
	if descAlt != "" {
		lines = append(lines, "")
		for _, l := range wrap(descAlt, inner) {
			lines = append(lines, st.Dim.Render(l))
		}
	}

	if opts.Artwork != "" {
		lines = append(lines, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center, opts.Artwork))
	}

	if opts.Close != "" {
		lines = append(lines, "", lipgloss.PlaceHorizontal(inner, lipgloss.Right, opts.Close))
	}

	body := strings.Join(lines, "\n")
	return st.Modal.Width(inner + 2).Render(body)
}
