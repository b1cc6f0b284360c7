package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme. Surfaces take a
// Styles value rather than building styles from raw colours.
type Styles struct {
	Theme Theme

	Text      lipgloss.Style
	Dim       lipgloss.Style
	Title     lipgloss.Style
	Button    lipgloss.Style
	RulerLine lipgloss.Style
	TickMajor lipgloss.Style
	TickMinor lipgloss.Style
	TickLabel lipgloss.Style
	LaneGuide lipgloss.Style
	Event     lipgloss.Style
	Selected  lipgloss.Style
	Hover     lipgloss.Style
	Indicator lipgloss.Style
	Panel     lipgloss.Style
	Modal     lipgloss.Style
	Notice    lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style

	raw   Theme
	depth int
}

// NewStyles builds styles for t at the given colour depth. Colours are
// adapted to 256 colours below 24-bit depth.
func NewStyles(t Theme, colorDepth int) Styles {
	raw := t
	t = Adapt(t, colorDepth)
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Theme:     t,
		Text:      fg(t.Foreground),
		Dim:       fg(t.Dim),
		Title:     fg(t.Accent).Bold(true),
		Button:    fg(t.Accent).Bold(true),
		RulerLine: fg(t.RulerLine),
		TickMajor: fg(t.TickMajor).Bold(true),
		TickMinor: fg(t.TickMinor),
		TickLabel: fg(t.TickLabel),
		LaneGuide: fg(t.LaneGuide),
		Event:     fg(t.EventMarker).Bold(true),
		Selected:  fg(t.EventSelected).Bold(true).Reverse(true),
		Hover:     fg(t.HoverMarker).Bold(true),
		Indicator: fg(t.Indicator).Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(t.Modal)).
			Padding(0, 1),
		Notice:   fg(t.Notice).Bold(true),
		HelpKey:  fg(t.HelpKey),
		HelpDesc: fg(t.HelpDesc),
		raw:      raw,
		depth:    colorDepth,
	}
}

// Color returns a foreground style for a dataset colour. Invalid colours
// fall back to the theme foreground; the dataset is not validated on load.
func (s Styles) Color(hex string) lipgloss.Style {
	if !ValidHex(hex) {
		return s.Text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(AdaptColor(hex, s.depth)))
}

// Background returns a style with a dataset colour as background, used for
// movement bars, era strips and the ruler highlight band. The text colour
// is the theme foreground or background, whichever reads better.
func (s Styles) Background(hex string) lipgloss.Style {
	if !ValidHex(hex) {
		return s.Text.Reverse(true)
	}
	fg := Contrast(hex, s.raw.Foreground, s.raw.Background)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(AdaptColor(hex, s.depth))).
		Foreground(lipgloss.Color(AdaptColor(fg, s.depth)))
}
