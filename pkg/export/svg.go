// Package export writes a static SVG rendition of the timeline for a given
// viewport: era bands, the tick ruler, movement swimlanes and event markers.
// Positions go through the same projection as the terminal surfaces.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gitlab.com/tinyland/lab/art-timeline/pkg/calendar"
	"gitlab.com/tinyland/lab/art-timeline/pkg/dataset"
	"gitlab.com/tinyland/lab/art-timeline/pkg/projection"
	"gitlab.com/tinyland/lab/art-timeline/pkg/theme"
	"gitlab.com/tinyland/lab/art-timeline/pkg/ticks"
	"gitlab.com/tinyland/lab/art-timeline/pkg/viewport"
)

// Options controls the SVG geometry.
type Options struct {
	Width      int // total width in px
	LaneHeight int // px per swimlane
	FontFamily string
	Theme      theme.Theme
}

// DefaultOptions returns a 1600 px wide layout in the default theme.
func DefaultOptions() Options {
	return Options{
		Width:      1600,
		LaneHeight: 22,
		FontFamily: "sans-serif",
		Theme:      theme.Get("default"),
	}
}

const (
	margin      = 16
	rulerHeight = 36
	eraHeight   = 20
	markerBand  = 28
	fontSize    = 11
)

type layout struct {
	v              viewport.Viewport
	left, plotW    int
	rulerY, eraY   int
	lanesY, lanesH int
	markerY        int
	height         int
	laneH          int
}

func (l layout) x(year float64) float64 {
	return float64(l.left) + projection.ToPercent(year, l.v)/100*float64(l.plotW)
}

// clampX keeps bars from extending past the plot.
func (l layout) clampX(x float64) float64 {
	return max(float64(l.left), min(x, float64(l.left+l.plotW)))
}

// Write renders d through v as an SVG document.
func Write(w io.Writer, d *dataset.Dataset, v viewport.Viewport, opts Options) error {
	def := DefaultOptions()
	if opts.Width <= 2*margin {
		opts.Width = def.Width
	}
	if opts.LaneHeight <= 0 {
		opts.LaneHeight = def.LaneHeight
	}
	if opts.FontFamily == "" {
		opts.FontFamily = def.FontFamily
	}
	if opts.Theme.Name == "" {
		opts.Theme = def.Theme
	}
	v = viewport.Normalize(v)

	lanes := d.Lanes()
	l := layout{
		v:      v,
		left:   margin,
		plotW:  opts.Width - 2*margin,
		rulerY: margin,
		laneH:  opts.LaneHeight,
	}
	l.eraY = l.rulerY + rulerHeight
	l.lanesY = l.eraY + eraHeight
	l.lanesH = lanes * l.laneH
	l.markerY = l.lanesY + l.lanesH + markerBand/2
	l.height = l.lanesY + l.lanesH + markerBand + margin

	t := opts.Theme
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.tick-label { font-family: %s; font-size: %dpx; fill: %s; text-anchor: middle; }
.era-label { font-family: %s; font-size: %dpx; font-weight: bold; fill: %s; }
.bar-label { font-family: %s; font-size: %dpx; fill: %s; }
</style>
<clipPath id="plot"><rect x="%d" y="0" width="%d" height="%d"/></clipPath>
</defs>
`, opts.Width, l.height, t.Background,
		escapeXML(opts.FontFamily), fontSize, t.TickLabel,
		escapeXML(opts.FontFamily), fontSize, t.Background,
		escapeXML(opts.FontFamily), fontSize, t.Background,
		l.left, l.plotW, l.height)

	writeEras(bw, d, l, t)
	writeRuler(bw, l, t)
	writeMovements(bw, d, l)
	writeEvents(bw, d, l, t)

	fmt.Fprintf(bw, `<text x="%d" y="%d" class="tick-label" style="text-anchor: end">%s</text>`+"\n",
		opts.Width-margin, l.height-4, escapeXML(v.Label()))
	bw.WriteString("</svg>\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write: %w", err)
	}
	return nil
}

// WriteFile writes the SVG to path.
func WriteFile(path string, d *dataset.Dataset, v viewport.Viewport, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := Write(f, d, v, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close: %w", err)
	}
	return nil
}

func writeEras(w *bufio.Writer, d *dataset.Dataset, l layout, t theme.Theme) {
	for _, era := range d.Eras {
		left, right := projection.Span(era.StartYear, era.EndYear, l.v)
		if !projection.SpanVisible(left, right, 0) {
			continue
		}
		x0, x1 := l.clampX(l.x(era.StartYear)), l.clampX(l.x(era.EndYear))
		fill := color(era.ColorHex, t.Dim)
		fmt.Fprintf(w, `<rect x="%.2f" y="%d" width="%.2f" height="%d" fill="%s"/>`+"\n",
			x0, l.eraY, x1-x0, eraHeight, fill)
		fmt.Fprintf(w, `<rect x="%.2f" y="%d" width="%.2f" height="%d" fill="%s" fill-opacity="0.12"/>`+"\n",
			x0, l.lanesY, x1-x0, l.lanesH+markerBand, fill)
		fmt.Fprintf(w, `<text x="%.2f" y="%d" class="era-label" clip-path="url(#plot)"><title>%s</title>%s</text>`+"\n",
			x0+4, l.eraY+eraHeight-6,
			escapeXML(era.Title+"  "+calendar.FormatSpan(era.StartYear, era.EndYear)),
			escapeXML(era.ShortTitle()))
	}
}

func writeRuler(w *bufio.Writer, l layout, t theme.Theme) {
	base := l.rulerY + rulerHeight - 4
	fmt.Fprintf(w, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>`+"\n",
		l.left, base, l.left+l.plotW, base, t.RulerLine)

	planned, _ := ticks.Plan(l.v.StartYear, l.v.EndYear)
	for _, tk := range planned {
		pct := projection.ToPercent(tk.Year, l.v)
		if pct < 0 || pct > 100 {
			continue
		}
		x := l.x(tk.Year)
		size, stroke := 5, t.TickMinor
		if tk.Major {
			size, stroke = 10, t.TickMajor
		}
		fmt.Fprintf(w, `<line x1="%.2f" y1="%d" x2="%.2f" y2="%d" stroke="%s" stroke-width="1"/>`+"\n",
			x, base-size, x, base, stroke)
		if tk.Major {
			fmt.Fprintf(w, `<text x="%.2f" y="%d" class="tick-label">%s</text>`+"\n",
				x, base-size-4, escapeXML(tk.Label))
		}
	}
}

func writeMovements(w *bufio.Writer, d *dataset.Dataset, l layout) {
	for _, m := range d.Movements {
		left, right := projection.Span(m.StartYear, m.EndYear, l.v)
		if !projection.SpanVisible(left, right, 0) {
			continue
		}
		x0, x1 := l.clampX(l.x(m.StartYear)), l.clampX(l.x(m.EndYear))
		// 0.2% of the plot is the narrowest bar drawn.
		if minW := float64(l.plotW) * 0.002; x1-x0 < minW {
			x1 = x0 + minW
		}
		y := l.lanesY + m.Lane*l.laneH
		fmt.Fprintf(w, `<g><title>%s</title>`, escapeXML(m.Name+"  "+calendar.FormatSpan(m.StartYear, m.EndYear)))
		fmt.Fprintf(w, `<rect x="%.2f" y="%d" width="%.2f" height="%d" rx="3" fill="%s"/>`,
			x0, y+2, x1-x0, l.laneH-4, color(m.Color, "#888888"))
		if x1-x0 > 40 {
			fmt.Fprintf(w, `<text x="%.2f" y="%d" class="bar-label" clip-path="url(#plot)">%s</text>`,
				x0+4, y+l.laneH-7, escapeXML(m.ShortName()))
		}
		w.WriteString("</g>\n")
	}
}

func writeEvents(w *bufio.Writer, d *dataset.Dataset, l layout, t theme.Theme) {
	for _, ref := range d.EventsByYear() {
		ev := ref.Event
		pct := projection.ToPercent(ev.Year, l.v)
		if !projection.Visible(pct, projection.EventBuffer) {
			continue
		}
		x, y := l.x(ev.Year), float64(l.markerY)
		title := ev.Label
		if ev.Artist != "" {
			title += " · " + ev.Artist
		}
		title += " · " + calendar.FormatYear(ev.Year)
		fmt.Fprintf(w, `<path d="M %.2f %.2f l 5 5 l -5 5 l -5 -5 z" fill="%s" clip-path="url(#plot)"><title>%s</title></path>`+"\n",
			x, y-5, t.EventMarker, escapeXML(title))
	}
}

func color(hex, fallback string) string {
	if theme.ValidHex(hex) {
		return hex
	}
	return fallback
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
