package termtest

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/art-timeline/pkg/terminal"
)

// CompatResult describes the expected behavior of a feature on a terminal.
type CompatResult struct {
	Feature    string // Feature name from Features()
	Terminal   string // Terminal profile name
	Status     string // "full", "partial", "degraded", "unsupported"
	Notes      string // Human-readable explanation
	Workaround string // If degraded/unsupported, what to do instead
}

// Features returns all timeline features that vary by terminal.
func Features() []string {
	return []string{
		"truecolor",
		"artwork",
		"ruler_glyphs",
		"hover",
		"drag_pan",
	}
}

// CheckCompat evaluates a terminal profile against all timeline features.
func CheckCompat(profile TerminalProfile) []CompatResult {
	features := Features()
	results := make([]CompatResult, 0, len(features))
	for _, feat := range features {
		results = append(results, ttCheckFeature(feat, profile))
	}
	return results
}

// Report writes one aligned line per feature.
func Report(w io.Writer, profile TerminalProfile) {
	fmt.Fprintf(w, "terminal: %s  colour: %s  artwork: %s",
		profile.Name, ttProfileName(profile.Profile), profile.Protocol)
	if profile.SSH {
		fmt.Fprint(w, "  (ssh)")
	}
	fmt.Fprintln(w)
	for _, r := range CheckCompat(profile) {
		line := fmt.Sprintf("  %-13s %-12s %s", r.Feature, r.Status, r.Notes)
		if r.Workaround != "" {
			line += "; " + r.Workaround
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// ttCheckFeature evaluates a single feature against a terminal profile.
func ttCheckFeature(feature string, profile TerminalProfile) CompatResult {
	r := CompatResult{
		Feature:  feature,
		Terminal: profile.Name,
	}

	switch feature {
	case "truecolor":
		r = ttCheckTruecolor(r, profile)
	case "artwork":
		r = ttCheckArtwork(r, profile)
	case "ruler_glyphs":
		r = ttCheckGlyphs(r, profile)
	case "hover":
		r = ttCheckHover(r, profile)
	case "drag_pan":
		r = ttCheckDrag(r, profile)
	default:
		r.Status = "unsupported"
		r.Notes = "unknown feature"
	}

	return r
}

func ttCheckTruecolor(r CompatResult, p TerminalProfile) CompatResult {
	switch p.Profile {
	case termenv.TrueColor:
		r.Status = "full"
		r.Notes = "24-bit era and movement colours"
	case termenv.ANSI256, termenv.ANSI:
		r.Status = "degraded"
		r.Notes = "limited palette"
		r.Workaround = "colours are mapped to the nearest 256-colour entry"
	default:
		r.Status = "unsupported"
		r.Notes = "no colour"
		r.Workaround = "movements are told apart by their labels"
	}
	return r
}

// The TUI always draws artwork with half blocks; inline protocols are only
// used by snapshot output.
func ttCheckArtwork(r CompatResult, p TerminalProfile) CompatResult {
	switch p.Protocol {
	case terminal.ProtocolKitty, terminal.ProtocolITerm2:
		r.Status = "full"
		r.Notes = p.Protocol.String() + " images in -snapshot -event output"
	case terminal.ProtocolSixel:
		r.Status = "partial"
		r.Notes = "sixel images with a reduced palette"
	case terminal.ProtocolHalfblocks:
		r.Status = "degraded"
		r.Notes = "half-block previews only"
		if p.SSH {
			r.Workaround = "inline protocols are disabled over ssh"
		}
	default:
		r.Status = "unsupported"
		r.Notes = "artwork previews disabled"
		r.Workaround = "set image.protocol to halfblocks"
	}
	return r
}

func ttCheckGlyphs(r CompatResult, p TerminalProfile) CompatResult {
	if p.BoxDrawing {
		r.Status = "full"
		r.Notes = "box drawing ticks and guides"
	} else {
		r.Status = "degraded"
		r.Notes = "tick and guide glyphs may render as boxes"
		r.Workaround = "use a font with box drawing coverage"
	}
	return r
}

func ttCheckHover(r CompatResult, p TerminalProfile) CompatResult {
	if p.MouseMotion {
		r.Status = "full"
		r.Notes = "tooltips and ruler highlights follow the pointer"
	} else {
		r.Status = "unsupported"
		r.Notes = "no motion events"
		r.Workaround = "use tab and shift+tab to select events"
	}
	return r
}

func ttCheckDrag(r CompatResult, p TerminalProfile) CompatResult {
	if p.MouseMotion {
		r.Status = "full"
		r.Notes = "drag the canvas to pan"
	} else {
		r.Status = "partial"
		r.Notes = "drags may arrive as a single jump"
		r.Workaround = "pan with left/right or h/l"
	}
	return r
}

func ttProfileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256"
	case termenv.ANSI:
		return "16"
	}
	return "none"
}
