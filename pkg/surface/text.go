package surface

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// visibleLen returns the width of s in cells, ignoring escape sequences.
func visibleLen(s string) int {
	return ansi.StringWidth(s)
}

// truncate cuts s to maxWidth cells, appending tail when it cuts.
func truncate(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// padRight pads s with spaces to width cells.
func padRight(s string, width int) string {
	vis := visibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	return padRight(truncate(s, width, "…"), width)
}

// wrap word-wraps s at width cells.
func wrap(s string, width int) []string {
	if width <= 0 || s == "" {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}
