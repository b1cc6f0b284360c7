package surface

import "strings"

// Frame stacks the ruler, the canvas and the range indicator, followed by
// the detail panel when detail is set. It is the static rendition written
// by snapshot mode.
func Frame(s Scene, detail bool) string {
	parts := []string{Ruler(s), Canvas(s), Indicator(s)}
	if detail {
		if d := Detail(s); len(d.Lines) > 0 {
			parts = append(parts, "", d.Content())
		}
	}
	return strings.Join(parts, "\n")
}
