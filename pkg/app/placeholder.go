package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/art-timeline/pkg/surface"
	"gitlab.com/tinyland/lab/art-timeline/pkg/theme"
)

// placeholderView is shown instead of the timeline when the terminal is too
// small to hold the ruler and canvas. It names the size it was given and
// the size it needs.
func placeholderView(st theme.Styles, width, height, needW, needH int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := []string{st.Title.Render("terminal too small")}
	if height > 1 {
		lines = append(lines, st.Dim.Render(fmt.Sprintf("%dx%d, need %dx%d", width, height, needW, needH)))
	}
	if height > 3 {
		lines = append(lines, "", st.Dim.Render("resize, or q to quit"))
	}
	box := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// minWidth is the narrowest terminal the timeline is drawn in.
const minWidth = 40

// minHeight returns the rows needed for the header, ruler, canvas, the
// indicator when shown, and the status line.
func (m Model) minHeight() int {
	h := 1 + surface.RulerHeight + surface.CanvasHeight(m.scene()) + 1
	if m.layout.ShowIndicator {
		h++
	}
	return h
}
