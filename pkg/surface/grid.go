package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Style indices; 0 is always unstyled.
type styleID int

const plain styleID = 0

// cell is one terminal cell. A zero rune marks the right half of a wide
// character and is skipped on output.
type cell struct {
	r     rune
	style styleID
}

// grid is a fixed-size cell buffer. Layers are painted back to front and
// each row is emitted as runs of equally styled cells.
type grid struct {
	w, h   int
	cells  [][]cell
	styles []lipgloss.Style
	index  map[string]styleID
}

func newGrid(w, h int) *grid {
	w, h = max(w, 0), max(h, 0)
	g := &grid{
		w:      w,
		h:      h,
		cells:  make([][]cell, h),
		styles: []lipgloss.Style{lipgloss.NewStyle()},
		index:  map[string]styleID{},
	}
	for y := range g.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		g.cells[y] = row
	}
	return g
}

// style registers s under key, returning the existing id if key is known.
func (g *grid) style(key string, s lipgloss.Style) styleID {
	if id, ok := g.index[key]; ok {
		return id
	}
	id := styleID(len(g.styles))
	g.styles = append(g.styles, s)
	g.index[key] = id
	return id
}

func (g *grid) inside(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// set paints one cell, clipping silently.
func (g *grid) set(x, y int, r rune, s styleID) {
	if g.inside(x, y) {
		g.cells[y][x] = cell{r: r, style: s}
	}
}

// restyle changes the style of a cell, keeping its rune.
func (g *grid) restyle(x, y int, s styleID) {
	if g.inside(x, y) {
		g.cells[y][x].style = s
	}
}

// fill paints [x0, x1] on row y.
func (g *grid) fill(x0, x1, y int, r rune, s styleID) {
	for x := max(x0, 0); x <= min(x1, g.w-1); x++ {
		g.set(x, y, r, s)
	}
}

// text writes s starting at x, stopping at limit (exclusive). Wide
// characters take two cells. It returns the column after the last cell
// written.
func (g *grid) text(x, y int, s string, limit int, st styleID) int {
	limit = min(limit, g.w)
	for _, r := range s {
		rw := ansi.StringWidth(string(r))
		if rw == 0 {
			continue
		}
		if x+rw > limit {
			break
		}
		g.set(x, y, r, st)
		if rw == 2 {
			g.set(x+1, y, 0, st)
		}
		x += rw
	}
	return x
}

// row renders row y with styles applied.
func (g *grid) row(y int) string {
	var sb strings.Builder
	var run strings.Builder
	cur := plain
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if cur == plain {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(g.styles[cur].Render(run.String()))
		}
		run.Reset()
	}
	for _, c := range g.cells[y] {
		if c.r == 0 {
			continue
		}
		if c.style != cur {
			flush()
			cur = c.style
		}
		run.WriteRune(c.r)
	}
	flush()
	return sb.String()
}

// String renders every row joined by newlines.
func (g *grid) String() string {
	lines := make([]string, g.h)
	for y := range lines {
		lines[y] = g.row(y)
	}
	return strings.Join(lines, "\n")
}
