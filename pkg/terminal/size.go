package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// Size represents terminal dimensions in character cells and, when the
// terminal reports them, pixels.
type Size struct {
	Cols   int
	Rows   int
	PixelW int
	PixelH int
	CellW  int // pixel width per cell (0 if unknown)
	CellH  int // pixel height per cell (0 if unknown)
}

// CellAspect returns the cell height to width ratio, defaulting to 2 when
// pixel sizes are unknown.
func (s Size) CellAspect() float64 {
	if s.CellW > 0 && s.CellH > 0 {
		return float64(s.CellH) / float64(s.CellW)
	}
	return 2
}

// GetSize returns the current terminal dimensions. It tries, in order:
//  1. the TIOCGWINSZ ioctl on stdout then stderr (cells and pixels)
//  2. x/term on the same descriptors (cells only)
//  3. COLUMNS/LINES
//  4. 80x24
func GetSize() Size {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd()}
	for _, fd := range fds {
		if s := sizeFromIoctl(fd); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	for _, fd := range fds {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			return Size{Cols: w, Rows: h}
		}
	}
	return sizeFromEnv()
}

// cellSize fills in per-cell pixel sizes when pixel dimensions are known.
func (s Size) cellSize() Size {
	if s.PixelW > 0 && s.Cols > 0 {
		s.CellW = s.PixelW / s.Cols
	}
	if s.PixelH > 0 && s.Rows > 0 {
		s.CellH = s.PixelH / s.Rows
	}
	return s
}

func sizeFromEnv() Size {
	return Size{Cols: envInt("COLUMNS", 80), Rows: envInt("LINES", 24)}
}

// envInt reads a positive integer from the environment.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
