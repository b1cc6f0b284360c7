package artwork

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/art-timeline/pkg/terminal"
)

// Renderer turns image files into terminal output at a given cell size.
type Renderer struct {
	protocol terminal.GraphicsProtocol
	cellW    int
	cellH    int
	cache    *Cache
	logger   *slog.Logger
}

// Options configures a Renderer.
type Options struct {
	Protocol terminal.GraphicsProtocol
	// CellW and CellH are the cell size in pixels; zero means unknown.
	CellW, CellH int
	CacheMB      int
	Logger       *slog.Logger
}

// NewRenderer creates a renderer.
func NewRenderer(opts Options) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		protocol: opts.Protocol,
		cellW:    opts.CellW,
		cellH:    opts.CellH,
		cache:    NewCache(opts.CacheMB),
		logger:   logger,
	}
}

// Protocol returns the active protocol.
func (r *Renderer) Protocol() terminal.GraphicsProtocol {
	return r.protocol
}

// Cache returns the renderer's cache.
func (r *Renderer) Cache() *Cache {
	return r.cache
}

// Enabled reports whether previews are drawn at all.
func (r *Renderer) Enabled() bool {
	return r.protocol != terminal.ProtocolNone
}

// CellRenderer returns a renderer sharing this one's cache that always
// draws half blocks. Inline protocols cannot be composited inside a
// lipgloss frame, so the interactive modal uses this one.
func (r *Renderer) CellRenderer() *Renderer {
	if r.protocol == terminal.ProtocolNone || r.protocol == terminal.ProtocolHalfblocks {
		return r
	}
	cp := *r
	cp.protocol = terminal.ProtocolHalfblocks
	return &cp
}

// RenderFile loads and renders the image at path, consulting the cache
// first.
func (r *Renderer) RenderFile(path string, width, height int) (string, error) {
	if !r.Enabled() {
		return "", fmt.Errorf("artwork: previews disabled (protocol=none)")
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("artwork: %w", err)
	}
	key := CacheKey{
		Path:     path,
		ModTime:  info.ModTime(),
		Protocol: r.protocol.String(),
		Width:    width,
		Height:   height,
	}
	if s, ok := r.cache.Get(key); ok {
		return s, nil
	}

	img, err := Load(path)
	if err != nil {
		return "", err
	}
	s, err := r.Render(img, width, height)
	if err != nil {
		return "", err
	}
	r.cache.Put(key, s)
	r.logger.Debug("artwork rendered", "key", key.String(), "bytes", len(s))
	return s, nil
}

// Render draws img into a box of width x height cells.
func (r *Renderer) Render(img image.Image, width, height int) (string, error) {
	if img == nil {
		return "", fmt.Errorf("artwork: image is nil")
	}
	switch r.protocol {
	case terminal.ProtocolNone:
		return "", fmt.Errorf("artwork: previews disabled (protocol=none)")
	case terminal.ProtocolKitty:
		return r.renderTermimg(img, termimg.Kitty, width, height)
	case terminal.ProtocolITerm2:
		return r.renderTermimg(img, termimg.ITerm2, width, height)
	case terminal.ProtocolSixel:
		return r.renderTermimg(img, termimg.Sixel, width, height)
	default:
		return renderHalfblocks(FitCells(img, width, height, 0, 0, true)), nil
	}
}

// renderTermimg delegates inline protocols to go-termimg.
func (r *Renderer) renderTermimg(img image.Image, proto termimg.Protocol, width, height int) (string, error) {
	fitted := FitCells(img, width, height, r.cellW, r.cellH, false)
	ti := termimg.New(fitted)
	if ti == nil {
		return "", fmt.Errorf("artwork: go-termimg: failed to create image wrapper")
	}
	ti.Protocol(proto).Size(width, height).Scale(termimg.ScaleFit)
	out, err := ti.Render()
	if err != nil {
		return "", fmt.Errorf("artwork: %s: %w", r.protocol, err)
	}
	return out, nil
}

// renderHalfblocks draws two vertical pixels per cell with U+2580: the top
// pixel as foreground, the bottom as background. Transparent pixels show
// the terminal background. Every line ends with a reset.
func renderHalfblocks(img image.Image) string {
	if img.Bounds().Empty() {
		return ""
	}
	nrgba := imaging.Clone(img) // rebased to (0, 0)
	w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()

	var sb strings.Builder
	sb.Grow(w * (h/2 + 1) * 24)
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			top := nrgba.NRGBAAt(x, y)
			bot := top
			bot.A = 0
			if y+1 < h {
				bot = nrgba.NRGBAAt(x, y+1)
			}
			switch {
			case top.A == 0 && bot.A == 0:
				sb.WriteString("\x1b[0m ")
			case top.A == 0:
				fmt.Fprintf(&sb, "\x1b[0;38;2;%d;%d;%dm▄", bot.R, bot.G, bot.B)
			case bot.A == 0:
				fmt.Fprintf(&sb, "\x1b[0;38;2;%d;%d;%dm▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
		}
		sb.WriteString("\x1b[0m")
	}
	return sb.String()
}
