package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	scroll "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/art-timeline/pkg/artwork"
	"gitlab.com/tinyland/lab/art-timeline/pkg/config"
	"gitlab.com/tinyland/lab/art-timeline/pkg/dataset"
	"gitlab.com/tinyland/lab/art-timeline/pkg/surface"
	"gitlab.com/tinyland/lab/art-timeline/pkg/theme"
	"gitlab.com/tinyland/lab/art-timeline/pkg/viewport"
)

// Click zones.
const (
	zoneZoomIn     = "zoom-in"
	zoneZoomOut    = "zoom-out"
	zoneModal      = "modal"
	zoneModalClose = "modal-close"
)

// Options configures a Model.
type Options struct {
	Config *config.Config
	Data   *dataset.Dataset
	// BaseDir resolves relative image paths, normally the dataset's
	// directory.
	BaseDir string
	// Renderer draws artwork previews; nil disables them.
	Renderer *artwork.Renderer
	// ColorDepth is 24, 8, 4 or 1 bits.
	ColorDepth int
	Logger     *slog.Logger
}

// Model is the root bubbletea model.
type Model struct {
	cfg      *config.Config
	data     *dataset.Dataset
	baseDir  string
	ctrl     *viewport.Controller
	renderer *artwork.Renderer
	logger   *slog.Logger
	zones    *zone.Manager

	styles    theme.Styles
	depth     int
	themeName string
	layout    config.LayoutConfig

	keys   KeyMap
	help   help.Model
	detail scroll.Model

	width, height int

	hover    surface.Target
	selected surface.Target

	modalOpen  bool
	modalEvent dataset.EventRef
	art        string
	showHelp   bool

	dragging  bool
	dragX     int
	dragMoved bool

	notice    string
	noticeSeq int
}

// New creates the model. Missing options fall back to the default config,
// the embedded dataset and slog.Default().
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	data := opts.Data
	if data == nil {
		data = dataset.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	depth := opts.ColorDepth
	if depth == 0 {
		depth = 24
	}

	ctrl := viewport.NewController(viewport.Options{
		Initial: cfg.Window(),
		Wheel:   cfg.WheelFactors(),
		Button:  cfg.ButtonFactors(),
		Logger:  logger,
	})

	m := Model{
		cfg:      cfg,
		data:     data,
		baseDir:  opts.BaseDir,
		ctrl:     ctrl,
		renderer: opts.Renderer,
		logger:   logger,
		zones:    zone.New(),
		depth:    depth,
		layout:   cfg.Layout,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		detail:   scroll.New(0, 0),
	}
	m.applyTheme(cfg.Theme.Name)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case NoticeEvent:
		cmd = m.setNotice(msg.Text)

	case noticeExpiredEvent:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}

	case ArtworkLoadedEvent:
		if !m.modalOpen || m.modalEvent.Event.ID != msg.EventID {
			break
		}
		if msg.Err != nil {
			m.logger.Warn("artwork preview failed", "event", msg.EventID, "error", msg.Err)
			m.art = ""
			break
		}
		m.art = msg.Art

	case ThemeChangeEvent:
		m.applyTheme(msg.Theme)
		cmd = m.setNotice("theme: " + m.themeName)

	case LayoutPresetEvent:
		m.layout = config.LayoutPreset(msg.Preset)
		cmd = m.setNotice("layout: " + m.layout.Preset)

	case WindowPresetEvent:
		w, ok := config.WindowPreset(msg.Preset)
		if !ok {
			cmd = m.setNotice("unknown period " + msg.Preset)
			break
		}
		m.ctrl.Set(w)
		cmd = m.setNotice("period: " + msg.Preset + "  " + m.ctrl.Current().Label())
	}

	m.refreshDetail()
	return m, cmd
}

// Width returns the terminal width.
func (m Model) Width() int { return m.width }

// Height returns the terminal height.
func (m Model) Height() int { return m.height }

// Viewport returns the current visible window.
func (m Model) Viewport() viewport.Viewport { return m.ctrl.Current() }

// Controller returns the viewport controller.
func (m Model) Controller() *viewport.Controller { return m.ctrl }

// Hover returns the hovered item.
func (m Model) Hover() surface.Target { return m.hover }

// Selected returns the selected item.
func (m Model) Selected() surface.Target { return m.selected }

// ModalEvent returns the event shown in the modal, if one is open.
func (m Model) ModalEvent() (dataset.EventRef, bool) { return m.modalEvent, m.modalOpen }

// Notice returns the status line notice.
func (m Model) Notice() string { return m.notice }

// ThemeName returns the active theme's name.
func (m Model) ThemeName() string { return m.themeName }

// Layout returns the active layout.
func (m Model) Layout() config.LayoutConfig { return m.layout }

// HelpVisible reports whether the help overlay is shown.
func (m Model) HelpVisible() bool { return m.showHelp }

// scene is the input every surface renders from.
func (m Model) scene() surface.Scene {
	return surface.Scene{
		Viewport:   m.ctrl.Current(),
		Data:       m.data,
		Styles:     m.styles,
		Width:      m.width,
		LaneHeight: m.layout.LaneHeight,
		Hover:      m.hover,
		Selected:   m.selected,
	}
}

func (m *Model) applyTheme(name string) {
	t, ok := theme.Lookup(name)
	if !ok {
		m.logger.Warn("unknown theme, using default", "theme", name)
		t = theme.Get("default")
	}
	m.themeName = t.Name
	m.styles = theme.NewStyles(t, m.depth)
	m.help.Styles.ShortKey = m.styles.HelpKey
	m.help.Styles.ShortDesc = m.styles.HelpDesc
	m.help.Styles.FullKey = m.styles.HelpKey
	m.help.Styles.FullDesc = m.styles.HelpDesc
}

// setNotice shows text on the status line until the configured timeout. With
// the timeout off the notice stays until the next one replaces it.
func (m *Model) setNotice(text string) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	d := m.cfg.General.StatusTimeout.Duration
	if d <= 0 {
		return nil
	}
	return NoticeCmd(m.noticeSeq, d)
}

// refreshDetail resizes the era panel and re-renders its content.
func (m *Model) refreshDetail() {
	g := m.geometry()
	if g.detailH <= 0 {
		return
	}
	m.detail.Width = max(m.width-2, 0)
	m.detail.Height = g.detailH - 2
	s := m.scene()
	s.Width = m.detail.Width
	m.detail.SetContent(surface.Detail(s).Content())
}
