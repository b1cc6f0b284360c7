// art-timeline is a terminal explorer for a timeline of art history.
//
// It draws a zoomable, pannable ruler over swimlanes of art movements and
// markers for individual works, with a panel of era columns below. The
// mouse wheel zooms around the pointer, dragging pans, and clicking a
// marker opens the work's details.
//
// Usage:
//
//	art-timeline [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/art-timeline/config.toml)
//	-dataset string   YAML dataset to load instead of the embedded one
//	-theme string     Colour theme (default, parchment, gruvbox, nord, dracula)
//	-preset string    Initial window preset (all, history, ancient, medieval, renaissance, modern, 1889)
//	-start float      Initial window start year
//	-end float        Initial window end year
//	-snapshot         Print one frame to stdout and exit
//	-event int        With -snapshot, also print the details of one event
//	-width int        Snapshot width in cells (0 = terminal width)
//	-height int       Maximum snapshot rows (0 = unlimited)
//	-svg string       Write an SVG rendition of the window to a file
//	-svg-width int    SVG width in pixels
//	-no-color         Disable colour output
//	-doctor           Report which features this terminal supports and exit
//	-verbose          Enable debug logging
//	-version          Print version and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/art-timeline/pkg/app"
	"gitlab.com/tinyland/lab/art-timeline/pkg/artwork"
	"gitlab.com/tinyland/lab/art-timeline/pkg/config"
	"gitlab.com/tinyland/lab/art-timeline/pkg/dataset"
	"gitlab.com/tinyland/lab/art-timeline/pkg/export"
	"gitlab.com/tinyland/lab/art-timeline/pkg/surface"
	"gitlab.com/tinyland/lab/art-timeline/pkg/terminal"
	"gitlab.com/tinyland/lab/art-timeline/pkg/termtest"
	"gitlab.com/tinyland/lab/art-timeline/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// defaultSnapshotWidth is used when the width cannot be detected.
const defaultSnapshotWidth = 120

func main() {
	os.Exit(run(os.Args[1:]))
}

// run parses args and runs the program, returning the process exit code.
// Returning rather than exiting lets deferred cleanup such as closing the
// log file happen on every path.
func run(args []string) int {
	flags := flag.NewFlagSet("art-timeline", flag.ContinueOnError)
	var (
		configPath  = flags.String("config", "", "Path to configuration file")
		datasetPath = flags.String("dataset", "", "YAML dataset to load instead of the embedded one")
		themeName   = flags.String("theme", "", "Colour theme name")
		preset      = flags.String("preset", "", "Initial window preset ("+strings.Join(config.WindowPresetNames(), ", ")+")")
		startYear   = flags.Float64("start", 0, "Initial window start year")
		endYear     = flags.Float64("end", 0, "Initial window end year")
		snapshot    = flags.Bool("snapshot", false, "Print one frame to stdout and exit")
		eventID     = flags.Int("event", 0, "With -snapshot, also print the details of this event")
		width       = flags.Int("width", 0, "Snapshot width in cells (0 = terminal width)")
		height      = flags.Int("height", 0, "Maximum snapshot rows (0 = unlimited)")
		svgPath     = flags.String("svg", "", "Write an SVG rendition of the window to this file")
		svgWidth    = flags.Int("svg-width", 1600, "SVG width in pixels")
		noColor     = flags.Bool("no-color", false, "Disable colour output")
		doctor      = flags.Bool("doctor", false, "Report which features this terminal supports and exit")
		verbose     = flags.Bool("verbose", false, "Enable debug logging")
		showVersion = flags.Bool("version", false, "Print version and exit")
	)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Printf("art-timeline %s (%s) built %s\n", version, commit, date)
		return 0
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	// Flags override the file.
	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if *datasetPath != "" {
		cfg.General.Dataset = *datasetPath
	}
	if *themeName != "" {
		cfg.Theme.Name = *themeName
	}
	if *preset != "" {
		cfg.Viewport.Preset = *preset
	}
	if set["start"] || set["end"] {
		cfg.Viewport.Preset = ""
		if set["start"] {
			cfg.Viewport.StartYear = *startYear
		}
		if set["end"] {
			cfg.Viewport.EndYear = *endYear
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		return 1
	}

	caps := terminal.DetectCapabilities(terminal.Options{
		Protocol: cfg.Image.Protocol,
		NoColor:  *noColor,
	})
	if *doctor {
		termtest.Report(os.Stdout, termtest.FromCapabilities(caps))
		return 0
	}
	interactive := caps.Interactive && !*snapshot && *svgPath == ""

	logger, closeLog := setupLogging(cfg, *verbose, !interactive)
	defer closeLog()
	slog.SetDefault(logger)
	logger.Debug("terminal detected",
		"term", caps.Term.String(),
		"protocol", caps.Protocol.String(),
		"profile", caps.Profile,
		"cols", caps.Size.Cols,
		"rows", caps.Size.Rows,
		"ssh", caps.SSH,
	)

	if cfg.Theme.File != "" {
		t, err := theme.LoadFile(cfg.Theme.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load theme: %v\n", err)
			return 1
		}
		cfg.Theme.Name = t.Name
	}
	if _, ok := theme.Lookup(cfg.Theme.Name); !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme.Name)
		cfg.Theme.Name = "default"
	}
	theme.SetCurrent(cfg.Theme.Name)

	data, err := dataset.LoadOrDefault(cfg.General.Dataset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load dataset: %v\n", err)
		return 1
	}
	baseDir := ""
	if cfg.General.Dataset != "" {
		baseDir = filepath.Dir(cfg.General.Dataset)
	}
	logger.Debug("dataset loaded",
		"path", cfg.General.Dataset,
		"eras", len(data.Eras),
		"movements", len(data.Movements),
		"events", len(data.AllEvents()),
	)

	lipgloss.SetColorProfile(caps.Profile)
	depth := theme.ColorDepth(caps.Profile)
	renderer := artwork.NewRenderer(artwork.Options{
		Protocol: caps.Protocol,
		CellW:    caps.Size.CellW,
		CellH:    caps.Size.CellH,
		CacheMB:  cfg.Image.MaxCacheSizeMB,
		Logger:   logger,
	})

	if *svgPath != "" {
		err := export.WriteFile(*svgPath, data, cfg.Window(), export.Options{
			Width: *svgWidth,
			Theme: theme.Current,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		logger.Info("svg written", "path", *svgPath, "window", cfg.Window().Label())
		if !*snapshot {
			return 0
		}
	}

	if !interactive {
		w := *width
		if w <= 0 {
			w = caps.Size.Cols
		}
		if w <= 0 {
			w = defaultSnapshotWidth
		}
		out := snapshotView(cfg, data, theme.NewStyles(theme.Current, depth), w, *height)
		fmt.Println(out)
		if *eventID != 0 {
			if err := printEvent(os.Stdout, cfg, data, renderer, baseDir, *eventID, theme.NewStyles(theme.Current, depth), w); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				return 1
			}
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	model := app.New(app.Options{
		Config:     cfg,
		Data:       data,
		BaseDir:    baseDir,
		Renderer:   renderer,
		ColorDepth: depth,
		Logger:     logger,
	})
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads path, or searches the standard locations when path is
// empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromFile(path)
}

// setupLogging opens the log file under the cache directory. Snapshot runs
// also log to stderr; the TUI never does, since it owns the screen.
func setupLogging(cfg *config.Config, verbose, toStderr bool) (*slog.Logger, func()) {
	level, err := config.ParseLevel(cfg.General.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}

	var writers []io.Writer
	if toStderr {
		writers = append(writers, os.Stderr)
	}
	closeFn := func() {}

	logPath := filepath.Join(cfg.General.CacheDir, "art-timeline.log")
	if err := os.MkdirAll(cfg.General.CacheDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
	} else if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
	} else {
		writers = append(writers, f)
		closeFn = func() { f.Close() }
	}

	var w io.Writer = io.Discard
	if len(writers) > 0 {
		w = io.MultiWriter(writers...)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn
}

// snapshotView renders the static frame, cut to maxRows when positive.
func snapshotView(cfg *config.Config, data *dataset.Dataset, st theme.Styles, width, maxRows int) string {
	s := surface.Scene{
		Viewport:   cfg.Window(),
		Data:       data,
		Styles:     st,
		Width:      width,
		LaneHeight: cfg.Layout.LaneHeight,
	}
	out := surface.Frame(s, cfg.Layout.ShowDetail)
	if maxRows > 0 {
		lines := strings.Split(out, "\n")
		if len(lines) > maxRows {
			out = strings.Join(lines[:maxRows], "\n")
		}
	}
	return out
}

// printEvent writes the detail box for one event. Outside the TUI the
// artwork may use an inline image protocol.
func printEvent(w io.Writer, cfg *config.Config, data *dataset.Dataset, r *artwork.Renderer, baseDir string, id int, st theme.Styles, width int) error {
	ref, ok := data.EventByID(id)
	if !ok {
		return fmt.Errorf("event %d not found", id)
	}
	fmt.Fprintln(w, surface.Modal(st, surface.ModalOptions{Event: ref, Width: min(width, 72)}))

	if !r.Enabled() {
		return nil
	}
	path, err := artwork.Resolve(ref.Event.ImageURL, baseDir)
	if err != nil {
		slog.Debug("no artwork for event", "id", id, "error", err)
		return nil
	}
	art, err := r.RenderFile(path, min(cfg.Image.Width, width), cfg.Image.Height)
	if err != nil {
		return fmt.Errorf("artwork for event %d: %w", id, err)
	}
	fmt.Fprintln(w, art)
	return nil
}
