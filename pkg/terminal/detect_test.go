package terminal

import (
	"os"
	"testing"

	"github.com/muesli/termenv"
)

// termEnvVars lists every environment variable inspected during detection.
var termEnvVars = []string{
	"TERM_PROGRAM", "TERM", "COLORTERM",
	"KITTY_WINDOW_ID", "ITERM_SESSION_ID", "WEZTERM_EXECUTABLE",
	"VTE_VERSION", "LC_TERMINAL", "TMUX", "STY",
	"SSH_TTY", "SSH_CONNECTION", "SSH_CLIENT",
	"COLUMNS", "LINES", "NO_COLOR",
}

// clearTermEnv unsets all terminal-related env vars; t.Setenv restores them.
func clearTermEnv(t *testing.T) {
	t.Helper()
	for _, v := range termEnvVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Terminal
	}{
		{"ghostty program", map[string]string{"TERM_PROGRAM": "ghostty"}, TermGhostty},
		{"ghostty term", map[string]string{"TERM": "xterm-ghostty"}, TermGhostty},
		{"kitty term", map[string]string{"TERM": "xterm-kitty"}, TermKitty},
		{"kitty window id", map[string]string{"KITTY_WINDOW_ID": "1"}, TermKitty},
		{"iterm program", map[string]string{"TERM_PROGRAM": "iTerm.app"}, TermITerm2},
		{"iterm over ssh", map[string]string{"LC_TERMINAL": "iTerm2"}, TermITerm2},
		{"wezterm", map[string]string{"WEZTERM_EXECUTABLE": "/usr/bin/wezterm"}, TermWezTerm},
		{"alacritty", map[string]string{"TERM": "alacritty"}, TermAlacritty},
		{"vte", map[string]string{"VTE_VERSION": "7600"}, TermVTE},
		{"vscode", map[string]string{"TERM_PROGRAM": "vscode"}, TermVSCode},
		{"tmux", map[string]string{"TMUX": "/tmp/tmux-1000/default,1,0"}, TermTmux},
		{"screen", map[string]string{"STY": "1234.pts-0"}, TermScreen},
		{"program beats tmux", map[string]string{"TERM_PROGRAM": "kitty", "TMUX": "x"}, TermKitty},
		{"nothing", nil, TermGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTermEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := Detect(); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalString(t *testing.T) {
	if TermVTE.String() != "vte" || Terminal(99).String() != "unknown" || Terminal(-1).String() != "unknown" {
		t.Error("Terminal.String mapping is wrong")
	}
}

func TestSelectProtocol(t *testing.T) {
	tests := []struct {
		term Terminal
		ssh  bool
		want GraphicsProtocol
	}{
		{TermGhostty, false, ProtocolKitty},
		{TermWezTerm, false, ProtocolKitty},
		{TermITerm2, false, ProtocolITerm2},
		{TermAlacritty, false, ProtocolHalfblocks},
		{TermKitty, true, ProtocolHalfblocks},
		{TermITerm2, true, ProtocolHalfblocks},
		{TermGeneric, true, ProtocolHalfblocks},
	}
	for _, tt := range tests {
		if got := SelectProtocol(tt.term, tt.ssh); got != tt.want {
			t.Errorf("SelectProtocol(%v, ssh=%v) = %v, want %v", tt.term, tt.ssh, got, tt.want)
		}
	}
}

func TestSelectProtocolWithOverride(t *testing.T) {
	tests := []struct {
		override string
		want     GraphicsProtocol
	}{
		{"sixel", ProtocolSixel},
		{"KITTY", ProtocolKitty},
		{"off", ProtocolNone},
		{"unicode", ProtocolHalfblocks},
		{"auto", ProtocolHalfblocks},
		{"", ProtocolHalfblocks},
		{"braille", ProtocolHalfblocks},
	}
	for _, tt := range tests {
		if got := SelectProtocolWithOverride(TermAlacritty, tt.override, false); got != tt.want {
			t.Errorf("override %q = %v, want %v", tt.override, got, tt.want)
		}
	}
}

func TestProtocolInline(t *testing.T) {
	for p, want := range map[GraphicsProtocol]bool{
		ProtocolKitty: true, ProtocolITerm2: true, ProtocolSixel: true,
		ProtocolHalfblocks: false, ProtocolNone: false,
	} {
		if p.Inline() != want {
			t.Errorf("%v.Inline() = %v", p, !want)
		}
	}
}

func TestSizeFromEnv(t *testing.T) {
	clearTermEnv(t)
	if s := sizeFromEnv(); s.Cols != 80 || s.Rows != 24 {
		t.Errorf("default size = %+v", s)
	}
	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "nope")
	if s := sizeFromEnv(); s.Cols != 132 || s.Rows != 24 {
		t.Errorf("env size = %+v", s)
	}
}

func TestCellSize(t *testing.T) {
	s := Size{Cols: 100, Rows: 50, PixelW: 1000, PixelH: 1000}.cellSize()
	if s.CellW != 10 || s.CellH != 20 {
		t.Errorf("cellSize = %+v", s)
	}
	if s.CellAspect() != 2 {
		t.Errorf("CellAspect = %v", s.CellAspect())
	}
	if (Size{Cols: 80, Rows: 24}).CellAspect() != 2 {
		t.Error("unknown pixel size should default to aspect 2")
	}
}

func TestColorProfileNoColor(t *testing.T) {
	clearTermEnv(t)
	if p := colorProfile(TermKitty, true, true); p != termenv.Ascii {
		t.Errorf("noColor profile = %v", p)
	}
	t.Setenv("NO_COLOR", "1")
	if p := colorProfile(TermKitty, false, false); p != termenv.Ascii {
		t.Errorf("NO_COLOR profile = %v", p)
	}
}

func TestColorProfileNonInteractive(t *testing.T) {
	clearTermEnv(t)
	if p := colorProfile(TermGeneric, false, false); p != termenv.TrueColor {
		t.Errorf("piped profile = %v, want TrueColor", p)
	}
}
