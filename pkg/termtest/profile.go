// Package termtest describes how art-timeline behaves on common terminal
// emulators. It backs the -doctor report and the cross-terminal rendering
// tests.
package termtest

import (
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/art-timeline/pkg/terminal"
)

// TerminalProfile describes a terminal's capabilities for testing.
type TerminalProfile struct {
	Name        string            // Human-readable terminal name
	EnvVars     map[string]string // Environment vars this terminal sets
	Term        terminal.Terminal // What terminal.Detect should report
	Profile     termenv.Profile   // Colour profile the terminal negotiates
	Protocol    terminal.GraphicsProtocol
	BoxDrawing  bool // Renders the ruler and guide glyphs
	MouseMotion bool // Delivers all-motion mouse events
	SSH         bool
}

// Profiles returns all known terminal profiles.
func Profiles() []TerminalProfile {
	return []TerminalProfile{
		ttGhosttyProfile(),
		ttKittyProfile(),
		ttITerm2Profile(),
		ttWezTermProfile(),
		ttTilixProfile(),
		ttAlacrittyProfile(),
		ttAppleTerminalProfile(),
		ttTmuxProfile(),
	}
}

// ProfileByName returns the profile matching the given name, or nil if not found.
func ProfileByName(name string) *TerminalProfile {
	for _, p := range Profiles() {
		if p.Name == name {
			cp := p
			return &cp
		}
	}
	return nil
}

// EnvKeys lists every variable any profile sets, plus the SSH markers.
// Tests clear them all before applying one profile.
func EnvKeys() []string {
	seen := map[string]bool{}
	keys := []string{"SSH_TTY", "SSH_CONNECTION", "SSH_CLIENT", "NO_COLOR", "STY",
		"ITERM_SESSION_ID", "LC_TERMINAL", "WEZTERM_EXECUTABLE", "KITTY_WINDOW_ID"}
	for _, k := range keys {
		seen[k] = true
	}
	for _, p := range Profiles() {
		for k := range p.EnvVars {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// FromCapabilities builds a profile for the terminal art-timeline is
// running in, for the -doctor report.
func FromCapabilities(caps terminal.Capabilities) TerminalProfile {
	return TerminalProfile{
		Name:        caps.Term.String(),
		Term:        caps.Term,
		Profile:     caps.Profile,
		Protocol:    caps.Protocol,
		BoxDrawing:  caps.Profile != termenv.Ascii,
		MouseMotion: caps.Term.SupportsMouseMotion(),
		SSH:         caps.SSH,
	}
}
