package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities summarises the terminal for the current session.
type Capabilities struct {
	Term        Terminal
	Protocol    GraphicsProtocol
	Size        Size
	Profile     termenv.Profile
	Interactive bool // stdout is a terminal
	SSH         bool
	Mux         bool // inside tmux or screen
}

// Options adjusts detection.
type Options struct {
	// Protocol is the configured image protocol ("auto" to detect).
	Protocol string
	// NoColor forces the ASCII profile.
	NoColor bool
}

// DetectCapabilities inspects the environment and stdout.
func DetectCapabilities(opts Options) Capabilities {
	t := Detect()
	ssh := isSSH()
	fd := os.Stdout.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	return Capabilities{
		Term:        t,
		Protocol:    SelectProtocolWithOverride(t, opts.Protocol, ssh),
		Size:        GetSize(),
		Profile:     colorProfile(t, interactive, opts.NoColor),
		Interactive: interactive,
		SSH:         ssh,
		Mux:         os.Getenv("TMUX") != "" || os.Getenv("STY") != "",
	}
}

// colorProfile asks termenv for the stdout profile and upgrades it to true
// colour for terminals known to support it. NO_COLOR and noColor force ASCII.
func colorProfile(t Terminal, interactive, noColor bool) termenv.Profile {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if !interactive {
		// Snapshots piped to a file keep full colour unless asked not to.
		return termenv.TrueColor
	}
	p := termenv.NewOutput(os.Stdout).Profile
	if p > termenv.TrueColor && (t.SupportsTrueColor() || trueColorEnv()) {
		return termenv.TrueColor
	}
	return p
}
