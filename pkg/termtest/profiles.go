package termtest

import (
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/art-timeline/pkg/terminal"
)

// ttGhosttyProfile returns the Ghostty terminal profile.
func ttGhosttyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Ghostty",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "ghostty",
			"TERM":         "xterm-ghostty",
			"COLORTERM":    "truecolor",
		},
		Term:        terminal.TermGhostty,
		Profile:     termenv.TrueColor,
		Protocol:    terminal.ProtocolKitty,
		BoxDrawing:  true,
		MouseMotion: true,
	}
}

// ttKittyProfile returns the Kitty terminal profile.
func ttKittyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Kitty",
		EnvVars: map[string]string{
			"TERM_PROGRAM":    "kitty",
			"TERM":            "xterm-kitty",
			"COLORTERM":       "truecolor",
			"KITTY_WINDOW_ID": "1",
		},
		Term:        terminal.TermKitty,
		Profile:     termenv.TrueColor,
		Protocol:    terminal.ProtocolKitty,
		BoxDrawing:  true,
		MouseMotion: true,
	}
}

// ttITerm2Profile returns the iTerm2 terminal profile.
func ttITerm2Profile() TerminalProfile {
	return TerminalProfile{
		Name: "iTerm2",
		EnvVars: map[string]string{
			"TERM_PROGRAM":     "iTerm.app",
			"TERM":             "xterm-256color",
			"COLORTERM":        "truecolor",
			"ITERM_SESSION_ID": "w0t0p0:ABC",
		},
		Term:        terminal.TermITerm2,
		Profile:     termenv.TrueColor,
		Protocol:    terminal.ProtocolITerm2,
		BoxDrawing:  true,
		MouseMotion: true,
	}
}

// ttWezTermProfile returns the WezTerm profile. WezTerm speaks several
// image protocols; kitty is preferred.
func ttWezTermProfile() TerminalProfile {
	return TerminalProfile{
		Name: "WezTerm",
		EnvVars: map[string]string{
			"TERM_PROGRAM":       "WezTerm",
			"TERM":               "xterm-256color",
			"COLORTERM":          "truecolor",
			"WEZTERM_EXECUTABLE": "/usr/bin/wezterm-gui",
		},
		Term:        terminal.TermWezTerm,
		Profile:     termenv.TrueColor,
		Protocol:    terminal.ProtocolKitty,
		BoxDrawing:  true,
		MouseMotion: true,
	}
}

// ttTilixProfile returns the Tilix profile, standing in for VTE terminals.
// Older builds negotiate 256 colours.
func ttTilixProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Tilix",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "",
			"TERM":         "xterm-256color",
			"VTE_VERSION":  "6800",
			"TILIX_ID":     "some-id",
		},
		Term:        terminal.TermVTE,
		Profile:     termenv.ANSI256,
		Protocol:    terminal.ProtocolHalfblocks,
		BoxDrawing:  true,
		MouseMotion: true,
	}
}

// ttAlacrittyProfile returns the Alacritty profile: true colour, no image
// protocol.
func ttAlacrittyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Alacritty",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "alacritty",
			"TERM":         "alacritty",
			"COLORTERM":    "truecolor",
		},
		Term:        terminal.TermAlacritty,
		Profile:     termenv.TrueColor,
		Protocol:    terminal.ProtocolHalfblocks,
		BoxDrawing:  true,
		MouseMotion: true,
	}
}

// ttAppleTerminalProfile returns the Apple Terminal profile. It is detected
// as a generic terminal and does not report motion events.
func ttAppleTerminalProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Apple Terminal",
		EnvVars: map[string]string{
			"TERM_PROGRAM":         "Apple_Terminal",
			"TERM":                 "xterm-256color",
			"TERM_PROGRAM_VERSION": "453",
		},
		Term:       terminal.TermGeneric,
		Profile:    termenv.ANSI256,
		Protocol:   terminal.ProtocolHalfblocks,
		BoxDrawing: true,
	}
}

// ttTmuxProfile returns the tmux profile. Image passthrough is not assumed.
func ttTmuxProfile() TerminalProfile {
	return TerminalProfile{
		Name: "tmux",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "tmux",
			"TERM":         "screen-256color",
			"TMUX":         "/tmp/tmux-501/default,12345,0",
		},
		Term:        terminal.TermTmux,
		Profile:     termenv.ANSI256,
		Protocol:    terminal.ProtocolHalfblocks,
		BoxDrawing:  true,
		MouseMotion: true,
	}
}
