package terminal

import (
	"strings"
)

// GraphicsProtocol identifies which image rendering protocol to use.
type GraphicsProtocol int

const (
	ProtocolNone       GraphicsProtocol = iota // no artwork previews
	ProtocolKitty                              // Ghostty, Kitty, WezTerm
	ProtocolITerm2                             // iTerm2 inline images
	ProtocolSixel                              // sixel
	ProtocolHalfblocks                         // Unicode half blocks with ANSI colour
)

var protocolNames = [...]string{
	ProtocolNone:       "none",
	ProtocolKitty:      "kitty",
	ProtocolITerm2:     "iterm2",
	ProtocolSixel:      "sixel",
	ProtocolHalfblocks: "halfblocks",
}

// String returns the protocol name as used in configuration.
func (p GraphicsProtocol) String() string {
	if p >= 0 && int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// Inline reports whether the protocol writes escape-sequence images rather
// than text cells. Inline images cannot be composited into a lipgloss
// layout and are drawn after the frame.
func (p GraphicsProtocol) Inline() bool {
	return p == ProtocolKitty || p == ProtocolITerm2 || p == ProtocolSixel
}

// ParseProtocol maps a configuration value to a protocol. "auto" and ""
// report ok=false so the caller falls back to detection.
func ParseProtocol(s string) (GraphicsProtocol, bool) {
	switch strings.ToLower(s) {
	case "kitty":
		return ProtocolKitty, true
	case "iterm2":
		return ProtocolITerm2, true
	case "sixel":
		return ProtocolSixel, true
	case "halfblocks", "unicode", "half-blocks":
		return ProtocolHalfblocks, true
	case "none", "off", "disabled":
		return ProtocolNone, true
	}
	return ProtocolNone, false
}

// SelectProtocol returns the best protocol for term. Over SSH every inline
// protocol degrades to half blocks.
func SelectProtocol(term Terminal, ssh bool) GraphicsProtocol {
	var proto GraphicsProtocol
	switch term {
	case TermGhostty, TermKitty, TermWezTerm:
		proto = ProtocolKitty
	case TermITerm2:
		proto = ProtocolITerm2
	default:
		proto = ProtocolHalfblocks
	}
	if ssh && proto.Inline() {
		return ProtocolHalfblocks
	}
	return proto
}

// SelectProtocolWithOverride honours a configured protocol, falling back to
// detection for "auto", "" and unknown values.
func SelectProtocolWithOverride(term Terminal, override string, ssh bool) GraphicsProtocol {
	if p, ok := ParseProtocol(override); ok {
		return p
	}
	return SelectProtocol(term, ssh)
}
