package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the keyboard bindings. It implements help.KeyMap.
type KeyMap struct {
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	PanLeft     key.Binding
	PanRight    key.Binding
	Reset       key.Binding
	NextEvent   key.Binding
	PrevEvent   key.Binding
	Open        key.Binding
	Close       key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	CycleWindow key.Binding
	CycleTheme  key.Binding
	CycleLayout key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ZoomIn:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		PanLeft:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "earlier")),
		PanRight:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "later")),
		Reset:       key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset")),
		NextEvent:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next event")),
		PrevEvent:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev event")),
		Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		ScrollUp:    key.NewBinding(key.WithKeys("pgup", "K"), key.WithHelp("pgup", "scroll eras")),
		ScrollDown:  key.NewBinding(key.WithKeys("pgdown", "J"), key.WithHelp("pgdn", "scroll eras")),
		CycleWindow: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next period")),
		CycleTheme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		CycleLayout: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "layout")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is shown on the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.PanLeft, k.PanRight, k.NextEvent, k.Help, k.Quit}
}

// FullHelp is shown in the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ZoomIn, k.ZoomOut, k.PanLeft, k.PanRight, k.Reset},
		{k.NextEvent, k.PrevEvent, k.Open, k.Close},
		{k.ScrollUp, k.ScrollDown, k.CycleWindow, k.CycleTheme, k.CycleLayout},
		{k.Help, k.Quit},
	}
}
