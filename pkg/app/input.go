package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/art-timeline/pkg/projection"
	"gitlab.com/tinyland/lab/art-timeline/pkg/surface"
	"gitlab.com/tinyland/lab/art-timeline/pkg/viewport"
)

// wheelScrollLines is how far one wheel step scrolls the era panel.
const wheelScrollLines = 3

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}

	if m.modalOpen {
		if key.Matches(msg, m.keys.Close, m.keys.Open) {
			m.closeModal()
		}
		return nil
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Close, m.keys.Help) {
			m.showHelp = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.ZoomIn):
		return m.zoomButton(viewport.In)
	case key.Matches(msg, m.keys.ZoomOut):
		return m.zoomButton(viewport.Out)
	case key.Matches(msg, m.keys.PanLeft):
		m.ctrl.PanFraction(-m.cfg.Zoom.PanFraction)
	case key.Matches(msg, m.keys.PanRight):
		m.ctrl.PanFraction(m.cfg.Zoom.PanFraction)
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
	case key.Matches(msg, m.keys.NextEvent):
		if !m.CycleSelectionForward() {
			return m.setNotice("no events in view")
		}
	case key.Matches(msg, m.keys.PrevEvent):
		if !m.CycleSelectionBackward() {
			return m.setNotice("no events in view")
		}
	case key.Matches(msg, m.keys.Open):
		if m.selected.Kind == surface.TargetEvent {
			return m.openModal(m.selected.EventID)
		}
	case key.Matches(msg, m.keys.Close):
		m.selected, m.hover = surface.None, surface.None
	case key.Matches(msg, m.keys.ScrollUp):
		m.detail.ScrollUp(max(m.detail.Height-1, 1))
	case key.Matches(msg, m.keys.ScrollDown):
		m.detail.ScrollDown(max(m.detail.Height-1, 1))
	case key.Matches(msg, m.keys.CycleWindow):
		p := m.nextWindow()
		return func() tea.Msg { return WindowPresetEvent{Preset: p} }
	case key.Matches(msg, m.keys.CycleTheme):
		t := m.nextTheme()
		return func() tea.Msg { return ThemeChangeEvent{Theme: t} }
	case key.Matches(msg, m.keys.CycleLayout):
		p := m.nextLayout()
		return func() tea.Msg { return LayoutPresetEvent{Preset: p} }
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return nil
}

func (m *Model) zoomButton(d viewport.Direction) tea.Cmd {
	m.ctrl.ZoomButton(d)
	return m.limitNotice()
}

func (m *Model) zoomWheel(x int, d viewport.Direction) tea.Cmd {
	m.ctrl.ZoomAt(projection.Ratio(x, m.width), d)
	return m.limitNotice()
}

func (m *Model) limitNotice() tea.Cmd {
	if m.ctrl.AtLimit() {
		return m.setNotice("zoom limit reached")
	}
	return nil
}

func isWheel(msg tea.MouseMsg) (viewport.Direction, bool) {
	if msg.Action != tea.MouseActionPress {
		return viewport.In, false
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return viewport.In, true
	case tea.MouseButtonWheelDown:
		return viewport.Out, true
	}
	return viewport.In, false
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	leftPress := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.modalOpen {
		if leftPress && (m.zones.Get(zoneModalClose).InBounds(msg) || !m.zones.Get(zoneModal).InBounds(msg)) {
			m.closeModal()
		}
		return nil
	}
	if m.showHelp {
		if leftPress {
			m.showHelp = false
		}
		return nil
	}

	g := m.geometry()

	// A drag keeps panning wherever the pointer goes until release.
	if m.dragging {
		switch msg.Action {
		case tea.MouseActionMotion:
			if dx := m.dragX - msg.X; dx != 0 {
				m.ctrl.PanBy(float64(dx), float64(m.width))
				m.dragX = msg.X
				m.dragMoved = true
			}
			return nil
		case tea.MouseActionRelease:
			m.dragging = false
			if !m.dragMoved {
				return m.click(m.hitAt(msg.X, msg.Y, g))
			}
			return nil
		}
	}

	if d, ok := isWheel(msg); ok {
		switch {
		case g.onTimeline(msg.Y):
			return m.zoomWheel(msg.X, d)
		case g.onDetail(msg.Y) && d == viewport.In:
			m.detail.ScrollUp(wheelScrollLines)
		case g.onDetail(msg.Y):
			m.detail.ScrollDown(wheelScrollLines)
		}
		return nil
	}

	switch {
	case leftPress:
		switch {
		case m.zones.Get(zoneZoomIn).InBounds(msg):
			return m.zoomButton(viewport.In)
		case m.zones.Get(zoneZoomOut).InBounds(msg):
			return m.zoomButton(viewport.Out)
		case g.onTimeline(msg.Y):
			m.dragging, m.dragX, m.dragMoved = true, msg.X, false
		case g.onDetail(msg.Y):
			return m.click(m.hitAt(msg.X, msg.Y, g))
		}
	case msg.Action == tea.MouseActionMotion:
		m.hover = m.hitAt(msg.X, msg.Y, g)
	}
	return nil
}

// hitAt maps a screen cell to whatever is drawn there.
func (m Model) hitAt(x, y int, g geometry) surface.Target {
	switch {
	case g.onCanvas(y):
		return surface.HitCanvas(m.scene(), x, y-g.canvas)
	case g.onDetail(y):
		s := m.scene()
		s.Width = m.detail.Width
		line := y - (g.detail + 1) + m.detail.YOffset
		return surface.Detail(s).Hit(x-1, line)
	}
	return surface.None
}

func (m *Model) click(t surface.Target) tea.Cmd {
	switch t.Kind {
	case surface.TargetEvent:
		return m.openModal(t.EventID)
	case surface.TargetEra:
		m.FocusEra(t.EraID)
	case surface.TargetMovement:
		m.FocusMovement(t.MovementID)
	}
	return nil
}
