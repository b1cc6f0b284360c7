package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/art-timeline/pkg/artwork"
	"gitlab.com/tinyland/lab/art-timeline/pkg/config"
	"gitlab.com/tinyland/lab/art-timeline/pkg/dataset"
	"gitlab.com/tinyland/lab/art-timeline/pkg/surface"
	"gitlab.com/tinyland/lab/art-timeline/pkg/theme"
	"gitlab.com/tinyland/lab/art-timeline/pkg/viewport"
)

// focusPadding is the share of a span added on each side when the view is
// fitted to an era or movement.
const focusPadding = 0.05

// CycleSelectionForward selects the next event in the visible window,
// wrapping around after the last. It reports false when no event is
// visible.
func (m *Model) CycleSelectionForward() bool {
	return m.cycleSelection(1)
}

// CycleSelectionBackward selects the previous visible event.
func (m *Model) CycleSelectionBackward() bool {
	return m.cycleSelection(-1)
}

func (m *Model) cycleSelection(step int) bool {
	visible := m.data.VisibleEvents(m.ctrl.Current())
	if len(visible) == 0 {
		return false
	}

	idx := -1
	for i, ref := range visible {
		if m.selected.IsEvent(ref.Event.ID) {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && step < 0:
		idx = len(visible) - 1
	case idx < 0:
		idx = 0
	default:
		idx = (idx + step + len(visible)) % len(visible)
	}

	id := visible[idx].Event.ID
	m.selected = surface.EventTarget(id)
	m.hover = m.selected
	m.revealInDetail(id)
	return true
}

// revealInDetail scrolls the era panel so the row for event id is visible.
func (m *Model) revealInDetail(id int) {
	g := m.geometry()
	if g.detailH <= 0 {
		return
	}
	s := m.scene()
	s.Width = max(m.width-2, 0)
	line := surface.Detail(s).LineOf(id)
	if line < 0 {
		return
	}
	m.refreshDetail()
	if line < m.detail.YOffset || line >= m.detail.YOffset+m.detail.Height {
		m.detail.SetYOffset(max(line-1, 0))
	}
}

// FocusEra fits the viewport to an era's span.
func (m *Model) FocusEra(id string) bool {
	era, ok := m.data.EraByID(id)
	if !ok {
		return false
	}
	m.fitSpan(era.StartYear, era.EndYear)
	return true
}

// FocusMovement fits the viewport to a movement's span.
func (m *Model) FocusMovement(id string) bool {
	mv, ok := m.data.MovementByID(id)
	if !ok {
		return false
	}
	m.fitSpan(mv.StartYear, mv.EndYear)
	return true
}

func (m *Model) fitSpan(start, end float64) {
	pad := (end - start) * focusPadding
	m.ctrl.Set(viewport.Viewport{StartYear: start - pad, EndYear: end + pad})
}

// openModal shows event id and starts loading its artwork when the event
// names a local image.
func (m *Model) openModal(id int) tea.Cmd {
	ref, ok := m.data.EventByID(id)
	if !ok {
		return nil
	}
	m.selected = surface.EventTarget(id)
	m.modalOpen = true
	m.modalEvent = ref
	m.art = ""
	m.logger.Debug("event opened", "id", id, "label", ref.Event.Label)

	if m.renderer == nil || !m.renderer.Enabled() {
		return nil
	}
	path, err := artwork.Resolve(ref.Event.ImageURL, m.baseDir)
	if err != nil {
		if !errors.Is(err, artwork.ErrNoImage) {
			m.logger.Debug("artwork skipped", "event", id, "error", err)
		}
		return nil
	}
	w, h := m.artworkSize()
	return ArtworkCmd(m.renderer.CellRenderer(), id, path, w, h)
}

// modalWidth is the outer width of the event modal.
func (m Model) modalWidth() int {
	return min(max(m.width-4, 24), 72)
}

func (m Model) artworkSize() (w, h int) {
	w = min(m.cfg.Image.Width, m.modalWidth()-4)
	h = min(m.cfg.Image.Height, max(m.height-14, 4))
	return w, h
}

func (m *Model) closeModal() {
	m.modalOpen = false
	m.modalEvent = dataset.EventRef{}
	m.art = ""
}

// next returns the entry after cur in names, wrapping around.
func next(names []string, cur string) string {
	if len(names) == 0 {
		return cur
	}
	for i, n := range names {
		if n == cur {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func (m Model) nextTheme() string {
	return next(theme.Names(), m.themeName)
}

var layoutPresets = []string{"full", "compact", "canvas"}

func (m Model) nextLayout() string {
	return next(layoutPresets, m.layout.Preset)
}

// nextWindow picks the window preset after the one matching the current
// viewport, or the first preset.
func (m Model) nextWindow() string {
	names := config.WindowPresetNames()
	cur := m.ctrl.Current()
	for _, n := range names {
		if w, _ := config.WindowPreset(n); viewport.Normalize(w) == cur {
			return next(names, n)
		}
	}
	return names[0]
}
