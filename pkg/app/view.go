package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/art-timeline/pkg/surface"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	g := m.geometry()
	if !g.fits {
		return placeholderView(m.styles, m.width, m.height, minWidth, m.minHeight())
	}
	if m.modalOpen {
		return m.zones.Scan(m.modalView())
	}
	if m.showHelp {
		return m.zones.Scan(m.helpView())
	}

	s := m.scene()
	rows := []string{m.headerView(), surface.Ruler(s), surface.Canvas(s)}
	if g.indicator >= 0 {
		rows = append(rows, surface.Indicator(s))
	}
	if g.detailH > 0 {
		rows = append(rows, m.styles.Panel.Render(m.detail.View()))
	}

	body := strings.Join(rows, "\n")
	used := lipgloss.Height(body)
	if pad := g.status - used; pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return m.zones.Scan(body + "\n" + m.statusView())
}

func (m Model) headerView() string {
	st := m.styles
	title := st.Title.Render(" Art Timeline ")
	out := m.zones.Mark(zoneZoomOut, st.Button.Render("[ − ]"))
	in := m.zones.Mark(zoneZoomIn, st.Button.Render("[ + ]"))
	left := lipgloss.JoinHorizontal(lipgloss.Top, title, " ", out, " ", in)

	hint := st.Dim.Render("wheel zoom · drag pan · click details ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hint)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + hint
}

func (m Model) statusView() string {
	if m.notice != "" {
		return m.styles.Notice.Render(" " + m.notice)
	}
	return m.help.View(m.keys)
}

func (m Model) modalView() string {
	st := m.styles
	modal := surface.Modal(st, surface.ModalOptions{
		Event:   m.modalEvent,
		Artwork: m.art,
		Width:   m.modalWidth(),
		Close:   m.zones.Mark(zoneModalClose, st.Button.Render("[ close ]")),
	})
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.zones.Mark(zoneModal, modal))
}

func (m Model) helpView() string {
	h := m.help
	h.ShowAll = true
	box := m.styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Keys"),
		"",
		h.View(m.keys),
		"",
		m.styles.Dim.Render("Mouse: wheel zooms at the pointer, drag pans,"),
		m.styles.Dim.Render("click a marker, bar or era to open or focus it."),
	))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
