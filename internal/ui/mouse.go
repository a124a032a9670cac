package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handleMouse routes clicks and wheel events to the topmost layer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.vs.Loading {
		return m, nil
	}

	if m.modal != nil {
		var (
			cmd  tea.Cmd
			done bool
		)
		m.modal, cmd, done = m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		}
		return m, cmd
	}

	if m.vs.Selected != nil {
		return m.handleDetailMouse(msg)
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.rowOffset > 0 {
			m.rowOffset--
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		g := m.grid()
		totalRows := (len(m.vs.View().Items) + g.columns - 1) / g.columns
		if m.rowOffset+g.rows < totalRows {
			m.rowOffset++
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if msg.Y == controlsRow && msg.X >= frameMargin && msg.X < frameMargin+searchFieldWidth+4 {
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	}
	if m.searching {
		m.searching = false
		m.search.Blur()
	}

	items := m.vs.View().Items
	if idx := m.grid().cardAt(msg.X, msg.Y, m.rowOffset, len(items)); idx >= 0 {
		m.cursor = idx
		m.openDetail(items[idx])
		return m, nil
	}

	if msg.Y == m.pagerRow() {
		if page := m.pagerTarget(msg.X); page > 0 {
			m.goToPage(page)
		}
	}
	return m, nil
}

// handleDetailMouse closes the overlay on a click outside the panel and
// scrolls its body with the wheel.
func (m Model) handleDetailMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.detailViewport.ScrollUp(3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.detailViewport.ScrollDown(3)
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	x0, y0, w, h := m.detailBounds()
	if msg.X < x0 || msg.X >= x0+w || msg.Y < y0 || msg.Y >= y0+h {
		m.vs.ClearSelection()
	}
	return m, nil
}

// placedOrigin mirrors lipgloss.Place centering for a block of w×h cells.
func placedOrigin(width, height, w, h int) (int, int) {
	return max(width-w, 0) / 2, max(height-h, 0) / 2
}

// blockSize reports the rendered size of s.
func blockSize(s string) (int, int) {
	return lipgloss.Width(s), lipgloss.Height(s)
}
