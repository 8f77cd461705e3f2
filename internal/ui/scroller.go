package ui

import tea "github.com/charmbracelet/bubbletea"

// updateScroller handles the read-only scrolling pages (full biblio,
// MARC view, help).
func (m Model) updateScroller(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		m.mode = m.prevMode
		return m, nil
	}

	var cmd tea.Cmd
	m.scroller, cmd = m.scroller.Update(msg)
	return m, cmd
}

func (m Model) viewScroller() (string, string) {
	var title string
	switch m.mode {
	case modeFullBiblio:
		title = "── FULL RECORD ──"
	case modeMARCView:
		title = "── MARC VIEW ──"
	case modeHelp:
		title = "── HELP ──"
	}

	body := m.styles.BoxTitle.Render(title) + "\n" + m.scroller.View()
	return body, "Esc=Back, Up/Down=Scroll"
}
