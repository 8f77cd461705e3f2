package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"opacterm/internal/catalog"
)

// menuEntry is one numbered option on the main menu.
type menuEntry struct {
	number     int
	label      string
	searchType catalog.SearchType // empty for non-search entries
	prompt     string
	action     string // "settings", "about", "quit" for non-search entries
}

var menuEntries = []menuEntry{
	{number: 1, label: "TITLE Keywords", searchType: catalog.SearchTitle, prompt: "TITLE Keyword"},
	{number: 2, label: "Exact TITLE", searchType: catalog.SearchTitleExact, prompt: "Exact TITLE"},
	{number: 3, label: "AUTHOR Browse", searchType: catalog.SearchAuthor, prompt: "AUTHOR"},
	{number: 4, label: "SUBJECT Keywords", searchType: catalog.SearchSubject, prompt: "SUBJECT Keyword"},
	{number: 5, label: "SERIES", searchType: catalog.SearchSeries, prompt: "SERIES"},
	{number: 6, label: "SUPER Search", searchType: catalog.SearchKeyword, prompt: "Keywords"},
	{number: 7, label: "ISBN Search", searchType: catalog.SearchISBN, prompt: "ISBN"},
	{number: 8, label: "Settings", action: "settings"},
	{number: 9, label: "About", action: "about"},
	{number: 0, label: "Quit", action: "quit"},
}

type menuModel struct {
	cursor int
}

func newMenuModel() menuModel {
	return menuModel{}
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Number keys jump straight to the entry.
	for _, entry := range menuEntries {
		if key == fmt.Sprintf("%d", entry.number) {
			return m.selectMenuEntry(entry)
		}
	}

	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case "down", "j":
		if m.menu.cursor < len(menuEntries)-1 {
			m.menu.cursor++
		}
	case "enter":
		return m.selectMenuEntry(menuEntries[m.menu.cursor])
	case "?":
		m.openScroller(modeHelp, fullHelpText())
	}
	return m, nil
}

func (m Model) selectMenuEntry(entry menuEntry) (tea.Model, tea.Cmd) {
	switch entry.action {
	case "quit":
		return m, tea.Quit
	case "settings":
		m.settings = newSettingsModel(m.cfg, m.styles)
		m.mode = modeSettings
		return m, nil
	case "about":
		m.prevMode = m.mode
		m.mode = modeAbout
		return m, nil
	}

	m.search = newSearchModel(m.styles)
	m.search.searchType = entry.searchType
	m.search.prompt = entry.prompt
	m.mode = modeSearch
	return m, m.search.input.Focus()
}

func (m Model) viewMenu() (string, string) {
	var b strings.Builder

	b.WriteString(m.styles.Text.Render(
		"Welcome to the Online Public Access Catalog!\n" +
			"Please select one of the options below."))
	b.WriteString("\n\n")

	var rows []string
	for i, entry := range menuEntries {
		line := fmt.Sprintf("  %2d. %s", entry.number, entry.label)
		if i == m.menu.cursor {
			rows = append(rows, m.styles.Selected.Render(line))
		} else {
			rows = append(rows, m.styles.MenuItem.Render(line))
		}
	}
	b.WriteString(m.styles.ContentBox.Render(strings.Join(rows, "\n")))

	status := "Enter your selection(s) and press <Enter>: S=Shortcut on, ?=Help"
	return b.String(), status
}
