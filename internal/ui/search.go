package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"opacterm/internal/catalog"
)

type searchModel struct {
	searchType catalog.SearchType
	prompt     string
	input      textinput.Model
	errMsg     string
}

func newSearchModel(st Styles) searchModel {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = maxQueryLength
	input.TextStyle = st.Text
	input.PlaceholderStyle = st.Dim
	return searchModel{input: input}
}

// searchExamples mirrors the per-index hint boxes of the classic
// terminal screens.
var searchExamples = map[catalog.SearchType]string{
	catalog.SearchTitle: `Examples:

    CATS                (Single keyword)
    GREAT GATSBY        (Multiple keywords)
    HARRY POTTER        (Partial title)

    (Note: OK to use partial words)`,
	catalog.SearchTitleExact: `Examples:

    THE GREAT GATSBY           (Complete title)
    TO KILL A MOCKINGBIRD      (Full exact title)

    (Note: Enter the complete title)`,
	catalog.SearchAuthor: `Examples:

    ASIMOV, ISAAC      (Author's full name)
    HEMINGW            (Note: OK to shorten name)
    KING, STEPHEN      (Last name, First name)`,
	catalog.SearchSubject: `Examples:

    HISTORY            (Single subject)
    WORLD WAR          (Subject phrase)
    COOKING FRENCH     (Multiple terms)`,
	catalog.SearchSeries: `Examples:

    HARRY POTTER       (Series name)
    DISCWORLD          (Partial series name)
    WHEEL OF TIME      (Full series name)`,
	catalog.SearchKeyword: `SUPER SEARCH - Search all fields

Examples:

    PYTHON PROGRAMMING     (Any keywords)
    SHAKESPEARE TRAGEDY    (Author + Subject)
    2020 COVID             (Year + Topic)`,
	catalog.SearchISBN: `Examples:

    9780134685991          (ISBN-13)
    0134685997             (ISBN-10)
    978-0-13-468599-1      (With dashes OK)`,
}

func (s *searchModel) inputPrompt() string {
	switch s.searchType {
	case catalog.SearchAuthor:
		return "Enter the author's name (last, first) :"
	case catalog.SearchTitleExact:
		return "Enter the exact title :"
	case catalog.SearchISBN:
		return "Enter the ISBN :"
	}
	return "Enter " + strings.ToLower(s.prompt) + " :"
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMenu
		return m, nil
	case "enter":
		query := strings.TrimSpace(m.search.input.Value())

		// The classic terminals accepted commands in the search field.
		switch strings.ToUpper(query) {
		case "SO", "B":
			m.mode = modeMenu
			return m, nil
		}

		if err := ValidateSearchQuery(query); err != nil {
			m.search.errMsg = err.Error()
			return m, nil
		}

		m.search.errMsg = ""
		m.results = newResultsModel(query, m.search.searchType)
		m.mode = modeResults
		return m, tea.Batch(
			m.startSearch(query, m.search.searchType, 1),
			m.spinner.Tick,
		)
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}

func (m Model) viewSearch() (string, string) {
	var b strings.Builder

	title := "── " + strings.ToUpper(m.search.prompt) + " SEARCH ──"
	b.WriteString(m.styles.BoxTitle.Render(title))
	b.WriteString("\n\n")

	examples := searchExamples[m.search.searchType]
	if examples == "" {
		examples = "Enter your search terms below."
	}
	b.WriteString(m.styles.ContentBox.Render(m.styles.Text.Render(examples)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Prompt.Render(m.search.inputPrompt()))
	b.WriteString(" ")
	b.WriteString(m.search.input.View())
	b.WriteString("\n")

	if m.search.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.search.errMsg))
		b.WriteString("\n")
	}

	return b.String(), "SO=Start Over, B=Back, ?=Help"
}
