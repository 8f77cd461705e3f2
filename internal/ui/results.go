package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"opacterm/internal/catalog"
)

type resultsModel struct {
	query      string
	searchType catalog.SearchType
	page       int
	loading    bool
	result     *catalog.SearchResult
	cursor     int
	errMsg     string
}

func newResultsModel(query string, searchType catalog.SearchType) resultsModel {
	return resultsModel{
		query:      query,
		searchType: searchType,
		page:       1,
		loading:    true,
	}
}

func (m Model) handleSearchResults(msg searchResultsMsg) (tea.Model, tea.Cmd) {
	m.results.loading = false
	m.results.cursor = 0

	if msg.Err != nil {
		m.results.errMsg = msg.Err.Error()
		m.results.result = nil
		return m, nil
	}

	m.results.errMsg = ""
	m.results.result = msg.Result
	return m, nil
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := &m.results
	key := msg.String()

	// Number keys open that result directly.
	if n, ok := resultNumber(key); ok {
		return m.openResult(n - 1)
	}

	switch key {
	case "esc", "b":
		m.mode = modeSearch
		return m, m.search.input.Focus()
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.result != nil && r.cursor < len(r.result.Records)-1 {
			r.cursor++
		}
	case "enter":
		return m.openResult(r.cursor)
	case "n", "pgdown":
		if r.result != nil && r.result.HasNext() && !r.loading {
			r.page++
			r.loading = true
			return m, tea.Batch(
				m.startSearch(r.query, r.searchType, r.page),
				m.spinner.Tick,
			)
		}
	case "p", "pgup":
		if r.result != nil && r.result.HasPrev() && !r.loading {
			r.page--
			r.loading = true
			return m, tea.Batch(
				m.startSearch(r.query, r.searchType, r.page),
				m.spinner.Tick,
			)
		}
	case "?":
		m.openScroller(modeHelp, fullHelpText())
	}
	return m, nil
}

// resultNumber maps "1".."9" to 1..9 and "0" to 10.
func resultNumber(key string) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	if key == "0" {
		return 10, true
	}
	return int(key[0] - '0'), true
}

func (m Model) openResult(index int) (tea.Model, tea.Cmd) {
	r := m.results
	if r.result == nil || index < 0 || index >= len(r.result.Records) {
		return m, nil
	}

	record := r.result.Records[index]
	m.detail = newDetailModel(record.BiblioID)
	m.mode = modeDetail
	return m, tea.Batch(
		m.startDetail(record.BiblioID),
		m.spinner.Tick,
	)
}

// resultLine formats one row: number, author with year, then the
// title indented beneath, media tag included for non-book formats.
func resultLine(index int, rec *catalog.BiblioRecord) string {
	author := rec.Author
	if author == "" {
		author = "Unknown Author"
	}
	if rec.PublicationYear != "" {
		author += ", " + rec.PublicationYear
	}

	title := rec.Title
	if len(title) > 60 {
		title = title[:57] + "..."
	}

	tag := ""
	itemType := strings.ToLower(rec.ItemType)
	switch {
	case strings.Contains(itemType, "sound"):
		tag = "[sound recording] "
	case strings.Contains(itemType, "dvd"):
		tag = "[DVD] "
	case strings.Contains(itemType, "video"):
		tag = "[video] "
	}

	return fmt.Sprintf("%2d. %s\n      %s%s", index+1, author, tag, title)
}

func (m Model) viewResults() (string, string) {
	r := m.results
	var b strings.Builder

	b.WriteString(m.styles.Text.Render("Your Search: " + r.query))
	b.WriteString("\n")
	b.WriteString(m.styles.TableHeader.Width(m.width).Render(
		fmt.Sprintf("%-66s%12s", "AUTHOR/TITLE", "DATE")))
	b.WriteString("\n")

	status := "SO=Start Over, B=Back, ?=Help, <Enter>=Next Screen"

	switch {
	case r.loading:
		b.WriteString("\n" + m.spinner.View() + " Searching...")
	case r.errMsg != "":
		b.WriteString("\n" + m.styles.Error.Render("Error: "+r.errMsg))
	case r.result == nil || len(r.result.Records) == 0:
		b.WriteString("\n" + m.styles.Text.Render("No results found."))
		b.WriteString("\n\n" + m.styles.Pagination.Render("No items found"))
	default:
		for i := range r.result.Records {
			rec := &r.result.Records[i]
			line := resultLine(i, rec)
			if i == r.cursor {
				b.WriteString(m.styles.Selected.Render(line))
			} else {
				b.WriteString(m.styles.Text.Render(line))
			}
			b.WriteString("\n")
		}

		more := "End of Results"
		if r.result.HasNext() {
			more = "More on Next Screen"
		}
		b.WriteString("\n" + m.styles.Pagination.Render(fmt.Sprintf(
			"** %d Items - Page %d of %d - %s **",
			r.result.TotalCount, r.result.Page, r.result.TotalPages(), more)))

		status = "Enter an item number for more detail : SO=Start Over, B=Back, N=Next Page, P=Prev Page, ?=Help"
	}

	return b.String(), status
}
