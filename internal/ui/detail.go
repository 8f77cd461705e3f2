package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"opacterm/internal/catalog"
)

type detailModel struct {
	biblioID    int
	loading     bool
	record      *catalog.BiblioRecord
	recordErr   error
	holdings    []catalog.HoldingItem
	holdingsErr error
	table       table.Model
}

func newDetailModel(biblioID int) detailModel {
	return detailModel{biblioID: biblioID, loading: true}
}

func (m Model) handleDetailLoaded(msg detailLoadedMsg) (tea.Model, tea.Cmd) {
	d := &m.detail
	d.loading = false
	d.record = msg.Record
	d.recordErr = msg.RecordErr
	d.holdings = msg.Holdings
	d.holdingsErr = msg.HoldingsErr

	d.table = m.newHoldingsTable(msg.Holdings)
	return m, nil
}

func (m *Model) newHoldingsTable(holdings []catalog.HoldingItem) table.Model {
	columns := []table.Column{
		{Title: "Library", Width: 20},
		{Title: "Location", Width: 18},
		{Title: "Call Number", Width: 18},
		{Title: "Status", Width: 14},
		{Title: "Due Date", Width: 10},
	}

	rows := make([]table.Row, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, table.Row{
			orDash(h.LibraryName, h.LibraryID),
			orDash(h.Location, ""),
			orDash(h.CallNumber, ""),
			h.Status,
			orDash(h.DueDate, ""),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(holdingsTableHeight(len(rows))),
	)

	styles := table.DefaultStyles()
	styles.Header = m.styles.TableHeader
	styles.Selected = m.styles.Selected
	styles.Cell = m.styles.Text
	t.SetStyles(styles)
	return t
}

func holdingsTableHeight(rows int) int {
	if rows > 8 {
		return 8
	}
	if rows < 1 {
		return 1
	}
	return rows
}

func orDash(value, fallback string) string {
	if value != "" {
		return value
	}
	if fallback != "" {
		return fallback
	}
	return "-"
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.detail

	switch msg.String() {
	case "esc", "b", "q":
		m.mode = modeResults
		return m, nil
	case "enter":
		if len(d.holdings) > 0 {
			m.holdingIndex = d.table.Cursor()
			m.mode = modeHoldingDetail
		}
		return m, nil
	case "f":
		if d.record != nil {
			m.openScroller(modeFullBiblio, m.fullBiblioText(d.record))
		}
		return m, nil
	case "m":
		if d.record != nil {
			m.openScroller(modeMARCView, catalog.FormatMARC(d.record))
		}
		return m, nil
	case "?":
		m.openScroller(modeHelp, fullHelpText())
		return m, nil
	}

	var cmd tea.Cmd
	d.table, cmd = d.table.Update(msg)
	return m, cmd
}

func (m Model) viewDetail() (string, string) {
	d := m.detail
	var b strings.Builder

	if d.loading {
		b.WriteString("\n" + m.spinner.View() + " Loading record...")
		return b.String(), "B=Back to results"
	}

	b.WriteString(m.styles.BoxTitle.Render("── BIBLIOGRAPHIC DETAILS ──"))
	b.WriteString("\n")

	switch {
	case d.recordErr != nil:
		b.WriteString(m.styles.Error.Render("Error loading record: " + d.recordErr.Error()))
	case d.record == nil:
		b.WriteString(m.styles.Text.Render("Record not found."))
	default:
		details := catalog.FormatDetails(d.record, m.cfg.CallNumberDisplay, true)
		b.WriteString(m.styles.ContentBox.Render(m.styles.Text.Render(details)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.styles.BoxTitle.Render("── ITEM HOLDINGS ──"))
	b.WriteString("\n")

	switch {
	case d.holdingsErr != nil:
		b.WriteString(m.styles.Error.Render("Error loading holdings: " + d.holdingsErr.Error()))
	case len(d.holdings) == 0:
		b.WriteString(m.styles.Text.Render("No copies available in the system."))
	default:
		b.WriteString(d.table.View())

		total := len(d.holdings)
		available, onLoan := 0, 0
		for _, h := range d.holdings {
			if h.IsAvailable {
				available++
			}
			if h.Status == "On Loan" {
				onLoan++
			}
		}
		b.WriteString("\n" + m.styles.Dim.Render(fmt.Sprintf(
			"Total copies: %d | Available: %d | On loan: %d", total, available, onLoan)))
	}

	return b.String(), "B=Back, F=Full Record, M=MARC View, <Enter>=Item Detail, ?=Help"
}

// fullBiblioText renders the complete record page shown by the full
// biblio view.
func (m Model) fullBiblioText(rec *catalog.BiblioRecord) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("Title:       %s", orDash(rec.Title, "Unknown Title")))
	lines = append(lines, "")

	if rec.Author != "" {
		authors := strings.Split(rec.Author, " | ")
		lines = append(lines, fmt.Sprintf("Author:      %s", authors[0]))
		for _, contrib := range authors[1:] {
			lines = append(lines, fmt.Sprintf("Contributor: %s", contrib))
		}
		lines = append(lines, "")
	}

	if rec.Publisher != "" {
		lines = append(lines, fmt.Sprintf("Publisher:   %s", rec.Publisher))
	}
	if rec.PublicationYear != "" {
		lines = append(lines, fmt.Sprintf("Year:        %s", rec.PublicationYear))
	}
	if rec.Publisher != "" || rec.PublicationYear != "" {
		lines = append(lines, "")
	}

	if rec.ISBN != "" {
		lines = append(lines, fmt.Sprintf("ISBN:        %s", rec.ISBN))
		lines = append(lines, "")
	}

	mode := m.cfg.CallNumberDisplay
	hasCallNumber := false
	if (mode == "both" || mode == "lcc") && rec.CallNumberLCC != "" {
		lines = append(lines, fmt.Sprintf("LOC Call No:  %s", rec.CallNumberLCC))
		hasCallNumber = true
	}
	if (mode == "both" || mode == "dewey") && rec.CallNumberDewey != "" {
		lines = append(lines, fmt.Sprintf("DDC Call No:  %s", rec.CallNumberDewey))
		hasCallNumber = true
	}
	if !hasCallNumber && rec.CallNumber != "" {
		lines = append(lines, fmt.Sprintf("Call No:      %s", rec.CallNumber))
		hasCallNumber = true
	}
	if hasCallNumber {
		lines = append(lines, "")
	}

	if rec.Edition != "" {
		lines = append(lines, fmt.Sprintf("Edition:     %s", rec.Edition), "")
	}
	if rec.PhysicalDescription != "" {
		lines = append(lines, fmt.Sprintf("Physical:    %s", rec.PhysicalDescription), "")
	}
	if rec.Series != "" {
		lines = append(lines, fmt.Sprintf("Series:      %s", rec.Series), "")
	}

	if len(rec.Subjects) > 0 {
		lines = append(lines, "Subjects:")
		for _, subject := range rec.Subjects {
			lines = append(lines, "  • "+subject)
		}
		lines = append(lines, "")
	}

	if rec.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes:       %s", rec.Notes), "")
	}

	if rec.Summary != "" {
		lines = append(lines, "Summary:")
		lines = append(lines, wrapText(rec.Summary, 74, "  ")...)
		lines = append(lines, "")
	}

	lines = append(lines, fmt.Sprintf("Record ID:   %d", rec.BiblioID))
	return strings.Join(lines, "\n")
}

// wrapText word-wraps text to the given width with a line prefix.
func wrapText(text string, width int, prefix string) []string {
	var lines []string
	var current []string
	length := 0

	for _, word := range strings.Fields(text) {
		if length > 0 && length+len(word)+1 > width {
			lines = append(lines, prefix+strings.Join(current, " "))
			current = nil
			length = 0
		}
		current = append(current, word)
		length += len(word) + 1
	}
	if len(current) > 0 {
		lines = append(lines, prefix+strings.Join(current, " "))
	}
	return lines
}
