package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateHoldingDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q", "enter":
		m.mode = modeDetail
	case "up", "k":
		if m.holdingIndex > 0 {
			m.holdingIndex--
		}
	case "down", "j":
		if m.holdingIndex < len(m.detail.holdings)-1 {
			m.holdingIndex++
		}
	}
	return m, nil
}

func (m Model) viewHoldingDetail() (string, string) {
	status := "B=Back to holdings, Up/Down=Other copies"

	if m.holdingIndex < 0 || m.holdingIndex >= len(m.detail.holdings) {
		return m.styles.Text.Render("Select an item to view details."), status
	}
	item := m.detail.holdings[m.holdingIndex]

	var b strings.Builder
	b.WriteString(m.styles.BoxTitle.Render("── ITEM DETAIL ──"))
	b.WriteString("\n")

	var lines []string
	lines = append(lines, fmt.Sprintf("Library:   %s", orDash(item.LibraryName, item.LibraryID)))
	if item.Location != "" {
		lines = append(lines, fmt.Sprintf("Location:  %s", item.Location))
	}
	if item.CallNumber != "" {
		lines = append(lines, fmt.Sprintf("Call No:   %s", item.CallNumber))
	}
	if item.CopyNumber > 0 {
		lines = append(lines, fmt.Sprintf("Copy:      %d", item.CopyNumber))
	}
	if item.Barcode != "" {
		lines = append(lines, fmt.Sprintf("Barcode:   %s", item.Barcode))
	}
	if item.ItemType != "" {
		lines = append(lines, fmt.Sprintf("Type:      %s", item.ItemType))
	}
	lines = append(lines, fmt.Sprintf("Status:    %s", item.Status))
	if item.DueDate != "" {
		lines = append(lines, fmt.Sprintf("Due Date:  %s", item.DueDate))
	}
	if item.PublicNote != "" {
		lines = append(lines, fmt.Sprintf("Note:      %s", item.PublicNote))
	}

	b.WriteString(m.styles.ContentBox.Render(m.styles.Text.Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")

	availability := m.styles.Unavailable.Render("NOT AVAILABLE")
	if item.IsAvailable {
		availability = m.styles.Available.Render("AVAILABLE")
	}
	b.WriteString(availability)
	b.WriteString("\n\n")
	b.WriteString(m.styles.Dim.Render(fmt.Sprintf("Copy %d of %d",
		m.holdingIndex+1, len(m.detail.holdings))))

	return b.String(), status
}
