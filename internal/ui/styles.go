package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds every lipgloss style the screens draw with, built from
// a single Theme so a settings change re-skins the whole app at once.
type Styles struct {
	Screen      lipgloss.Style
	Header      lipgloss.Style
	StatusBar   lipgloss.Style
	ContentBox  lipgloss.Style
	BoxTitle    lipgloss.Style
	MenuNumber  lipgloss.Style
	MenuItem    lipgloss.Style
	Selected    lipgloss.Style
	Text        lipgloss.Style
	Dim         lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Available   lipgloss.Style
	Unavailable lipgloss.Style
	Error       lipgloss.Style
	Pagination  lipgloss.Style
	TableHeader lipgloss.Style
	Prompt      lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t Theme) Styles {
	primary := lipgloss.Color(t.Primary)
	secondary := lipgloss.Color(t.Secondary)
	background := lipgloss.Color(t.Background)
	border := lipgloss.Color(t.Border)
	headerBG := lipgloss.Color(t.HeaderBG)
	headerFG := lipgloss.Color(t.HeaderFG)
	highlightBG := lipgloss.Color(t.HighlightBG)
	dim := lipgloss.Color(t.Dim)

	return Styles{
		Screen: lipgloss.NewStyle().
			Foreground(primary).
			Background(background),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(headerFG).
			Background(headerBG).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(headerFG).
			Background(headerBG).
			Padding(0, 1),
		ContentBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(1),
		BoxTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary),
		MenuNumber: lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary),
		MenuItem: lipgloss.NewStyle().
			Foreground(primary).
			Padding(0, 2),
		Selected: lipgloss.NewStyle().
			Foreground(secondary).
			Background(highlightBG),
		Text: lipgloss.NewStyle().
			Foreground(primary),
		Dim: lipgloss.NewStyle().
			Foreground(dim),
		Label: lipgloss.NewStyle().
			Foreground(dim),
		Value: lipgloss.NewStyle().
			Foreground(primary),
		Available: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF00")),
		Unavailable: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6666")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6666")),
		Pagination: lipgloss.NewStyle().
			Foreground(dim),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(headerFG).
			Background(headerBG),
		Prompt: lipgloss.NewStyle().
			Foreground(primary),
	}
}
