// Package ui implements the terminal interface: a set of modal
// screens styled after 1990s library catalog terminals.
package ui

import "strings"

// Theme is one retro terminal palette.
type Theme struct {
	Name        string
	Primary     string // main text
	Secondary   string // highlighted/selected text
	Background  string
	Border      string
	HeaderBG    string
	HeaderFG    string
	HighlightBG string // selected row background
	Dim         string // inactive text
}

var themes = map[string]Theme{
	"amber": {
		Name:        "Amber",
		Primary:     "#FFB000",
		Secondary:   "#FFCC00",
		Background:  "#1A1200",
		Border:      "#FFB000",
		HeaderBG:    "#FFB000",
		HeaderFG:    "#1A1200",
		HighlightBG: "#332200",
		Dim:         "#805800",
	},
	"green": {
		Name:        "Green",
		Primary:     "#33FF33",
		Secondary:   "#66FF66",
		Background:  "#001A00",
		Border:      "#33FF33",
		HeaderBG:    "#33FF33",
		HeaderFG:    "#001A00",
		HighlightBG: "#003300",
		Dim:         "#196619",
	},
	"white": {
		Name:        "White",
		Primary:     "#CCCCCC",
		Secondary:   "#FFFFFF",
		Background:  "#000000",
		Border:      "#CCCCCC",
		HeaderBG:    "#CCCCCC",
		HeaderFG:    "#000000",
		HighlightBG: "#333333",
		Dim:         "#666666",
	},
	"blue": {
		Name:        "Blue",
		Primary:     "#00AAFF",
		Secondary:   "#66CCFF",
		Background:  "#000814",
		Border:      "#00AAFF",
		HeaderBG:    "#00AAFF",
		HeaderFG:    "#000814",
		HighlightBG: "#001428",
		Dim:         "#005580",
	},
}

// ThemeNames lists the selectable themes in a stable order.
var ThemeNames = []string{"amber", "green", "white", "blue"}

// GetTheme resolves a theme by name, defaulting to amber.
func GetTheme(name string) Theme {
	if t, ok := themes[strings.ToLower(name)]; ok {
		return t
	}
	return themes["amber"]
}
