package ui

import (
	"fmt"
	"strings"
)

type helpSection struct {
	id      string
	title   string
	content string
}

var helpSections = []helpSection{
	{
		id:    "main",
		title: "MAIN MENU",
		content: `From the main menu, select a search type:

  1. TITLE Keywords    - Search by words in the title
  2. Exact TITLE       - Search for exact title match
  3. AUTHOR Browse     - Search by author name
  4. SUBJECT Keywords  - Search by subject headings
  5. SERIES            - Search for book series
  6. SUPER Search      - Search all fields
  7. ISBN Search       - Search by ISBN number
  8. Settings          - Configure the application
  9. About             - About this application
  0. Quit              - Exit the application

Navigation:
  - Use number keys (0-9) for quick selection
  - Use arrow keys to highlight, Enter to select
  - Press Q or Esc to quit`,
	},
	{
		id:    "search",
		title: "SEARCHING",
		content: `Enter your search terms and press Enter.

Tips:
  - Partial words are OK (e.g., "HEMINGW" for Hemingway)
  - Author searches work best as "Last, First"
  - ISBN searches accept both ISBN-10 and ISBN-13
  - Multiple words narrow your search

Navigation:
  - Esc = Go back to previous screen
  - Enter = Submit search`,
	},
	{
		id:    "results",
		title: "SEARCH RESULTS",
		content: `Browse your search results:

  - Use arrow keys to move through results
  - Press Enter to view item details
  - Press a number (1-9, 0) to select that item

Pagination:
  - PgDn or N = Next page of results
  - PgUp or P = Previous page of results

Navigation:
  - Esc = Go back to search screen`,
	},
	{
		id:    "detail",
		title: "ITEM DETAILS",
		content: `View bibliographic information and holdings:

The screen shows:
  - Top: Bibliographic details (title, author, etc.)
  - Bottom: Holdings table showing:
    * Library location
    * Call number / Shelfmark
    * Availability status
    * Due date (if on loan)

Navigation:
  - Use arrow keys to scroll holdings
  - Esc = Return to search results`,
	},
}

// fullHelpText assembles the complete help page.
func fullHelpText() string {
	var lines []string
	rule := strings.Repeat("=", 78)

	lines = append(lines, rule)
	lines = append(lines, centerText("LIBRARY CATALOG TERMINAL - HELP", 78))
	lines = append(lines, rule)
	lines = append(lines, "")

	for _, section := range helpSections {
		lines = append(lines, fmt.Sprintf("─── %s %s", section.title,
			strings.Repeat("─", 72-len(section.title))))
		lines = append(lines, section.content)
		lines = append(lines, "")
	}

	lines = append(lines, rule)
	lines = append(lines, centerText("Press Esc to return", 78))
	lines = append(lines, rule)

	return strings.Join(lines, "\n")
}
