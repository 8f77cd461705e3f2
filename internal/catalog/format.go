package catalog

import (
	"fmt"
	"strings"
)

// FormatDetails renders a record as the labelled block shown on the
// detail and full-biblio screens. mode is the call number display mode
// ("lcc", "dewey", "both"). When extended is false only the basic
// fields (title, author, publication, ISBN, call numbers) are included.
func FormatDetails(r *BiblioRecord, mode string, extended bool) string {
	var lines []string

	add := func(label, value string) {
		lines = append(lines, fmt.Sprintf("%-12s%s", label+":", value))
	}

	title := r.Title
	if title == "" {
		title = "Unknown Title"
	}
	add("Title", title)

	if r.Author != "" {
		add("Author", r.Author)
	}

	var pub []string
	if r.Publisher != "" {
		pub = append(pub, r.Publisher)
	}
	if r.PublicationYear != "" {
		pub = append(pub, r.PublicationYear)
	}
	if len(pub) > 0 {
		add("Published", strings.Join(pub, ", "))
	}

	if r.ISBN != "" {
		add("ISBN", r.ISBN)
	}

	if cn := r.CallNumberFor(mode); cn != "" {
		add("Call No", cn)
	}

	if extended {
		if r.Edition != "" {
			add("Edition", r.Edition)
		}
		if r.PhysicalDescription != "" {
			add("Physical", r.PhysicalDescription)
		}
		if r.Series != "" {
			add("Series", r.Series)
		}
		if len(r.Subjects) > 0 {
			subjects := strings.Join(firstN(r.Subjects, 3), "; ")
			if len(r.Subjects) > 3 {
				subjects += "..."
			}
			add("Subjects", subjects)
		}
		if r.Summary != "" {
			summary := r.Summary
			if len(summary) > 120 {
				summary = summary[:117] + "..."
			}
			add("Summary", summary)
		}
	}

	return strings.Join(lines, "\n")
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
