// Package catalog implements the data-acquisition layer for a Koha
// library system: a normalized record model, a MARC-in-JSON parser,
// HTML extractors for the OPAC web pages, and a fetch client that
// sequences those strategies with fallback-on-failure semantics.
package catalog

import "strings"

// BiblioRecord is one normalized catalog entry. Records are built
// exactly once by a parser and never mutated afterwards.
type BiblioRecord struct {
	BiblioID        int
	Title           string
	Author          string
	PublicationYear string
	Publisher       string
	ISBN            string
	ItemType        string

	// CallNumber is the generic/legacy call number, used when neither
	// classification-specific field is populated.
	CallNumber      string
	CallNumberLCC   string // Library of Congress Classification (050)
	CallNumberDewey string // Dewey Decimal Classification (082)

	Subjects            []string
	Notes               string
	Edition             string
	PhysicalDescription string
	Series              string
	Summary             string

	// RawData retains the original source payload: the decoded
	// MARC-in-JSON document for API-sourced records, or a synthetic
	// map tagging HTML provenance ("source": "opac_html") for scraped
	// ones. The MARC view uses it to render the full record.
	RawData map[string]any
}

// ScrapedFromHTML reports whether the record was built by scraping an
// OPAC page rather than from the structured API. Scraped records carry
// no MARC data, so the full MARC view is unavailable for them.
func (r *BiblioRecord) ScrapedFromHTML() bool {
	src, _ := r.RawData["source"].(string)
	return src == "opac_html"
}

// CallNumberFor resolves the call number to display for the given
// mode: "lcc" for Library of Congress only, "dewey" for Dewey only,
// "both" for labelled segments joined with " | ". The generic
// CallNumber is the fallback in every mode.
func (r *BiblioRecord) CallNumberFor(mode string) string {
	switch mode {
	case "lcc":
		if r.CallNumberLCC != "" {
			return r.CallNumberLCC
		}
		return r.CallNumber
	case "dewey":
		if r.CallNumberDewey != "" {
			return r.CallNumberDewey
		}
		return r.CallNumber
	default: // "both"
		var parts []string
		if r.CallNumberLCC != "" {
			parts = append(parts, "LOC: "+r.CallNumberLCC)
		}
		if r.CallNumberDewey != "" {
			parts = append(parts, "DDC: "+r.CallNumberDewey)
		}
		if len(parts) > 0 {
			return strings.Join(parts, " | ")
		}
		return r.CallNumber
	}
}

// HoldingItem is one physical copy of a biblio record.
type HoldingItem struct {
	ItemID      int
	Barcode     string
	LibraryID   string
	LibraryName string
	Location    string
	CallNumber  string
	CopyNumber  int
	ItemType    string
	DueDate     string
	Notes       string
	PublicNote  string

	// Status and IsAvailable are computed once at parse time from the
	// raw availability flags; see holdingStatus.
	Status      string
	IsAvailable bool
}

// holdingStatus resolves the display status and availability for a set
// of item flags. Precedence: checked-out wins over everything, then
// lost, damaged, withdrawn, not-for-loan; an item with no flags set is
// available.
func holdingStatus(checkedOut, lost, damaged, withdrawn, notForLoan bool) (string, bool) {
	switch {
	case checkedOut:
		return "On Loan", false
	case lost:
		return "Lost", false
	case damaged:
		return "Damaged", false
	case withdrawn:
		return "Withdrawn", false
	case notForLoan:
		return "Reference Only", false
	}
	return "Available", true
}

// SearchResult is one page of search output.
type SearchResult struct {
	Records    []BiblioRecord
	TotalCount int
	Page       int
	PerPage    int
}

// TotalPages derives the page count, treating a non-positive PerPage
// as a single page.
func (s *SearchResult) TotalPages() int {
	if s.PerPage <= 0 {
		return 1
	}
	return (s.TotalCount + s.PerPage - 1) / s.PerPage
}

// HasNext reports whether a later page exists.
func (s *SearchResult) HasNext() bool {
	return s.Page < s.TotalPages()
}

// HasPrev reports whether an earlier page exists.
func (s *SearchResult) HasPrev() bool {
	return s.Page > 1
}
