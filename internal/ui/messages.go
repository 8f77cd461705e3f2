package ui

import "opacterm/internal/catalog"

// Messages for Bubble Tea

// Fetch messages carry the request token issued when the fetch was
// started. The root model drops any message whose token is stale, so
// a slow response can never clobber a newer screen.

// searchResultsMsg is sent when a catalog search completes.
type searchResultsMsg struct {
	Token  int
	Result *catalog.SearchResult
	Err    error
}

// detailLoadedMsg is sent when a record and its holdings have been
// fetched. Record and holdings fail independently; a record with a
// broken holdings lookup still renders.
type detailLoadedMsg struct {
	Token       int
	Record      *catalog.BiblioRecord
	RecordErr   error
	Holdings    []catalog.HoldingItem
	HoldingsErr error
}

// clockTickMsg drives the header clock.
type clockTickMsg struct{}
