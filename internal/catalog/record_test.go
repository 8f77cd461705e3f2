package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHoldingStatusPrecedence(t *testing.T) {
	tests := []struct {
		name          string
		checkedOut    bool
		lost          bool
		damaged       bool
		withdrawn     bool
		notForLoan    bool
		wantStatus    string
		wantAvailable bool
	}{
		{name: "available", wantStatus: "Available", wantAvailable: true},
		{name: "checked out", checkedOut: true, wantStatus: "On Loan"},
		{name: "checked out wins over lost", checkedOut: true, lost: true, wantStatus: "On Loan"},
		{name: "lost", lost: true, wantStatus: "Lost"},
		{name: "lost wins over damaged", lost: true, damaged: true, wantStatus: "Lost"},
		{name: "damaged", damaged: true, wantStatus: "Damaged"},
		{name: "withdrawn", withdrawn: true, wantStatus: "Withdrawn"},
		{name: "reference only", notForLoan: true, wantStatus: "Reference Only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, available := holdingStatus(tt.checkedOut, tt.lost, tt.damaged, tt.withdrawn, tt.notForLoan)
			require.Equal(t, tt.wantStatus, status)
			require.Equal(t, tt.wantAvailable, available)
		})
	}
}

func TestCallNumberFor(t *testing.T) {
	rec := &BiblioRecord{
		CallNumber:      "GENERIC 123",
		CallNumberLCC:   "PS3515.E37 F6",
		CallNumberDewey: "813.52",
	}

	require.Equal(t, "PS3515.E37 F6", rec.CallNumberFor("lcc"))
	require.Equal(t, "813.52", rec.CallNumberFor("dewey"))
	require.Equal(t, "LOC: PS3515.E37 F6 | DDC: 813.52", rec.CallNumberFor("both"))
}

func TestCallNumberForFallsBackToGeneric(t *testing.T) {
	rec := &BiblioRecord{CallNumber: "GENERIC 123"}

	require.Equal(t, "GENERIC 123", rec.CallNumberFor("lcc"))
	require.Equal(t, "GENERIC 123", rec.CallNumberFor("dewey"))
	require.Equal(t, "GENERIC 123", rec.CallNumberFor("both"))
}

func TestCallNumberForPartialBoth(t *testing.T) {
	rec := &BiblioRecord{CallNumber: "GENERIC", CallNumberDewey: "813.52"}
	require.Equal(t, "DDC: 813.52", rec.CallNumberFor("both"))
}

func TestScrapedFromHTML(t *testing.T) {
	scraped := &BiblioRecord{RawData: map[string]any{"source": "opac_html"}}
	require.True(t, scraped.ScrapedFromHTML())

	api := &BiblioRecord{RawData: map[string]any{"fields": []any{}}}
	require.False(t, api.ScrapedFromHTML())

	empty := &BiblioRecord{}
	require.False(t, empty.ScrapedFromHTML())
}

func TestSearchResultPagination(t *testing.T) {
	res := &SearchResult{TotalCount: 25, Page: 2, PerPage: 10}
	require.Equal(t, 3, res.TotalPages())
	require.True(t, res.HasNext())
	require.True(t, res.HasPrev())

	res.Page = 3
	require.False(t, res.HasNext())

	res.Page = 1
	require.False(t, res.HasPrev())
}

func TestSearchResultPaginationDegenerate(t *testing.T) {
	res := &SearchResult{TotalCount: 5, Page: 1, PerPage: 0}
	require.Equal(t, 1, res.TotalPages())
	require.False(t, res.HasNext())

	empty := &SearchResult{TotalCount: 0, Page: 1, PerPage: 10}
	require.Equal(t, 0, empty.TotalPages())
	require.False(t, empty.HasNext())
}
