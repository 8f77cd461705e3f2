package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestMock() *Mock {
	m := NewMock(false)
	return m
}

func TestMockSearchByTitle(t *testing.T) {
	m := newTestMock()

	result, err := m.Search(context.Background(), "foundation", SearchTitle, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)
	require.Equal(t, "Foundation", result.Records[0].Title)
}

func TestMockSearchByAuthor(t *testing.T) {
	m := newTestMock()

	result, err := m.Search(context.Background(), "hemingway", SearchAuthor, 1, 20)
	require.NoError(t, err)
	require.Equal(t, 6, result.TotalCount)
	for _, rec := range result.Records {
		require.Contains(t, rec.Author, "Hemingway")
	}
}

func TestMockSearchByISBNIgnoresDashes(t *testing.T) {
	m := newTestMock()

	result, err := m.Search(context.Background(), "978-0-553-29335-7", SearchISBN, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)
	require.Equal(t, "Foundation", result.Records[0].Title)
}

func TestMockSearchKeywordCoversSummary(t *testing.T) {
	m := newTestMock()

	result, err := m.Search(context.Background(), "marlin", SearchKeyword, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)
	require.Equal(t, "The Old Man and the Sea", result.Records[0].Title)
}

func TestMockSearchNoMatches(t *testing.T) {
	m := newTestMock()

	result, err := m.Search(context.Background(), "zzzzz", SearchTitle, 1, 10)
	require.NoError(t, err)
	require.Zero(t, result.TotalCount)
	require.Empty(t, result.Records)
}

func TestMockSearchPagination(t *testing.T) {
	m := newTestMock()

	page1, err := m.Search(context.Background(), "hemingway", SearchAuthor, 1, 4)
	require.NoError(t, err)
	require.Len(t, page1.Records, 4)
	require.Equal(t, 6, page1.TotalCount)
	require.True(t, page1.HasNext())

	page2, err := m.Search(context.Background(), "hemingway", SearchAuthor, 2, 4)
	require.NoError(t, err)
	require.Len(t, page2.Records, 2)
	require.False(t, page2.HasNext())

	// A page past the end comes back empty rather than erroring.
	page9, err := m.Search(context.Background(), "hemingway", SearchAuthor, 9, 4)
	require.NoError(t, err)
	require.Empty(t, page9.Records)
}

func TestMockGetRecord(t *testing.T) {
	m := newTestMock()

	rec, err := m.GetRecord(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, "Foundation", rec.Title)
	require.Equal(t, "Asimov, Isaac, 1920-1992", rec.Author)

	_, err = m.GetRecord(context.Background(), 13)
	requireKind(t, err, KindNotFound)
}

func TestMockGetHoldings(t *testing.T) {
	m := newTestMock()

	holdings, err := m.GetHoldings(context.Background(), 5)
	require.NoError(t, err)
	require.NotEmpty(t, holdings)
	require.LessOrEqual(t, len(holdings), 5)

	for i, h := range holdings {
		require.Equal(t, 5*100+i+1, h.ItemID)
		require.Equal(t, i+1, h.CopyNumber)
		require.Equal(t, "PS3551.S5 F6", h.CallNumber)
		require.Contains(t, sampleLibraries, h.LibraryID)
		require.Equal(t, sampleLibraries[h.LibraryID], h.LibraryName)
		if h.Status == "On Loan" {
			require.False(t, h.IsAvailable)
			require.NotEmpty(t, h.DueDate)
		} else {
			require.Equal(t, "Available", h.Status)
			require.True(t, h.IsAvailable)
		}
	}

	_, err = m.GetHoldings(context.Background(), 999)
	requireKind(t, err, KindNotFound)
}

func TestMockLibraries(t *testing.T) {
	m := newTestMock()

	libs, err := m.Libraries(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Main Library", libs["MAIN"])
	require.Len(t, libs, 5)
}
