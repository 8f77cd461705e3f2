package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"opacterm/internal/config"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.RequestTimeout = 5

	c := NewClient(cfg)
	t.Cleanup(func() { c.Close() })
	return c
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	catErr, ok := err.(*Error)
	require.True(t, ok, "expected *catalog.Error, got %T", err)
	require.Equal(t, kind, catErr.Kind)
}

func TestClientSearch(t *testing.T) {
	var gotQuery atomic.Value
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cgi-bin/koha/opac-search.pl", r.URL.Path)
		gotQuery.Store(r.URL.Query())
		w.Write([]byte(resultsPageHTML))
	}))

	result, err := c.Search(context.Background(), "hemingway", SearchAuthor, 2, 10)
	require.NoError(t, err)
	require.Equal(t, 23, result.TotalCount)
	require.Len(t, result.Records, 2)
	require.Equal(t, 2, result.Page)

	params := gotQuery.Load().(url.Values)
	require.Equal(t, "au", params.Get("idx"))
	require.Equal(t, "hemingway", params.Get("q"))
	require.Equal(t, "10", params.Get("offset"))
	require.Equal(t, "10", params.Get("count"))
}

func TestClientSearchServerError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.Search(context.Background(), "q", SearchTitle, 1, 10)
	requireKind(t, err, KindServer)
}

func TestClientGetRecordFromAPI(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/public/biblios/42", r.URL.Path)
		require.Equal(t, "application/marc-in-json", r.Header.Get("Accept"))
		w.Write([]byte(sampleMARCJSON))
	}))

	rec, err := c.GetRecord(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, 42, rec.BiblioID)
	require.Equal(t, "For whom the bell tolls : a novel", rec.Title)
	require.False(t, rec.ScrapedFromHTML())
}

func TestClientGetRecordFallsBackToOPAC(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/public/biblios/55":
			w.WriteHeader(http.StatusNotFound)
		case "/cgi-bin/koha/opac-detail.pl":
			require.Equal(t, "55", r.URL.Query().Get("biblionumber"))
			w.Write([]byte(`<html><head><title>Fallback Title | catalog</title></head><body></body></html>`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	rec, err := c.GetRecord(context.Background(), 55)
	require.NoError(t, err)
	require.Equal(t, "Fallback Title", rec.Title)
	require.True(t, rec.ScrapedFromHTML())
}

func TestClientGetRecordAllStrategiesFail(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.GetRecord(context.Background(), 99)
	requireKind(t, err, KindNotFound)
}

func TestClientGetRecordBadPayload(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/public/biblios/7":
			w.Write([]byte("definitely not json"))
		default:
			// Force the scrape fallback to fail too.
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	_, err := c.GetRecord(context.Background(), 7)
	requireKind(t, err, KindServer)
}

func TestClientGetHoldings(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/public/libraries":
			w.Write([]byte(`[{"library_id": "MAIN", "name": "Main Library"}]`))
		case "/api/v1/public/biblios/42/items":
			w.Write([]byte(`[
				{"item_id": 4201, "barcode": "000042001", "holding_library_id": "MAIN",
				 "location": "Adult Fiction", "callnumber": "FIC HEM", "copy_number": 1,
				 "item_type_id": "BK", "checked_out_date": null},
				{"item_id": 4202, "barcode": "000042002", "home_library_id": "MAIN",
				 "callnumber": "FIC HEM", "copy_number": 2, "item_type_id": "BK",
				 "due_date": "2026-09-15", "checked_out_date": "2026-08-25"},
				{"item_id": 4203, "holding_library_id": "ANNEX", "lost_status": 1}
			]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	holdings, err := c.GetHoldings(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, holdings, 3)

	require.Equal(t, "Main Library", holdings[0].LibraryName)
	require.Equal(t, "Available", holdings[0].Status)
	require.True(t, holdings[0].IsAvailable)

	// Home library stands in when no holding library is set.
	require.Equal(t, "MAIN", holdings[1].LibraryID)
	require.Equal(t, "On Loan", holdings[1].Status)
	require.Equal(t, "2026-09-15", holdings[1].DueDate)
	require.False(t, holdings[1].IsAvailable)

	// Unknown library ids fall back to the raw id.
	require.Equal(t, "ANNEX", holdings[2].LibraryName)
	require.Equal(t, "Lost", holdings[2].Status)
}

func TestClientLibrariesCached(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[{"library_id": "MAIN", "name": "Main Library"}, {"library_id": "SO"}]`))
	}))

	ctx := context.Background()
	libs, err := c.Libraries(ctx)
	require.NoError(t, err)
	require.Equal(t, "Main Library", libs["MAIN"])
	// Name falls back to the id when the server omits it.
	require.Equal(t, "SO", libs["SO"])

	_, err = c.Libraries(ctx)
	require.NoError(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
		wantMsg  string
	}{
		{name: "not found", status: 404, wantKind: KindNotFound, wantMsg: "not found"},
		{name: "bad request with message", status: 400, body: `{"error": "invalid query syntax"}`,
			wantKind: KindBadRequest, wantMsg: "Bad request: invalid query syntax"},
		{name: "bad request without message", status: 400,
			wantKind: KindBadRequest, wantMsg: "Bad request - query format may not be supported"},
		{name: "authentication", status: 401, wantKind: KindAuthentication, wantMsg: "authentication required"},
		{name: "authorization", status: 403, wantKind: KindAuthorization, wantMsg: "not authorized"},
		{name: "server", status: 503, wantKind: KindServer, wantMsg: "API error: 503"},
		{name: "other with body", status: 418, body: `{"error": "teapot"}`, wantKind: KindUnknown, wantMsg: "teapot"},
		{name: "other without body", status: 418, wantKind: KindUnknown, wantMsg: "API error: 418"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyStatus(tt.status, []byte(tt.body))
			require.Equal(t, tt.wantKind, err.Kind)
			require.Equal(t, tt.wantMsg, err.Message)
		})
	}
}

func TestClassifyTransportConnection(t *testing.T) {
	// A server that is already gone produces a connection-level failure.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.RequestTimeout = 2
	c := NewClient(cfg)
	defer c.Close()

	_, err := c.Search(context.Background(), "q", SearchTitle, 1, 10)
	requireKind(t, err, KindConnection)
}

func TestIndexCode(t *testing.T) {
	require.Equal(t, "ti", SearchTitle.indexCode())
	require.Equal(t, "au", SearchAuthor.indexCode())
	require.Equal(t, "su", SearchSubject.indexCode())
	require.Equal(t, "nb", SearchISBN.indexCode())
	require.Equal(t, "se", SearchSeries.indexCode())
	require.Equal(t, "callnum", SearchCallNumber.indexCode())
	require.Equal(t, "kw", SearchKeyword.indexCode())
	require.Equal(t, "kw", SearchTitleExact.indexCode())
	require.Equal(t, "kw", SearchType("nonsense").indexCode())
}
