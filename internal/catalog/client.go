package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"opacterm/internal/config"
	"opacterm/internal/logging"
)

// SearchType selects which catalog index a query runs against.
type SearchType string

const (
	SearchTitle      SearchType = "title"
	SearchTitleExact SearchType = "title_exact"
	SearchAuthor     SearchType = "author"
	SearchSubject    SearchType = "subject"
	SearchISBN       SearchType = "isbn"
	SearchKeyword    SearchType = "keyword"
	SearchSeries     SearchType = "series"
	SearchCallNumber SearchType = "callnumber"
)

// indexCode maps a search type onto the Koha search index name used by
// the OPAC search endpoint. Unknown types fall back to keyword.
func (t SearchType) indexCode() string {
	switch t {
	case SearchTitle:
		return "ti"
	case SearchAuthor:
		return "au"
	case SearchSubject:
		return "su"
	case SearchISBN:
		return "nb"
	case SearchSeries:
		return "se"
	case SearchCallNumber:
		return "callnum"
	}
	return "kw"
}

// Provider is the data-acquisition surface the UI consumes. Client
// talks to a live Koha instance; Mock serves a fixed sample catalog.
type Provider interface {
	Search(ctx context.Context, query string, searchType SearchType, page, perPage int) (*SearchResult, error)
	GetRecord(ctx context.Context, biblioID int) (*BiblioRecord, error)
	GetHoldings(ctx context.Context, biblioID int) ([]HoldingItem, error)
	Libraries(ctx context.Context) (map[string]string, error)
	Close() error
}

// Client fetches catalog data from a Koha server, preferring the
// public REST API and falling back to scraping the OPAC web pages
// when the API cannot serve a request.
type Client struct {
	cfg  *config.Config
	http *resty.Client

	// pageLimiter throttles OPAC page fetches so rapid paging in the
	// UI never hammers the remote CGI.
	pageLimiter *rate.Limiter

	mu        sync.Mutex
	libraries map[string]string
}

var _ Provider = (*Client)(nil)

// NewClient builds a Client for the configured server. The caller owns
// the instance and must Close it when done.
func NewClient(cfg *config.Config) *Client {
	hc := resty.New().
		SetTimeout(time.Duration(cfg.RequestTimeout) * time.Second).
		SetHeader("User-Agent", "opacterm/1.0")
	if cfg.Username != "" && cfg.Password != "" {
		hc.SetBasicAuth(cfg.Username, cfg.Password)
	}

	return &Client{
		cfg:         cfg,
		http:        hc,
		pageLimiter: rate.NewLimiter(rate.Limit(2), 4),
	}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	c.http.GetClient().CloseIdleConnections()
	return nil
}

// Search runs a query against the OPAC search endpoint and parses the
// returned page. A query matching nothing yields an empty result with
// a nil error; only transport and server failures error.
func (c *Client) Search(ctx context.Context, query string, searchType SearchType, page, perPage int) (*SearchResult, error) {
	if err := c.pageLimiter.Wait(ctx); err != nil {
		return nil, classifyTransport(err)
	}

	searchURL := strings.TrimRight(c.cfg.BaseURL, "/") + "/cgi-bin/koha/opac-search.pl"
	logging.Debug("opac search", "url", searchURL, "idx", searchType.indexCode(), "q", query, "page", page)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"idx":    searchType.indexCode(),
			"q":      query,
			"offset": strconv.Itoa((page - 1) * perPage),
			"count":  strconv.Itoa(perPage),
		}).
		Get(searchURL)
	if err != nil {
		return nil, classifyTransport(err)
	}
	if resp.StatusCode() != 200 {
		return nil, classifyStatus(resp.StatusCode(), resp.Body())
	}

	result := parseResultsHTML(string(resp.Body()), page, perPage)
	logging.Debug("opac search parsed", "records", len(result.Records), "total", result.TotalCount)
	return result, nil
}

// recordStrategy is one way of obtaining a full record. Strategies run
// in order; the first hit wins and the last failure is what the caller
// sees when every strategy fails.
type recordStrategy struct {
	name  string
	fetch func(ctx context.Context, biblioID int) (*BiblioRecord, error)
}

func (c *Client) recordStrategies() []recordStrategy {
	return []recordStrategy{
		{name: "marc-in-json", fetch: c.recordFromAPI},
		{name: "opac-detail", fetch: c.recordFromOPAC},
	}
}

// GetRecord fetches one record, trying the structured API first and
// the OPAC detail page second.
func (c *Client) GetRecord(ctx context.Context, biblioID int) (*BiblioRecord, error) {
	var lastErr error
	for _, s := range c.recordStrategies() {
		rec, err := s.fetch(ctx, biblioID)
		if err == nil && rec != nil {
			logging.Debug("record fetched", "strategy", s.name, "biblio_id", biblioID, "title", rec.Title)
			return rec, nil
		}
		logging.Debug("record strategy failed", "strategy", s.name, "biblio_id", biblioID, "err", err)
		if err != nil {
			lastErr = err
		}
	}
	if lastErr == nil {
		lastErr = errf(KindNotFound, fmt.Sprintf("record %d not found", biblioID))
	}
	return nil, lastErr
}

// recordFromAPI requests the record in MARC-in-JSON form from the
// public REST API.
func (c *Client) recordFromAPI(ctx context.Context, biblioID int) (*BiblioRecord, error) {
	url := fmt.Sprintf("%s/biblios/%d", c.cfg.PublicAPIURL(), biblioID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/marc-in-json").
		Get(url)
	if err != nil {
		return nil, classifyTransport(err)
	}
	if resp.StatusCode() != 200 {
		return nil, classifyStatus(resp.StatusCode(), resp.Body())
	}

	doc, err := DecodeMARC(resp.Body())
	if err != nil {
		return nil, errf(KindParse, "could not decode MARC record")
	}

	// RawData keeps the original payload so the MARC view can render
	// the whole record.
	var raw map[string]any
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, errf(KindParse, "could not decode MARC record")
	}

	return RecordFromMARC(biblioID, doc, raw), nil
}

// recordFromOPAC scrapes the public detail page. Used when the API is
// disabled or the record is hidden from it.
func (c *Client) recordFromOPAC(ctx context.Context, biblioID int) (*BiblioRecord, error) {
	if err := c.pageLimiter.Wait(ctx); err != nil {
		return nil, classifyTransport(err)
	}

	url := fmt.Sprintf("%s/cgi-bin/koha/opac-detail.pl?biblionumber=%d",
		strings.TrimRight(c.cfg.BaseURL, "/"), biblioID)

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, classifyTransport(err)
	}
	if resp.StatusCode() != 200 {
		return nil, classifyStatus(resp.StatusCode(), resp.Body())
	}

	return parseDetailHTML(biblioID, string(resp.Body())), nil
}

// itemJSON is the wire shape of one Koha item.
type itemJSON struct {
	ItemID           int     `json:"item_id"`
	Barcode          string  `json:"barcode"`
	HoldingLibraryID string  `json:"holding_library_id"`
	HomeLibraryID    string  `json:"home_library_id"`
	Location         string  `json:"location"`
	CallNumber       string  `json:"callnumber"`
	CopyNumber       int     `json:"copy_number"`
	ItemTypeID       string  `json:"item_type_id"`
	PublicNote       string  `json:"public_note"`
	DueDate          string  `json:"due_date"`
	CheckedOutDate   *string `json:"checked_out_date"`
	NotForLoanStatus int     `json:"not_for_loan_status"`
	LostStatus       int     `json:"lost_status"`
	DamagedStatus    int     `json:"damaged_status"`
	Withdrawn        int     `json:"withdrawn"`
}

// GetHoldings lists the physical copies of a record. A record with no
// items yields an empty list, not an error.
func (c *Client) GetHoldings(ctx context.Context, biblioID int) ([]HoldingItem, error) {
	// Best effort: resolve library names so holdings show them.
	libs, _ := c.Libraries(ctx)

	url := fmt.Sprintf("%s/biblios/%d/items", c.cfg.PublicAPIURL(), biblioID)
	body, err := c.getJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	var items []itemJSON
	if jsonErr := json.Unmarshal(body, &items); jsonErr != nil {
		return nil, errf(KindParse, "could not decode item list")
	}

	holdings := make([]HoldingItem, 0, len(items))
	for _, it := range items {
		libraryID := it.HoldingLibraryID
		if libraryID == "" {
			libraryID = it.HomeLibraryID
		}
		libraryName := libs[libraryID]
		if libraryName == "" {
			libraryName = libraryID
		}

		status, available := holdingStatus(
			it.CheckedOutDate != nil,
			it.LostStatus != 0,
			it.DamagedStatus != 0,
			it.Withdrawn != 0,
			it.NotForLoanStatus != 0,
		)

		holdings = append(holdings, HoldingItem{
			ItemID:      it.ItemID,
			Barcode:     it.Barcode,
			LibraryID:   libraryID,
			LibraryName: libraryName,
			Location:    it.Location,
			CallNumber:  it.CallNumber,
			CopyNumber:  it.CopyNumber,
			ItemType:    it.ItemTypeID,
			DueDate:     it.DueDate,
			Notes:       it.PublicNote,
			PublicNote:  it.PublicNote,
			Status:      status,
			IsAvailable: available,
		})
	}
	return holdings, nil
}

// Libraries returns the id→name table for the server, fetching it at
// most once per Client.
func (c *Client) Libraries(ctx context.Context) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.libraries != nil {
		return c.libraries, nil
	}

	body, err := c.getJSON(ctx, c.cfg.PublicAPIURL()+"/libraries")
	if err != nil {
		return nil, err
	}

	var libs []struct {
		LibraryID string `json:"library_id"`
		Name      string `json:"name"`
	}
	if jsonErr := json.Unmarshal(body, &libs); jsonErr != nil {
		return nil, errf(KindParse, "could not decode library list")
	}

	table := make(map[string]string, len(libs))
	for _, lib := range libs {
		name := lib.Name
		if name == "" {
			name = lib.LibraryID
		}
		table[lib.LibraryID] = name
	}
	c.libraries = table
	return table, nil
}

// getJSON performs a REST GET and returns the body on success, or the
// classified failure otherwise.
func (c *Client) getJSON(ctx context.Context, url string) ([]byte, error) {
	logging.Debug("api get", "url", url)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(url)
	if err != nil {
		return nil, classifyTransport(err)
	}
	if resp.StatusCode() != 200 {
		return nil, classifyStatus(resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}

// classifyStatus maps a non-200 response onto the error taxonomy,
// pulling the server's own message out of the body when one exists.
func classifyStatus(status int, body []byte) *Error {
	switch {
	case status == 404:
		return errf(KindNotFound, "not found")
	case status == 400:
		if msg := apiErrorMessage(body); msg != "" {
			return errf(KindBadRequest, "Bad request: "+msg)
		}
		return errf(KindBadRequest, "Bad request - query format may not be supported")
	case status == 401:
		return errf(KindAuthentication, "authentication required")
	case status == 403:
		return errf(KindAuthorization, "not authorized")
	case status >= 500:
		return errf(KindServer, fmt.Sprintf("API error: %d", status))
	}
	if msg := apiErrorMessage(body); msg != "" {
		return errf(KindUnknown, msg)
	}
	return errf(KindUnknown, fmt.Sprintf("API error: %d", status))
}

// apiErrorMessage extracts the error text Koha puts in failure bodies.
func apiErrorMessage(body []byte) string {
	var payload struct {
		Error  string          `json:"error"`
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	if len(payload.Errors) > 0 {
		return string(payload.Errors)
	}
	return ""
}

// classifyTransport maps request-level failures (no response at all)
// onto the error taxonomy.
func classifyTransport(err error) *Error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errf(KindTimeout, "request timed out")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errf(KindTimeout, "request timed out")
	}

	msg := err.Error()
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") {
		return errf(KindConnection, "could not connect to server")
	}
	return errf(KindUnknown, msg)
}
