package statbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/statbridge/statbank-mcp/jsonstat"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultPageSize = 200

	// maxListingPages bounds the catalog pagination loop against a remote
	// that keeps reporting more pages.
	maxListingPages = 50
)

// Options configures a Client.
type Options struct {
	// BaseURL is the API root, e.g. "https://api.example.org/v2". Required.
	BaseURL string
	// Language selects the response language where the API supports it.
	Language string
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// HTTPClient overrides the default HTTP client (useful for tests).
	HTTPClient *http.Client
	// Logger receives request-level debug logging. Defaults to a no-op.
	Logger *zap.Logger
}

// Client talks to a PxWeb-style statistics API. All operations are
// read-only and safe for concurrent use.
type Client struct {
	baseURL   string
	lang      string
	userAgent string
	http      *http.Client
	logger    *zap.Logger
}

// NewClient creates a Client from opts.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, ErrBaseURLRequired
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "statbank-mcp"
	}

	return &Client{
		baseURL:   base,
		lang:      opts.Language,
		userAgent: userAgent,
		http:      httpClient,
		logger:    logger,
	}, nil
}

// Navigate returns one node of the subject-folder tree. An empty folderID
// returns the root folder.
func (c *Client) Navigate(ctx context.Context, folderID string) (*Folder, error) {
	path := "/navigation"
	if strings.TrimSpace(folderID) != "" {
		path += "/" + url.PathEscape(folderID)
	}

	var folder Folder
	if err := c.getJSON(ctx, path, nil, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// ListTables returns the table catalog, optionally narrowed by a free-text
// query and a past-days freshness filter. Pagination is followed until the
// listing is exhausted.
func (c *Client) ListTables(ctx context.Context, query string, pastDays int) ([]TableSummary, error) {
	params := url.Values{}
	if strings.TrimSpace(query) != "" {
		params.Set("query", query)
	}
	if pastDays > 0 {
		params.Set("pastDays", strconv.Itoa(pastDays))
	}
	params.Set("pageSize", strconv.Itoa(defaultPageSize))

	var tables []TableSummary
	for page := 1; page <= maxListingPages; page++ {
		params.Set("pageNumber", strconv.Itoa(page))

		var listing tableListing
		if err := c.getJSON(ctx, "/tables", params, &listing); err != nil {
			return nil, err
		}
		tables = append(tables, listing.Tables...)

		if len(listing.Tables) == 0 || page >= listing.Page.TotalPages {
			break
		}
	}
	return tables, nil
}

// Metadata returns the dimension and category metadata of a table.
func (c *Client) Metadata(ctx context.Context, tableID string) (*TableMetadata, error) {
	if strings.TrimSpace(tableID) == "" {
		return nil, ErrTableIDRequired
	}

	var meta TableMetadata
	path := "/tables/" + url.PathEscape(tableID) + "/metadata"
	if err := c.getJSON(ctx, path, nil, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Data fetches a table's data as a JSON-stat 2.0 dataset. The selection
// maps dimension codes to the category codes to include; an empty selection
// requests the API's default slice.
func (c *Client) Data(ctx context.Context, tableID string, selection map[string][]string) (*jsonstat.Dataset, error) {
	if strings.TrimSpace(tableID) == "" {
		return nil, ErrTableIDRequired
	}

	params := url.Values{}
	params.Set("outputFormat", "json-stat2")
	// Stable parameter order keeps request URLs reproducible.
	dims := make([]string, 0, len(selection))
	for dim := range selection {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	for _, dim := range dims {
		if len(selection[dim]) == 0 {
			continue
		}
		params.Set("valueCodes["+dim+"]", strings.Join(selection[dim], ","))
	}

	var ds jsonstat.Dataset
	path := "/tables/" + url.PathEscape(tableID) + "/data"
	if err := c.getJSON(ctx, path, params, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// getJSON performs a GET against path and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	if c.lang != "" && params.Get("lang") == "" {
		params.Set("lang", c.lang)
	}

	u := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("statbank request", zap.String("url", u))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", u, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			URL:        u,
			Body:       bodySnippet(resp.Body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", u, err)
	}
	return nil
}

// bodySnippet reads a short prefix of an error response body for
// diagnostics.
func bodySnippet(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
