package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrMissingResults is returned when the response body has no "results" field.
var ErrMissingResults = errors.New("unexpected response format or missing data")

// StatusError is returned for a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("polygon: status %d", e.StatusCode)
	}
	return fmt.Sprintf("polygon: status %d, body: %s", e.StatusCode, e.Body)
}

// AggregateBar is one element of the "results" list.
type AggregateBar struct {
	Timestamp    int64   `json:"t"` // Unix milliseconds
	Open         float64 `json:"o"`
	High         float64 `json:"h"`
	Low          float64 `json:"l"`
	Close        float64 `json:"c"`
	Volume       float64 `json:"v"`
	VWAP         float64 `json:"vw,omitempty"`
	Transactions int64   `json:"n,omitempty"`
}

// AggregatesResponse is the envelope returned by the aggregates endpoint.
type AggregatesResponse struct {
	Ticker       string         `json:"ticker"`
	QueryCount   int            `json:"queryCount"`
	ResultsCount int            `json:"resultsCount"`
	Adjusted     bool           `json:"adjusted"`
	Status       string         `json:"status"`
	RequestID    string         `json:"request_id"`
	Results      []AggregateBar `json:"results"`
}

const maxErrorBody = 512

// PolygonFetcher implements Fetcher using the Polygon.io aggregates API.
type PolygonFetcher struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	logger     zerolog.Logger
}

// PolygonOption is a configuration option for PolygonFetcher.
type PolygonOption func(*PolygonFetcher)

// WithHTTPClient sets the HTTP client used for the request.
func WithHTTPClient(httpClient HTTPClient) PolygonOption {
	return func(f *PolygonFetcher) {
		f.httpClient = httpClient
	}
}

// NewHTTPClient builds the default client with a timeout and optional proxy.
func NewHTTPClient(timeout time.Duration, proxyURL string) *http.Client {
	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// NewPolygonFetcher creates a fetcher for a fixed aggregates endpoint.
func NewPolygonFetcher(baseURL, apiKey string, opts ...PolygonOption) *PolygonFetcher {
	f := &PolygonFetcher{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: NewHTTPClient(30*time.Second, ""),
		logger:     log.With().Str("component", "polygon_fetcher").Logger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *PolygonFetcher) Name() string { return "polygon" }

// requestURL appends adjusted, sort and apiKey to the base URL.
func (f *PolygonFetcher) requestURL() (string, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("adjusted", "true")
	q.Set("sort", "asc")
	q.Set("apiKey", f.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (f *PolygonFetcher) redact(s string) string {
	if f.apiKey == "" {
		return s
	}
	return strings.ReplaceAll(s, url.QueryEscape(f.apiKey), "REDACTED")
}

// FetchAggregates performs a single GET and validates the response shape.
func (f *PolygonFetcher) FetchAggregates(ctx context.Context) (*AggregatesResponse, error) {
	endpoint, err := f.requestURL()
	if err != nil {
		return nil, err
	}
	f.logger.Debug().Str("url", f.redact(endpoint)).Msg("fetching aggregates")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the full URL, including the key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			uerr.URL = f.redact(uerr.URL)
		}
		return nil, fmt.Errorf("polygon fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("polygon read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := string(body)
		if len(excerpt) > maxErrorBody {
			excerpt = excerpt[:maxErrorBody]
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(excerpt)}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("polygon decode: %w", err)
	}
	if raw, ok := fields["results"]; !ok || string(raw) == "null" {
		return nil, ErrMissingResults
	}

	var out AggregatesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("polygon decode: %w", err)
	}

	f.logger.Info().
		Str("ticker", out.Ticker).
		Str("status", out.Status).
		Int("results", len(out.Results)).
		Msg("aggregates fetched")
	return &out, nil
}
