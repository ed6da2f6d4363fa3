package collector

import (
	"context"
	"net/http"
)

// Fetcher defines the interface for fetching aggregate bars.
type Fetcher interface {
	FetchAggregates(ctx context.Context) (*AggregatesResponse, error)
	Name() string
}

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=collector_test -destination=mock_http_client_test.go -source=fetcher.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
