package collector

import (
	"context"
	"fmt"
	"time"

	"StockTrend/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MockFetcher returns a fixed response for development and testing.
type MockFetcher struct {
	Response *AggregatesResponse
	Err      error
	Calls    int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchAggregates(_ context.Context) (*AggregatesResponse, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Response != nil {
		return m.Response, nil
	}
	return &AggregatesResponse{Ticker: "MOCK", Status: "OK", Results: GenerateMockBars(100, 30)}, nil
}

// GenerateMockBars returns count consecutive daily bars ending yesterday.
func GenerateMockBars(basePrice float64, count int) []AggregateBar {
	start := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -count)
	bars := make([]AggregateBar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = AggregateBar{
			Timestamp: start.AddDate(0, 0, i).UnixMilli(),
			Open:      p * 0.999,
			High:      p * 1.005,
			Low:       p * 0.995,
			Close:     p,
			Volume:    1000000,
		}
	}
	return bars
}

// Collector fetches aggregates and turns them into a Table.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
	logger  zerolog.Logger
}

// NewCollector creates a new Collector. Symbol labels the table when the
// response does not carry a ticker.
func NewCollector(fetcher Fetcher, symbol string) *Collector {
	return &Collector{
		Fetcher: fetcher,
		Symbol:  symbol,
		logger:  log.With().Str("component", "collector").Logger(),
	}
}

// Collect fetches the bars and transforms them.
func (c *Collector) Collect(ctx context.Context) (*model.Table, error) {
	resp, err := c.Fetcher.FetchAggregates(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch aggregates from %s: %w", c.Fetcher.Name(), err)
	}
	table := Transform(resp)
	if table.Symbol == "" {
		table.Symbol = c.Symbol
	}
	c.logger.Info().Str("symbol", table.Symbol).Int("bars", table.Len()).Msg("table built")
	return table, nil
}
