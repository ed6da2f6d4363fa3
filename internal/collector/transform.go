package collector

import (
	"time"

	"StockTrend/internal/model"
)

// Transform maps the response results into a Table. Order is preserved as
// delivered; no bars are dropped, merged or re-sorted.
func Transform(resp *AggregatesResponse) *model.Table {
	table := &model.Table{}
	if resp == nil {
		return table
	}
	table.Symbol = resp.Ticker
	table.Bars = make([]model.Bar, len(resp.Results))
	for i, r := range resp.Results {
		table.Bars[i] = model.Bar{
			Time:         time.UnixMilli(r.Timestamp).UTC(),
			Open:         r.Open,
			High:         r.High,
			Low:          r.Low,
			Close:        r.Close,
			Volume:       r.Volume,
			VWAP:         r.VWAP,
			Transactions: r.Transactions,
		}
	}
	return table
}
