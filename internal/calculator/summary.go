package calculator

import (
	"errors"
	"fmt"

	"StockTrend/internal/model"

	"github.com/shopspring/decimal"
)

// ErrEmptyTable is returned when there are no bars to aggregate.
var ErrEmptyTable = errors.New("no bars to summarize")

// AverageClose returns the arithmetic mean of the close prices.
func AverageClose(bars []model.Bar) (float64, error) {
	if len(bars) == 0 {
		return 0, ErrEmptyTable
	}
	sum := decimal.Zero
	for _, c := range extractCloses(bars) {
		sum = sum.Add(decimal.NewFromFloat(c))
	}
	avg, _ := sum.Div(decimal.NewFromInt(int64(len(bars)))).Float64()
	return avg, nil
}

// Summarize computes the date range, average close, highest high and lowest low.
func Summarize(table *model.Table) (*model.Summary, error) {
	if table.Len() == 0 {
		return nil, ErrEmptyTable
	}
	start, end, err := DateRange(table.Bars)
	if err != nil {
		return nil, fmt.Errorf("date range: %w", err)
	}
	avg, err := AverageClose(table.Bars)
	if err != nil {
		return nil, fmt.Errorf("average close: %w", err)
	}
	high, low, err := PriceRange(table.Bars)
	if err != nil {
		return nil, fmt.Errorf("price range: %w", err)
	}
	return &model.Summary{
		StartDate:    start,
		EndDate:      end,
		AveragePrice: avg,
		HighestPrice: high,
		LowestPrice:  low,
	}, nil
}

func extractCloses(bars []model.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
