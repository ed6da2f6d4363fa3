package calculator

import (
	"math"
	"time"

	"StockTrend/internal/model"
)

// PriceRange scans all bars and returns the highest high and the lowest low.
func PriceRange(bars []model.Bar) (high, low float64, err error) {
	if len(bars) == 0 {
		return 0, 0, ErrEmptyTable
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, b := range bars {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	return high, low, nil
}

// DateRange returns the earliest and latest bar times. Order of the input is
// not assumed.
func DateRange(bars []model.Bar) (start, end time.Time, err error) {
	if len(bars) == 0 {
		return time.Time{}, time.Time{}, ErrEmptyTable
	}
	start, end = bars[0].Time, bars[0].Time
	for _, b := range bars[1:] {
		if b.Time.Before(start) {
			start = b.Time
		}
		if b.Time.After(end) {
			end = b.Time
		}
	}
	return start, end, nil
}
