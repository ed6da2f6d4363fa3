package model

import "time"

// Summary holds the aggregate statistics derived from a Table.
type Summary struct {
	StartDate    time.Time
	EndDate      time.Time
	AveragePrice float64 // mean close
	HighestPrice float64 // max high
	LowestPrice  float64 // min low
}
