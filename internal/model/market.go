package model

import "time"

// Bar represents a single daily OHLCV observation.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64

	// Carried through from the data source, not used by the summary or chart.
	VWAP         float64
	Transactions int64
}

// Table holds the bars of one security in the order the source delivered them.
type Table struct {
	Symbol string
	Bars   []Bar
}

// Len returns the number of bars in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Bars)
}
