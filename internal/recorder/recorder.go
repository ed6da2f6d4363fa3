package recorder

import "StockTrend/internal/model"

// RunRecord holds the outcome of one pipeline run.
type RunRecord struct {
	Symbol   string
	BarCount int
	Summary  *model.Summary
}

// Recorder persists run history for later analysis.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
