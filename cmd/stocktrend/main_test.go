package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"StockTrend/internal/logger"
	"StockTrend/internal/model"
	"StockTrend/internal/recorder"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPreviousRun(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	require.NoError(t, logger.Init("debug", &buf))

	sr, err := recorder.NewSQLiteRecorder(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sr.Close() })

	buf.Reset()
	logPreviousRun(sr)
	assert.NotContains(t, buf.String(), "previous run")
	assert.NotContains(t, buf.String(), "read previous run")

	require.NoError(t, sr.RecordRun(&recorder.RunRecord{
		Symbol:   "AAPL",
		BarCount: 731,
		Summary:  &model.Summary{AveragePrice: 170.5, HighestPrice: 199.62, LowestPrice: 124.17},
	}))

	buf.Reset()
	logPreviousRun(sr)
	assert.Contains(t, buf.String(), "previous run")
	assert.Contains(t, buf.String(), "AAPL")
	assert.Contains(t, buf.String(), "731")
}
