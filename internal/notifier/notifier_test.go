package notifier

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"StockTrend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSummary(t *testing.T) {
	s := &model.Summary{
		StartDate:    time.Date(2021, 6, 30, 4, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 5, 31, 4, 0, 0, 0, time.UTC),
		AveragePrice: 165.12346,
		HighestPrice: 199.62,
		LowestPrice:  124.17,
	}

	want := "start_date: 2021-06-30 04:00:00\n" +
		"end_date: 2024-05-31 04:00:00\n" +
		"average_price: 165.1235\n" +
		"highest_price: 199.6200\n" +
		"lowest_price: 124.1700\n"
	assert.Equal(t, want, FormatSummary(s))
}

func TestConsoleNotifier_Send(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)

	require.NoError(t, n.Send("a: 1\n"))
	require.NoError(t, n.Send("b: 2"))
	assert.Equal(t, "a: 1\nb: 2\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestConsoleNotifier_WriteError(t *testing.T) {
	err := NewConsoleNotifier(failWriter{}).Send("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
}
