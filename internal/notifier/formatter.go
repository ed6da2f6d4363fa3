package notifier

import (
	"fmt"
	"strings"

	"StockTrend/internal/model"
)

const timeLayout = "2006-01-02 15:04:05"

// FormatSummary renders the summary as five key/value lines.
func FormatSummary(s *model.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("start_date: %s\n", s.StartDate.UTC().Format(timeLayout)))
	b.WriteString(fmt.Sprintf("end_date: %s\n", s.EndDate.UTC().Format(timeLayout)))
	b.WriteString(fmt.Sprintf("average_price: %.4f\n", s.AveragePrice))
	b.WriteString(fmt.Sprintf("highest_price: %.4f\n", s.HighestPrice))
	b.WriteString(fmt.Sprintf("lowest_price: %.4f\n", s.LowestPrice))
	return b.String()
}
