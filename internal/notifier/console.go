package notifier

import (
	"fmt"
	"io"
	"os"
)

// Notifier delivers a rendered report.
type Notifier interface {
	Send(text string) error
}

// ConsoleNotifier writes reports to a stream, stdout by default.
type ConsoleNotifier struct {
	Out io.Writer
}

// NewConsoleNotifier creates a notifier writing to w, or stdout if w is nil.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleNotifier{Out: w}
}

// Send writes text followed by a newline if it lacks one.
func (c *ConsoleNotifier) Send(text string) error {
	if len(text) == 0 || text[len(text)-1] != '\n' {
		text += "\n"
	}
	if _, err := io.WriteString(c.Out, text); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
