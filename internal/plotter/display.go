package plotter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
)

// Displayer shows a rendered plot to the user.
type Displayer interface {
	Display(ctx context.Context, p *plot.Plot) error
}

// WindowDisplay writes the chart to a temporary PNG, opens it in the
// platform viewer and blocks until the user presses Enter or ctx is done.
// The temporary file is removed before returning.
type WindowDisplay struct {
	Opts Options
	In   io.Reader
	Open func(path string) error

	logger zerolog.Logger
}

// NewWindowDisplay creates a display reading dismissal from stdin.
func NewWindowDisplay(opts Options) *WindowDisplay {
	// Keep launcher chatter off stdout.
	browser.Stdout = os.Stderr
	return &WindowDisplay{
		Opts:   opts,
		In:     os.Stdin,
		Open:   browser.OpenFile,
		logger: log.With().Str("component", "chart_display").Logger(),
	}
}

func (d *WindowDisplay) Display(ctx context.Context, p *plot.Plot) error {
	f, err := os.CreateTemp("", "stocktrend-*.png")
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if err := WritePNG(f, p, d.Opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}

	if err := d.Open(path); err != nil {
		return fmt.Errorf("open chart viewer: %w", err)
	}
	d.logger.Info().Msg("chart opened, press Enter to exit")

	select {
	case <-ctx.Done():
	case <-waitForEnter(d.In):
	}
	return nil
}

// waitForEnter closes the returned channel once a full line is read from in.
// EOF or a read error never closes it, so a non-interactive stdin leaves the
// caller waiting on its context instead. A read that is still blocked when
// the caller returns keeps its goroutine until the process exits; stdin
// reads cannot be cancelled.
func waitForEnter(in io.Reader) <-chan struct{} {
	entered := make(chan struct{})
	if in == nil {
		return entered
	}
	go func() {
		if _, err := bufio.NewReader(in).ReadString('\n'); err == nil {
			close(entered)
		}
	}()
	return entered
}
