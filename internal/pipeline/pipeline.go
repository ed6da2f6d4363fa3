package pipeline

import (
	"context"
	"fmt"

	"StockTrend/internal/calculator"
	"StockTrend/internal/collector"
	"StockTrend/internal/notifier"
	"StockTrend/internal/plotter"
	"StockTrend/internal/recorder"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Pipeline runs collect, summarize, report, record and chart once.
type Pipeline struct {
	Collector *collector.Collector
	Notifier  notifier.Notifier
	Recorder  recorder.Recorder
	Display   plotter.Displayer
	Chart     plotter.Options

	logger zerolog.Logger
}

// New creates a Pipeline. A nil recorder is replaced by a no-op.
func New(col *collector.Collector, n notifier.Notifier, rec recorder.Recorder, d plotter.Displayer, chart plotter.Options) *Pipeline {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Pipeline{
		Collector: col,
		Notifier:  n,
		Recorder:  rec,
		Display:   d,
		Chart:     chart,
		logger:    log.With().Str("component", "pipeline").Logger(),
	}
}

// Run executes every stage once. Nothing is written to the notifier unless
// the data was fetched and summarized successfully. Chart problems are
// logged and do not fail the run.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info().Msg("running pipeline")

	table, err := p.Collector.Collect(ctx)
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	summary, err := calculator.Summarize(table)
	if err != nil {
		return fmt.Errorf("summarize %s: %w", table.Symbol, err)
	}

	if err := p.Notifier.Send(notifier.FormatSummary(summary)); err != nil {
		return fmt.Errorf("report summary: %w", err)
	}

	if err := p.Recorder.RecordRun(&recorder.RunRecord{
		Symbol:   table.Symbol,
		BarCount: table.Len(),
		Summary:  summary,
	}); err != nil {
		p.logger.Error().Err(err).Msg("record run")
	}

	if p.Display == nil {
		return nil
	}
	chart, err := plotter.Render(table, p.Chart)
	if err != nil {
		p.logger.Warn().Err(err).Msg("render chart")
		return nil
	}
	if err := p.Display.Display(ctx, chart); err != nil {
		p.logger.Warn().Err(err).Msg("display chart")
	}
	return nil
}

// ExitCode maps a Run result to a process exit status.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
