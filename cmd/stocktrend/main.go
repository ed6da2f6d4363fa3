package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockTrend/internal/collector"
	"StockTrend/internal/config"
	"StockTrend/internal/logger"
	"StockTrend/internal/notifier"
	"StockTrend/internal/pipeline"
	"StockTrend/internal/plotter"
	"StockTrend/internal/recorder"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	// .env is optional; real environment variables win.
	envErr := godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		_ = logger.Init("info", os.Stderr)
		log.Error().Err(err).Msg("load config")
		return 1
	}
	if err := logger.Init(cfg.Log.Level, os.Stderr); err != nil {
		_ = logger.Init("info", os.Stderr)
		log.Warn().Err(err).Str("level", cfg.Log.Level).Msg("invalid log level, using info")
	}
	if envErr != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation")
		return 1
	}

	fetcher := collector.NewPolygonFetcher(
		cfg.DataSource.BaseURL,
		cfg.DataSource.APIKey,
		collector.WithHTTPClient(collector.NewHTTPClient(time.Duration(cfg.HTTP.TimeoutSec)*time.Second, cfg.Proxy)),
	)
	log.Info().Str("source", fetcher.Name()).Str("symbol", cfg.DataSource.Symbol).Msg("data source ready")

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			logPreviousRun(sr)
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	chart := plotter.NewOptions(cfg.Chart.Title, cfg.Chart.WidthIn, cfg.Chart.HeightIn)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(
		collector.NewCollector(fetcher, cfg.DataSource.Symbol),
		notifier.NewConsoleNotifier(os.Stdout),
		rec,
		plotter.NewWindowDisplay(chart),
		chart,
	)
	err = p.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("run failed")
	}
	return pipeline.ExitCode(err)
}

func logPreviousRun(sr *recorder.SQLiteRecorder) {
	prev, at, err := sr.LatestRun()
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Warn().Err(err).Msg("read previous run")
		}
		return
	}
	log.Debug().
		Time("recorded_at", at).
		Str("symbol", prev.Symbol).
		Int("bars", prev.BarCount).
		Float64("average_price", prev.Summary.AveragePrice).
		Float64("highest_price", prev.Summary.HighestPrice).
		Float64("lowest_price", prev.Summary.LowestPrice).
		Msg("previous run")
}
