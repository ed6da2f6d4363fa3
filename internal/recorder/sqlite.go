package recorder

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"StockTrend/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db     *sql.DB
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{
		db:     db,
		logger: log.With().Str("component", "sqlite_recorder").Logger(),
	}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.logger.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			symbol        TEXT,
			bar_count     INTEGER,
			start_date    INTEGER,
			end_date      INTEGER,
			average_price REAL,
			highest_price REAL,
			lowest_price  REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:30], err)
		}
	}
	return nil
}

// RecordRun stores one run. Dates are kept as Unix milliseconds.
func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	if rec == nil || rec.Summary == nil {
		return errors.New("record run: missing summary")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	s := rec.Summary
	_, err := r.db.Exec(`INSERT INTO runs
		(timestamp, symbol, bar_count, start_date, end_date, average_price, highest_price, lowest_price)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.Symbol, rec.BarCount,
		s.StartDate.UnixMilli(), s.EndDate.UnixMilli(),
		s.AveragePrice, s.HighestPrice, s.LowestPrice,
	)
	return err
}

// LatestRun returns the most recently stored run, or sql.ErrNoRows.
func (r *SQLiteRecorder) LatestRun() (*RunRecord, time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		ts, start, end int64
		rec            = &RunRecord{}
		s              = &model.Summary{}
	)
	err := r.db.QueryRow(`SELECT timestamp, symbol, bar_count, start_date, end_date,
		average_price, highest_price, lowest_price
		FROM runs ORDER BY id DESC LIMIT 1`).
		Scan(&ts, &rec.Symbol, &rec.BarCount, &start, &end, &s.AveragePrice, &s.HighestPrice, &s.LowestPrice)
	if err != nil {
		return nil, time.Time{}, err
	}
	s.StartDate = time.UnixMilli(start).UTC()
	s.EndDate = time.UnixMilli(end).UTC()
	rec.Summary = s
	return rec, time.Unix(ts, 0), nil
}

func (r *SQLiteRecorder) Close() error {
	r.logger.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
