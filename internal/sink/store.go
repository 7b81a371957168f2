package sink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickgao/btn-backfill/internal/model"
)

// InsertError reports a failed best-effort batch insert. The driver
// loop logs it and continues; the file sink already holds the records.
type InsertError struct {
	Table string
	Count int
	Err   error
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("insert %d rows into %s: %v", e.Count, e.Table, e.Err)
}

func (e *InsertError) Unwrap() error {
	return e.Err
}

// Store is the document-store sink. Every document carries the run id,
// so documents from a re-run of the same period stay attributable (the
// store is never deduplicated).
type Store struct {
	db     *pgxpool.Pool
	runID  uuid.UUID
	logger *slog.Logger
}

// NewStore creates a Store writing under the given run id.
func NewStore(db *pgxpool.Pool, runID uuid.UUID, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		db:     db,
		runID:  runID,
		logger: logger,
	}
}

// EnsureSchema creates the two collections' tables if missing. Failure
// here is fatal at startup, before any backfill work begins.
func (s *Store) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ticker (
			run_id    uuid             NOT NULL,
			ts        timestamptz      NOT NULL,
			price     double precision NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tweets (
			run_id    uuid        NOT NULL,
			tweet_id  text        NOT NULL,
			ts        timestamptz NOT NULL,
			text      text        NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// InsertCandles bulk-inserts one page's candle records. A failure is
// returned as *InsertError for the driver to log and ignore.
func (s *Store) InsertCandles(ctx context.Context, records []model.PricePoint) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(
			`INSERT INTO ticker (run_id, ts, price) VALUES ($1, $2, $3)`,
			s.runID, r.Timestamp, r.Price,
		)
	}

	if err := s.sendBatch(ctx, batch, len(records)); err != nil {
		return &InsertError{Table: "ticker", Count: len(records), Err: err}
	}
	return nil
}

// InsertTweets bulk-inserts one window's tweet records. A failure is
// returned as *InsertError for the driver to log and ignore.
func (s *Store) InsertTweets(ctx context.Context, records []model.Tweet) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(
			`INSERT INTO tweets (run_id, tweet_id, ts, text) VALUES ($1, $2, $3, $4)`,
			s.runID, r.ID, r.Timestamp, r.Text,
		)
	}

	if err := s.sendBatch(ctx, batch, len(records)); err != nil {
		return &InsertError{Table: "tweets", Count: len(records), Err: err}
	}
	return nil
}

func (s *Store) sendBatch(ctx context.Context, batch *pgx.Batch, n int) error {
	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < n; i++ {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}
