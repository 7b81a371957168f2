package backfill

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rickgao/btn-backfill/internal/api"
	"github.com/rickgao/btn-backfill/internal/interval"
	"github.com/rickgao/btn-backfill/internal/model"
	"github.com/rickgao/btn-backfill/internal/sink"
)

// searchGranularity is the sub-window size for tweet collection.
const searchGranularity = 30 * time.Minute

// TweetCollector drains one window's pages to at least the configured
// target count.
type TweetCollector interface {
	Collect(ctx context.Context, w interval.Window) ([]api.Tweet, error)
}

// TweetStore receives each window's records as a best-effort bulk
// insert.
type TweetStore interface {
	InsertTweets(ctx context.Context, records []model.Tweet) error
}

// Tweets is the tweet backfill pipeline.
type Tweets struct {
	collector TweetCollector
	file      *sink.File
	store     TweetStore
	logger    *slog.Logger
}

// NewTweets creates the tweet pipeline.
func NewTweets(collector TweetCollector, file *sink.File, store TweetStore, logger *slog.Logger) *Tweets {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tweets{
		collector: collector,
		file:      file,
		store:     store,
		logger:    logger,
	}
}

// Run backfills days [dayStart, dayEnd] of the year. dayEnd 0 means the
// end of the year.
func (t *Tweets) Run(ctx context.Context, year, dayStart, dayEnd int) error {
	if dayEnd == 0 {
		dayEnd = interval.DaysInYear(year)
	}

	for _, day := range interval.PlanYear(year, dayStart, dayEnd) {
		t.logger.Info("starting day", "start", day.Start)

		for _, w := range interval.PlanDay(day, searchGranularity) {
			t.logger.Info("processing window", "start", w.Start, "end", w.End)

			tweets, err := t.collector.Collect(ctx, w)
			if err != nil {
				return fmt.Errorf("collect tweets %s: %w", w.Start, err)
			}

			records, err := sink.TweetRecords(tweets)
			if err != nil {
				return fmt.Errorf("convert tweets %s: %w", w.Start, err)
			}
			for _, r := range records {
				if err := t.file.WriteTweet(r); err != nil {
					return fmt.Errorf("write tweet row: %w", err)
				}
			}

			if err := t.store.InsertTweets(ctx, records); err != nil {
				t.logger.Warn("store insert failed, continuing", "error", err)
			}
		}
	}
	return nil
}
