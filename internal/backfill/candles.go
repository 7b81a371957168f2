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

// candleGranularity is the sub-window size for one candle page request.
const candleGranularity = time.Hour

// CandleFetcher is the candle provider call the pipeline drives.
type CandleFetcher interface {
	GetCandles(ctx context.Context, w interval.Window) ([]api.Candle, error)
}

// CandleStore receives each page's records as a best-effort bulk
// insert.
type CandleStore interface {
	InsertCandles(ctx context.Context, records []model.PricePoint) error
}

// RequestCounter is notified after every issued request so the coarse
// throughput budget can be enforced.
type RequestCounter interface {
	MarkRequest()
}

// Candles is the candle backfill pipeline.
type Candles struct {
	fetcher CandleFetcher
	file    *sink.File
	store   CandleStore
	pacer   RequestCounter
	logger  *slog.Logger
}

// NewCandles creates the candle pipeline.
func NewCandles(fetcher CandleFetcher, file *sink.File, store CandleStore, pacer RequestCounter, logger *slog.Logger) *Candles {
	if logger == nil {
		logger = slog.Default()
	}
	return &Candles{
		fetcher: fetcher,
		file:    file,
		store:   store,
		pacer:   pacer,
		logger:  logger,
	}
}

// Run backfills days [dayStart, dayEnd] of the year. dayEnd 0 means the
// end of the year. A provider error aborts the run; a store insert
// failure does not, since the file sink is the record of truth.
func (c *Candles) Run(ctx context.Context, year, dayStart, dayEnd int) error {
	if dayEnd == 0 {
		dayEnd = interval.DaysInYear(year)
	}

	for _, day := range interval.PlanYear(year, dayStart, dayEnd) {
		c.logger.Info("processing day", "start", day.Start)

		for _, w := range interval.PlanDay(day, candleGranularity) {
			candles, err := c.fetcher.GetCandles(ctx, w)
			if err != nil {
				return fmt.Errorf("fetch candles %s: %w", w.Start, err)
			}
			c.pacer.MarkRequest()

			records := sink.CandleRecords(candles)
			for _, r := range records {
				if err := c.file.WriteCandle(r); err != nil {
					return fmt.Errorf("write candle row: %w", err)
				}
			}

			if err := c.store.InsertCandles(ctx, records); err != nil {
				c.logger.Warn("store insert failed, continuing", "error", err)
			}
		}

		c.logger.Info("finished day", "start", day.Start)
	}
	return nil
}
