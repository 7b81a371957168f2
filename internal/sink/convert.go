package sink

import (
	"fmt"
	"strings"
	"time"

	"github.com/rickgao/btn-backfill/internal/api"
	"github.com/rickgao/btn-backfill/internal/model"
)

// Conversion walks each page from the last index down to index 1.
// Index 0 is never emitted; every archive produced to date was built
// with this bound and downstream consumers expect it. Do not widen the
// loop without a coordinated re-backfill.

// CandleRecords converts one newest-first candle page into ascending
// persisted records. Price is the midpoint of the candle's low and
// high.
func CandleRecords(candles []api.Candle) []model.PricePoint {
	if len(candles) < 2 {
		return nil
	}
	records := make([]model.PricePoint, 0, len(candles)-1)
	for i := len(candles) - 1; i > 0; i-- {
		c := candles[i]
		records = append(records, model.PricePoint{
			Timestamp: time.Unix(c.Time, 0).UTC(),
			Price:     (c.Low + c.High) / 2,
		})
	}
	return records
}

// TweetRecords converts one newest-first tweet page into ascending
// persisted records: newlines stripped from the text, the provider's
// timestamp string kept minus its trailing "Z", and the parsed time for
// the store.
func TweetRecords(tweets []api.Tweet) ([]model.Tweet, error) {
	if len(tweets) < 2 {
		return nil, nil
	}
	records := make([]model.Tweet, 0, len(tweets)-1)
	for i := len(tweets) - 1; i > 0; i-- {
		t := tweets[i]
		ts, err := time.Parse(time.RFC3339, t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", t.CreatedAt, err)
		}
		records = append(records, model.Tweet{
			ID:        t.ID,
			CreatedAt: strings.TrimSuffix(t.CreatedAt, "Z"),
			Timestamp: ts.UTC(),
			Text:      strings.ReplaceAll(t.Text, "\n", ""),
		})
	}
	return records, nil
}
