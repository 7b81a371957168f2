package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	json "github.com/goccy/go-json"

	"github.com/rickgao/btn-backfill/internal/interval"
)

// candleGranularitySeconds is the bucket size requested from the candle
// provider.
const candleGranularitySeconds = 60

// timeLayout matches the provider's expected ISO-8601 query format.
// Fractional seconds are emitted only when present, so exact hour
// boundaries stay unpadded while day-end instants keep microseconds.
const timeLayout = "2006-01-02T15:04:05.999999"

// GetCandles fetches the minute candles covering one window. The
// provider does not paginate and reports no quota; a 429 is retried on
// a fixed one second delay until the request goes through.
func (c *Client) GetCandles(ctx context.Context, w interval.Window) ([]Candle, error) {
	query := url.Values{}
	query.Set("granularity", strconv.Itoa(candleGranularitySeconds))
	query.Set("start", w.Start.UTC().Format(timeLayout))
	query.Set("end", w.End.UTC().Format(timeLayout))

	endpoint := c.candleURL + "/products/" + c.product + "/candles"

	op := func() ([]byte, error) {
		body, _, err := c.doGet(ctx, endpoint, query, nil)
		if err != nil {
			if isTooManyRequests(err) {
				c.logger.Warn("candle provider rate limited, retrying in 1s",
					"window_start", w.Start,
				)
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		return body, nil
	}

	body, err := retryOn429(ctx, op, backoff.NewConstantBackOff(time.Second))
	if err != nil {
		return nil, fmt.Errorf("get candles: %w", err)
	}

	var candles []Candle
	if err := json.Unmarshal(body, &candles); err != nil {
		return nil, fmt.Errorf("unmarshal candles: %w", err)
	}

	return candles, nil
}
