package collector

import (
	"context"
	"log/slog"

	"github.com/rickgao/btn-backfill/internal/api"
	"github.com/rickgao/btn-backfill/internal/interval"
)

// maxPageSize caps how many tweets one request may ask for.
const maxPageSize = 10

// SearchFetcher is the single page-request the driver drains.
type SearchFetcher interface {
	SearchTweets(ctx context.Context, w interval.Window, maxResults int, nextToken string) (*api.SearchPage, *api.RateLimit, error)
}

// Pacer applies the provider's rate regimes between requests.
type Pacer interface {
	MarkRequest()
	WaitQuota(*api.RateLimit)
	WaitGap()
}

// Collector drains tweet pages for one window at a time.
type Collector struct {
	fetcher SearchFetcher
	pacer   Pacer
	target  int
	logger  *slog.Logger
}

// New creates a Collector that accumulates at least target tweets per
// window when the provider has them.
func New(fetcher SearchFetcher, pacer Pacer, target int, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		fetcher: fetcher,
		pacer:   pacer,
		target:  target,
		logger:  logger,
	}
}

// Collect fetches pages for the window until the target count is
// reached or no continuation token remains. The result may exceed the
// target by at most one page; it is never trimmed. Both pacing checks
// run once more after the loop so the next window's first request is
// paced too.
func (c *Collector) Collect(ctx context.Context, w interval.Window) ([]api.Tweet, error) {
	size := c.target
	if size > maxPageSize {
		size = maxPageSize
	}

	c.pacer.MarkRequest()
	page, limits, err := c.fetcher.SearchTweets(ctx, w, size, "")
	if err != nil {
		return nil, err
	}

	tweets := page.Tweets
	token := page.NextToken

	for len(tweets) < c.target && token != "" {
		c.logger.Info("collecting more tweets",
			"have", len(tweets),
			"target", c.target,
			"window_start", w.Start,
		)

		c.pacer.WaitQuota(limits)
		c.pacer.WaitGap()

		size = c.target - len(tweets)
		if size > maxPageSize {
			size = maxPageSize
		}

		c.pacer.MarkRequest()
		page, limits, err = c.fetcher.SearchTweets(ctx, w, size, token)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, page.Tweets...)
		token = page.NextToken
	}

	c.pacer.WaitQuota(limits)
	c.pacer.WaitGap()

	return tweets, nil
}
