package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	json "github.com/goccy/go-json"

	"github.com/rickgao/btn-backfill/internal/interval"
)

// newSearchBackOff returns the search provider's 429 policy: ten
// seconds doubling per consecutive 429, no jitter. The cap matches the
// provider's 15-minute quota horizon.
func newSearchBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Second
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = 15 * time.Minute
	return b
}

type searchResult struct {
	body   []byte
	header http.Header
}

// SearchTweets fetches one page of tweets for the window. maxResults
// bounds the page size and nextToken continues a prior page; pass an
// empty token for the first page of a window. The returned RateLimit is
// read from the provider's quota headers and may be nil if they are
// missing.
func (c *Client) SearchTweets(ctx context.Context, w interval.Window, maxResults int, nextToken string) (*SearchPage, *RateLimit, error) {
	query := url.Values{}
	query.Set("query", c.query)
	query.Set("tweet.fields", "created_at")
	query.Set("max_results", strconv.Itoa(maxResults))
	query.Set("start_time", w.Start.UTC().Format(timeLayout)+"Z")
	query.Set("end_time", w.End.UTC().Format(timeLayout)+"Z")
	if nextToken != "" {
		query.Set("next_token", nextToken)
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.bearerToken)
	header.Set("User-Agent", userAgent)

	op := func() (searchResult, error) {
		body, respHeader, err := c.doGet(ctx, c.searchURL, query, header)
		if err != nil {
			if isTooManyRequests(err) {
				c.logger.Warn("search provider rate limited, backing off",
					"window_start", w.Start,
				)
				return searchResult{}, err
			}
			return searchResult{}, backoff.Permanent(err)
		}
		return searchResult{body: body, header: respHeader}, nil
	}

	res, err := retryOn429(ctx, op, newSearchBackOff())
	if err != nil {
		return nil, nil, fmt.Errorf("search tweets: %w", err)
	}

	var resp searchResponse
	if err := json.Unmarshal(res.body, &resp); err != nil {
		return nil, nil, fmt.Errorf("unmarshal search response: %w", err)
	}

	page := &SearchPage{
		Tweets:    resp.Data,
		NextToken: resp.Meta.NextToken,
	}
	return page, parseRateLimit(res.header), nil
}

// parseRateLimit reads the provider's quota headers. Both must be
// present and well-formed; otherwise the quota state is unknown and nil
// is returned.
func parseRateLimit(h http.Header) *RateLimit {
	remaining := h.Get("x-rate-limit-remaining")
	reset := h.Get("x-rate-limit-reset")
	if remaining == "" || reset == "" {
		return nil
	}

	rem, err := strconv.Atoi(remaining)
	if err != nil {
		return nil
	}
	epoch, err := strconv.ParseInt(reset, 10, 64)
	if err != nil {
		return nil
	}

	return &RateLimit{
		Remaining: rem,
		ResetAt:   time.Unix(epoch, 0).UTC(),
	}
}
