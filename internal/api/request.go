package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v5"
)

// ProviderError represents a non-success, non-429 response from a
// provider. It terminates the run.
type ProviderError struct {
	StatusCode int
	Body       []byte
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.StatusCode, e.Body)
}

// doGet performs a single GET request and returns the body and response
// headers. Any non-2xx status is returned as *ProviderError, including
// 429; callers decide which statuses to retry.
func (c *Client) doGet(ctx context.Context, rawURL string, query url.Values, header http.Header) ([]byte, http.Header, error) {
	fullURL := rawURL
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, &ProviderError{
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	return body, resp.Header, nil
}

// isTooManyRequests reports whether err is a 429 provider response.
func isTooManyRequests(err error) bool {
	var perr *ProviderError
	return errors.As(err, &perr) && perr.StatusCode == http.StatusTooManyRequests
}

// retryOn429 drives op under the given backoff policy with the
// library's elapsed-time cap disabled: a provider may return 429 for
// longer than the default 15-minute budget, and a rate-limit signal is
// never allowed to surface as a failure. Only context cancellation or
// a permanent error from op ends the retries.
func retryOn429[T any](ctx context.Context, op backoff.Operation[T], b backoff.BackOff) (T, error) {
	return backoff.Retry(ctx, op,
		backoff.WithBackOff(b),
		backoff.WithMaxElapsedTime(0),
	)
}
