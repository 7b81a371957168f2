package api

import (
	"log/slog"
	"net/http"
	"time"
)

// userAgent is sent on every search request, as the provider requires.
const userAgent = "v2RecentSearchGo"

// Client provides access to the candle and tweet search providers.
type Client struct {
	candleURL   string
	searchURL   string
	bearerToken string
	product     string
	query       string
	httpClient  *http.Client
	logger      *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a provider client.
func NewClient(candleURL, searchURL, bearerToken string, opts ...ClientOption) *Client {
	c := &Client{
		candleURL:   candleURL,
		searchURL:   searchURL,
		bearerToken: bearerToken,
		product:     "btc-usd",
		query:       "(bitcoin OR #bitcoin) -is:retweet lang:en",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithProduct sets the candle product pair.
func WithProduct(product string) ClientOption {
	return func(c *Client) {
		c.product = product
	}
}

// WithQuery sets the tweet search filter.
func WithQuery(query string) ClientOption {
	return func(c *Client) {
		c.query = query
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
