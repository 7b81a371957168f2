package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultCandlesRestURL = "https://api.exchange.coinbase.com"
	DefaultCandlesProduct = "btc-usd"
	DefaultSearchRestURL  = "https://api.twitter.com/2/tweets/search/all"
	DefaultSearchQuery    = "(bitcoin OR #bitcoin) -is:retweet lang:en"
	DefaultPerWindow      = 25
	DefaultTimeout        = 30 * time.Second
	DefaultDBPort         = 5432
	DefaultDBSSLMode      = "prefer"
	DefaultMaxConns       = 2
	DefaultMinConns       = 1
	DefaultOutputDir      = "."
)

func (c *Config) applyDefaults() {
	// Candle provider defaults
	if c.Candles.RestURL == "" {
		c.Candles.RestURL = DefaultCandlesRestURL
	}
	if c.Candles.Product == "" {
		c.Candles.Product = DefaultCandlesProduct
	}
	if c.Candles.Timeout == 0 {
		c.Candles.Timeout = DefaultTimeout
	}

	// Search provider defaults
	if c.Search.RestURL == "" {
		c.Search.RestURL = DefaultSearchRestURL
	}
	if c.Search.Query == "" {
		c.Search.Query = DefaultSearchQuery
	}
	if c.Search.PerWindow == 0 {
		c.Search.PerWindow = DefaultPerWindow
	}
	if c.Search.Timeout == 0 {
		c.Search.Timeout = DefaultTimeout
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Output defaults
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
}
