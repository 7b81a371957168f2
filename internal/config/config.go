package config

import "time"

// Config is the root configuration for a backfill run.
type Config struct {
	Database DBConfig      `yaml:"database"`
	Candles  CandlesConfig `yaml:"candles"`
	Search   SearchConfig  `yaml:"search"`
	Output   OutputConfig  `yaml:"output"`
}

// DBConfig holds the document store connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// CandlesConfig holds candle provider settings.
type CandlesConfig struct {
	RestURL string        `yaml:"rest_url"`
	Product string        `yaml:"product"`
	Timeout time.Duration `yaml:"timeout"`
}

// SearchConfig holds tweet search provider settings.
type SearchConfig struct {
	RestURL     string        `yaml:"rest_url"`
	BearerToken string        `yaml:"bearer_token"`
	Query       string        `yaml:"query"`
	PerWindow   int           `yaml:"per_window"` // Minimum tweets to collect per 30-minute window
	Timeout     time.Duration `yaml:"timeout"`
}

// OutputConfig holds file sink settings.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}
