package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if err := c.Database.validate("database"); err != nil {
		return err
	}

	if c.Candles.RestURL == "" {
		return errors.New("candles.rest_url is required")
	}
	if c.Candles.Product == "" {
		return errors.New("candles.product is required")
	}

	if c.Search.RestURL == "" {
		return errors.New("search.rest_url is required")
	}
	if c.Search.Query == "" {
		return errors.New("search.query is required")
	}
	if c.Search.PerWindow < 1 {
		return fmt.Errorf("search.per_window must be >= 1, got %d", c.Search.PerWindow)
	}

	if c.Output.Dir == "" {
		return errors.New("output.dir is required")
	}

	return nil
}

// ValidateSearch checks the fields only the tweet pipeline needs.
func (c *Config) ValidateSearch() error {
	if c.Search.BearerToken == "" {
		return errors.New("search.bearer_token is required")
	}
	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
