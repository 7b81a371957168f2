package api

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

// Candle is one element of the candle provider's response array:
// [ time, low, high, open, close, volume ], newest first.
type Candle struct {
	Time   int64 // Bucket start, epoch seconds
	Low    float64
	High   float64
	Open   float64
	Close  float64
	Volume float64
}

// UnmarshalJSON decodes the provider's positional tuple form.
func (c *Candle) UnmarshalJSON(data []byte) error {
	var tuple [6]float64
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("candle tuple: %w", err)
	}
	c.Time = int64(tuple[0])
	c.Low = tuple[1]
	c.High = tuple[2]
	c.Open = tuple[3]
	c.Close = tuple[4]
	c.Volume = tuple[5]
	return nil
}

// Tweet is one tweet as returned by the search provider.
type Tweet struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Text      string `json:"text"`
}

// searchResponse is the search provider's page envelope.
type searchResponse struct {
	Data []Tweet    `json:"data"`
	Meta searchMeta `json:"meta"`
}

type searchMeta struct {
	NextToken string `json:"next_token"`
}

// SearchPage is one decoded page of tweet results. NextToken is empty
// when the provider has no further page for the window.
type SearchPage struct {
	Tweets    []Tweet
	NextToken string
}

// RateLimit is the search provider's quota state, read from response
// headers after every successful call. Nil for the candle provider,
// which exposes no quota.
type RateLimit struct {
	Remaining int       // Requests left in the current 15-minute quota
	ResetAt   time.Time // When the quota replenishes
}
