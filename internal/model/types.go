package model

import "time"

// PricePoint is one persisted candle record.
type PricePoint struct {
	Timestamp time.Time // Candle bucket time (UTC, from epoch seconds)
	Price     float64   // Midpoint of the candle's low and high
}

// Tweet is one persisted tweet record.
//
// CreatedAt keeps the provider's timestamp string (trailing "Z"
// removed) for the file sink; Timestamp is the parsed form the store
// sink persists as a native datetime.
type Tweet struct {
	ID        string    // Provider tweet id
	CreatedAt string    // Creation time as received, minus trailing "Z"
	Timestamp time.Time // Parsed creation time
	Text      string    // Tweet text with embedded newlines stripped
}
