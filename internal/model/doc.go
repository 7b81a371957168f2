// Package model defines the persisted record types shared by the file
// and document-store sinks.
//
// Conventions:
//   - Timestamps: time.Time in UTC
//   - Prices: float64 dollars (midpoint of a candle's low/high)
package model
