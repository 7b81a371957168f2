// Package backfill wires the planner, fetchers, and sinks into the two
// pipelines.
//
// Both pipelines walk a year's day windows sequentially, one
// outstanding request at a time. Candles fetch one page per hourly
// sub-window under a coarse throughput budget; tweets drain paginated
// 30-minute sub-windows through the collector. Store insert failures
// are logged and skipped; provider errors terminate the run.
package backfill
