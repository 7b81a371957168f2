// Package collector implements the pagination driver for the tweet
// pipeline.
//
// For one time window it drains pages from the fetcher until a target
// record count is reached or the provider stops returning a
// continuation token, pacing every follow-up call against the
// provider's two rate regimes. The candle pipeline fetches one page per
// window and has no driver.
package collector
