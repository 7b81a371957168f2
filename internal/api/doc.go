// Package api implements the rate-limited fetchers for both providers.
//
// Each call issues exactly one logical page request. HTTP 429 is
// absorbed here and never surfaced: the candle provider retries on a
// fixed one second delay, the search provider on an exponential delay
// starting at ten seconds and doubling per consecutive 429. Any other
// non-success status is returned as *ProviderError and is fatal to the
// run.
package api
