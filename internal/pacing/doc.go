// Package pacing implements the self-throttling rules between provider
// requests.
//
// The search provider has two independent regimes: a hard one request
// per second cap and a 15-minute quota reported via response headers.
// Pacer enforces both with true sleeps. The candle provider only needs
// a coarse throughput budget, enforced by BurstPacer after every ten
// requests.
package pacing
