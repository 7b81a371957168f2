// Package database manages the PostgreSQL connection pool backing the
// document store sink.
//
// The pool is opened once at startup and reused for every insert; a
// connection failure here is fatal before any backfill work begins.
package database
