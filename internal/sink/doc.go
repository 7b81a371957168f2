// Package sink converts fetched pages into persisted records and writes
// them to the two sinks: an append-only CSV file and the document
// store.
//
// Providers return pages newest first; conversion iterates them in
// reverse so both sinks end up chronologically ascending. The file
// write is synchronous and is the record of truth for a run; the store
// insert is best-effort and its failure never aborts the run.
package sink
