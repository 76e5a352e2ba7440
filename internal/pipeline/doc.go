// Package pipeline drives a generation run: document discovery, item
// extraction, dedup and cache checks, article generation, and batched
// persistence with one commit per document.
//
// Execution is strictly sequential. Items are visited in document order, so
// two runs over the same corpus populate the cache and the store identically.
// Fatal failures abort the run; documents committed before the failure stay
// persisted.
package pipeline
