// Package articlecache persists generated articles as one JSON file per
// content fingerprint so reruns never pay for the same generation twice.
//
// The cache is deliberately forgiving on reads: a missing, unreadable, or
// malformed entry is a miss, never an error. Writes are atomic (temp file plus
// rename) and entries are never rewritten once present.
package articlecache
