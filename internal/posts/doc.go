// Package posts manages the durable article store backed by SQLite.
//
// The uniqueness of (title, category) is enforced by the database itself via a
// unique index, with INSERT OR IGNORE semantics on writes. In-memory dedup
// checks in the pipeline are an optimization; this constraint is the
// correctness guarantee under reruns.
package posts
