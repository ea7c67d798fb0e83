// Package sqlite provides the SQLite-backed summary store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. It implements the
// driven.SummaryStore port over a single database connection.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory as numbered .up.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.tubescribe/data/summaries.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode; an upsert is a single statement, so
// concurrent writes to the same video ID serialise with last-committed-wins.
package sqlite
