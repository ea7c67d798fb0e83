package driven

import (
	"context"

	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
)

// SummaryStore persists video summaries keyed by canonical video ID.
// Backed by SQLite.
//
// Lookup reports absence as (nil, nil): a missing summary is a normal
// outcome, never an error. Each operation is individually atomic; for
// concurrent upserts on the same key, the final state reflects one call
// entirely (last committed wins).
type SummaryStore interface {
	// Upsert creates the record for videoID, or replaces its summary text
	// and advances UpdatedAt, leaving CreatedAt untouched.
	Upsert(ctx context.Context, videoID, summary string) error

	// Lookup retrieves the record for videoID, or (nil, nil) when absent.
	Lookup(ctx context.Context, videoID string) (*domain.SummaryRecord, error)

	// Remove deletes the record for videoID and reports whether one existed.
	Remove(ctx context.Context, videoID string) (bool, error)

	// Close releases the backing store. Safe to call on a store that was
	// never opened successfully; committed records are never lost.
	Close() error
}
