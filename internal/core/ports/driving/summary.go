package driving

import (
	"context"

	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
)

// SummaryService manages persisted video summaries.
type SummaryService interface {
	// Store upserts the summary for a raw video reference and returns the
	// canonical video ID it was stored under.
	Store(ctx context.Context, rawVideoID, summary string) (string, error)

	// Get retrieves the summary record for a raw video reference.
	// A miss is reported as (nil, nil), never as an error.
	Get(ctx context.Context, rawVideoID string) (*domain.SummaryRecord, error)

	// Delete removes the summary for a raw video reference and reports
	// whether a record existed.
	Delete(ctx context.Context, rawVideoID string) (bool, error)
}
