package driving

import (
	"context"

	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
)

// TranscriptService retrieves and assembles video transcripts.
type TranscriptService interface {
	// Get fetches the transcript for a raw video reference (bare ID or
	// URL) in the requested language. An empty language selects the
	// default. The result flags absence via Empty(); errors are reserved
	// for invalid input, credential and upstream failures.
	Get(ctx context.Context, rawVideoID, language string) (*domain.TranscriptResult, error)
}
