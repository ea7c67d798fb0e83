package driven

import (
	"context"

	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
)

// TranscriptProvider fetches raw caption segments from the upstream
// transcript API. The provider returns segments in playback order with
// millisecond offsets; reshaping beyond that is the assembler's job.
//
// An empty slice with a nil error means the video has no transcript.
type TranscriptProvider interface {
	// Fetch retrieves the caption segments for videoID in the requested
	// language.
	Fetch(ctx context.Context, videoID, language string) ([]domain.TranscriptSegment, error)
}
