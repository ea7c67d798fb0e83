package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
	"github.com/custodia-labs/tubescribe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tubescribe-cli/internal/core/ports/driving"
)

// DefaultLanguage is the caption language used when the caller does not
// request one.
const DefaultLanguage = "en"

// Ensure TranscriptService implements the interface.
var _ driving.TranscriptService = (*TranscriptService)(nil)

// TranscriptService fetches raw captions from the provider and assembles
// them into a rendered transcript.
type TranscriptService struct {
	provider        driven.TranscriptProvider
	defaultLanguage string
}

// NewTranscriptService creates a new transcript service. An empty
// defaultLanguage falls back to DefaultLanguage.
func NewTranscriptService(provider driven.TranscriptProvider, defaultLanguage string) *TranscriptService {
	if defaultLanguage == "" {
		defaultLanguage = DefaultLanguage
	}
	return &TranscriptService{provider: provider, defaultLanguage: defaultLanguage}
}

// Get fetches and assembles the transcript for a raw video reference.
func (s *TranscriptService) Get(ctx context.Context, rawVideoID, language string) (*domain.TranscriptResult, error) {
	if rawVideoID == "" {
		return nil, fmt.Errorf("video ID is required: %w", domain.ErrInvalidInput)
	}
	if language == "" {
		language = s.defaultLanguage
	}

	videoID := domain.NormalizeVideoID(rawVideoID)

	segments, err := s.provider.Fetch(ctx, videoID, language)
	if err != nil {
		return nil, fmt.Errorf("fetching transcript for %s: %w", videoID, err)
	}

	return domain.AssembleTranscript(videoID, segments), nil
}
