package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
	"github.com/custodia-labs/tubescribe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tubescribe-cli/internal/core/ports/driving"
)

// Ensure SummaryService implements the interface.
var _ driving.SummaryService = (*SummaryService)(nil)

// SummaryService validates input, canonicalises the video reference and
// delegates persistence to the summary store.
type SummaryService struct {
	store driven.SummaryStore
}

// NewSummaryService creates a new summary service.
func NewSummaryService(store driven.SummaryStore) *SummaryService {
	return &SummaryService{store: store}
}

// Store upserts the summary under the canonical video ID.
// An empty summary is rejected: "no summary" is expressed by the absence
// of a record, not by an empty one.
func (s *SummaryService) Store(ctx context.Context, rawVideoID, summary string) (string, error) {
	if rawVideoID == "" {
		return "", fmt.Errorf("video ID is required: %w", domain.ErrInvalidInput)
	}
	if summary == "" {
		return "", fmt.Errorf("summary is required: %w", domain.ErrInvalidInput)
	}

	videoID := domain.NormalizeVideoID(rawVideoID)

	if err := s.store.Upsert(ctx, videoID, summary); err != nil {
		return "", fmt.Errorf("storing summary for %s: %w", videoID, err)
	}
	return videoID, nil
}

// Get retrieves the summary record, or (nil, nil) when none exists.
func (s *SummaryService) Get(ctx context.Context, rawVideoID string) (*domain.SummaryRecord, error) {
	if rawVideoID == "" {
		return nil, fmt.Errorf("video ID is required: %w", domain.ErrInvalidInput)
	}

	videoID := domain.NormalizeVideoID(rawVideoID)

	record, err := s.store.Lookup(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("looking up summary for %s: %w", videoID, err)
	}
	return record, nil
}

// Delete removes the summary record and reports whether one existed.
func (s *SummaryService) Delete(ctx context.Context, rawVideoID string) (bool, error) {
	if rawVideoID == "" {
		return false, fmt.Errorf("video ID is required: %w", domain.ErrInvalidInput)
	}

	videoID := domain.NormalizeVideoID(rawVideoID)

	removed, err := s.store.Remove(ctx, videoID)
	if err != nil {
		return false, fmt.Errorf("deleting summary for %s: %w", videoID, err)
	}
	return removed, nil
}
