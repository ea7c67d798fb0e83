package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
	"github.com/custodia-labs/tubescribe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tubescribe-cli/internal/core/ports/driving"
)

// DefaultMaxResults is the search result limit used when the caller does
// not request one.
const DefaultMaxResults = 10

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService passes video searches through to the upstream provider.
type SearchService struct {
	searcher driven.VideoSearcher
}

// NewSearchService creates a new search service.
func NewSearchService(searcher driven.VideoSearcher) *SearchService {
	return &SearchService{searcher: searcher}
}

// Search queries the provider for videos matching query.
func (s *SearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required: %w", domain.ErrInvalidInput)
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}

	results, err := s.searcher.Search(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("searching videos for %q: %w", query, err)
	}
	return results, nil
}
