package driven

import (
	"context"

	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
)

// VideoSearcher queries the upstream video search API.
type VideoSearcher interface {
	// Search returns videos matching the query, with options passed
	// through to the provider unchanged.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
