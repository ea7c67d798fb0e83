package driving

import (
	"context"

	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
)

// SearchService provides video search to external actors.
type SearchService interface {
	// Search queries the upstream provider for videos matching query.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
