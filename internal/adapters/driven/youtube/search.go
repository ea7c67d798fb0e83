package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
	"github.com/custodia-labs/tubescribe-cli/internal/core/ports/driven"
)

// watchURLPrefix builds the canonical watch URL for a result.
const watchURLPrefix = "https://www.youtube.com/watch?v="

// Ensure SearchClient implements the interface.
var _ driven.VideoSearcher = (*SearchClient)(nil)

// SearchClient queries the YouTube Data API v3 search endpoint.
// The underlying service is built on first use so that a missing API key
// fails the operation, not server startup.
type SearchClient struct {
	apiKey string

	mu      sync.Mutex
	service *ytapi.Service
}

// NewSearchClient creates a Data API client using the given API key.
func NewSearchClient(apiKey string) *SearchClient {
	return &SearchClient{apiKey: apiKey}
}

// serviceHandle returns the Data API service, creating it on first call.
func (c *SearchClient) serviceHandle(ctx context.Context) (*ytapi.Service, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("youtube search: %w", domain.ErrMissingCredential)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.service == nil {
		service, err := ytapi.NewService(ctx, option.WithAPIKey(c.apiKey))
		if err != nil {
			return nil, fmt.Errorf("creating youtube service: %w", err)
		}
		c.service = service
	}
	return c.service, nil
}

// Search runs a video search, passing filters through to the provider
// unchanged.
func (c *SearchClient) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	service, err := c.serviceHandle(ctx)
	if err != nil {
		return nil, err
	}

	call := service.Search.List([]string{"snippet"}).
		Context(ctx).
		Q(query).
		Type("video").
		MaxResults(int64(opts.MaxResults))

	if opts.Order != "" {
		call = call.Order(opts.Order)
	}
	if !opts.PublishedAfter.IsZero() {
		call = call.PublishedAfter(opts.PublishedAfter.Format(time.RFC3339))
	}

	resp, err := call.Do()
	if err != nil {
		return nil, classifySearchError(err)
	}

	results := make([]domain.SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}

		publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)

		results = append(results, domain.SearchResult{
			VideoID:      item.Id.VideoId,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			Description:  item.Snippet.Description,
			PublishedAt:  publishedAt,
			URL:          watchURLPrefix + item.Id.VideoId,
		})
	}

	return results, nil
}

// classifySearchError maps a Data API failure onto the domain taxonomy,
// keeping the status-derived sub-reason in the message.
func classifySearchError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("youtube search: %w: %w", domain.ErrUpstreamUnavailable, err)
	}

	switch gerr.Code {
	case http.StatusBadRequest:
		return fmt.Errorf("youtube search rejected query: %w: %w", domain.ErrUpstreamRejected, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("youtube search forbidden (key invalid or quota exhausted): %w: %w",
			domain.ErrUpstreamRejected, err)
	case http.StatusNotFound:
		return fmt.Errorf("youtube search target not found: %w: %w", domain.ErrUpstreamRejected, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("youtube search rate limited: %w: %w", domain.ErrUpstreamRejected, err)
	default:
		return fmt.Errorf("youtube search failed with status %d: %w: %w",
			gerr.Code, domain.ErrUpstreamUnavailable, err)
	}
}
