package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
	"github.com/custodia-labs/tubescribe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tubescribe-cli/internal/logger"
)

// timedtextURL is the caption endpoint queried for transcripts.
const timedtextURL = "https://www.youtube.com/api/timedtext"

// Ensure TranscriptClient implements the interface.
var _ driven.TranscriptProvider = (*TranscriptClient)(nil)

// TranscriptClient fetches captions from the timedtext API.
type TranscriptClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewTranscriptClient creates a transcript client using the given API key.
func NewTranscriptClient(apiKey string) *TranscriptClient {
	return &TranscriptClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    timedtextURL,
		apiKey:     apiKey,
	}
}

// timedtextResponse is the raw timedtext JSON payload.
type timedtextResponse struct {
	Events []timedtextEvent `json:"events"`
}

// timedtextEvent is a single timed event. Events without segs carry
// window metadata rather than captions.
type timedtextEvent struct {
	TStartMs    int64          `json:"tStartMs"`
	DDurationMs int64          `json:"dDurationMs"`
	Segs        []timedtextSeg `json:"segs"`
}

// timedtextSeg is one text run within an event.
type timedtextSeg struct {
	UTF8 string `json:"utf8"`
}

// Fetch retrieves caption segments for videoID in the given language.
// An empty slice with a nil error means the video has no transcript;
// malformed payloads are treated the same way.
func (c *TranscriptClient) Fetch(ctx context.Context, videoID, language string) ([]domain.TranscriptSegment, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("transcript fetch: %w", domain.ErrMissingCredential)
	}

	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", language)
	params.Set("fmt", "json3")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building timedtext request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timedtext request: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success
	case http.StatusNotFound:
		return nil, fmt.Errorf("video %s not found: %w", videoID, domain.ErrUpstreamRejected)
	case http.StatusForbidden:
		return nil, fmt.Errorf("video %s forbidden (region restricted or captions disabled): %w",
			videoID, domain.ErrUpstreamRejected)
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("quota exceeded: %w", domain.ErrUpstreamRejected)
	default:
		return nil, fmt.Errorf("timedtext returned status %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading timedtext response: %w: %w", domain.ErrUpstreamUnavailable, err)
	}

	return c.reshape(videoID, body), nil
}

// reshape converts the variant timedtext payload into domain segments.
// A payload that cannot be decoded yields an empty transcript rather
// than an error: YouTube serves empty or junk bodies for captionless
// videos.
func (c *TranscriptClient) reshape(videoID string, body []byte) []domain.TranscriptSegment {
	var payload timedtextResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Debug("timedtext payload for %s not decodable, treating as no transcript: %v", videoID, err)
		return nil
	}

	var segments []domain.TranscriptSegment
	for _, event := range payload.Events {
		if len(event.Segs) == 0 {
			continue
		}

		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}

		segments = append(segments, domain.TranscriptSegment{
			Text:       text.String(),
			OffsetMs:   event.TStartMs,
			DurationMs: event.DDurationMs,
		})
	}

	return segments
}
