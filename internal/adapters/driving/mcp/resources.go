package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Tubescribe resources.
const uriScheme = "tubescribe://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Template for stored summaries.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "summaries/{videoId}",
		Name:        "video-summary",
		Description: "Stored summary for a specific video",
		MIMEType:    "text/plain",
	}, s.handleSummaryResource)
}

// handleSummaryResource returns the stored summary for a video.
func (s *Server) handleSummaryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	videoID := extractVideoID(req.Params.URI)
	if videoID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.Summary.Get(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("reading summary: %w", err)
	}
	if record == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     record.Summary,
		}},
	}, nil
}

// extractVideoID pulls the video ID out of a summaries resource URI:
// tubescribe://summaries/{videoId}
func extractVideoID(uri string) string {
	rest, ok := strings.CutPrefix(uri, uriScheme+"summaries/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	return rest
}
