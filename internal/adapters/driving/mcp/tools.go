package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
)

// transcriptDelimiter separates the header block from the rendered lines.
const transcriptDelimiter = "--- TRANSCRIPT ---"

// TranscriptInput is the input schema for the get_transcript tool.
type TranscriptInput struct {
	VideoID  string `json:"video_id" jsonschema:"the YouTube video ID or URL"`
	Language string `json:"language,omitempty" jsonschema:"caption language code (default en)"`
}

// TranscriptOutput is the output schema for the get_transcript tool.
type TranscriptOutput struct {
	VideoID   string `json:"video_id"`
	Available bool   `json:"available"`
	Segments  int    `json:"segments"`
	Duration  string `json:"duration"`
}

// SearchInput is the input schema for the search_videos tool.
type SearchInput struct {
	Query          string `json:"query" jsonschema:"the search query"`
	MaxResults     int    `json:"max_results,omitempty" jsonschema:"maximum number of results (default 10)"`
	Order          string `json:"order,omitempty" jsonschema:"result ordering: relevance, date, rating, title or viewCount"`
	PublishedAfter string `json:"published_after,omitempty" jsonschema:"RFC3339 timestamp restricting results to newer videos"`
}

// SearchOutput is the output schema for the search_videos tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single video search result.
type SearchResultOutput struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
	Description  string `json:"description,omitempty"`
	PublishedAt  string `json:"published_at,omitempty"`
	URL          string `json:"url"`
}

// StoreSummaryInput is the input schema for the store_summary tool.
type StoreSummaryInput struct {
	VideoID string `json:"video_id" jsonschema:"the YouTube video ID or URL"`
	Summary string `json:"summary" jsonschema:"the summary text to store"`
}

// StoreSummaryOutput is the output schema for the store_summary tool.
type StoreSummaryOutput struct {
	VideoID string `json:"video_id"`
}

// GetSummaryInput is the input schema for the get_summary tool.
type GetSummaryInput struct {
	VideoID string `json:"video_id" jsonschema:"the YouTube video ID or URL"`
}

// GetSummaryOutput is the output schema for the get_summary tool.
type GetSummaryOutput struct {
	VideoID   string `json:"video_id"`
	Found     bool   `json:"found"`
	Summary   string `json:"summary,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// DeleteSummaryInput is the input schema for the delete_summary tool.
type DeleteSummaryInput struct {
	VideoID string `json:"video_id" jsonschema:"the YouTube video ID or URL"`
}

// DeleteSummaryOutput is the output schema for the delete_summary tool.
type DeleteSummaryOutput struct {
	VideoID string `json:"video_id"`
	Removed bool   `json:"removed"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_transcript",
		Description: "Fetch the transcript of a YouTube video with timestamps",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleGetTranscript)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_videos",
		Description: "Search YouTube for videos matching a query",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleSearchVideos)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "store_summary",
		Description: "Store a text summary for a YouTube video, replacing any previous one",
	}, s.handleStoreSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_summary",
		Description: "Retrieve the stored summary for a YouTube video",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleGetSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_summary",
		Description: "Delete the stored summary for a YouTube video",
	}, s.handleDeleteSummary)
}

// textResult wraps a plain text payload as a tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// handleGetTranscript handles the get_transcript tool invocation.
func (s *Server) handleGetTranscript(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TranscriptInput,
) (*mcp.CallToolResult, TranscriptOutput, error) {
	result, err := s.ports.Transcript.Get(ctx, input.VideoID, input.Language)
	if err != nil {
		return nil, TranscriptOutput{}, err
	}

	output := TranscriptOutput{
		VideoID:   result.VideoID,
		Available: !result.Empty(),
		Segments:  result.TotalSegments,
		Duration:  result.FormattedDuration,
	}

	if result.Empty() {
		return textResult(renderNoTranscript(result.VideoID)), output, nil
	}
	return textResult(renderTranscript(result)), output, nil
}

// renderTranscript produces the header block followed by the rendered lines.
func renderTranscript(result *domain.TranscriptResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Video ID: %s\n", result.VideoID)
	fmt.Fprintf(&b, "Segments: %d\n", result.TotalSegments)
	fmt.Fprintf(&b, "Duration: %s\n", result.FormattedDuration)
	b.WriteString(transcriptDelimiter)
	b.WriteString("\n")
	b.WriteString(result.RenderedText)
	return b.String()
}

// renderNoTranscript produces the explicit no-transcript payload.
// Absence is a normal outcome, so this is never an error result.
func renderNoTranscript(videoID string) string {
	return fmt.Sprintf(`No transcript available for video ID: %s

Likely causes:
  - the video has no captions
  - captions are disabled by the uploader
  - no captions exist for the requested language`, videoID)
}

// handleSearchVideos handles the search_videos tool invocation.
func (s *Server) handleSearchVideos(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{
		MaxResults: input.MaxResults,
		Order:      input.Order,
	}
	if input.PublishedAfter != "" {
		after, err := time.Parse(time.RFC3339, input.PublishedAfter)
		if err != nil {
			return nil, SearchOutput{}, fmt.Errorf("published_after must be RFC3339: %w", domain.ErrInvalidInput)
		}
		opts.PublishedAfter = after
	}

	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		publishedAt := ""
		if !results[i].PublishedAt.IsZero() {
			publishedAt = results[i].PublishedAt.Format(time.RFC3339)
		}
		output.Results[i] = SearchResultOutput{
			VideoID:      results[i].VideoID,
			Title:        results[i].Title,
			ChannelTitle: results[i].ChannelTitle,
			Description:  results[i].Description,
			PublishedAt:  publishedAt,
			URL:          results[i].URL,
		}
	}

	return nil, output, nil
}

// handleStoreSummary handles the store_summary tool invocation.
func (s *Server) handleStoreSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StoreSummaryInput,
) (*mcp.CallToolResult, StoreSummaryOutput, error) {
	videoID, err := s.ports.Summary.Store(ctx, input.VideoID, input.Summary)
	if err != nil {
		return nil, StoreSummaryOutput{}, err
	}

	text := fmt.Sprintf("Summary stored for video ID: %s", videoID)
	return textResult(text), StoreSummaryOutput{VideoID: videoID}, nil
}

// handleGetSummary handles the get_summary tool invocation.
func (s *Server) handleGetSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetSummaryInput,
) (*mcp.CallToolResult, GetSummaryOutput, error) {
	record, err := s.ports.Summary.Get(ctx, input.VideoID)
	if err != nil {
		return nil, GetSummaryOutput{}, err
	}

	videoID := domain.NormalizeVideoID(input.VideoID)
	if record == nil {
		text := fmt.Sprintf("No summary found for video ID: %s", videoID)
		return textResult(text), GetSummaryOutput{VideoID: videoID, Found: false}, nil
	}

	output := GetSummaryOutput{
		VideoID:   record.VideoID,
		Found:     true,
		Summary:   record.Summary,
		UpdatedAt: record.UpdatedAt.Format(time.RFC3339),
	}
	return textResult(record.Summary), output, nil
}

// handleDeleteSummary handles the delete_summary tool invocation.
func (s *Server) handleDeleteSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteSummaryInput,
) (*mcp.CallToolResult, DeleteSummaryOutput, error) {
	removed, err := s.ports.Summary.Delete(ctx, input.VideoID)
	if err != nil {
		return nil, DeleteSummaryOutput{}, err
	}

	videoID := domain.NormalizeVideoID(input.VideoID)
	text := fmt.Sprintf("No summary existed for video ID: %s", videoID)
	if removed {
		text = fmt.Sprintf("Summary deleted for video ID: %s", videoID)
	}
	return textResult(text), DeleteSummaryOutput{VideoID: videoID, Removed: removed}, nil
}
