package mcp

import (
	"github.com/custodia-labs/tubescribe-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Transcript retrieves and assembles video transcripts.
	Transcript driving.TranscriptService

	// Summary manages persisted video summaries.
	Summary driving.SummaryService

	// Search queries the upstream video search provider.
	Search driving.SearchService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Transcript == nil {
		return ErrMissingTranscriptService
	}
	if p.Summary == nil {
		return ErrMissingSummaryService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
