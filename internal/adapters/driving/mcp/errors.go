// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Tubescribe. It enables AI assistants like Claude to fetch YouTube
// transcripts, search videos, and manage stored summaries.
package mcp

import "errors"

// Required-port errors returned by Ports.Validate.
var (
	// ErrMissingTranscriptService is returned when the transcript service is not provided.
	ErrMissingTranscriptService = errors.New("mcp: transcript service is required")

	// ErrMissingSummaryService is returned when the summary service is not provided.
	ErrMissingSummaryService = errors.New("mcp: summary service is required")

	// ErrMissingSearchService is returned when the search service is not provided.
	ErrMissingSearchService = errors.New("mcp: search service is required")
)
