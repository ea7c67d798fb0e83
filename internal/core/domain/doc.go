// Package domain defines the core business entities for Tubescribe.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - VideoID: The canonical YouTube video identifier
//   - TranscriptSegment: One timed caption unit
//   - TranscriptResult: An assembled, rendered transcript
//   - SummaryRecord: A persisted free-text summary keyed by video ID
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
