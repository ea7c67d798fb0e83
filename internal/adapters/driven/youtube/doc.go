// Package youtube provides the upstream YouTube adapters.
//
// Two clients live here:
//
//   - TranscriptClient: fetches caption segments from the timedtext API
//     and reshapes the provider payload into domain segments. The variant
//     payload never leaks past this boundary.
//   - SearchClient: queries the YouTube Data API v3 search endpoint.
//
// Both clients require the configured API key and classify upstream
// failures into the domain error taxonomy.
package youtube
