package domain

import "strings"

// canonicalIDLength is the length of a YouTube video identifier.
const canonicalIDLength = 11

// idMatcher extracts a video identifier that follows a known URL marker.
// It returns the captured substring and true, or "" and false when the
// marker is not present.
type idMatcher func(raw string) (string, bool)

// urlMarkers are the recognised URL shapes, tried in order.
// First match wins.
var urlMarkers = []string{
	"watch?v=",  // full watch URL with query parameter
	"youtu.be/", // short link
	"embed/",    // embed player URL
	"/v/",       // legacy path form
}

// idMatchers is the ordered matcher list built from urlMarkers.
var idMatchers = buildMatchers()

func buildMatchers() []idMatcher {
	matchers := make([]idMatcher, 0, len(urlMarkers))
	for _, marker := range urlMarkers {
		matchers = append(matchers, markerMatcher(marker))
	}
	return matchers
}

// markerMatcher returns a matcher capturing everything after marker up to
// the next '&', '\n', '?' or '#'.
func markerMatcher(marker string) idMatcher {
	return func(raw string) (string, bool) {
		idx := strings.Index(raw, marker)
		if idx < 0 {
			return "", false
		}
		rest := raw[idx+len(marker):]
		if end := strings.IndexAny(rest, "&\n?#"); end >= 0 {
			rest = rest[:end]
		}
		return rest, true
	}
}

// NormalizeVideoID canonicalises a raw video reference into a VideoID.
// The input may be a bare identifier or a pasted URL in any of the
// recognised shapes. It never fails: when nothing matches, the input is
// returned unchanged as a last-resort fallback.
//
// An 11-character string containing neither '/' nor '=' is treated as
// already canonical without any character-class validation. That heuristic
// can accept strings that are not identifiers at all; the behaviour is
// kept for compatibility with existing callers.
func NormalizeVideoID(raw string) string {
	if len(raw) == canonicalIDLength &&
		!strings.ContainsAny(raw, "/=") {
		return raw
	}

	for _, match := range idMatchers {
		if id, ok := match(raw); ok {
			return id
		}
	}

	return raw
}
