package domain

import (
	"fmt"
	"strings"
)

// TranscriptSegment represents one timed caption unit.
type TranscriptSegment struct {
	// Text is the displayable caption text. May contain any Unicode content.
	Text string

	// OffsetMs is the segment start, in milliseconds from video start.
	OffsetMs int64

	// DurationMs is the segment duration in milliseconds.
	// Zero when the provider did not report one.
	DurationMs int64
}

// TranscriptResult is an assembled transcript for a single video.
// It is constructed fresh per request and never cached.
type TranscriptResult struct {
	// VideoID is the canonical identifier the transcript belongs to.
	VideoID string

	// Segments are the caption units in provider order.
	Segments []TranscriptSegment

	// TotalSegments is len(Segments).
	TotalSegments int

	// FormattedDuration is the formatted offset of the last segment,
	// or "0:00" when there are no segments.
	FormattedDuration string

	// RenderedText is the newline-joined "[timestamp] text" rendering,
	// one line per segment, without a trailing newline.
	RenderedText string
}

// Empty reports whether the video has no transcript.
// This is a normal outcome, not a failure.
func (r *TranscriptResult) Empty() bool {
	return r.TotalSegments == 0
}

// FormatTimestamp converts a millisecond offset into a clock string:
// "H:MM:SS" when there is an hour component, otherwise "M:SS".
// Whole seconds are obtained by truncating division; only trailing
// groups are zero-padded.
func FormatTimestamp(offsetMs int64) string {
	totalSeconds := offsetMs / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// AssembleTranscript builds a TranscriptResult from provider segments.
// Segments are taken verbatim in input order; the provider is trusted to
// report non-decreasing offsets and the total duration is read from the
// last segment's offset, not computed from offset+duration.
func AssembleTranscript(videoID string, segments []TranscriptSegment) *TranscriptResult {
	result := &TranscriptResult{
		VideoID:           videoID,
		Segments:          segments,
		TotalSegments:     len(segments),
		FormattedDuration: FormatTimestamp(0),
	}

	if len(segments) == 0 {
		return result
	}

	result.FormattedDuration = FormatTimestamp(segments[len(segments)-1].OffsetMs)

	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("[")
		b.WriteString(FormatTimestamp(seg.OffsetMs))
		b.WriteString("] ")
		b.WriteString(seg.Text)
	}
	result.RenderedText = b.String()

	return result
}
