package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormatTimestamp tests truncation and zero-padding rules.
func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		offsetMs int64
		want     string
	}{
		{"zero", 0, "0:00"},
		{"sub-second truncates", 999, "0:00"},
		{"one second", 1000, "0:01"},
		{"59 seconds", 59000, "0:59"},
		{"one minute", 60000, "1:00"},
		{"65 seconds", 65000, "1:05"},
		{"ten minutes", 600000, "10:00"},
		{"one hour", 3600000, "1:00:00"},
		{"hour minute second", 3661000, "1:01:01"},
		{"no rounding up", 3660999, "1:01:00"},
		{"hours keep two-digit minutes", 7205000, "2:00:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.offsetMs))
		})
	}
}

// TestAssembleTranscript_Empty tests the no-transcript outcome.
func TestAssembleTranscript_Empty(t *testing.T) {
	result := AssembleTranscript("dQw4w9WgXcQ", nil)

	assert.True(t, result.Empty())
	assert.Equal(t, "dQw4w9WgXcQ", result.VideoID)
	assert.Equal(t, 0, result.TotalSegments)
	assert.Equal(t, "0:00", result.FormattedDuration)
	assert.Empty(t, result.RenderedText)
}

// TestAssembleTranscript_Rendering tests line rendering and ordering.
func TestAssembleTranscript_Rendering(t *testing.T) {
	segments := []TranscriptSegment{
		{Text: "a", OffsetMs: 0},
		{Text: "b", OffsetMs: 7000},
	}

	result := AssembleTranscript("dQw4w9WgXcQ", segments)

	assert.False(t, result.Empty())
	assert.Equal(t, 2, result.TotalSegments)
	assert.Equal(t, "0:07", result.FormattedDuration)
	assert.Equal(t, "[0:00] a\n[0:07] b", result.RenderedText)
}

// TestAssembleTranscript_LineShape tests that each line carries its own
// formatted offset and that there is no trailing newline.
func TestAssembleTranscript_LineShape(t *testing.T) {
	segments := []TranscriptSegment{
		{Text: "intro", OffsetMs: 0, DurationMs: 4000},
		{Text: "middle", OffsetMs: 65000, DurationMs: 3000},
		{Text: "outro", OffsetMs: 3661000, DurationMs: 2000},
	}

	result := AssembleTranscript("abcdefghijk", segments)

	lines := strings.Split(result.RenderedText, "\n")
	require.Len(t, lines, result.TotalSegments)
	for i, line := range lines {
		prefix := "[" + FormatTimestamp(segments[i].OffsetMs) + "] "
		assert.True(t, strings.HasPrefix(line, prefix), "line %d: %q", i, line)
	}
	assert.False(t, strings.HasSuffix(result.RenderedText, "\n"))
}

// TestAssembleTranscript_DurationFromLastOffset pins the deliberate choice
// of reading the total duration from the last segment's offset rather than
// max(offset+duration).
func TestAssembleTranscript_DurationFromLastOffset(t *testing.T) {
	segments := []TranscriptSegment{
		{Text: "a", OffsetMs: 0, DurationMs: 90000},
		{Text: "b", OffsetMs: 30000, DurationMs: 5000},
	}

	result := AssembleTranscript("abcdefghijk", segments)

	// 30s, not 0+90s and not 30+5s.
	assert.Equal(t, "0:30", result.FormattedDuration)
}

// TestAssembleTranscript_PreservesUnicode tests that caption text is kept
// verbatim.
func TestAssembleTranscript_PreservesUnicode(t *testing.T) {
	segments := []TranscriptSegment{
		{Text: "こんにちは 👋", OffsetMs: 1500},
	}

	result := AssembleTranscript("abcdefghijk", segments)

	assert.Equal(t, "[0:01] こんにちは 👋", result.RenderedText)
	assert.Equal(t, "0:01", result.FormattedDuration)
}
