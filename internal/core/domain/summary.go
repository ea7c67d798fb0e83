package domain

import "time"

// SummaryRecord is a persisted free-text summary for a single video.
// At most one record exists per video ID. The record is owned exclusively
// by the summary store; no other component mutates it directly.
type SummaryRecord struct {
	// VideoID is the canonical video identifier and primary key.
	VideoID string

	// Summary is the free-text summary. Never empty once stored.
	Summary string

	// CreatedAt is set once, at first insert.
	CreatedAt time.Time

	// UpdatedAt is set on every insert or update.
	UpdatedAt time.Time
}

// SearchResult represents one video returned by the search provider.
type SearchResult struct {
	// VideoID is the canonical identifier of the matched video.
	VideoID string

	// Title is the video title.
	Title string

	// ChannelTitle is the display name of the publishing channel.
	ChannelTitle string

	// Description is the provider-truncated video description.
	Description string

	// PublishedAt is the video publication time.
	PublishedAt time.Time

	// URL is the canonical watch URL for the video.
	URL string
}

// SearchOptions configures a video search. Filters are passed through to
// the provider unchanged.
type SearchOptions struct {
	// MaxResults is the maximum number of results.
	MaxResults int

	// Order selects the provider result ordering (relevance, date, ...).
	// Empty uses the provider default.
	Order string

	// PublishedAfter restricts results to videos published after this time.
	// Zero disables the filter.
	PublishedAfter time.Time
}
