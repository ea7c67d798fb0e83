package mcp

import (
	"context"

	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
)

// mockTranscriptService is a mock implementation of driving.TranscriptService.
type mockTranscriptService struct {
	result *domain.TranscriptResult
	err    error

	gotVideoID  string
	gotLanguage string
}

func (m *mockTranscriptService) Get(_ context.Context, rawVideoID, language string) (*domain.TranscriptResult, error) {
	m.gotVideoID = rawVideoID
	m.gotLanguage = language
	return m.result, m.err
}

// mockSummaryService is a mock implementation of driving.SummaryService.
type mockSummaryService struct {
	storedID string
	record   *domain.SummaryRecord
	removed  bool
	err      error

	gotVideoID string
	gotSummary string
}

func (m *mockSummaryService) Store(_ context.Context, rawVideoID, summary string) (string, error) {
	m.gotVideoID = rawVideoID
	m.gotSummary = summary
	return m.storedID, m.err
}

func (m *mockSummaryService) Get(_ context.Context, rawVideoID string) (*domain.SummaryRecord, error) {
	m.gotVideoID = rawVideoID
	return m.record, m.err
}

func (m *mockSummaryService) Delete(_ context.Context, rawVideoID string) (bool, error) {
	m.gotVideoID = rawVideoID
	return m.removed, m.err
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	err     error

	gotQuery string
	gotOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	m.gotQuery = query
	m.gotOpts = opts
	return m.results, m.err
}

// validPorts returns a Ports value with all mocks wired.
func validPorts() (*Ports, *mockTranscriptService, *mockSummaryService, *mockSearchService) {
	transcript := &mockTranscriptService{}
	summary := &mockSummaryService{}
	search := &mockSearchService{}
	ports := &Ports{
		Transcript: transcript,
		Summary:    summary,
		Search:     search,
	}
	return ports, transcript, summary, search
}
