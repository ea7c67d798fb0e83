package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("missing transcript service returns error", func(t *testing.T) {
		ports := &Ports{Summary: &mockSummaryService{}, Search: &mockSearchService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingTranscriptService)
	})

	t.Run("missing summary service returns error", func(t *testing.T) {
		ports := &Ports{Transcript: &mockTranscriptService{}, Search: &mockSearchService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSummaryService)
	})

	t.Run("missing search service returns error", func(t *testing.T) {
		ports := &Ports{Transcript: &mockTranscriptService{}, Summary: &mockSummaryService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports, _, _, _ := validPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("empty ports fail", func(t *testing.T) {
		ports := &Ports{}
		assert.Error(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports, _, _, _ := validPorts()
		assert.NoError(t, ports.Validate())
	})
}
