package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Use(t *testing.T) {
	assert.Equal(t, "serve", serveCmd.Use)
}

func TestServeCmd_Short(t *testing.T) {
	assert.Equal(t, "Start the MCP server", serveCmd.Short)
}

func TestServeCmd_HasPortFlag(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "port flag should exist")
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestServeCmd_HasDataDirFlag(t *testing.T) {
	flag := serveCmd.Flags().Lookup("data-dir")
	require.NotNil(t, flag, "data-dir flag should exist")
	assert.Equal(t, "", flag.DefValue)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag, "verbose flag should exist")
	assert.Equal(t, "v", flag.Shorthand)
}
