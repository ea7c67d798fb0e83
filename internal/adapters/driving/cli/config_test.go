package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tubescribe-cli/internal/adapters/driven/config/file"
)

// setupTestConfigStore points newConfigStore at a temp directory and
// returns a cleanup func restoring the original.
func setupTestConfigStore(t *testing.T) (string, func()) {
	t.Helper()

	dir := t.TempDir()
	original := newConfigStore
	newConfigStore = func() (*file.ConfigStore, error) {
		return file.NewConfigStore(dir)
	}
	return dir, func() { newConfigStore = original }
}

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigSetKeyCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set-key"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestConfigSetKeyCmd_PersistsKey(t *testing.T) {
	dir, cleanup := setupTestConfigStore(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set-key", "test-api-key"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "API key saved")

	store, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "test-api-key", store.GetString(file.KeyAPIKey))
}

func TestConfigPathCmd_PrintsPath(t *testing.T) {
	dir, cleanup := setupTestConfigStore(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "path"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), dir)
	assert.Contains(t, buf.String(), "config.toml")
}
