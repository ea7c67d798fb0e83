package file

import "os"

// Environment variables that override the config file.
const (
	// EnvAPIKey overrides KeyAPIKey.
	EnvAPIKey = "YOUTUBE_API_KEY"

	// EnvDataDir overrides KeyDataDir.
	EnvDataDir = "TUBESCRIBE_DATA_DIR"
)

// Config is the resolved application configuration. It is built once at
// startup and passed by value into the adapters; nothing reads the config
// file or the environment after that.
type Config struct {
	// APIKey is the YouTube API key. May be empty: operations that need
	// it fail individually rather than blocking startup.
	APIKey string

	// DataDir is the directory holding the summary database. Empty means
	// the adapter default (~/.tubescribe/data).
	DataDir string

	// Language is the default caption language. Empty means "en".
	Language string
}

// Resolve builds the effective configuration from the store, applying
// environment overrides. Environment wins over the file.
func (s *ConfigStore) Resolve() Config {
	cfg := Config{
		APIKey:   s.GetString(KeyAPIKey),
		DataDir:  s.GetString(KeyDataDir),
		Language: s.GetString(KeyLanguage),
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}

	return cfg
}
