package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tubescribe-cli/internal/adapters/driven/config/file"
)

// newConfigStore opens the config store. Package-level so tests can point
// it at a temp directory.
var newConfigStore = func() (*file.ConfigStore, error) {
	return file.NewConfigStore("")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tubescribe configuration",
	Long: `View and edit the tubescribe configuration file.

The config file lives at ~/.tubescribe/config.toml. The YOUTUBE_API_KEY and
TUBESCRIBE_DATA_DIR environment variables override it at runtime.`,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key [api-key]",
	Short: "Store the YouTube API key",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetKey,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSetKey(cmd *cobra.Command, args []string) error {
	store, err := newConfigStore()
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	if err := store.Set(file.KeyAPIKey, args[0]); err != nil {
		return fmt.Errorf("saving API key: %w", err)
	}

	cmd.Printf("API key saved to %s\n", store.Path())
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	store, err := newConfigStore()
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	cmd.Println(store.Path())
	return nil
}
