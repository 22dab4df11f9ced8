// fifteen is the sliding 15 puzzle for the terminal, SSH and the browser.
//
// Usage:
//
//	fifteen list               - List puzzle variants
//	fifteen play [variant]     - Play a variant (default: fifteen)
//	fifteen menu               - Pick a variant interactively
//	fifteen records            - Browse solve records
//	fifteen scores <variant>   - Print the best solves for a variant
//	fifteen serve              - Start SSH server for remote play
//	fifteen web                - Start the browser front end
//	fifteen config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible shuffles
//	--db <path>      - Set database path (default: ~/.fifteen/records.db)
//	--config <path>  - Load configuration from a YAML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fifteen/internal/config"
	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/games/fifteen"
	"github.com/vovakirdan/tui-fifteen/internal/storage"
)

var (
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string

	// Loaded in PersistentPreRunE.
	appConfig config.FifteenConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fifteen",
	Short: "The 15 puzzle in your terminal",
	Long: `Fifteen is the classic sliding puzzle: fifteen numbered tiles and one
blank on a 4x4 board. Slide tiles into the blank until they read 1 to 15.

Available commands:
  list     - Show all puzzle variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  records  - Browse solve records
  scores   - Print the best solves
  serve    - Start SSH server for remote play
  web      - Serve the puzzle to browsers
  config   - Print the effective configuration

Examples:
  fifteen play
  fifteen play fifteen_solvable --seed 7
  fifteen serve --ssh :2222
  fifteen web --addr :8080`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to a fifteen.yaml config file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the YAML config and hands it to the puzzle variants
// before any of them are created.
func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFifteen(flagConfigPath)
	if err != nil {
		return err
	}
	appConfig = cfg
	fifteen.SetConfig(cfg)
	return nil
}

// openStore opens the records database, or returns nil with a warning.
// Play continues without records.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		return nil
	}
	return store
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
