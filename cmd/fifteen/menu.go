package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fifteen/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant, Tab for
records. Esc in a game returns to the menu.

Examples:
  fifteen menu
  fifteen menu --db ./records.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(store, terminalConfig()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Browse solve records",
	Long: `Open the records screen. Tab switches between variants.

Examples:
  fifteen records
  fifteen records --db ./records.db`,
	RunE: runRecords,
}

func runRecords(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	if _, err := tui.RunRecords(store, cfg.ScreenW, cfg.ScreenH); err != nil {
		return fmt.Errorf("running records: %w", err)
	}
	return nil
}
