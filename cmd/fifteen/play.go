package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fifteen/internal/games/fifteen"
	"github.com/vovakirdan/tui-fifteen/internal/platform/tui"
	"github.com/vovakirdan/tui-fifteen/internal/registry"
)

var flagShuffleOnStart bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a puzzle variant",
	Long: `Start playing the specified variant (default: fifteen).

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Slide the tile under the cursor
  Mouse click  - Slide the clicked tile
  R            - Shuffle
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

The board starts solved. Press R to shuffle. A fresh shuffle of the
"fifteen" variant can be unsolvable; "fifteen_solvable" always repairs it.

Examples:
  fifteen play
  fifteen play fifteen_solvable
  fifteen play --shuffle --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagShuffleOnStart, "shuffle", false, "Shuffle before the first move")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(fifteen.ModeClassic)
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'fifteen list' to see variants)", gameID)
	}

	if flagShuffleOnStart {
		cfg := appConfig
		cfg.Shuffle.OnStart = true
		fifteen.SetConfig(cfg)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
