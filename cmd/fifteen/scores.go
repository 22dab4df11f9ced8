package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fifteen/internal/registry"
	"github.com/vovakirdan/tui-fifteen/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show the best solves for a variant",
	Long: `Display the solves with the fewest moves for the specified variant.
Only boards that were shuffled and then solved are recorded.

Examples:
  fifteen scores fifteen
  fifteen scores fifteen_solvable --limit 3
  fifteen scores fifteen --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of records to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all records for the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	out := cmd.OutOrStdout()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("unknown variant %q (run 'fifteen list' to see variants)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening records database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearSolves(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared records for %s.\n", game.Title())
		return nil
	}

	solves, err := store.BestSolves(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving records: %w", err)
	}

	fmt.Fprintf(out, "Records - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(solves) == 0 {
		fmt.Fprintln(out, "No solves recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'fifteen play %s', shuffle with R and solve to set the first record!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-12s  %s\n", "Rank", "Moves", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-12s  %s\n", "----", "-----", "------", "----")

	for i, entry := range solves {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-6d  %-12s  %s\n", i+1, entry.Moves, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Solves: %d  Best: %d  Average: %.1f\n", stats.Solves, stats.BestMoves, stats.AvgMoves)
	}
	return nil
}
