package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores for a board",
	Long: `Display the top scores for a board. Without a board the interactive
scoreboard opens, listing every board that has scores.

Examples:
  t2048 scores
  t2048 scores 2048
  t2048 scores 7x3 --limit 20
  t2048 scores --width 5 --height 5
  t2048 scores 2048_3x3 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show (0 for all)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the board")
	scoresCmd.Flags().IntVar(&flagWidth, "width", 0, "Board columns (2-32)")
	scoresCmd.Flags().IntVar(&flagHeight, "height", 0, "Board rows (2-32)")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagDBPath == "" {
		return errors.New("score storage is disabled (--db is empty)")
	}

	var (
		gameID string
		title  string
	)
	switch {
	case flagWidth > 0 || flagHeight > 0:
		game := gameForSize(flagWidth, flagHeight)
		gameID, title = game.ID(), game.Title()
	case len(args) == 1:
		game, err := resolveBoard(args[0])
		if err != nil {
			return err
		}
		gameID, title = game.ID(), game.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if gameID == "" {
		if flagClear {
			return errors.New("--clear needs a board")
		}
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, "")
		return err
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagLimit > 0 {
		scores, err = store.TopScores(gameID, flagLimit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %-6s  %s\n", "Rank", "Score", "Max", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %-6s  %s\n", "----", "-----", "---", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-7d  %-6d  %s\n", i+1, entry.Score, entry.MaxTile, entry.Moves, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Best tile: %d  Rounds: %d  Average: %.0f\n",
			stats.HighScore, stats.BestTile, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
