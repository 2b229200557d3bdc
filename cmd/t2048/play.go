package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagWidth  int
	flagHeight int
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the given board. Without an argument the board size
comes from the config file (4x4 unless changed).

A board is a preset id (2048, 2048_5x5), a preset name (classic, large)
or a size such as 7x3. Each side is clamped to 2..32.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  R                 - Restart with a new seed
  N                 - Choose another board
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Examples:
  t2048 play
  t2048 play large
  t2048 play 2048_3x3
  t2048 play --width 10 --height 4
  t2048 play --seed 42 --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board columns (2-32)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board rows (2-32)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	game, err := pickBoard(args)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	result, err := playSession(game, store, cfg)
	if err != nil {
		return err
	}
	if result.NewBoard {
		cfg.Seed = 0
		return menuLoop(store, cfg, game.ID())
	}
	return nil
}

// playSession runs one game until the player quits or asks for a new board.
func playSession(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (tui.PlayResult, error) {
	gameLog.Info("session start", "game", game.ID(), "seed", cfg.Seed)

	result, err := tui.Run(game, store, gameLog, cfg)
	if err != nil {
		return result, fmt.Errorf("running game: %w", err)
	}

	gameLog.Info("session end", "game", game.ID(), "score", result.Score, "new_board", result.NewBoard)
	return result, nil
}
