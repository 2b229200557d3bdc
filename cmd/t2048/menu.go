package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board.
"Custom size..." asks for any width and height from 2 to 32.
Pressing N during a game returns here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Tab          - Scoreboard
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --theme mono
  t2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	return menuLoop(store, runtimeConfig(), "")
}

// menuLoop shows the board picker until the player quits.
// lastID preselects the custom size form with the previous board.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig, lastID string) error {
	last := tui.BoardSize{Width: core.DefaultBoardDimension, Height: core.DefaultBoardDimension}
	if lastID != "" {
		last.Width, last.Height = boardSize(lastID)
	}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, lastID)
			if sbErr != nil {
				cliLog.Error("scoreboard failed", "err", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		var game registry.Game
		if menuResult.Custom {
			size, updated, selErr := tui.RunCustomBoardSelector(cfg, last)
			if selErr != nil {
				cliLog.Error("custom board form failed", "err", selErr)
				continue
			}
			cfg = updated
			if size == nil {
				continue
			}
			last = *size
			game = gameForSize(size.Width, size.Height)
		} else {
			if menuResult.GameID == "" {
				return nil
			}
			game, err = registry.Create(menuResult.GameID)
			if err != nil {
				cliLog.Error("cannot create board", "id", menuResult.GameID, "err", err)
				continue
			}
		}

		// A fixed --seed only applies to the first game of the session.
		result, err := playSession(game, store, cfg)
		if err != nil {
			return err
		}
		cfg.Seed = 0 // later games get a time-based seed
		lastID = game.ID()

		if !result.NewBoard {
			return nil
		}
	}
}
