// t2048 plays the 2048 sliding-tile puzzle in the terminal on boards
// from 2x2 up to 32x32.
//
// Usage:
//
//	t2048 list               - List built-in boards
//	t2048 play [board]       - Play a board (preset id, name or WxH)
//	t2048 menu               - Pick a board interactively
//	t2048 scores [board]     - Show high scores for a board
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.t2048/scores.db, "" disables)
//	--config <path>     - Load board and spawn settings from a YAML file
//	--theme <name>      - Tile colors: classic or mono
//	--log-file <path>   - Write a debug log while playing
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagTheme   string
	flagLogFile string
	flagDebug   bool
)

var (
	// cliLog reports problems on stderr before and after the TUI runs.
	cliLog = log.NewWithOptions(os.Stderr, log.Options{Prefix: "t2048"})

	// gameLog records the session; it must never write to the terminal.
	gameLog = log.New(io.Discard)

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is a terminal version of the 2048 puzzle. Slide the board in
one of four directions; equal neighbours merge and a new tile appears
after every move that changes the board.

Available commands:
  list     - Show the built-in boards
  play     - Play a board directly
  menu     - Interactive board picker
  scores   - View high scores

Examples:
  t2048 play
  t2048 play 2048_5x5
  t2048 play 7x3 --seed 42
  t2048 menu --theme mono
  t2048 scores 2048`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDirName+"/scores.db", "Path to scores database (empty disables scores)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "classic", "Color theme: "+strings.Join(tui.ThemeNames(), ", "))
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write a game log to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every move (needs --log-file)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup applies the global flags shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}
	tui.SetTheme(theme)

	if flagConfig != "" {
		// Fail early; games fall back to defaults on a bad file.
		if _, err := config.LoadT2048(flagConfig); err != nil {
			return err
		}
	}
	t2048.SetConfigPath(flagConfig)

	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		gameLog = newLogger(f, flagDebug)
	}
	if flagDebug {
		cliLog.SetLevel(log.DebugLevel)
	}
	return nil
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
