package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// openStore opens the score database named by --db.
// Scores are optional: an empty path or a failure yields a nil store.
func openStore() *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		cliLog.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
}

// gameForSize returns the preset for a size when one exists, a custom board otherwise.
func gameForSize(width, height int) *t2048.Game {
	width = core.ClampBoardDimension(width)
	height = core.ClampBoardDimension(height)
	if p := t2048.FindPreset(t2048.BoardID(width, height)); p != nil {
		return t2048.NewPreset(*p)
	}
	return t2048.NewCustom(width, height)
}

// resolveBoard turns a command line board name into a game.
// Accepted forms are a registry id ("2048_5x5"), a preset name ("large")
// and a size ("7x3").
func resolveBoard(name string) (registry.Game, error) {
	if registry.Exists(name) {
		return registry.Create(name)
	}

	for _, p := range t2048.Presets {
		if strings.EqualFold(p.Name, name) {
			return t2048.NewPreset(p), nil
		}
	}

	var w, h int
	if n, err := fmt.Sscanf(strings.ToLower(name), "%dx%d", &w, &h); err == nil && n == 2 &&
		fmt.Sprintf("%dx%d", w, h) == strings.ToLower(name) {
		return gameForSize(w, h), nil
	}

	return nil, fmt.Errorf("unknown board %q: use a preset (%s) or WxH", name, strings.Join(t2048.PresetNames(), ", "))
}

// pickBoard chooses the board for play and sim: --width/--height first,
// then the board argument, then the configured default.
func pickBoard(args []string) (registry.Game, error) {
	switch {
	case flagWidth > 0 || flagHeight > 0:
		if len(args) > 0 {
			return nil, errors.New("pass either a board or --width/--height, not both")
		}
		return gameForSize(flagWidth, flagHeight), nil
	case len(args) == 1:
		return resolveBoard(args[0])
	default:
		return defaultBoard(), nil
	}
}

// defaultBoard returns the board configured in YAML, 4x4 unless overridden.
func defaultBoard() registry.Game {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	return gameForSize(cfg.Board.Width, cfg.Board.Height)
}

// boardSize reports the dimensions behind a board id.
func boardSize(gameID string) (int, int) {
	if p := t2048.FindPreset(gameID); p != nil {
		return p.Width, p.Height
	}
	var w, h int
	if _, err := fmt.Sscanf(gameID, "2048_%dx%d", &w, &h); err == nil {
		return w, h
	}
	return core.DefaultBoardDimension, core.DefaultBoardDimension
}
