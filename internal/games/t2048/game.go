package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Grid to the platform's registry.Game interface.
type Game struct {
	name   string
	width  int
	height int
	grid   *Grid
	rules  Rules

	// Screen dimensions
	screenW  int
	screenH  int
	layout   layout
	tooSmall bool
}

// New creates a classic 4x4 game.
func New() *Game {
	return NewPreset(Presets[0])
}

// NewPreset creates a game for a built-in board size.
func NewPreset(p Preset) *Game {
	return &Game{
		name:   p.Name,
		width:  p.Width,
		height: p.Height,
	}
}

// NewCustom creates a game for an arbitrary board size.
// Dimensions are clamped to the legal range.
func NewCustom(width, height int) *Game {
	return &Game{
		name:   "Custom",
		width:  core.ClampBoardDimension(width),
		height: core.ClampBoardDimension(height),
	}
}

func init() {
	for _, p := range Presets {
		registry.Register(p.ID, func() registry.Game {
			return NewPreset(p)
		})
	}
}

// ID returns the game identifier, derived from the board size.
func (g *Game) ID() string {
	return BoardID(g.width, g.height)
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("2048 %s (%dx%d)", g.name, g.width, g.height)
}

// Reset builds a fresh grid. Called at start and on every restart.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadT2048(configPath)
	if err != nil {
		gameCfg = config.DefaultT2048Config()
	}

	if cfg.BoardW > 0 && cfg.BoardH > 0 {
		g.width = core.ClampBoardDimension(cfg.BoardW)
		g.height = core.ClampBoardDimension(cfg.BoardH)
	}
	if g.width == 0 || g.height == 0 {
		g.width = gameCfg.Board.Width
		g.height = gameCfg.Board.Height
	}

	g.rules = RulesFromConfig(gameCfg)
	g.grid = NewGrid(g.width, g.height,
		WithRandom(NewSeededSource(cfg.Seed)),
		WithRules(g.rules),
	)

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

// Resize adapts rendering to a new terminal size without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Step applies at most one directional move from the input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFromInput(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	changed := g.grid.Move(dir)
	return core.StepResult{State: g.State(), Changed: changed}
}

// directionFromInput picks the first directional action in the frame.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	a, ok := in.FirstDirection()
	if !ok {
		return 0, false
	}
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	default:
		return DirRight, true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.grid.Score(),
		GameOver: g.grid.Terminal(),
		Paused:   g.tooSmall,
	}
}

// Grid exposes the underlying simulation for read access.
func (g *Game) Grid() *Grid {
	return g.grid
}
