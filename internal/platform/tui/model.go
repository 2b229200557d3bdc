// Package tui provides the Bubble Tea integration for the 2048 platform.
// It handles the terminal UI loop, input mapping, and board selection.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// snapshotter is implemented by games that can describe a finished round.
type snapshotter interface {
	Snapshot() t2048.Snapshot
}

// Model is the Bubble Tea model for playing a board.
// There is no tick loop: the game only advances when a key arrives.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	newBoard   bool // User asked to pick a different board
	scoreSaved bool // Whether score has been saved for current game over
}

// PlayResult reports how a play session ended.
type PlayResult struct {
	NewBoard bool // Return to board selection instead of exiting
	Score    int  // Score of the round on screen when the session ended
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("round started", "game", m.game.ID(), "seed", m.config.Seed)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Each key press is one simulation step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case frame.Has(core.ActionRestart):
		m.restart()
		return m, nil

	case frame.Has(core.ActionNewBoard):
		m.newBoard = true
		return m, tea.Quit
	}

	if dir, ok := frame.FirstDirection(); ok {
		result := m.game.Step(frame)
		m.logger.Debug("move",
			"direction", dir,
			"changed", result.Changed,
			"score", result.State.Score,
		)

		if result.State.GameOver && !m.scoreSaved {
			m.logger.Debug("no moves left", "game", m.game.ID(), "score", result.State.Score)
			m.saveScore()
			m.scoreSaved = true
		}
	}

	return m, nil
}

// restart begins a new round on the same board with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.scoreSaved = false
	m.logger.Debug("round restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

// saveScore records the finished round. Failures are logged, never fatal.
func (m *Model) saveScore() {
	if m.store == nil {
		return
	}

	rec := storage.ScoreRecord{
		GameID: m.game.ID(),
		Score:  m.game.State().Score,
	}
	if s, ok := m.game.(snapshotter); ok {
		snap := s.Snapshot()
		rec.MaxTile = snap.MaxTile
		rec.Moves = snap.Moves
		rec.Width = snap.Width
		rec.Height = snap.Height
	}
	if rec.Score <= 0 {
		return
	}

	best, err := m.store.HighScore(rec.GameID)
	if err != nil {
		m.logger.Warn("cannot read high score", "game", rec.GameID, "err", err)
	} else if rec.Score > best {
		m.logger.Info("new high score", "game", rec.GameID, "score", rec.Score, "previous", best)
	}

	if _, err := m.store.SaveScore(rec); err != nil {
		m.logger.Warn("cannot save score", "game", rec.GameID, "err", err)
		return
	}
	m.logger.Debug("score saved", "game", rec.GameID, "score", rec.Score)
}

// handleResize processes window resize events. The board is never reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	path, err := screenshotPath(m.game.ID(), time.Now())
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	if err == nil {
		err = os.WriteFile(path, []byte(m.screen.String()), 0o600)
	}
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// screenshotPath returns ~/.t2048/screenshots/<game>_<timestamp>.txt.
func screenshotPath(gameID string, now time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot locate home directory: %w", err)
	}
	filename := fmt.Sprintf("%s_%s.txt", gameID, now.Format("20060102_150405"))
	return filepath.Join(home, config.AppDirName, "screenshots", filename), nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.newBoard {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Result summarizes the session for the caller.
func (m Model) Result() PlayResult {
	return PlayResult{
		NewBoard: m.newBoard,
		Score:    m.game.State().Score,
	}
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (PlayResult, error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return PlayResult{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return PlayResult{}, nil
	}
	return m.Result(), nil
}
