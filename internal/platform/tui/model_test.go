package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// scriptedGame ends the round after a fixed number of successful steps.
type scriptedGame struct {
	id       string
	steps    int
	endAfter int
	resets   int
	resized  [2]int
	lastSeed int64
}

func (g *scriptedGame) ID() string    { return g.id }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.steps = 0
	g.resets++
	g.lastSeed = cfg.Seed
}

func (g *scriptedGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	if !g.State().GameOver {
		g.steps++
	}
	return core.StepResult{State: g.State(), Changed: true}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.steps * 10, GameOver: g.steps >= g.endAfter}
}

func (g *scriptedGame) Snapshot() t2048.Snapshot {
	return t2048.Snapshot{ID: g.id, Moves: g.steps, Width: 3, Height: 3, Score: g.steps * 10, MaxTile: 64}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelSavesScoreOnceOnGameOver(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{id: "2048_3x3", endAfter: 2}
	m := NewModel(game, store, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	m.Init()

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})

	scores, err := store.TopScores("2048_3x3", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved score, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 20 || got.MaxTile != 64 || got.Moves != 2 || got.Width != 3 || got.Height != 3 {
		t.Errorf("saved record = %+v", got)
	}

	// A restart allows the next round to be saved.
	m, _ = press(m, runeKey("r"))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeyDown})

	scores, _ = store.TopScores("2048_3x3", 10)
	if len(scores) != 2 {
		t.Errorf("expected a second score after restart, got %d", len(scores))
	}
}

func TestModelRestartUsesNewSeed(t *testing.T) {
	game := &scriptedGame{id: "2048", endAfter: 100}
	m := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	m.Init()

	if game.lastSeed != 7 {
		t.Fatalf("initial seed = %d, want 7", game.lastSeed)
	}

	m, _ = press(m, runeKey("r"))
	if game.resets != 2 {
		t.Errorf("Reset called %d times, want 2", game.resets)
	}
	if game.lastSeed == 7 {
		t.Error("restart should use a new seed")
	}
	if m.quitting {
		t.Error("restart should not quit")
	}
}

func TestModelNewBoardAndQuit(t *testing.T) {
	game := &scriptedGame{id: "2048", endAfter: 100}
	m := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	m.Init()

	next, cmd := press(m, runeKey("n"))
	if cmd == nil || !next.Result().NewBoard {
		t.Error("n should end the session and request a new board")
	}
	if next.View() != "" {
		t.Error("view should be empty after leaving")
	}

	next, cmd = press(m, runeKey("q"))
	if cmd == nil || next.Result().NewBoard {
		t.Error("q should quit without requesting a new board")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &scriptedGame{id: "2048", endAfter: 100}
	m := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	m.Init()
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if game.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", game.resets)
	}
	if game.resized != [2]int{120, 40} {
		t.Errorf("game resized to %v, want [120 40]", game.resized)
	}
	if game.steps != 1 {
		t.Errorf("steps = %d after resize, want 1", game.steps)
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view should render the game")
	}
}

func TestModelPlaysRealGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	game := t2048.New()
	m := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
	m.Init()

	for _, k := range []tea.KeyType{tea.KeyLeft, tea.KeyUp, tea.KeyRight, tea.KeyDown} {
		m, _ = press(m, tea.KeyMsg{Type: k})
	}

	if game.Grid().Moves() == 0 {
		t.Error("arrow keys should move tiles")
	}
	if !strings.Contains(m.View(), "Score:") {
		t.Error("view should include the HUD")
	}
}

func TestScreenshotPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	path, err := screenshotPath("2048_5x5", now)
	if err != nil {
		t.Fatalf("screenshotPath() failed: %v", err)
	}

	want := filepath.Join(home, ".t2048", "screenshots", "2048_5x5_20240305_140709.txt")
	if path != want {
		t.Errorf("screenshotPath() = %q, want %q", path, want)
	}
}

func TestModelSavesScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	game := &scriptedGame{id: "2048", endAfter: 100}
	m := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 3, Seed: 1})
	m.Init()
	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(home, ".t2048", "screenshots", "2048_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "scripted") {
		t.Errorf("screenshot content = %q", data)
	}
}
