package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	ID      string
	Moves   int
	Width   int
	Height  int
	Score   int
	Values  []int // Row-major cell values
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.grid.Terminal():
		state = StateGameOver
	}

	return Snapshot{
		ID:      g.ID(),
		Moves:   g.grid.Moves(),
		Width:   g.grid.Width(),
		Height:  g.grid.Height(),
		Score:   g.grid.Score(),
		Values:  g.grid.Values(),
		MaxTile: g.grid.MaxTile(),
		State:   state,
	}
}
