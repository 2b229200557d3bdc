package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed, 0 means the platform picks a time-based one
	BoardW  int   // Board columns, 0 means the game's own default
	BoardH  int   // Board rows, 0 means the game's own default
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether no legal move remains
	Paused   bool // Whether input is ignored (e.g. window too small)
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State   GameState
	Changed bool // Whether the board changed during this step
}
