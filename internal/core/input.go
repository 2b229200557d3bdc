package core

import "slices"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, K, Up arrow
	ActionDown            // S, J, Down arrow
	ActionLeft            // A, H, Left arrow
	ActionRight           // D, L, Right arrow
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R key - restart with the same board size
	ActionNewBoard        // N key - pick a different board size
	ActionQuit            // Q, Ctrl+C - exit
)

var actionNames = [...]string{
	ActionNone:     "None",
	ActionUp:       "Up",
	ActionDown:     "Down",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionConfirm:  "Confirm",
	ActionBack:     "Back",
	ActionRestart:  "Restart",
	ActionNewBoard: "NewBoard",
	ActionQuit:     "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// IsDirection reports whether a slides the board.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame holds the actions collected for one game step,
// in the order they arrived. Each action appears at most once.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action; repeats are ignored.
func (f *InputFrame) Set(a Action) {
	if !f.Has(a) {
		f.Actions = append(f.Actions, a)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return slices.Contains(f.Actions, a)
}

// FirstDirection returns the earliest directional action in the frame.
func (f InputFrame) FirstDirection() (Action, bool) {
	for _, a := range f.Actions {
		if a.IsDirection() {
			return a, true
		}
	}
	return ActionNone, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
