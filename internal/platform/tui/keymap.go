package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// gameBinding pairs a key binding with the action it produces.
type gameBinding struct {
	binding key.Binding
	action  core.Action
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	quit key.Binding
	game []gameBinding
	menu []menuBinding
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		quit: key.NewBinding(key.WithKeys("ctrl+c", "q")),
		game: []gameBinding{
			{key.NewBinding(key.WithKeys("w", "up", "k")), core.ActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j")), core.ActionDown},
			{key.NewBinding(key.WithKeys("a", "left", "h")), core.ActionLeft},
			{key.NewBinding(key.WithKeys("d", "right", "l")), core.ActionRight},
			{key.NewBinding(key.WithKeys("enter")), core.ActionConfirm},
			{key.NewBinding(key.WithKeys("b", "esc")), core.ActionBack},
			{key.NewBinding(key.WithKeys("r")), core.ActionRestart},
			{key.NewBinding(key.WithKeys("n")), core.ActionNewBoard},
		},
		menu: []menuBinding{
			{key.NewBinding(key.WithKeys("w", "up", "k")), MenuActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j")), MenuActionDown},
			{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
			{key.NewBinding(key.WithKeys("b", "esc")), MenuActionBack},
			{key.NewBinding(key.WithKeys("tab")), MenuActionScoreboard},
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, km.quit) {
		return MenuActionQuit
	}
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
