package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// Action represents a semantic input event, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart
	ActionQuit
)

// Heading converts a directional action to a grid direction.
func (a Action) Heading() (core.Direction, bool) {
	switch a {
	case ActionUp:
		return core.DirUp, true
	case ActionDown:
		return core.DirDown, true
	case ActionLeft:
		return core.DirLeft, true
	case ActionRight:
		return core.DirRight, true
	}
	return 0, false
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// MapKey translates a key message to an action (may be ActionNone).
func (km KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "up", "w", "k":
		return ActionUp
	case "down", "s", "j":
		return ActionDown
	case "left", "a", "h":
		return ActionLeft
	case "right", "d", "l":
		return ActionRight
	case "r", "ctrl+r":
		return ActionRestart
	}
	return ActionNone
}
