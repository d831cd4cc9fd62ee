package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seed-of-life/internal/core"
)

// KeyMapper translates Bubble Tea input messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "enter", "up", "w":
		return core.ActionThrust, false
	case "r":
		return core.ActionRestart, false
	case "p":
		return core.ActionPause, false
	case "esc", "b":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapMouse treats any left-button press as thrust, like a tap.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionThrust
	}
	return core.ActionNone
}

// MenuAction represents a navigation action in the variant menu.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key message to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "up", "k", "w":
		return MenuActionUp
	case "down", "j", "s":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "esc", "b":
		return MenuActionBack
	case "q", "ctrl+c":
		return MenuActionQuit
	}
	return MenuActionNone
}
