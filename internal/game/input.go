package game

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionToggleDisplayMode
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:              "none",
	ActionMoveUp:            "up",
	ActionMoveDown:          "down",
	ActionMoveLeft:          "left",
	ActionMoveRight:         "right",
	ActionToggleDisplayMode: "toggle",
	ActionQuit:              "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// KeyToAction maps a tcell key event to a game action.
func KeyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyEscape:
		return ActionQuit
	case tcell.KeyEnter:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return ActionToggleDisplayMode
		}
		return ActionNone
	}

	// Rune keys.
	if ev.Key() != tcell.KeyRune {
		return ActionNone
	}
	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveUp
	case 'j', 'J':
		return ActionMoveDown
	case 'l', 'L':
		return ActionMoveRight
	case 'h', 'H':
		return ActionMoveLeft
	case 'f', 'F':
		return ActionToggleDisplayMode
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// ParseAction maps a script word to an action. Both the long names and the
// single-key forms are accepted.
func ParseAction(word string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "up", "k":
		return ActionMoveUp, nil
	case "down", "j":
		return ActionMoveDown, nil
	case "left", "h":
		return ActionMoveLeft, nil
	case "right", "l":
		return ActionMoveRight, nil
	case "toggle", "f":
		return ActionToggleDisplayMode, nil
	case "quit", "q":
		return ActionQuit, nil
	case "none":
		return ActionNone, nil
	}
	return ActionNone, fmt.Errorf("unknown action %q", word)
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveUp:
		return 0, -1
	case ActionMoveDown:
		return 0, 1
	case ActionMoveRight:
		return 1, 0
	case ActionMoveLeft:
		return -1, 0
	}
	return 0, 0
}
