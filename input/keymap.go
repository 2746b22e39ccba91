package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action is a discrete command the host loop executes against the
// simulation. Translation is pure; guards (playing, paused) live in the
// simulation's operations.
type Action int

const (
	ActionNone Action = iota
	ActionShiftLeft
	ActionShiftRight
	ActionStart
	ActionTogglePause
	ActionRestart
	ActionToggleSound
	ActionResetTopScore
	ActionQuit
)

// String returns the action name for logging
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionShiftLeft:
		return "shift-left"
	case ActionShiftRight:
		return "shift-right"
	case ActionStart:
		return "start"
	case ActionTogglePause:
		return "toggle-pause"
	case ActionRestart:
		return "restart"
	case ActionToggleSound:
		return "toggle-sound"
	case ActionResetTopScore:
		return "reset-top-score"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// KeyMap maps terminal keys to actions.
type KeyMap struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// DefaultKeyMap returns the default bindings: vi-style h/l plus arrows
// for lane shifts, space or p to pause.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Runes: map[rune]Action{
			'h': ActionShiftLeft,
			'a': ActionShiftLeft,
			'l': ActionShiftRight,
			'd': ActionShiftRight,
			's': ActionStart,
			' ': ActionTogglePause,
			'p': ActionTogglePause,
			'r': ActionRestart,
			'm': ActionToggleSound,
			't': ActionResetTopScore,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionShiftLeft,
			tcell.KeyRight:  ActionShiftRight,
			tcell.KeyEnter:  ActionStart,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Translate resolves a tcell key event to an action. Rune bindings are
// case-insensitive.
func (m *KeyMap) Translate(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		if action, ok := m.Runes[unicode.ToLower(ev.Rune())]; ok {
			return action
		}
		return ActionNone
	}
	if action, ok := m.Keys[ev.Key()]; ok {
		return action
	}
	return ActionNone
}
