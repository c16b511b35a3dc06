package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/games/skillquest"
)

// DefaultHoldTicks is used when a mapper is created with a non-positive hold.
const DefaultHoldTicks = 8

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// Terminals only report presses, so movement keys stay held for holdTicks
// ticks after each press; key repeat keeps refreshing the hold.
type KeyMapper struct {
	holdTicks int
	held      map[core.Action]int // Remaining hold ticks per movement action
	pressed   core.InputFrame     // One-tick actions since the last Frame
	pointer   []core.Action       // Actions from a held mouse button
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		pressed:   core.NewInputFrame(),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return core.LevelAction(int(key[0] - '0')), false
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case " ", "space":
		return core.ActionSpace, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// isHeld reports whether an action is emulated as a held key.
func isHeld(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}

// Press records a key press. Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	switch {
	case action == core.ActionNone:
	case isHeld(action):
		// Reversing drops the opposite hold
		delete(km.held, core.ActionLeft)
		delete(km.held, core.ActionRight)
		km.held[action] = km.holdTicks
	default:
		km.pressed.Set(action)
	}
	return false
}

// Mouse maps a mouse message on a w x h cell grid to pointer zones.
// A press or drag sets the zone actions; a release clears them.
func (km *KeyMapper) Mouse(msg tea.MouseMsg, w, h int) {
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		km.pointer = skillquest.ZoneActions(float64(msg.X)+0.5, float64(msg.Y)+0.5, float64(w), float64(h))
	case tea.MouseActionRelease:
		km.pointer = nil
	}
}

// Frame returns the input for the next tick and advances the hold timers.
func (km *KeyMapper) Frame() core.InputFrame {
	frame := km.pressed.Clone()
	for a, left := range km.held {
		frame.Set(a)
		if left <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = left - 1
		}
	}
	for _, a := range km.pointer {
		frame.Set(a)
	}
	km.pressed.Clear()
	return frame
}
