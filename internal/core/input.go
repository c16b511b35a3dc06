package core

// Action represents a semantic game action, abstracted from physical keys,
// touches and mouse presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move left
	ActionRight          // Right arrow, D - move right
	ActionUp             // Up arrow, W - jump
	ActionSpace          // Space - jump while playing, start from the menu
	ActionConfirm        // Enter - start from the menu
	ActionBack           // Escape - leave the run, back to the menu
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after the run is over
	ActionQuit           // Q, Ctrl+C - exit the program
	ActionLevel1         // Digit keys select a starting level
	ActionLevel2
	ActionLevel3
	ActionLevel4
	ActionLevel5
	ActionLevel6
	ActionLevel7
	ActionLevel8
	ActionLevel9
)

// MaxLevelAction is the highest level number a digit action can select.
const MaxLevelAction = 9

// LevelAction returns the digit action selecting level n (1-9).
func LevelAction(n int) Action {
	if n < 1 || n > MaxLevelAction {
		return ActionNone
	}
	return ActionLevel1 + Action(n-1)
}

// Level returns the level number for a digit action.
func (a Action) Level() (int, bool) {
	if a < ActionLevel1 || a > ActionLevel9 {
		return 0, false
	}
	return int(a-ActionLevel1) + 1, true
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if n, ok := a.Level(); ok {
		return "Level" + string(rune('0'+n))
	}
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionSpace:
		return "Space"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains every action that is active (held or pressed) this tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Merge sets every action of other on f.
func (f *InputFrame) Merge(other InputFrame) {
	for a, on := range other.Actions {
		if on {
			f.Set(a)
		}
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
