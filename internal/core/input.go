package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, A - move basket left
	ActionRight             // Right arrow, D - move basket right
	ActionStart             // Enter, Space - start from the title overlay
	ActionRestart           // R, Enter, Space on the game-over overlay
	ActionScoreboard        // Tab - open high scores from an overlay
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is everything the host collected for one tick.
type InputFrame struct {
	// Actions holds one-shot triggers (start, restart) seen since the last tick.
	Actions map[Action]bool

	// Direction is the resolved horizontal signal: -1, 0 or +1.
	Direction int

	// PointerX is an absolute basket target in playfield units.
	// Only meaningful when HasPointer is true.
	PointerX   float64
	HasPointer bool
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

// PointAt records an absolute pointer position. A later call in the same
// frame replaces an earlier one.
func (f *InputFrame) PointAt(x float64) {
	f.PointerX = x
	f.HasPointer = true
}

// Clear resets one-shot state for the next frame. Direction is left alone:
// it mirrors held keys and is refreshed by the host every tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerX = 0
	f.HasPointer = false
}
