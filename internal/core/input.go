package core

// Action represents a semantic game action, abstracted from physical input.
// Keys, mouse drags and touch swipes all end up as actions.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h, a, leftward swipe
	ActionRight          // Right arrow, l, d, rightward swipe
	ActionConfirm        // Enter - start a run from the menu
	ActionBack           // Esc - back to menu
	ActionRestart        // R - reset the run state
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Moves keeps lane moves in arrival order (-1 left, +1 right), so two
	// quick presses between ticks move two lanes.
	Moves []int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
// Left and Right are also queued as moves.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true

	switch a {
	case ActionLeft:
		f.Moves = append(f.Moves, -1)
	case ActionRight:
		f.Moves = append(f.Moves, 1)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Moves = f.Moves[:0]
}

