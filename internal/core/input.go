package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends report held actions (turn, thrust, fire) every frame they are held
// and edge actions (pause, confirm, back, restart, quit) only on the frame they
// were pressed.
type Action int

const (
	ActionNone          Action = iota
	ActionTurnLeft             // A, Left arrow - rotate counter-clockwise
	ActionTurnRight            // D, Right arrow - rotate clockwise
	ActionThrust               // W, Up arrow - main engine
	ActionFirePrimary          // Space - primary gun
	ActionFireSecondary        // F, mouse button - spread weapon
	ActionUp                   // menu cursor up
	ActionDown                 // menu cursor down
	ActionConfirm              // Enter - confirm selection / advance
	ActionBack                 // B, Escape - back to menu
	ActionRestart              // R, N - restart after game over
	ActionQuit                 // Q, Ctrl+C, window close - hard quit
	ActionPause                // P - pause/unpause game
	ActionReverse              // S, Down arrow - platform top engine
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionThrust:
		return "Thrust"
	case ActionFirePrimary:
		return "FirePrimary"
	case ActionFireSecondary:
		return "FireSecondary"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionReverse:
		return "Reverse"
	default:
		return "Unknown"
	}
}

// InputFrame is the per-frame input snapshot handed to the game core.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool

	// Pointer is the cursor position in world coordinates, if the frontend
	// has one. Keyboard-only input leaves it unset.
	Pointer    Vec2
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records the cursor position for this frame.
func (f *InputFrame) SetPointer(p Vec2) {
	f.Pointer = p
	f.HasPointer = true
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Vec2{}
	f.HasPointer = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.HasPointer = f.HasPointer
	return clone
}

// Frame builds an input frame with the given actions set. Handy for scripted
// input in tests and demos.
func Frame(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
