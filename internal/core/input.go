package core

// Action represents a semantic game action, abstracted from physical key presses.
// The front-end maps keys to actions; the runner engine only sees intents.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, A - move one lane left
	ActionRight              // Right arrow, D - move one lane right
	ActionJump               // Space, W, Up - jump (second press = double jump)
	ActionOption1            // 1 - first quiz option
	ActionOption2            // 2 - second quiz option
	ActionOption3            // 3 - third quiz option
	ActionImmortality        // I - activate the immortality power
	ActionConfirm            // Enter - dismiss tutorial/feedback, confirm selection
	ActionBack               // B, Escape - close shop, go back to menu
	ActionRestart            // R - restart the chapter
	ActionQuit               // Q, Ctrl+C - exit
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
	case ActionJump:
		return "Jump"
	case ActionOption1:
		return "Option1"
	case ActionOption2:
		return "Option2"
	case ActionOption3:
		return "Option3"
	case ActionImmortality:
		return "Immortality"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// OptionIndex returns the quiz option index for an option action.
func (a Action) OptionIndex() (int, bool) {
	switch a {
	case ActionOption1:
		return 0, true
	case ActionOption2:
		return 1, true
	case ActionOption3:
		return 2, true
	default:
		return -1, false
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
// Actions keep their arrival order so two lane changes in one frame both apply.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		actions: make([]Action, 0, 4),
	}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of recorded actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{actions: make([]Action, len(f.actions))}
	copy(clone.actions, f.actions)
	return clone
}
