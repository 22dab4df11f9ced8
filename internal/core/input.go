package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up
	ActionDown           // S, Down arrow - move cursor down
	ActionLeft           // A, Left arrow - move cursor left
	ActionRight          // D, Right arrow - move cursor right
	ActionConfirm        // Enter, Space - select the tile under the cursor
	ActionShuffle        // R key - shuffle the board
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionShuffle:
		return "Shuffle"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// NoSelect marks an input frame that carries no tile selection.
const NoSelect = -1

// InputFrame represents the input delivered to a game for one event.
// It carries semantic actions and, for pointer input, the selected slot.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Selected is the slot index picked directly (mouse click, browser),
	// or NoSelect.
	Selected int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Selected: NoSelect,
	}
}

// SelectFrame creates a frame that selects the given slot.
func SelectFrame(index int) InputFrame {
	f := NewInputFrame()
	f.Selected = index
	return f
}

// ActionFrame creates a frame with a single action set.
func ActionFrame(a Action) InputFrame {
	f := NewInputFrame()
	f.Set(a)
	return f
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

// HasSelect reports whether the frame carries a direct slot selection.
func (f InputFrame) HasSelect() bool {
	return f.Selected != NoSelect
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && !f.HasSelect()
}
