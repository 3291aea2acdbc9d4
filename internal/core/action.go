package core

// Action is a semantic input, abstracted from the physical key that
// produced it. The same action can mean different things per screen:
// on the settings menu Grab/Drop step the selected value up and down.
type Action int

const (
	ActionNone             Action = iota
	ActionMoveLeft                // Left, h, a
	ActionMoveRight               // Right, l, d
	ActionGrab                    // Up, k, w
	ActionDrop                    // Down, j, s
	ActionReset                   // r
	ActionToggleFullscreen        // Alt+Enter, F11
	ActionBack                    // Esc, b - open the menu
	ActionQuit                    // q, Ctrl+C, Alt+F4
	ActionConfirm                 // Enter, Space
	ActionScores                  // Tab
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionGrab:
		return "Grab"
	case ActionDrop:
		return "Drop"
	case ActionReset:
		return "Reset"
	case ActionToggleFullscreen:
		return "ToggleFullscreen"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionScores:
		return "Scores"
	default:
		return "Unknown"
	}
}

// IsBoardAction reports whether the action mutates the board.
// Board actions are only interpreted while a puzzle is being played.
func (a Action) IsBoardAction() bool {
	switch a {
	case ActionMoveLeft, ActionMoveRight, ActionGrab, ActionDrop, ActionReset:
		return true
	}
	return false
}

// IsGlobal reports whether the action is honoured on every screen.
func (a Action) IsGlobal() bool {
	return a == ActionQuit || a == ActionToggleFullscreen
}
