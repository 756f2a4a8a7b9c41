package core

// Action is a semantic game action, decoupled from the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer paddle left
	ActionRight          // D, Right arrow - steer paddle right
	ActionLaunch         // Space - release the ball from the paddle
	ActionFire           // F, Up arrow - shoot when the paddle has ammo
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionLaunch:  "Launch",
	ActionFire:    "Fire",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one simulation tick.
// The zero value is an empty frame; frames are plain values and copy freely.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Steering folds Left/Right into a paddle turn rate of -1, 0 or +1.
// Pressing both cancels out.
func (f InputFrame) Steering() int {
	steer := 0
	if f.Has(ActionLeft) {
		steer--
	}
	if f.Has(ActionRight) {
		steer++
	}
	return steer
}
