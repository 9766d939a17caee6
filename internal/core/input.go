package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left (level-sensitive)
	ActionRight          // D, Right arrow - move right (level-sensitive)
	ActionUp             // W, Up arrow - menu cursor up
	ActionDown           // S, Down arrow - menu cursor down
	ActionJump           // Space - jump
	ActionFire           // F, X - throw a fireball
	ActionConfirm        // Enter - confirm selection / restart after game over
	ActionMenu           // Esc - toggle the menu
	ActionRestart        // R - restart the campaign
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionMenu:
		return "Menu"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Pressed actions are edge events: reported only on the tick the key went down.
// Held actions are level state: reported on every tick the key is down.
type InputFrame struct {
	// Actions maps action types to whether they were pressed this frame.
	Actions map[Action]bool
	// HeldActions maps action types to whether their key is currently down.
	HeldActions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:     make(map[Action]bool),
		HeldActions: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame. A pressed action is also held.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Hold(a)
}

// Hold marks an action as held without generating a press event.
func (f *InputFrame) Hold(a Action) {
	if f.HeldActions == nil {
		f.HeldActions = make(map[Action]bool)
	}
	f.HeldActions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Held returns true if the given action's key is down this frame.
func (f InputFrame) Held(a Action) bool {
	if f.HeldActions == nil {
		return false
	}
	return f.HeldActions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.HeldActions {
		delete(f.HeldActions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.HeldActions {
		clone.HeldActions[k] = v
	}
	return clone
}

// EdgeTracker derives press events from consecutive held snapshots.
// An action is pressed on the first frame it is held after being released,
// so holding a key never repeats jump or fire.
type EdgeTracker struct {
	prev map[Action]bool
}

// NewEdgeTracker creates a tracker with nothing held.
func NewEdgeTracker() *EdgeTracker {
	return &EdgeTracker{prev: make(map[Action]bool)}
}

// Next builds the input frame for a tick from the set of currently held actions.
func (t *EdgeTracker) Next(held map[Action]bool) InputFrame {
	frame := NewInputFrame()
	next := make(map[Action]bool, len(held))
	for a, down := range held {
		if !down {
			continue
		}
		next[a] = true
		if t.prev[a] {
			frame.Hold(a)
		} else {
			frame.Set(a)
		}
	}
	t.prev = next
	return frame
}

// Reset forgets all held state.
func (t *EdgeTracker) Reset() {
	t.prev = make(map[Action]bool)
}

// HoldLatch approximates key-up events for terminals that only report key-down.
// Each key-down (including auto-repeats) keeps its action held for a fixed number
// of ticks.
type HoldLatch struct {
	window int
	until  map[Action]uint64
}

// NewHoldLatch creates a latch that holds each action for window ticks.
func NewHoldLatch(window int) *HoldLatch {
	if window < 1 {
		window = 1
	}
	return &HoldLatch{
		window: window,
		until:  make(map[Action]uint64),
	}
}

// Press records a key-down for the action at the given tick.
func (l *HoldLatch) Press(a Action, tick uint64) {
	if a == ActionNone {
		return
	}
	l.until[a] = tick + uint64(l.window)
}

// Held returns the actions still held at the given tick and drops expired ones.
func (l *HoldLatch) Held(tick uint64) map[Action]bool {
	held := make(map[Action]bool, len(l.until))
	for a, until := range l.until {
		if tick < until {
			held[a] = true
		} else {
			delete(l.until, a)
		}
	}
	return held
}

// Release forgets the action immediately.
func (l *HoldLatch) Release(a Action) {
	delete(l.until, a)
}
