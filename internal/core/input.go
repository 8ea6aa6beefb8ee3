package core

import "sync"

// Action is a semantic input intent, abstracted from physical keys.
type Action int

const (
	ActionNone       Action = iota
	ActionMoveLeft          // Left arrow, A - lane/rotate left
	ActionMoveRight         // Right arrow, D - lane/rotate right
	ActionJump              // Space, Up, W - jump (runner)
	ActionPlace             // Space, Enter - drop block (stack)
	ActionAccelerate        // Up, W - throttle up (racer)
	ActionBrake             // Down, S - throttle down (racer)
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - back to hub
	ActionRestart           // R - restart after game over
	ActionQuit              // Q, Ctrl+C - exit
	ActionPause             // P - pause/unpause
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
	case ActionJump:
		return "Jump"
	case ActionPlace:
		return "Place"
	case ActionAccelerate:
		return "Accelerate"
	case ActionBrake:
		return "Brake"
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
	default:
		return "Unknown"
	}
}

// Edge is the transition an input event reports.
type Edge int

const (
	EdgeDown Edge = iota // key pressed
	EdgeUp               // key released
)

func (e Edge) String() string {
	if e == EdgeUp {
		return "up"
	}
	return "down"
}

// InputEvent is one edge-triggered input.
type InputEvent struct {
	Action Action
	Edge   Edge
}

// Down is shorthand for a press event.
func Down(a Action) InputEvent {
	return InputEvent{Action: a, Edge: EdgeDown}
}

// Up is shorthand for a release event.
func Up(a Action) InputEvent {
	return InputEvent{Action: a, Edge: EdgeUp}
}

// InputQueue buffers input events between frames. Producers may push from any
// goroutine; the simulation drains it once at the start of each frame.
type InputQueue struct {
	mu     sync.Mutex
	events []InputEvent
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{events: make([]InputEvent, 0, 8)}
}

// Push appends an event.
func (q *InputQueue) Push(ev InputEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain returns all buffered events in arrival order and empties the queue.
func (q *InputQueue) Drain() []InputEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := make([]InputEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Clear discards all buffered events.
func (q *InputQueue) Clear() {
	q.mu.Lock()
	q.events = q.events[:0]
	q.mu.Unlock()
}

// Len returns the number of buffered events.
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
