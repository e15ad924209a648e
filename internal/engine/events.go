package engine

import (
	"time"

	"github.com/danieljhkim/arithtutor/internal/planner"
)

// EventType identifies what happened in a session.
type EventType int

// Event type constants
const (
	EventCorrect EventType = iota
	EventWrong
	EventComplete
	EventReveal
	EventRestart
	EventNewProblem
)

func (t EventType) String() string {
	switch t {
	case EventCorrect:
		return "correct"
	case EventWrong:
		return "wrong"
	case EventComplete:
		return "complete"
	case EventReveal:
		return "reveal"
	case EventRestart:
		return "restart"
	case EventNewProblem:
		return "new_problem"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners after the session state has changed.
type Event struct {
	Type      EventType
	SessionID string

	// Target is the target the event refers to (zero for session-wide events)
	Target planner.Target

	// Digit is the submitted character for correct/wrong events
	Digit byte

	// Cursor is the cursor after the event
	Cursor int

	At time.Time
}

// Listener consumes session events, e.g. to play a sound or keep a score.
type Listener interface {
	HandleEvent(Event)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(Event)

// HandleEvent calls f(ev).
func (f ListenerFunc) HandleEvent(ev Event) {
	f(ev)
}
