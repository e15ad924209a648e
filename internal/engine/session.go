// Package engine provides the input validation engine of an exercise.
//
// A Session owns the only mutable state of an exercise: the cursor into the
// plan's targets and the displayed value and error flag of every interactive
// cell. Plans themselves are immutable and may be shared by any number of
// readers.
//
// Key components:
//   - Session: cursor discipline, Submit, Reveal, Restart, NewProblem
//   - Event/Listener: "correct"/"wrong"/"complete" side channel for sound and score
//   - Snapshot: a consistent copy of the session for rendering
package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danieljhkim/arithtutor/internal/clock"
	"github.com/danieljhkim/arithtutor/internal/planner"
)

// ProblemSource draws and plans a fresh problem for an operation.
type ProblemSource interface {
	Plan(op planner.Operation) (*planner.Plan, error)
}

// CellState is what a cell currently displays.
type CellState struct {
	// Value is the displayed character, 0 when the cell is empty
	Value byte `json:"value,omitempty"`

	// Error is set after a wrong submission until the cell is filled correctly
	Error bool `json:"error,omitempty"`
}

// Session is one learner working through one plan at a time.
// All methods are safe for concurrent use; mutating calls are serialized and
// their events reach listeners in the order the state changed.
type Session struct {
	// dispatch is held by a mutating call until its events are delivered;
	// mu guards the state and is released before listeners run.
	dispatch sync.Mutex

	mu        sync.Mutex
	id        string
	plan      *planner.Plan
	cursor    int
	cells     map[planner.CellAddr]*CellState
	stats     Stats
	totals    Totals
	source    ProblemSource
	clock     clock.Clock
	logger    *slog.Logger
	listeners []Listener
}

// New creates a Session for plan. source may be nil, in which case
// NewProblem fails with ErrNoProblemSource.
func New(plan *planner.Plan, source ProblemSource, clk clock.Clock, logger *slog.Logger) *Session {
	if clk == nil {
		clk = &clock.RealClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		id:     uuid.NewString(),
		source: source,
		clock:  clk,
		logger: logger,
	}
	s.load(plan)
	return s
}

// Start draws a first problem for op from source and returns a Session for it.
func Start(source ProblemSource, op planner.Operation, clk clock.Clock, logger *slog.Logger) (*Session, error) {
	if source == nil {
		return nil, ErrNoProblemSource
	}
	plan, err := source.Plan(op)
	if err != nil {
		return nil, err
	}
	return New(plan, source, clk, logger), nil
}

// ID returns the session identifier used in events and logs.
func (s *Session) ID() string {
	return s.id
}

// Plan returns the current plan. The plan is read-only.
func (s *Session) Plan() *planner.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}

// Subscribe registers a listener for session events.
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// load installs plan and reallocates cell state from its targets. It reports
// whether the round finished on the spot. Caller holds mu (or the session is
// not yet shared).
func (s *Session) load(plan *planner.Plan) bool {
	s.plan = plan
	s.cells = make(map[planner.CellAddr]*CellState, len(plan.Targets))
	for _, tg := range plan.Targets {
		s.cells[tg.Addr] = &CellState{}
	}
	return s.reset()
}

// reset clears every cell and rewinds the cursor. A plan without targets
// (e.g. 7 : 12) is finished immediately as a solved round; reset then returns
// true and the caller emits EventComplete. Caller holds mu.
func (s *Session) reset() bool {
	for _, c := range s.cells {
		*c = CellState{}
	}
	s.cursor = 0
	s.stats = Stats{Started: s.clock.Now()}
	if len(s.plan.Targets) == 0 {
		s.finish(false)
		return true
	}
	return false
}

// newEvent builds an event stamped with the session clock. Caller holds mu.
func (s *Session) newEvent(typ EventType, tg planner.Target, digit byte) Event {
	return Event{
		Type:      typ,
		SessionID: s.id,
		Target:    tg,
		Digit:     digit,
		Cursor:    s.cursor,
		At:        s.clock.Now(),
	}
}

// emit delivers events to listeners. Caller holds dispatch but not mu, so
// listeners may query the session but must not mutate it.
func (s *Session) emit(events ...Event) {
	s.mu.Lock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, ev := range events {
		for _, l := range listeners {
			l.HandleEvent(ev)
		}
	}
}

// elapsed returns the duration of the current round. Caller holds mu.
func (s *Session) elapsed() time.Duration {
	if !s.stats.Finished.IsZero() {
		return s.stats.Finished.Sub(s.stats.Started)
	}
	return clock.Since(s.clock, s.stats.Started)
}
