package engine

import (
	"fmt"

	"github.com/danieljhkim/arithtutor/internal/planner"
)

// Reveal fills every target cell with its expected value, bypassing the
// cursor, and moves the cursor to the end. Submission counts are untouched.
func (s *Session) Reveal() {
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	s.mu.Lock()
	if s.cursor >= len(s.plan.Targets) {
		s.mu.Unlock()
		return
	}
	for _, tg := range s.plan.Targets {
		*s.cells[tg.Addr] = CellState{Value: tg.Expected}
	}
	s.cursor = len(s.plan.Targets)
	s.finish(true)
	ev := s.newEvent(EventReveal, planner.Target{}, 0)
	s.mu.Unlock()

	s.emit(ev)
}

// Restart clears every cell and rewinds the cursor without replanning.
func (s *Session) Restart() {
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	s.mu.Lock()
	done := s.reset()
	events := s.resetEvents(EventRestart, done)
	s.mu.Unlock()

	s.logger.Info("exercise restarted", "session", s.id)
	s.emit(events...)
}

// NewProblem draws a new problem of the same operation from the session's
// source, replaces the plan and resets the session.
func (s *Session) NewProblem() error {
	return s.NewProblemOf(s.Plan().Operation)
}

// NewProblemOf draws a new problem of operation op.
func (s *Session) NewProblemOf(op planner.Operation) error {
	if s.source == nil {
		return ErrNoProblemSource
	}

	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	plan, err := s.source.Plan(op)
	if err != nil {
		return fmt.Errorf("failed to plan new problem: %w", err)
	}

	s.mu.Lock()
	done := s.load(plan)
	events := s.resetEvents(EventNewProblem, done)
	s.mu.Unlock()

	s.logger.Info("new problem", "session", s.id, "problem", plan.Problem())
	s.emit(events...)
	return nil
}

// resetEvents returns typ, followed by EventComplete when the fresh round
// has nothing to fill. Caller holds mu.
func (s *Session) resetEvents(typ EventType, done bool) []Event {
	events := []Event{s.newEvent(typ, planner.Target{}, 0)}
	if done {
		events = append(events, s.newEvent(EventComplete, planner.Target{}, 0))
	}
	return events
}
