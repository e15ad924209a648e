package engine

import (
	"github.com/danieljhkim/arithtutor/internal/planner"
)

// Outcome is the result of a submission.
type Outcome int

// Outcome constants
const (
	// OutcomeIgnored means the submission did not address the current target.
	OutcomeIgnored Outcome = iota
	OutcomeAccepted
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	default:
		return "ignored"
	}
}

// Accepted reports whether the digit was committed and the cursor advanced.
func (o Outcome) Accepted() bool {
	return o == OutcomeAccepted
}

// CurrentTarget returns the active target, or false once the exercise is complete.
func (s *Session) CurrentTarget() (planner.Target, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Target(s.cursor)
}

// Cursor returns the index of the active target; len(targets) when complete.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Done reports whether every target has been filled.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor >= len(s.plan.Targets)
}

// Result returns the final answer once the exercise is complete.
func (s *Session) Result() (planner.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor < len(s.plan.Targets) {
		return planner.Result{}, false
	}
	return s.plan.Result, true
}

// Submit checks digit against the current target. A submission addressed to
// any other cell (row, step, column or kind differ) is ignored without a state
// change. A correct digit is recorded, clears the cell's error flag and
// advances the cursor; a wrong one flags the cell, clears it and leaves the
// cursor where it is.
func (s *Session) Submit(addr planner.CellAddr, kind planner.Kind, digit byte) Outcome {
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	s.mu.Lock()
	tg, ok := s.plan.Target(s.cursor)
	if !ok || !tg.Matches(addr, kind) {
		s.mu.Unlock()
		s.logger.Debug("submission ignored", "session", s.id, "addr", addr.String(), "kind", kind.String())
		return OutcomeIgnored
	}

	cell := s.cells[tg.Addr]
	var events []Event
	outcome := OutcomeRejected
	if digit == tg.Expected {
		outcome = OutcomeAccepted
		cell.Value = digit
		cell.Error = false
		s.cursor++
		s.stats.Correct++
		s.totals.Correct++
		events = append(events, s.newEvent(EventCorrect, tg, digit))
		if s.cursor == len(s.plan.Targets) {
			s.finish(false)
			events = append(events, s.newEvent(EventComplete, planner.Target{}, 0))
		}
	} else {
		cell.Value = 0
		cell.Error = true
		s.stats.Wrong++
		s.totals.Wrong++
		events = append(events, s.newEvent(EventWrong, tg, digit))
	}
	s.mu.Unlock()

	s.logger.Debug("submission", "session", s.id, "addr", addr.String(), "digit", string(digit), "outcome", outcome.String())
	s.emit(events...)
	return outcome
}

// SubmitCurrent submits digit to whatever target is active.
func (s *Session) SubmitCurrent(digit byte) Outcome {
	tg, ok := s.CurrentTarget()
	if !ok {
		return OutcomeIgnored
	}
	return s.Submit(tg.Addr, tg.Kind, digit)
}

// finish closes the round. Caller holds mu.
func (s *Session) finish(revealed bool) {
	s.stats.Finished = s.clock.Now()
	s.stats.Revealed = revealed
	s.totals.Rounds++
	if revealed {
		s.totals.Revealed++
	} else {
		s.totals.Solved++
	}
	s.logger.Info("exercise finished",
		"session", s.id,
		"problem", s.plan.Problem(),
		"revealed", revealed,
		"correct", s.stats.Correct,
		"wrong", s.stats.Wrong,
		"elapsed", s.elapsed(),
	)
}
