package engine

import (
	"github.com/danieljhkim/arithtutor/internal/planner"
)

// Snapshot is a consistent copy of a session for rendering and review.
type Snapshot struct {
	SessionID string                         `json:"sessionId"`
	Plan      *planner.Plan                  `json:"plan"`
	Cursor    int                            `json:"cursor"`
	Cells     map[planner.CellAddr]CellState `json:"-"`
	Stats     Stats                          `json:"stats"`
	Totals    Totals                         `json:"totals"`
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cells := make(map[planner.CellAddr]CellState, len(s.cells))
	for addr, c := range s.cells {
		cells[addr] = *c
	}
	stats := s.stats
	stats.Elapsed = s.elapsed()
	return Snapshot{
		SessionID: s.id,
		Plan:      s.plan,
		Cursor:    s.cursor,
		Cells:     cells,
		Stats:     stats,
		Totals:    s.totals,
	}
}

// Done reports whether the snapshot was taken after completion.
func (v Snapshot) Done() bool {
	return v.Cursor >= len(v.Plan.Targets)
}

// Active returns the address of the active cell, if any.
func (v Snapshot) Active() (planner.CellAddr, bool) {
	tg, ok := v.Plan.Target(v.Cursor)
	return tg.Addr, ok
}

// Faded reports whether a carry cell should be dimmed: its consuming digit
// (the target right after it) has been filled, or the exercise is over. The
// carry's value stays in Cells either way.
func (v Snapshot) Faded(addr planner.CellAddr) bool {
	for i, tg := range v.Plan.Targets {
		if tg.Addr != addr {
			continue
		}
		if tg.Kind != planner.KindCarry {
			return false
		}
		return v.Cursor > i+1 || v.Done()
	}
	return false
}
