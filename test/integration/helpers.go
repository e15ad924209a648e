package integration

import (
	"sync"
	"testing"
	"time"

	"github.com/danieljhkim/arithtutor/internal/clock"
	"github.com/danieljhkim/arithtutor/internal/engine"
	"github.com/danieljhkim/arithtutor/internal/planner"
	"github.com/danieljhkim/arithtutor/internal/problem"
)

// thinkTime is how long the simulated learner waits before each keystroke.
const thinkTime = 2 * time.Second

// recorder is a listener that keeps every event it receives
type recorder struct {
	mu     sync.Mutex
	events []engine.Event
}

func (r *recorder) HandleEvent(ev engine.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) types() []engine.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]engine.EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func (r *recorder) count(typ engine.EventType) int {
	n := 0
	for _, t := range r.types() {
		if t == typ {
			n++
		}
	}
	return n
}

// setupTestSession creates a seeded session on a fake clock with a recorder attached
func setupTestSession(t *testing.T, seed int64, op planner.Operation) (*engine.Session, *clock.FakeClock, *recorder) {
	t.Helper()

	clk := clock.NewFakeClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	sess, err := engine.Start(problem.NewSeededGenerator(seed), op, clk, nil)
	if err != nil {
		t.Fatalf("Start(%s) error = %v", op, err)
	}

	rec := &recorder{}
	sess.Subscribe(rec)
	return sess, clk, rec
}

// fill types every expected digit of the current plan, advancing the clock before each one
func fill(t *testing.T, sess *engine.Session, clk *clock.FakeClock) {
	t.Helper()
	for _, tg := range sess.Plan().Targets {
		clk.Advance(thinkTime)
		if out := sess.Submit(tg.Addr, tg.Kind, tg.Expected); !out.Accepted() {
			t.Fatalf("Submit(%s, %c) = %s, want accepted", tg.Addr, tg.Expected, out)
		}
	}
}
