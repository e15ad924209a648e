package engine

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/arithtutor/internal/clock"
	"github.com/danieljhkim/arithtutor/internal/planner"
)

// --- test helpers ---

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type stubSource struct {
	plans []*planner.Plan
	err   error
	calls int
}

func (s *stubSource) Plan(op planner.Operation) (*planner.Plan, error) {
	if s.err != nil {
		return nil, s.err
	}
	p := s.plans[s.calls%len(s.plans)]
	s.calls++
	return p, nil
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) HandleEvent(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) types() []EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func mustPlan(t *testing.T, op planner.Operation, a, b int) *planner.Plan {
	t.Helper()
	p, err := planner.New(op, planner.Operands{A: a, B: b})
	require.NoError(t, err)
	return p
}

func newTestSession(t *testing.T, plan *planner.Plan) (*Session, *clock.FakeClock, *recorder) {
	t.Helper()
	clk := clock.NewFakeClock(epoch)
	s := New(plan, nil, clk, nil)
	rec := &recorder{}
	s.Subscribe(rec)
	return s, clk, rec
}

// wrongDigit returns a digit different from want.
func wrongDigit(want byte) byte {
	if want == '9' {
		return '0'
	}
	return want + 1
}

// --- tests ---

func TestSession_CompletesInOrder(t *testing.T) {
	plan := mustPlan(t, planner.OpMultiplication, 47, 36)
	s, clk, rec := newTestSession(t, plan)

	for i, tg := range plan.Targets {
		cur, ok := s.CurrentTarget()
		require.True(t, ok)
		require.Equal(t, tg, cur, "target %d", i)
		clk.Advance(time.Second)
		require.Equal(t, OutcomeAccepted, s.Submit(tg.Addr, tg.Kind, tg.Expected))
	}

	_, ok := s.CurrentTarget()
	assert.False(t, ok, "no target is active after completion")
	assert.True(t, s.Done())
	res, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, 1692, res.Value)
	assert.Equal(t, []int{282, 1410}, res.Partials)

	snap := s.Snapshot()
	assert.Equal(t, len(plan.Targets), snap.Stats.Correct)
	assert.Equal(t, 0, snap.Stats.Wrong)
	assert.False(t, snap.Stats.Revealed)
	assert.Equal(t, time.Duration(len(plan.Targets))*time.Second, snap.Stats.Elapsed)
	assert.Equal(t, 1, snap.Totals.Solved)

	types := rec.types()
	require.Len(t, types, len(plan.Targets)+1)
	assert.Equal(t, EventComplete, types[len(types)-1])
}

func TestSession_DivisionFinalResult(t *testing.T) {
	plan := mustPlan(t, planner.OpDivision, 975, 4)
	s, _, _ := newTestSession(t, plan)

	_, ok := s.Result()
	assert.False(t, ok, "result is hidden until completion")
	for {
		tg, ok := s.CurrentTarget()
		if !ok {
			break
		}
		require.True(t, s.Submit(tg.Addr, tg.Kind, tg.Expected).Accepted())
	}
	res, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, 243, res.Quotient)
	assert.Equal(t, 3, res.Remainder)
}

func TestSession_OutOfOrderIsIgnored(t *testing.T) {
	plan := mustPlan(t, planner.OpMultiplication, 47, 36)
	s, _, rec := newTestSession(t, plan)

	before := s.Snapshot()
	for _, tg := range plan.Targets[1:] {
		assert.Equal(t, OutcomeIgnored, s.Submit(tg.Addr, tg.Kind, tg.Expected), "future target %s", tg.Addr)
	}
	first := plan.Targets[0]
	other := planner.KindCarry
	if first.Kind == planner.KindCarry {
		other = planner.KindDigit
	}
	assert.Equal(t, OutcomeIgnored, s.Submit(first.Addr, other, first.Expected), "kind must match")

	after := s.Snapshot()
	assert.Equal(t, before.Cursor, after.Cursor)
	assert.Equal(t, before.Cells, after.Cells)
	assert.Equal(t, 0, after.Stats.Correct+after.Stats.Wrong)
	assert.Empty(t, rec.types())
}

func TestSession_WrongThenRetry(t *testing.T) {
	plan := mustPlan(t, planner.OpDivision, 84, 4)
	s, _, rec := newTestSession(t, plan)

	tg := plan.Targets[0]
	require.Equal(t, OutcomeRejected, s.Submit(tg.Addr, tg.Kind, wrongDigit(tg.Expected)))
	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Cursor)
	assert.Equal(t, CellState{Value: 0, Error: true}, snap.Cells[tg.Addr])

	require.Equal(t, OutcomeRejected, s.Submit(tg.Addr, tg.Kind, wrongDigit(tg.Expected)))
	require.Equal(t, OutcomeAccepted, s.Submit(tg.Addr, tg.Kind, tg.Expected))
	snap = s.Snapshot()
	assert.Equal(t, 1, snap.Cursor, "advances exactly one position")
	assert.Equal(t, CellState{Value: tg.Expected}, snap.Cells[tg.Addr])
	assert.Equal(t, 2, snap.Stats.Wrong)
	assert.Equal(t, 1, snap.Stats.Correct)
	assert.Equal(t, []EventType{EventWrong, EventWrong, EventCorrect}, rec.types())
}

func TestSession_NonDigitIsRejected(t *testing.T) {
	plan := mustPlan(t, planner.OpTimesTable, 3, 3)
	s, _, _ := newTestSession(t, plan)

	assert.Equal(t, OutcomeRejected, s.SubmitCurrent('x'))
	assert.Equal(t, 0, s.Cursor())
}

func TestSession_Reveal(t *testing.T) {
	plan := mustPlan(t, planner.OpMultiplication, 58, 67)
	s, _, rec := newTestSession(t, plan)

	tg := plan.Targets[0]
	require.True(t, s.Submit(tg.Addr, tg.Kind, tg.Expected).Accepted())
	require.Equal(t, OutcomeRejected, s.SubmitCurrent('x'))

	s.Reveal()

	snap := s.Snapshot()
	assert.True(t, snap.Done())
	for _, tg := range plan.Targets {
		assert.Equal(t, CellState{Value: tg.Expected}, snap.Cells[tg.Addr], "cell %s", tg.Addr)
	}
	assert.Equal(t, 1, snap.Stats.Correct, "reveal does not count toward statistics")
	assert.Equal(t, 1, snap.Stats.Wrong)
	assert.True(t, snap.Stats.Revealed)
	assert.Equal(t, 1, snap.Totals.Revealed)
	assert.Equal(t, 0, snap.Totals.Solved)
	assert.Equal(t, EventReveal, rec.types()[len(rec.types())-1])

	s.Reveal()
	assert.Equal(t, 1, s.Snapshot().Totals.Revealed, "second reveal is a no-op")
}

func TestSession_Restart(t *testing.T) {
	plan := mustPlan(t, planner.OpAddition, 58, 67)
	s, _, _ := newTestSession(t, plan)

	for _, tg := range plan.Targets[:2] {
		require.True(t, s.Submit(tg.Addr, tg.Kind, tg.Expected).Accepted())
	}
	require.Equal(t, OutcomeRejected, s.SubmitCurrent(wrongDigit(plan.Targets[2].Expected)))

	s.Restart()

	snap := s.Snapshot()
	assert.Same(t, plan, snap.Plan, "restart keeps the plan")
	assert.Equal(t, 0, snap.Cursor)
	for addr, c := range snap.Cells {
		assert.Equal(t, CellState{}, c, "cell %s", addr)
	}
	assert.Equal(t, Stats{Started: epoch}, snap.Stats)
}

func TestSession_NewProblem(t *testing.T) {
	first := mustPlan(t, planner.OpDivision, 84, 4)
	second := mustPlan(t, planner.OpDivision, 975, 4)
	src := &stubSource{plans: []*planner.Plan{second}}
	s := New(first, src, clock.NewFakeClock(epoch), nil)
	rec := &recorder{}
	s.Subscribe(rec)

	require.True(t, s.SubmitCurrent(first.Targets[0].Expected).Accepted())
	require.NoError(t, s.NewProblem())

	snap := s.Snapshot()
	assert.Same(t, second, snap.Plan)
	assert.Equal(t, 0, snap.Cursor)
	assert.Len(t, snap.Cells, len(second.Targets), "cell state is reallocated for the new plan")
	for _, tg := range second.Targets {
		assert.Contains(t, snap.Cells, tg.Addr)
	}
	assert.Equal(t, []EventType{EventCorrect, EventNewProblem}, rec.types())
}

func TestSession_NewProblemErrors(t *testing.T) {
	plan := mustPlan(t, planner.OpDivision, 84, 4)

	s := New(plan, nil, nil, nil)
	assert.ErrorIs(t, s.NewProblem(), ErrNoProblemSource)

	boom := errors.New("boom")
	s = New(plan, &stubSource{err: boom}, nil, nil)
	assert.ErrorIs(t, s.NewProblem(), boom)
	assert.Same(t, plan, s.Plan(), "failed regeneration keeps the current plan")
}

func TestStart(t *testing.T) {
	plan := mustPlan(t, planner.OpTimesTable, 6, 7)
	s, err := Start(&stubSource{plans: []*planner.Plan{plan}}, planner.OpTimesTable, nil, nil)
	require.NoError(t, err)
	assert.Same(t, plan, s.Plan())
	assert.NotEmpty(t, s.ID())

	_, err = Start(nil, planner.OpTimesTable, nil, nil)
	assert.ErrorIs(t, err, ErrNoProblemSource)
}

func TestSession_EmptyPlanIsComplete(t *testing.T) {
	plan := mustPlan(t, planner.OpDivision, 7, 12)
	s, _, _ := newTestSession(t, plan)

	assert.True(t, s.Done())
	res, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, 7, res.Remainder)
	assert.Equal(t, OutcomeIgnored, s.SubmitCurrent('0'))

	totals := s.Snapshot().Totals
	assert.Equal(t, 1, totals.Rounds)
	assert.Equal(t, 1, totals.Solved)
}

func TestSession_EmptyPlanEmitsComplete(t *testing.T) {
	empty := mustPlan(t, planner.OpDivision, 7, 12)
	src := &stubSource{plans: []*planner.Plan{empty}}
	s := New(mustPlan(t, planner.OpDivision, 84, 4), src, clock.NewFakeClock(epoch), nil)
	rec := &recorder{}
	s.Subscribe(rec)

	require.NoError(t, s.NewProblem())
	assert.Equal(t, []EventType{EventNewProblem, EventComplete}, rec.types())
	assert.True(t, s.Done())

	s.Restart()
	assert.Equal(t, []EventType{EventNewProblem, EventComplete, EventRestart, EventComplete}, rec.types())

	totals := s.Snapshot().Totals
	assert.Equal(t, 2, totals.Rounds)
	assert.Equal(t, 2, totals.Solved)
	assert.Equal(t, 0, totals.Revealed)
}

func TestSnapshot_FadedCarries(t *testing.T) {
	plan := mustPlan(t, planner.OpMultiplication, 47, 36)
	s, _, _ := newTestSession(t, plan)

	carry := planner.CellAddr{Row: planner.RowCarry1, Col: 2}
	digit := planner.CellAddr{Row: planner.RowPartial1, Col: 3}

	// w11, c11, w12: the carry fades once w12 is filled
	for i := 0; i < 2; i++ {
		require.True(t, s.SubmitCurrent(plan.Targets[i].Expected).Accepted())
	}
	assert.False(t, s.Snapshot().Faded(carry))
	require.True(t, s.SubmitCurrent(plan.Targets[2].Expected).Accepted())
	snap := s.Snapshot()
	assert.True(t, snap.Faded(carry))
	assert.Equal(t, byte('4'), snap.Cells[carry].Value, "a faded carry keeps its value")
	assert.False(t, snap.Faded(digit), "digits never fade")
}

func TestSession_ConcurrentSubmitsAreSerialized(t *testing.T) {
	plan := mustPlan(t, planner.OpMultiplication, 99, 99)
	s, _, rec := newTestSession(t, plan)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				tg, ok := s.CurrentTarget()
				if !ok {
					return
				}
				s.Submit(tg.Addr, tg.Kind, tg.Expected)
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.True(t, snap.Done())
	assert.Equal(t, len(plan.Targets), snap.Stats.Correct)
	assert.Equal(t, 0, snap.Stats.Wrong)
	assert.Len(t, rec.types(), len(plan.Targets)+1)

	// listeners see the correct digits in the order the cursor advanced
	rec.mu.Lock()
	defer rec.mu.Unlock()
	next := 1
	for _, ev := range rec.events {
		if ev.Type != EventCorrect {
			continue
		}
		assert.Equal(t, next, ev.Cursor, "event out of order")
		next++
	}
	assert.Equal(t, EventComplete, rec.events[len(rec.events)-1].Type)
}

func TestStats_Accuracy(t *testing.T) {
	assert.Equal(t, 1.0, Stats{}.Accuracy())
	assert.Equal(t, 0.75, Stats{Correct: 3, Wrong: 1}.Accuracy())
}

func TestListenerFunc(t *testing.T) {
	var got EventType = -1
	var l Listener = ListenerFunc(func(ev Event) { got = ev.Type })
	l.HandleEvent(Event{Type: EventWrong})
	assert.Equal(t, EventWrong, got)
	assert.Equal(t, "wrong", got.String())
}
