// Package problem draws random operands for each exercise kind.
//
// The random source is always injected so that a fixed seed reproduces the
// same sequence of problems.
package problem

import (
	"fmt"
	"math/rand"

	"github.com/danieljhkim/arithtutor/internal/planner"
)

// Generator creates operands within the documented range of each operation.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeededGenerator creates a Generator from a seed.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// Generate draws operands for op:
//   - division: divisor 2..9, dividend with 2 or 3 digits (digit count chosen uniformly)
//   - multiplication: both factors 10..99
//   - addition: both addends 10..999
//   - subtraction: minuend 10..999, subtrahend 10..minuend
//   - times table: 2..10 × 1..10
func (g *Generator) Generate(op planner.Operation) (planner.Operands, error) {
	switch op {
	case planner.OpDivision:
		divisor := g.between(2, 9)
		dividend := g.between(10, 99)
		if g.rng.Intn(2) == 1 {
			dividend = g.between(100, 999)
		}
		return planner.Operands{A: dividend, B: divisor}, nil
	case planner.OpMultiplication:
		return planner.Operands{A: g.between(10, 99), B: g.between(10, 99)}, nil
	case planner.OpAddition:
		return planner.Operands{A: g.between(10, 999), B: g.between(10, 999)}, nil
	case planner.OpSubtraction:
		a := g.between(10, 999)
		return planner.Operands{A: a, B: g.between(10, a)}, nil
	case planner.OpTimesTable:
		return planner.Operands{A: g.between(2, 10), B: g.between(1, 10)}, nil
	default:
		return planner.Operands{}, fmt.Errorf("%w: %q", planner.ErrUnknownOperation, op)
	}
}

// Plan draws operands for op and plans them.
func (g *Generator) Plan(op planner.Operation) (*planner.Plan, error) {
	operands, err := g.Generate(op)
	if err != nil {
		return nil, err
	}
	return planner.New(op, operands)
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
