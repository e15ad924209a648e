package planner

import "fmt"

// PlanDivision builds the long-division plan for dividend ÷ divisor using the
// bring-down algorithm. Digits consumed before the running chunk reaches the
// divisor produce no step and no quotient digit.
func PlanDivision(dividend, divisor int) (*Plan, error) {
	if divisor < 2 {
		return nil, fmt.Errorf("%w: divisor %d must be at least 2", ErrOperandRange, divisor)
	}
	if dividend < 1 {
		return nil, fmt.Errorf("%w: dividend %d must be positive", ErrOperandRange, dividend)
	}

	ds := digits(dividend)
	plan := NewPlan(OpDivision, Operands{A: dividend, B: divisor}, len(ds))
	plan.addRow(RowQuotient, 0)
	plan.Steps = divisionSteps(ds, divisor)

	quotient := 0
	for i, st := range plan.Steps {
		quotient = quotient*10 + st.QDigit

		plan.addTarget(CellAddr{Row: RowQuotient, Col: st.Pos}, KindDigit, st.QDigit,
			fmt.Sprintf("How many times does %d go into %d?", divisor, st.Chunk))

		plan.addRow(RowProduct, i)
		emitRightAligned(plan, RowProduct, i, st.Pos, st.Product, func(place string) string {
			return fmt.Sprintf("%d × %d = %d: write the %s digit", st.QDigit, divisor, st.Product, place)
		})

		plan.addRow(RowRemainder, i)
		emitRightAligned(plan, RowRemainder, i, st.Pos, st.Remainder, func(place string) string {
			return fmt.Sprintf("%d − %d = %d: write the %s digit", st.Chunk, st.Product, st.Remainder, place)
		})
		if st.Pos+1 < len(ds) {
			// bring-down digit, printed next to the remainder
			plan.setCell(CellAddr{Row: RowRemainder, Step: i, Col: st.Pos + 1}, KindGiven, byte('0'+ds[st.Pos+1]), false)
		}
	}

	remainder := dividend
	if n := len(plan.Steps); n > 0 {
		remainder = plan.Steps[n-1].Remainder
	}
	plan.Result = Result{Quotient: quotient, Remainder: remainder, Value: quotient}
	return plan, nil
}

// divisionSteps walks the dividend digits left to right and returns one Step
// per digit once the running chunk has first reached the divisor.
func divisionSteps(ds []int, divisor int) []Step {
	steps := []Step{}
	acc := 0
	started := false
	for pos, d := range ds {
		acc = acc*10 + d
		if !started && acc < divisor {
			continue
		}
		started = true

		q := acc / divisor
		product := q * divisor
		steps = append(steps, Step{
			Pos:       pos,
			Chunk:     acc,
			QDigit:    q,
			Product:   product,
			Remainder: acc - product,
		})
		acc -= product
	}
	return steps
}

// emitRightAligned emits the digits of n as targets, least significant first,
// with the ones digit in column last.
func emitRightAligned(plan *Plan, row Row, step, last, n int, hint func(place string) string) {
	ds := digits(n)
	for k := 0; k < len(ds); k++ {
		d := ds[len(ds)-1-k]
		plan.addTarget(CellAddr{Row: row, Step: step, Col: last - k}, KindDigit, d, hint(placeName(k)))
	}
}

// placeName names the decimal place k columns left of the ones.
func placeName(k int) string {
	switch k {
	case 0:
		return "ones"
	case 1:
		return "tens"
	case 2:
		return "hundreds"
	case 3:
		return "thousands"
	default:
		return fmt.Sprintf("10^%d", k)
	}
}
