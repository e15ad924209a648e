package planner

import "fmt"

// carryCol is the display column of the partial-product carry cells: above the
// tens digit of the first factor.
const carryCol = 2

// PlanMultiplication builds the plan for a × b where both factors have two
// digits. The first partial product is a × (ones of b); the second is
// a × (tens of b), already shifted one place, whose ones cell is a dash.
func PlanMultiplication(a, b int) (*Plan, error) {
	if a < 10 || a > 99 || b < 10 || b > 99 {
		return nil, fmt.Errorf("%w: factors %d and %d must be within 10..99", ErrOperandRange, a, b)
	}

	plan := NewPlan(OpMultiplication, Operands{A: a, B: b}, sumWidth)
	for _, r := range []Row{RowCarry2, RowCarry1, RowPartial1, RowPartial2, RowCarrySum, RowSum} {
		plan.addRow(r, 0)
	}

	carries := &Carries{}
	p1 := emitPartial(plan, RowCarry1, RowPartial1, a, b%10, 0, &carries.C11, &carries.C12)
	p2 := emitPartial(plan, RowCarry2, RowPartial2, a, b/10, 1, &carries.C21, &carries.C22)
	plan.setCell(CellAddr{Row: RowPartial2, Col: sumWidth - 1}, KindPlaceholder, '-', false)

	sum, err := emitColumnSum(plan, []int{p1, p2})
	if err != nil {
		return nil, err
	}
	carries.Sum = sum
	plan.Carries = carries
	plan.Result = Result{Value: p1 + p2, Partials: []int{p1, p2}}
	return plan, nil
}

// emitPartial emits the targets of one partial product a × m, shifted left by
// shift places, and returns its value. The ones-step carry becomes a carry
// cell; the tens-step carry has no column left to carry into and is written
// as the leading digit of the partial product.
func emitPartial(plan *Plan, carryRow, row Row, a, m, shift int, c1, c2 *int) int {
	aTens, aOnes := a/10, a%10
	onesCol := sumWidth - 1 - shift

	m1 := aOnes * m
	w1 := m1 % 10
	*c1 = m1 / 10
	plan.addTarget(CellAddr{Row: row, Col: onesCol}, KindDigit, w1,
		fmt.Sprintf("%d × %d = %d: write the %d", aOnes, m, m1, w1))
	if *c1 != 0 {
		plan.addTarget(CellAddr{Row: carryRow, Col: carryCol}, KindCarry, *c1,
			fmt.Sprintf("%d × %d = %d: carry the %d", aOnes, m, m1, *c1))
	}

	m2 := aTens*m + *c1
	w2 := m2 % 10
	*c2 = m2 / 10
	hint := fmt.Sprintf("%d × %d = %d: write the %d", aTens, m, m2, w2)
	if *c1 != 0 {
		hint = fmt.Sprintf("%d × %d + %d carried = %d: write the %d", aTens, m, *c1, m2, w2)
	}
	plan.addTarget(CellAddr{Row: row, Col: onesCol - 1}, KindDigit, w2, hint)
	if *c2 != 0 {
		plan.addTarget(CellAddr{Row: row, Col: onesCol - 2}, KindDigit, *c2,
			fmt.Sprintf("Nothing left to multiply: write the %d in front", *c2))
	}

	return (*c2*100 + w2*10 + w1) * pow10(shift)
}
