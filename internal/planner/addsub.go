package planner

import "fmt"

// PlanAddition builds the column-addition plan for a + b, both within
// 10..999. Carries are targeted above the column that receives them.
func PlanAddition(a, b int) (*Plan, error) {
	if a < 10 || a > 999 || b < 10 || b > 999 {
		return nil, fmt.Errorf("%w: addends %d and %d must be within 10..999", ErrOperandRange, a, b)
	}

	plan := NewPlan(OpAddition, Operands{A: a, B: b}, sumWidth)
	plan.addRow(RowCarrySum, 0)
	plan.addRow(RowSum, 0)

	sum, err := emitColumnSum(plan, []int{a, b})
	if err != nil {
		return nil, err
	}
	plan.Carries = &Carries{Sum: sum}
	plan.Result = Result{Value: a + b}
	return plan, nil
}

// PlanSubtraction builds the column-subtraction plan for a − b with
// 10 <= b <= a <= 999. Borrow marks are part of the worked layout but are not
// targeted; only the difference digits are.
func PlanSubtraction(a, b int) (*Plan, error) {
	if a < 10 || a > 999 || b < 10 || b > a {
		return nil, fmt.Errorf("%w: need 10 <= %d <= %d <= 999", ErrOperandRange, b, a)
	}

	width := len(digits(a))
	plan := NewPlan(OpSubtraction, Operands{A: a, B: b}, width)
	plan.addRow(RowBorrow, 0)
	plan.addRow(RowSum, 0)
	plan.Borrows = make([]bool, width)

	diff := a - b
	borrow := 0
	for col := width - 1; col >= 0; col-- {
		place := width - 1 - col
		top := digitAt(a, place) - borrow
		bottom := digitAt(b, place)

		hint := fmt.Sprintf("Subtract the %s column: %d − %d = %d", placeName(place), top, bottom, top-bottom)
		borrow = 0
		if top < bottom {
			borrow = 1
			plan.Borrows[col] = true
			plan.setCell(CellAddr{Row: RowBorrow, Col: col}, KindGiven, '1', false)
			hint = fmt.Sprintf("Subtract the %s column: %d is less than %d, borrow ten: %d − %d = %d",
				placeName(place), top, bottom, top+10, bottom, top+10-bottom)
		}

		if place == 0 || diff/pow10(place) > 0 {
			plan.addTarget(CellAddr{Row: RowSum, Col: col}, KindDigit, (top+10*borrow)-bottom, hint)
		}
	}

	plan.Result = Result{Value: diff}
	return plan, nil
}

// PlanTimesTable builds a times-table drill for a × b, both within 1..12.
// The answer is written left to right.
func PlanTimesTable(a, b int) (*Plan, error) {
	if a < 1 || a > 12 || b < 1 || b > 12 {
		return nil, fmt.Errorf("%w: factors %d and %d must be within 1..12", ErrOperandRange, a, b)
	}

	product := a * b
	ds := digits(product)
	plan := NewPlan(OpTimesTable, Operands{A: a, B: b}, len(ds))
	plan.addRow(RowAnswer, 0)
	for col, d := range ds {
		plan.addTarget(CellAddr{Row: RowAnswer, Col: col}, KindDigit, d,
			fmt.Sprintf("%d × %d = ?: write the %s digit", a, b, placeName(len(ds)-1-col)))
	}
	plan.Result = Result{Value: product}
	return plan, nil
}
