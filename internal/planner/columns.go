package planner

import "fmt"

// sumWidth is the fixed number of display columns of multiplication and
// addition layouts (thousands to ones).
const sumWidth = 4

// emitColumnSum adds terms column by column from the ones column leftward and
// emits, per column, the incoming carry (when nonzero) followed by the sum
// digit. Leading zeros of the sum are left blank. A carry out of the leftmost
// column is reported as ErrLayoutOverflow.
func emitColumnSum(plan *Plan, terms []int) ([]int, error) {
	width := plan.Width
	total := 0
	for _, t := range terms {
		total += t
	}

	carries := make([]int, width)
	carry := 0
	for col := width - 1; col >= 0; col-- {
		place := width - 1 - col
		colSum := carry
		for _, t := range terms {
			colSum += digitAt(t, place)
		}

		if carry != 0 {
			carries[col] = carry
			plan.addTarget(CellAddr{Row: RowCarrySum, Col: col}, KindCarry, carry,
				fmt.Sprintf("Carry the %d from the %s column", carry, placeName(place-1)))
		}
		if place == 0 || total/pow10(place) > 0 {
			plan.addTarget(CellAddr{Row: RowSum, Col: col}, KindDigit, colSum%10,
				columnHint(terms, place, carry, colSum))
		}
		carry = colSum / 10
	}
	if carry != 0 {
		return nil, fmt.Errorf("%w: %d needs more than %d columns", ErrLayoutOverflow, total, width)
	}
	return carries, nil
}

// columnHint explains one column of a column sum.
func columnHint(terms []int, place, carryIn, colSum int) string {
	expr := ""
	for i, t := range terms {
		if i > 0 {
			expr += " + "
		}
		expr += fmt.Sprint(digitAt(t, place))
	}
	if carryIn != 0 {
		expr += fmt.Sprintf(" + %d carried", carryIn)
	}
	return fmt.Sprintf("Add the %s column: %s = %d, write the %d", placeName(place), expr, colSum, colSum%10)
}

// digitAt returns the decimal digit of n at the given place (0 = ones).
func digitAt(n, place int) int {
	return n / pow10(place) % 10
}

func pow10(k int) int {
	p := 1
	for ; k > 0; k-- {
		p *= 10
	}
	return p
}
