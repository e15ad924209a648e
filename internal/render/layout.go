package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danieljhkim/arithtutor/internal/engine"
	"github.com/danieljhkim/arithtutor/internal/planner"
)

// Cell glyphs used when a cell shows no digit.
const (
	glyphActive  = "?"
	glyphError   = "!"
	glyphPending = "."
)

// Layout renders the worked layout of a session snapshot inside a frame.
func (t *Theme) Layout(snap engine.Snapshot) string {
	var lines []string
	switch snap.Plan.Operation {
	case planner.OpDivision:
		lines = t.division(snap)
	case planner.OpMultiplication:
		lines = t.multiplication(snap)
	case planner.OpAddition, planner.OpSubtraction:
		lines = t.columnar(snap)
	default:
		lines = t.inline(snap)
	}

	body := t.Title.Render(snap.Plan.Problem()) + "\n\n" + strings.Join(lines, "\n")
	return t.Frame.Render(body)
}

// HintLine renders the hint of the active target, or an empty string.
func (t *Theme) HintLine(snap engine.Snapshot) string {
	tg, ok := snap.Plan.Target(snap.Cursor)
	if !ok {
		return ""
	}
	return t.Hint.Render(tg.Hint)
}

// ResultLine describes the final answer of a completed plan.
func ResultLine(plan *planner.Plan) string {
	res := plan.Result
	if plan.Operation == planner.OpDivision {
		return fmt.Sprintf("%d : %d = %d remainder %d", plan.Operands.A, plan.Operands.B, res.Quotient, res.Remainder)
	}
	return fmt.Sprintf("%s = %d", plan.Problem(), res.Value)
}

// cell renders one layout cell as two columns.
func (t *Theme) cell(snap engine.Snapshot, row planner.LayoutRow, c planner.Cell) string {
	addr := row.Addr(c)
	if !c.Interactive {
		switch c.Kind {
		case planner.KindGiven:
			return " " + t.Given.Render(string(c.Char))
		case planner.KindPlaceholder:
			return " " + t.Pending.Render(string(c.Char))
		default:
			return "  "
		}
	}

	state := snap.Cells[addr]
	active, isActive := snap.Active()
	isActive = isActive && active == addr
	switch {
	case state.Value != 0:
		style := t.Digit
		if c.Kind == planner.KindCarry {
			style = t.Carry
			if snap.Faded(addr) {
				style = t.Faded
			}
		}
		return " " + style.Render(string(state.Value))
	case isActive && state.Error:
		return " " + t.Error.Render(glyphError)
	case isActive:
		return " " + t.Active.Render(glyphActive)
	default:
		return " " + t.Pending.Render(glyphPending)
	}
}

// cells renders every cell of row, in column order.
func (t *Theme) cells(snap engine.Snapshot, row planner.LayoutRow) string {
	out := make([]string, snap.Plan.Width)
	for i := range out {
		out[i] = "  "
	}
	for _, c := range row.Cells {
		if c.Col >= 0 && c.Col < len(out) {
			out[c.Col] = t.cell(snap, row, c)
		}
	}
	return strings.Join(out, "")
}

// number renders n right-aligned over width cells.
func (t *Theme) number(n, width int) string {
	s := strconv.Itoa(n)
	var b strings.Builder
	for i := 0; i < width-len(s); i++ {
		b.WriteString("  ")
	}
	for _, ch := range s {
		b.WriteString(" " + t.Operand.Render(string(ch)))
	}
	return b.String()
}

func (t *Theme) rule(width int) string {
	return t.Rule.Render(strings.Repeat("─", 2*width+2))
}

// rowOf returns the layout row (r, step).
func rowOf(plan *planner.Plan, r planner.Row, step int) (planner.LayoutRow, bool) {
	for _, row := range plan.Layout {
		if row.Row == r && row.Step == step {
			return row, true
		}
	}
	return planner.LayoutRow{}, false
}

// division renders "dividend : divisor = quotient" followed by the product
// and remainder of every step reached so far.
func (t *Theme) division(snap engine.Snapshot) []string {
	plan := snap.Plan
	quotient, _ := rowOf(plan, planner.RowQuotient, 0)
	var q strings.Builder
	for _, c := range quotient.Cells {
		if c.Interactive {
			q.WriteString(t.cell(snap, quotient, c))
		}
	}
	lines := []string{
		"  " + t.number(plan.Operands.A, plan.Width) + " : " + t.Operand.Render(strconv.Itoa(plan.Operands.B)) + " =" + q.String(),
	}

	for i, st := range plan.Steps {
		if !snap.Done() && !stepReached(snap, st) {
			break
		}
		if row, ok := rowOf(plan, planner.RowProduct, i); ok {
			lines = append(lines, t.Rule.Render("- ")+t.cells(snap, row))
		}
		if row, ok := rowOf(plan, planner.RowRemainder, i); ok {
			lines = append(lines, "  "+t.cells(snap, row))
		}
	}
	return lines
}

// stepReached reports whether the cursor has reached the quotient digit of st.
func stepReached(snap engine.Snapshot, st planner.Step) bool {
	for i, tg := range snap.Plan.Targets {
		if tg.Addr.Row == planner.RowQuotient && tg.Addr.Col == st.Pos {
			return i <= snap.Cursor
		}
	}
	return false
}

// multiplication renders carries above the factors, then both partial
// products, the sum carries and the sum.
func (t *Theme) multiplication(snap engine.Snapshot) []string {
	plan := snap.Plan
	row := func(r planner.Row) string {
		lr, _ := rowOf(plan, r, 0)
		return "  " + t.cells(snap, lr)
	}
	return []string{
		row(planner.RowCarry2),
		row(planner.RowCarry1),
		"  " + t.number(plan.Operands.A, plan.Width),
		t.Operand.Render("×") + " " + t.number(plan.Operands.B, plan.Width),
		t.rule(plan.Width),
		row(planner.RowPartial1),
		row(planner.RowPartial2),
		row(planner.RowCarrySum),
		t.rule(plan.Width),
		row(planner.RowSum),
	}
}

// columnar renders addition and subtraction. Borrow marks are only shown
// once the exercise is over.
func (t *Theme) columnar(snap engine.Snapshot) []string {
	plan := snap.Plan
	marks := "  " + strings.Repeat("  ", plan.Width)
	if lr, ok := rowOf(plan, planner.RowCarrySum, 0); ok {
		marks = "  " + t.cells(snap, lr)
	}
	if lr, ok := rowOf(plan, planner.RowBorrow, 0); ok && snap.Done() {
		marks = "  " + t.cells(snap, lr)
	}
	sum, _ := rowOf(plan, planner.RowSum, 0)
	return []string{
		marks,
		"  " + t.number(plan.Operands.A, plan.Width),
		t.Operand.Render(plan.Operation.Symbol()) + " " + t.number(plan.Operands.B, plan.Width),
		t.rule(plan.Width),
		"  " + t.cells(snap, sum),
	}
}

// inline renders a times-table drill on one line.
func (t *Theme) inline(snap engine.Snapshot) []string {
	plan := snap.Plan
	answer, _ := rowOf(plan, planner.RowAnswer, 0)
	return []string{plan.Problem() + " =" + t.cells(snap, answer)}
}
