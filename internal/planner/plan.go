package planner

import "fmt"

// Operation identifies the kind of exercise a Plan describes.
type Operation string

// Operation constants
const (
	OpDivision       Operation = "division"
	OpMultiplication Operation = "multiplication"
	OpAddition       Operation = "addition"
	OpSubtraction    Operation = "subtraction"
	OpTimesTable     Operation = "times_table"
)

// Operations lists every supported operation in menu order.
var Operations = []Operation{OpDivision, OpMultiplication, OpAddition, OpSubtraction, OpTimesTable}

// ParseOperation maps a user-facing name (or short alias) to an Operation.
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "division", "div", "/":
		return OpDivision, nil
	case "multiplication", "mul", "x", "*":
		return OpMultiplication, nil
	case "addition", "add", "+":
		return OpAddition, nil
	case "subtraction", "sub", "-":
		return OpSubtraction, nil
	case "times_table", "times", "table":
		return OpTimesTable, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
}

// Symbol returns the operator glyph used when printing a problem.
func (o Operation) Symbol() string {
	switch o {
	case OpDivision:
		return ":"
	case OpMultiplication, OpTimesTable:
		return "×"
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "−"
	default:
		return "?"
	}
}

// Operands are the two inputs of an exercise. For division A is the dividend
// and B the divisor.
type Operands struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Row names a logical row of the worked layout.
type Row int

// Row constants. Division uses quotient/product/remainder, multiplication the
// carry and partial-product rows, addition and subtraction the sum rows.
const (
	RowQuotient Row = iota
	RowProduct
	RowRemainder
	RowCarry1
	RowPartial1
	RowCarry2
	RowPartial2
	RowCarrySum
	RowSum
	RowBorrow
	RowAnswer
)

var rowNames = map[Row]string{
	RowQuotient:  "quotient",
	RowProduct:   "product",
	RowRemainder: "remainder",
	RowCarry1:    "carry-1",
	RowPartial1:  "partial-1",
	RowCarry2:    "carry-2",
	RowPartial2:  "partial-2",
	RowCarrySum:  "carry-sum",
	RowSum:       "sum",
	RowBorrow:    "borrow",
	RowAnswer:    "answer",
}

func (r Row) String() string {
	if name, ok := rowNames[r]; ok {
		return name
	}
	return fmt.Sprintf("row(%d)", int(r))
}

// IsCarry reports whether cells of the row hold carries rather than digits.
func (r Row) IsCarry() bool {
	return r == RowCarry1 || r == RowCarry2 || r == RowCarrySum
}

// Kind distinguishes what a cell holds.
type Kind int

// Kind constants
const (
	KindDigit Kind = iota
	KindCarry
	// KindPlaceholder marks fixed cells such as the shifted units dash of
	// the second partial product. They are never targeted.
	KindPlaceholder
	// KindGiven marks solution cells the learner does not enter, such as
	// borrow marks.
	KindGiven
	KindBlank
)

func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindCarry:
		return "carry"
	case KindPlaceholder:
		return "placeholder"
	case KindGiven:
		return "given"
	case KindBlank:
		return "blank"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// CellAddr is the canonical address of a cell in the worked layout.
// Step is the division step index of product and remainder rows (0 for every
// other row, including the single quotient row); Col is the display column,
// counted from the left.
type CellAddr struct {
	Row  Row `json:"row"`
	Step int `json:"step"`
	Col  int `json:"col"`
}

func (a CellAddr) String() string {
	return fmt.Sprintf("%s[%d:%d]", a.Row, a.Step, a.Col)
}

// Target is one interactive cell the learner must fill.
type Target struct {
	// Addr locates the cell
	Addr CellAddr `json:"addr"`

	// Kind is KindDigit or KindCarry
	Kind Kind `json:"kind"`

	// Expected is the single correct character, '0'..'9'
	Expected byte `json:"expected"`

	// Hint is a human-readable explanation of what goes in the cell
	Hint string `json:"hint"`
}

// Matches reports whether a submission addresses this target.
func (t Target) Matches(addr CellAddr, kind Kind) bool {
	return t.Addr == addr && t.Kind == kind
}

// Cell is one cell of a layout row.
type Cell struct {
	Col int `json:"col"`

	// Char is the solution character: a digit, '-' for placeholders, or ' '
	// for a blank cell.
	Char byte `json:"char"`

	Kind Kind `json:"kind"`

	// Interactive is true when a Target exists for the cell.
	Interactive bool `json:"interactive"`
}

// LayoutRow is one displayed row of the worked layout.
type LayoutRow struct {
	Row   Row    `json:"row"`
	Step  int    `json:"step"`
	Cells []Cell `json:"cells"`
}

// Addr returns the address of a cell in the row.
func (r LayoutRow) Addr(c Cell) CellAddr {
	return CellAddr{Row: r.Row, Step: r.Step, Col: c.Col}
}

// Step is one bring-down iteration of long division.
type Step struct {
	// Pos is the index of the last dividend digit consumed by this step
	Pos int `json:"pos"`

	// Chunk is the running number being divided
	Chunk int `json:"chunk"`

	QDigit    int `json:"qDigit"`
	Product   int `json:"product"`
	Remainder int `json:"remainder"`
}

// Carries records the carry digits of a multiplication or addition.
// Zero values are kept here even though they never become targets.
type Carries struct {
	C11 int `json:"c11,omitempty"`
	C12 int `json:"c12,omitempty"`
	C21 int `json:"c21,omitempty"`
	C22 int `json:"c22,omitempty"`

	// Sum holds the carry flowing into each column of the sum row, indexed
	// by display column.
	Sum []int `json:"sum,omitempty"`
}

// Result is the final answer of the exercise.
type Result struct {
	Quotient  int `json:"quotient,omitempty"`
	Remainder int `json:"remainder,omitempty"`

	// Value is the product, sum, difference or quotient depending on the operation.
	Value int `json:"value"`

	// Partials holds the partial products of a multiplication (p1, shifted p2).
	Partials []int `json:"partials,omitempty"`
}

// Plan is the immutable worked solution of one exercise.
type Plan struct {
	// Operation is the kind of exercise
	Operation Operation `json:"operation"`

	// Operands are the original inputs
	Operands Operands `json:"operands"`

	// Width is the number of display columns of the layout
	Width int `json:"width"`

	// Layout is every displayed row, including blank and placeholder cells
	Layout []LayoutRow `json:"layout"`

	// Steps is the ordered list of division steps (division only)
	Steps []Step `json:"steps,omitempty"`

	// Carries holds the carry arrays (multiplication and addition)
	Carries *Carries `json:"carries,omitempty"`

	// Borrows holds, per display column, whether a borrow was taken (subtraction only)
	Borrows []bool `json:"borrows,omitempty"`

	// Targets is the only valid fill order
	Targets []Target `json:"targets"`

	// Result is the final answer
	Result Result `json:"result"`
}

// NewPlan creates a new empty Plan.
func NewPlan(op Operation, operands Operands, width int) *Plan {
	return &Plan{
		Operation: op,
		Operands:  operands,
		Width:     width,
		Layout:    []LayoutRow{},
		Targets:   []Target{},
	}
}

// Problem returns the exercise as a one-line expression, e.g. "47 × 36".
func (p *Plan) Problem() string {
	return fmt.Sprintf("%d %s %d", p.Operands.A, p.Operation.Symbol(), p.Operands.B)
}

// Target returns the target at index i, and false when i is past the end.
func (p *Plan) Target(i int) (Target, bool) {
	if i < 0 || i >= len(p.Targets) {
		return Target{}, false
	}
	return p.Targets[i], true
}

// Cell looks up the solution cell at addr.
func (p *Plan) Cell(addr CellAddr) (Cell, bool) {
	for _, row := range p.Layout {
		if row.Row != addr.Row || row.Step != addr.Step {
			continue
		}
		for _, c := range row.Cells {
			if c.Col == addr.Col {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// addTarget appends a target and marks its layout cell as interactive.
func (p *Plan) addTarget(addr CellAddr, kind Kind, digit int, hint string) {
	p.Targets = append(p.Targets, Target{
		Addr:     addr,
		Kind:     kind,
		Expected: byte('0' + digit),
		Hint:     hint,
	})
	p.setCell(addr, kind, byte('0'+digit), true)
}

// setCell writes a cell into the layout, creating the row if needed.
func (p *Plan) setCell(addr CellAddr, kind Kind, ch byte, interactive bool) {
	row := p.row(addr.Row, addr.Step)
	for i := range row.Cells {
		if row.Cells[i].Col == addr.Col {
			row.Cells[i] = Cell{Col: addr.Col, Char: ch, Kind: kind, Interactive: interactive}
			return
		}
	}
	row.Cells = append(row.Cells, Cell{Col: addr.Col, Char: ch, Kind: kind, Interactive: interactive})
}

// row returns the layout row for (r, step), appending a blank one if absent.
func (p *Plan) row(r Row, step int) *LayoutRow {
	for i := range p.Layout {
		if p.Layout[i].Row == r && p.Layout[i].Step == step {
			return &p.Layout[i]
		}
	}
	p.Layout = append(p.Layout, LayoutRow{Row: r, Step: step, Cells: []Cell{}})
	return &p.Layout[len(p.Layout)-1]
}

// addRow appends a row of blank cells spanning every display column.
func (p *Plan) addRow(r Row, step int) {
	row := p.row(r, step)
	for col := 0; col < p.Width; col++ {
		row.Cells = append(row.Cells, Cell{Col: col, Char: ' ', Kind: KindBlank})
	}
}

// digits returns the decimal digits of n, most significant first. digits(0) is [0].
func digits(n int) []int {
	if n == 0 {
		return []int{0}
	}
	var out []int
	for ; n > 0; n /= 10 {
		out = append([]int{n % 10}, out...)
	}
	return out
}
