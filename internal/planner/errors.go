package planner

import "errors"

var (
	// ErrOperandRange indicates an operand outside the range the planner supports.
	ErrOperandRange = errors.New("operand out of range")

	// ErrLayoutOverflow indicates a carry would leave the fixed-width layout.
	// It is unreachable for supported operands and reported instead of dropping the carry.
	ErrLayoutOverflow = errors.New("result does not fit the layout")

	// ErrUnknownOperation indicates an operation name the planner does not know.
	ErrUnknownOperation = errors.New("unknown operation")
)
