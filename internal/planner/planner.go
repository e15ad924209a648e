package planner

import "fmt"

// New builds the plan for op over the given operands.
func New(op Operation, operands Operands) (*Plan, error) {
	switch op {
	case OpDivision:
		return PlanDivision(operands.A, operands.B)
	case OpMultiplication:
		return PlanMultiplication(operands.A, operands.B)
	case OpAddition:
		return PlanAddition(operands.A, operands.B)
	case OpSubtraction:
		return PlanSubtraction(operands.A, operands.B)
	case OpTimesTable:
		return PlanTimesTable(operands.A, operands.B)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}
