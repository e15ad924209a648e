// Package planner handles the planning phase of an arithmetic exercise.
//
// The planner turns an operation and its operands into an immutable Plan: the
// complete worked solution laid out cell by cell, plus the ordered list of
// Targets a learner fills in. Plans never change after construction; the
// cursor and per-cell state live in the engine.
//
// Key responsibilities:
//   - Long division with the bring-down algorithm (PlanDivision)
//   - Two-digit multiplication with partial products and carries (PlanMultiplication)
//   - Column addition, subtraction and times-table drills
//   - Emitting targets in the order a learner writes them, once, at construction
//   - Rejecting operands outside the supported layout (ErrOperandRange, ErrLayoutOverflow)
package planner
