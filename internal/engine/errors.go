package engine

import "errors"

var (
	// ErrNoProblemSource indicates NewProblem was called on a session built without a source.
	ErrNoProblemSource = errors.New("no problem source configured")
)
