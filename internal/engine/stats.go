package engine

import "time"

// Stats describes the current round. Reveal does not change Correct or Wrong.
type Stats struct {
	Correct  int       `json:"correct"`
	Wrong    int       `json:"wrong"`
	Revealed bool      `json:"revealed"`
	Started  time.Time `json:"started"`

	// Finished is zero until the cursor reaches the end of the targets
	Finished time.Time `json:"finished,omitempty"`

	Elapsed time.Duration `json:"elapsed"`
}

// Accuracy returns the share of submissions that were correct, 1 when none were made.
func (s Stats) Accuracy() float64 {
	n := s.Correct + s.Wrong
	if n == 0 {
		return 1
	}
	return float64(s.Correct) / float64(n)
}

// Totals accumulate over every round played in a session.
type Totals struct {
	Rounds   int `json:"rounds"`
	Solved   int `json:"solved"`
	Revealed int `json:"revealed"`
	Correct  int `json:"correct"`
	Wrong    int `json:"wrong"`
}
