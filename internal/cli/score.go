package cli

import (
	"io"
	"sync"

	"github.com/danieljhkim/arithtutor/internal/engine"
)

// scoreboard tracks the streak of correct digits across rounds.
type scoreboard struct {
	mu     sync.Mutex
	streak int
	best   int
}

// HandleEvent implements engine.Listener.
func (s *scoreboard) HandleEvent(ev engine.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Type {
	case engine.EventCorrect:
		s.streak++
		if s.streak > s.best {
			s.best = s.streak
		}
	case engine.EventWrong, engine.EventReveal:
		s.streak = 0
	}
}

// Streak returns the current and best streak.
func (s *scoreboard) Streak() (current, best int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak, s.best
}

// bell rings the terminal bell on every wrong digit.
func bell(w io.Writer) engine.Listener {
	return engine.ListenerFunc(func(ev engine.Event) {
		if ev.Type == engine.EventWrong {
			_, _ = io.WriteString(w, "\a")
		}
	})
}
