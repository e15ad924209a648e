// Package clock abstracts wall time so exercise timing can be tested.
package clock

import "time"

// Clock provides the current time to a session.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock implements Clock with a manually driven time for tests.
type FakeClock struct {
	current time.Time
}

// NewFakeClock creates a new FakeClock starting at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	return c.current
}

// Advance moves the fake time forward by d, e.g. to simulate think time
// between two keystrokes.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Since returns the time elapsed on clk since t, never negative.
func Since(clk Clock, t time.Time) time.Duration {
	if t.IsZero() {
		return 0
	}
	d := clk.Now().Sub(t)
	if d < 0 {
		return 0
	}
	return d
}
