// Package clock abstracts time sampling so the timer can be tested
// deterministically. Production code uses New; tests inject a FakeClock.
package clock

import "time"

// Clock supplies monotonic time samples. time.Time values returned by
// Now carry Go's monotonic clock reading, so differences computed with
// Since are immune to wall-clock adjustments.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Since returns the duration elapsed since t.
	Since(t time.Time) time.Duration
}

// realClock is backed by the standard time package. It holds no state
// and is safe for concurrent use.
type realClock struct{}

// New returns a Clock backed by the real time package.
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time                  { return time.Now() }
func (realClock) Since(t time.Time) time.Duration { return time.Since(t) }

// FakeClock is a manually advanced Clock for tests.
type FakeClock struct {
	current time.Time
}

// NewFake returns a FakeClock frozen at start.
func NewFake(start time.Time) *FakeClock {
	return &FakeClock{current: start}
}

// Now returns the fake current time.
func (c *FakeClock) Now() time.Time {
	return c.current
}

// Since returns the duration between t and the fake current time.
func (c *FakeClock) Since(t time.Time) time.Duration {
	return c.current.Sub(t)
}

// Advance moves the fake clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
