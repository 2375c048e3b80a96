package clock

import (
	"testing"
	"time"
)

func TestRealClock_SinceNeverNegative(t *testing.T) {
	c := New()
	start := c.Now()

	if got := c.Since(start); got < 0 {
		t.Errorf("Since() = %v, want >= 0", got)
	}
}

func TestFakeClock_FrozenUntilAdvanced(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	c := NewFake(start)

	if !c.Now().Equal(start) {
		t.Errorf("Now() = %v, want %v", c.Now(), start)
	}
	if got := c.Since(start); got != 0 {
		t.Errorf("Since(start) = %v, want 0", got)
	}
}

func TestFakeClock_Advance(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	c := NewFake(start)

	c.Advance(25 * time.Minute)

	if got := c.Since(start); got != 25*time.Minute {
		t.Errorf("Since(start) = %v after advance, want 25m", got)
	}
	c.Advance(time.Second)
	if got := c.Since(start); got != 25*time.Minute+time.Second {
		t.Errorf("Since(start) = %v after second advance, want 25m1s", got)
	}
}
