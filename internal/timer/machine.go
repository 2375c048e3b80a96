// Package timer implements the pomodoro cycle state machine: a repeating
// work / short-break cycle with a long break every few work intervals.
package timer

import "time"

// Mode identifies the kind of interval currently counting down.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Label returns a human-readable label for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeWork:
		return "Work"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// IsBreak returns true for the two break modes.
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// Phase is the coarse state of the machine. There is no paused phase:
// reset aborts the current interval and immediately starts a fresh work
// interval, so the machine is idle only at the menu.
type Phase string

const (
	PhaseMenu    Phase = "menu"
	PhaseRunning Phase = "running"
)

// Intervals holds the three configured interval durations. They are
// fixed for the process lifetime.
type Intervals struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultIntervals returns the classic 25/5/20 minute configuration.
func DefaultIntervals() Intervals {
	return Intervals{
		Work:       25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  20 * time.Minute,
	}
}

// Duration returns the configured duration for the given mode.
func (iv Intervals) Duration(m Mode) time.Duration {
	switch m {
	case ModeShortBreak:
		return iv.ShortBreak
	case ModeLongBreak:
		return iv.LongBreak
	default:
		return iv.Work
	}
}

// DefaultSessionsBeforeLong is how many work intervals precede a long
// break when the config does not say otherwise.
const DefaultSessionsBeforeLong = 4

// Transition describes a natural phase change: the interval that just
// completed and the interval that replaced it.
type Transition struct {
	From Mode
	To   Mode
}

// Machine is the cycle state machine. It is not safe for concurrent
// use; the TUI update loop is its only writer.
type Machine struct {
	intervals          Intervals
	sessionsBeforeLong int

	phase     Phase
	mode      Mode
	startedAt time.Time
	position  int // completed work intervals since the last long break
}

// NewMachine creates a machine at the menu. A non-positive
// sessionsBeforeLong falls back to the default of 4.
func NewMachine(intervals Intervals, sessionsBeforeLong int) *Machine {
	if sessionsBeforeLong < 1 {
		sessionsBeforeLong = DefaultSessionsBeforeLong
	}
	return &Machine{
		intervals:          intervals,
		sessionsBeforeLong: sessionsBeforeLong,
		phase:              PhaseMenu,
		mode:               ModeWork,
	}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Mode returns the current interval mode. Meaningful only while running.
func (m *Machine) Mode() Mode { return m.mode }

// Position returns the number of work intervals completed since the
// last long break. Always in [0, SessionsBeforeLong-1].
func (m *Machine) Position() int { return m.position }

// SessionsBeforeLong returns the long-break threshold.
func (m *Machine) SessionsBeforeLong() int { return m.sessionsBeforeLong }

// Intervals returns the configured interval durations.
func (m *Machine) Intervals() Intervals { return m.intervals }

// Duration returns the configured duration of the current interval.
func (m *Machine) Duration() time.Duration {
	return m.intervals.Duration(m.mode)
}

// Start begins the first work interval. Ignored unless at the menu.
func (m *Machine) Start(now time.Time) {
	if m.phase == PhaseRunning {
		return
	}
	m.phase = PhaseRunning
	m.mode = ModeWork
	m.startedAt = now
}

// Reset aborts whatever is running and immediately starts a fresh work
// interval at the head of the cycle. Valid from any state.
func (m *Machine) Reset(now time.Time) {
	m.phase = PhaseRunning
	m.mode = ModeWork
	m.startedAt = now
	m.position = 0
}

// Quit abandons the current interval and returns to the menu. When
// already at the menu it reports true, meaning the process should
// terminate.
func (m *Machine) Quit() (terminate bool) {
	if m.phase == PhaseRunning {
		m.phase = PhaseMenu
		return false
	}
	return true
}

// Remaining derives the time left in the current interval from the
// configured duration and the start timestamp. It is never stored or
// decremented, so display cadence cannot introduce drift. Clamped at
// zero; zero while at the menu.
func (m *Machine) Remaining(now time.Time) time.Duration {
	if m.phase != PhaseRunning {
		return 0
	}
	remaining := m.Duration() - now.Sub(m.startedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Progress returns interval completion in [0, 1].
func (m *Machine) Progress(now time.Time) float64 {
	d := m.Duration()
	if m.phase != PhaseRunning || d == 0 {
		return 0
	}
	p := float64(now.Sub(m.startedAt)) / float64(d)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// Tick advances the machine to now. When the current interval's
// remaining time has reached zero it performs exactly one natural
// transition and reports it; otherwise it reports nothing. Transitions
// are edge-triggered: the new interval is re-stamped at now, so a
// second Tick with the same now cannot fire again, and a long host
// suspend collapses any number of elapsed intervals into a single
// completion event. A no-op at the menu.
func (m *Machine) Tick(now time.Time) (Transition, bool) {
	if m.phase != PhaseRunning || m.Remaining(now) > 0 {
		return Transition{}, false
	}

	from := m.mode
	switch m.mode {
	case ModeWork:
		if (m.position+1)%m.sessionsBeforeLong == 0 {
			m.mode = ModeLongBreak
			m.position = 0
		} else {
			m.mode = ModeShortBreak
			m.position++
		}
	default:
		m.mode = ModeWork
	}
	m.startedAt = now

	return Transition{From: from, To: m.mode}, true
}
