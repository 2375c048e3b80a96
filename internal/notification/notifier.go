// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/pomo-cli/internal/config"
	"github.com/xvierd/pomo-cli/internal/timer"
)

// Notifier handles desktop notifications. Delivery is best-effort:
// callers on the timer path discard the returned error.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if n.cfg == nil || !n.cfg.Enabled {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// NotifyIntervalComplete announces the interval that just finished and
// what comes next.
func (n *Notifier) NotifyIntervalComplete(tr timer.Transition, next time.Duration) error {
	if tr.From == timer.ModeWork {
		return n.Notify("🍅 Pomodoro Complete!",
			fmt.Sprintf("Work session complete. Time for a %s %s.", formatMinutes(next), breakWord(tr.To)))
	}
	return n.Notify("☕ Break Over!", "Ready for another round?")
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

func breakWord(m timer.Mode) string {
	if m == timer.ModeLongBreak {
		return "long break"
	}
	return "break"
}

func formatMinutes(d time.Duration) string {
	m := int(d.Round(time.Minute).Minutes())
	switch {
	case m < 60:
		return fmt.Sprintf("%dm", m)
	case m%60 == 0:
		return fmt.Sprintf("%dh", m/60)
	default:
		return fmt.Sprintf("%dh%dm", m/60, m%60)
	}
}
