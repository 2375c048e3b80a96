package tui

// Key-flow tests drive Update with synthetic key and tick messages so
// regressions in key dispatch or tick wiring fail fast here.

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/pomo-cli/internal/clock"
	"github.com/xvierd/pomo-cli/internal/timer"
)

func key(s string) tea.Msg {
	if s == "ctrl+c" {
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testMachine() *timer.Machine {
	return timer.NewMachine(timer.Intervals{
		Work:       time.Minute,
		ShortBreak: time.Minute,
		LongBreak:  time.Minute,
	}, timer.DefaultSessionsBeforeLong)
}

func testModel(machine *timer.Machine, clk clock.Clock, onComplete func(timer.Transition)) Model {
	m := NewModel(machine, clk, Config{OnIntervalComplete: onComplete})
	m.width = 80
	m.height = 24
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_StartKey_BeginsWorkInterval(t *testing.T) {
	machine := testMachine()
	clk := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	m := testModel(machine, clk, nil)

	m.Update(key("s"))

	if machine.Phase() != timer.PhaseRunning {
		t.Errorf("Phase() = %v after [s], want %v", machine.Phase(), timer.PhaseRunning)
	}
	if machine.Mode() != timer.ModeWork {
		t.Errorf("Mode() = %v after [s], want %v", machine.Mode(), timer.ModeWork)
	}
}

func TestModel_UnrecognizedKey_Ignored(t *testing.T) {
	machine := testMachine()
	clk := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	m := testModel(machine, clk, nil)

	_, cmd := m.Update(key("x"))

	if machine.Phase() != timer.PhaseMenu {
		t.Errorf("Phase() = %v after unrecognized key, want menu", machine.Phase())
	}
	if isQuit(cmd) {
		t.Error("unrecognized key should not quit")
	}
}

func TestModel_QuitKey_RunningReturnsToMenu(t *testing.T) {
	machine := testMachine()
	clk := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	machine.Start(clk.Now())
	m := testModel(machine, clk, nil)

	_, cmd := m.Update(key("q"))

	if machine.Phase() != timer.PhaseMenu {
		t.Errorf("Phase() = %v after [q] while running, want menu", machine.Phase())
	}
	if isQuit(cmd) {
		t.Error("[q] while running should return to menu, not terminate")
	}
}

func TestModel_QuitKey_AtMenuTerminates(t *testing.T) {
	machine := testMachine()
	clk := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	m := testModel(machine, clk, nil)

	_, cmd := m.Update(key("q"))

	if !isQuit(cmd) {
		t.Error("[q] at menu should terminate the program")
	}
}

func TestModel_CtrlC_AlwaysTerminates(t *testing.T) {
	machine := testMachine()
	clk := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	machine.Start(clk.Now())
	m := testModel(machine, clk, nil)

	_, cmd := m.Update(key("ctrl+c"))

	if !isQuit(cmd) {
		t.Error("ctrl+c should terminate even while running")
	}
}

func TestModel_ResetKey_RestartsCycle(t *testing.T) {
	machine := testMachine()
	clk := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	machine.Start(clk.Now())
	clk.Advance(time.Minute)
	machine.Tick(clk.Now()) // into the first short break, position 1
	m := testModel(machine, clk, nil)

	m.Update(key("r"))

	if machine.Mode() != timer.ModeWork {
		t.Errorf("Mode() = %v after [r], want work", machine.Mode())
	}
	if machine.Position() != 0 {
		t.Errorf("Position() = %d after [r], want 0", machine.Position())
	}
	if got := machine.Remaining(clk.Now()); got != time.Minute {
		t.Errorf("Remaining() = %v after [r], want a full work interval", got)
	}
}

func TestModel_Tick_FiresCompletionCallbackOnce(t *testing.T) {
	machine := testMachine()
	clk := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	machine.Start(clk.Now())

	var completions []timer.Transition
	m := testModel(machine, clk, func(tr timer.Transition) {
		completions = append(completions, tr)
	})

	clk.Advance(time.Minute)
	result, cmd := m.Update(tickMsg(clk.Now()))
	m = result.(Model)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	// Same instant again: edge-triggered, no second completion.
	m.Update(tickMsg(clk.Now()))

	if len(completions) != 1 {
		t.Fatalf("completion callback fired %d times, want 1", len(completions))
	}
	if completions[0].From != timer.ModeWork || completions[0].To != timer.ModeShortBreak {
		t.Errorf("completion = %v -> %v, want work -> short_break",
			completions[0].From, completions[0].To)
	}
}

func TestModel_Tick_NoCallbackBeforeExpiry(t *testing.T) {
	machine := testMachine()
	clk := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	machine.Start(clk.Now())

	fired := false
	m := testModel(machine, clk, func(timer.Transition) { fired = true })

	clk.Advance(59 * time.Second)
	m.Update(tickMsg(clk.Now()))

	if fired {
		t.Error("completion callback fired before the interval expired")
	}
}

func TestModel_View_Menu(t *testing.T) {
	machine := testMachine()
	clk := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	m := testModel(machine, clk, nil)

	view := m.View()

	if !strings.Contains(view, "start next pomodoro") {
		t.Error("menu view should list the start command")
	}
	if !strings.Contains(view, "[q] quit") {
		t.Error("menu view should list the quit command")
	}
}

func TestModel_View_RunningWork(t *testing.T) {
	machine := testMachine()
	clk := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	machine.Start(clk.Now())
	clk.Advance(10 * time.Second)
	m := testModel(machine, clk, nil)

	view := m.View()

	if !strings.Contains(view, "Work") {
		t.Error("running view should show the mode label")
	}
	if !strings.Contains(view, "Pomodoro 1 of 4") {
		t.Error("running view should show the cycle position")
	}
}

func TestModel_View_NarrowTerminalShowsPlainClock(t *testing.T) {
	machine := testMachine()
	clk := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	machine.Start(clk.Now())
	m := testModel(machine, clk, nil)
	m.width = 30

	view := m.View()

	if !strings.Contains(view, "01:00") {
		t.Error("narrow view should fall back to a plain MM:SS clock")
	}
}

func TestModel_CycleLabel_LongBreak(t *testing.T) {
	machine := testMachine()
	clk := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	machine.Start(clk.Now())

	// Drive the machine into the long break.
	for i := 0; i < 7; i++ {
		clk.Advance(time.Minute)
		machine.Tick(clk.Now())
	}
	if machine.Mode() != timer.ModeLongBreak {
		t.Fatalf("setup: Mode() = %v, want long_break", machine.Mode())
	}

	m := testModel(machine, clk, nil)
	if got := m.cycleLabel(); !strings.Contains(got, "4 of 4") {
		t.Errorf("cycleLabel() during long break = %q, want it to read 4 of 4", got)
	}
}

func TestModel_WindowSize(t *testing.T) {
	machine := testMachine()
	clk := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	m := testModel(machine, clk, nil)

	result, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated := result.(Model)

	if updated.width != 120 || updated.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", updated.width, updated.height)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{25 * time.Minute, "25:00"},
		{5*time.Minute + 30*time.Second, "05:30"},
		{45 * time.Second, "00:45"},
		{0, "00:00"},
		{100*time.Minute + 5*time.Second, "100:05"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatDuration(tt.d); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
