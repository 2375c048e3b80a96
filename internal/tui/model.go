// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/xvierd/pomo-cli/internal/clock"
	"github.com/xvierd/pomo-cli/internal/config"
	"github.com/xvierd/pomo-cli/internal/timer"
)

// tickInterval is the render/tick cadence. Remaining time is derived
// from a fresh clock sample on every tick, so the cadence affects only
// display smoothness and input latency, never timing accuracy.
const tickInterval = 50 * time.Millisecond

// tickMsg is sent on every timer tick.
type tickMsg time.Time

// Config carries the model's collaborators and presentation settings.
type Config struct {
	Theme config.ThemeConfig

	// OnIntervalComplete fires exactly once per natural transition
	// with the interval that just finished. It must not block the
	// update loop.
	OnIntervalComplete func(timer.Transition)
}

// Model drives the timer: each tick polls the machine with a fresh
// clock sample and every keypress maps to a machine operation. It is
// the machine's only writer.
type Model struct {
	machine            *timer.Machine
	clk                clock.Clock
	theme              config.ThemeConfig
	onIntervalComplete func(timer.Transition)

	progress progress.Model
	width    int
	height   int
}

// NewModel creates a new TUI model. The terminal size is probed up
// front so the first frame renders before the WindowSizeMsg arrives.
func NewModel(machine *timer.Machine, clk clock.Clock, cfg Config) Model {
	width, height := 80, 24
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		width, height = w, h
	}

	p := progress.New(progress.WithDefaultGradient())
	p.Width = width - 4

	return Model{
		machine:            machine,
		clk:                clk,
		theme:              resolveTheme(cfg.Theme),
		onIntervalComplete: cfg.OnIntervalComplete,
		progress:           p,
		width:              width,
		height:             height,
	}
}

// resolveTheme fills any empty fields with the default theme so a
// partial config file cannot produce invisible text.
func resolveTheme(theme config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme.ColorWork == "" {
		theme.ColorWork = defaults.ColorWork
	}
	if theme.ColorBreak == "" {
		theme.ColorBreak = defaults.ColorBreak
	}
	if theme.ColorMenu == "" {
		theme.ColorMenu = defaults.ColorMenu
	}
	if theme.ColorHelp == "" {
		theme.ColorHelp = defaults.ColorHelp
	}
	if theme.WorkGradientStart == "" {
		theme.WorkGradientStart = defaults.WorkGradientStart
	}
	if theme.WorkGradientEnd == "" {
		theme.WorkGradientEnd = defaults.WorkGradientEnd
	}
	if theme.BreakGradientStart == "" {
		theme.BreakGradientStart = defaults.BreakGradientStart
	}
	if theme.BreakGradientEnd == "" {
		theme.BreakGradientEnd = defaults.BreakGradientEnd
	}
	return theme
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "s":
			m.machine.Start(m.clk.Now())
		case "r":
			m.machine.Reset(m.clk.Now())
		case "q":
			if m.machine.Quit() {
				return m, tea.Quit
			}
		}
		// Unrecognized keys are ignored.

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 4

	case tickMsg:
		if tr, ok := m.machine.Tick(m.clk.Now()); ok && m.onIntervalComplete != nil {
			m.onIntervalComplete(tr)
		}
		return m, tickCmd()
	}

	return m, nil
}

// View renders one frame from scratch as a pure function of the
// machine state and the current clock sample.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.machine.Phase() == timer.PhaseMenu {
		return m.viewMenu()
	}
	return m.viewRunning()
}

func (m Model) viewMenu() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorWork)).MarginBottom(1)
	menuStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorMenu))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	iv := m.machine.Intervals()
	sections := []string{
		titleStyle.Render("🍅 Pomodoro"),
		menuStyle.Render(fmt.Sprintf("%s work · %s short break · %s long break",
			formatDuration(iv.Work), formatDuration(iv.ShortBreak), formatDuration(iv.LongBreak))),
		"",
		helpStyle.Render("[s] start next pomodoro"),
		helpStyle.Render("[r] reset cycle"),
		helpStyle.Render("[q] quit"),
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewRunning() string {
	now := m.clk.Now()
	mode := m.machine.Mode()
	color := m.modeColor(mode)

	statusStyle := lipgloss.NewStyle().Foreground(color)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var sections []string
	sections = append(sections, statusStyle.Render(mode.Label()))
	sections = append(sections, "")
	sections = append(sections, renderBigTime(formatDuration(m.machine.Remaining(now)), color, m.width))

	sections = append(sections, "")
	pbar := m.progressBar(mode)
	sections = append(sections, pbar.ViewAs(m.machine.Progress(now)))

	sections = append(sections, "")
	sections = append(sections, helpStyle.Render(m.cycleLabel()))

	sections = append(sections, "")
	sections = append(sections, helpStyle.Render("[r]eset  [q]uit to menu"))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// cycleLabel describes where in the work/break cycle the machine is.
// During a long break the position counter has already been zeroed, so
// the label derives "4 of 4" from the threshold instead.
func (m Model) cycleLabel() string {
	total := m.machine.SessionsBeforeLong()
	switch m.machine.Mode() {
	case timer.ModeShortBreak:
		return fmt.Sprintf("Pomodoro %d of %d complete", m.machine.Position(), total)
	case timer.ModeLongBreak:
		return fmt.Sprintf("Pomodoro %d of %d complete. You earned this one.", total, total)
	default:
		return fmt.Sprintf("Pomodoro %d of %d", m.machine.Position()+1, total)
	}
}

func (m Model) modeColor(mode timer.Mode) lipgloss.Color {
	if mode.IsBreak() {
		return lipgloss.Color(m.theme.ColorBreak)
	}
	return lipgloss.Color(m.theme.ColorWork)
}

func (m Model) progressBar(mode timer.Mode) progress.Model {
	var pbar progress.Model
	if mode.IsBreak() {
		pbar = progress.New(progress.WithGradient(m.theme.BreakGradientStart, m.theme.BreakGradientEnd))
	} else {
		pbar = progress.New(progress.WithGradient(m.theme.WorkGradientStart, m.theme.WorkGradientEnd))
	}
	pbar.Width = m.progress.Width
	return pbar
}

// tickCmd creates a command that sends a tick message.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// formatDuration formats a duration as MM:SS.
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
