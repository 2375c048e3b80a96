// Package cmd provides the CLI commands for the Pomo application.
package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomo-cli/internal/clock"
	"github.com/xvierd/pomo-cli/internal/config"
	"github.com/xvierd/pomo-cli/internal/notification"
	"github.com/xvierd/pomo-cli/internal/timer"
	"github.com/xvierd/pomo-cli/internal/tui"
)

// Version info (set at build time via ldflags)
var (
	Version   = "dev"
	BuildDate = "unknown"
)

// Duration flags, in minutes. Flag values only take effect when the
// flag was given on the command line; otherwise the config file wins.
var (
	workMinutes  int
	shortMinutes int
	longMinutes  int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "Pomo - a terminal pomodoro timer",
	Long: `Pomo is a terminal pomodoro timer: alternating work and break
intervals with a long break every fourth pomodoro, a live countdown,
and a desktop notification when each interval completes.

Press s to start, r to reset the cycle, q to quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&workMinutes, "work", "w", 25, "Work duration in minutes")
	rootCmd.Flags().IntVarP(&shortMinutes, "shortbreak", "s", 5, "Short break duration in minutes")
	rootCmd.Flags().IntVarP(&longMinutes, "longbreak", "l", 20, "Long break duration in minutes")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Pomo CLI\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies any command line flag
// overrides. Invalid durations are a configuration error reported
// before the timer is constructed.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		// A broken or unreadable config file should not keep the
		// timer from running.
		cfg = config.DefaultConfig()
	}

	if cmd.Flags().Changed("work") {
		cfg.Timer.WorkDuration = config.Duration(time.Duration(workMinutes) * time.Minute)
	}
	if cmd.Flags().Changed("shortbreak") {
		cfg.Timer.ShortBreak = config.Duration(time.Duration(shortMinutes) * time.Minute)
	}
	if cmd.Flags().Changed("longbreak") {
		cfg.Timer.LongBreak = config.Duration(time.Duration(longMinutes) * time.Minute)
	}

	if err := validateIntervals(cfg.Intervals()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateIntervals rejects non-positive durations.
func validateIntervals(iv timer.Intervals) error {
	if iv.Work <= 0 {
		return fmt.Errorf("work duration must be positive, got %s", iv.Work)
	}
	if iv.ShortBreak <= 0 {
		return fmt.Errorf("short break duration must be positive, got %s", iv.ShortBreak)
	}
	if iv.LongBreak <= 0 {
		return fmt.Errorf("long break duration must be positive, got %s", iv.LongBreak)
	}
	return nil
}

// runTimer wires the machine, clock, notifier and TUI together and
// blocks until the user quits.
func runTimer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	machine := timer.NewMachine(cfg.Intervals(), cfg.Timer.SessionsBeforeLong)
	notifier := notification.New(&cfg.Notifications)

	model := tui.NewModel(machine, clock.New(), tui.Config{
		Theme: cfg.Theme,
		OnIntervalComplete: func(tr timer.Transition) {
			// Fire and forget: a slow or failed desktop
			// notification must never stall a tick.
			next := machine.Intervals().Duration(tr.To)
			go func() {
				_ = notifier.NotifyIntervalComplete(tr, next)
			}()
		},
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("timer error: %w", err)
	}
	return nil
}
