package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomo-cli/internal/config"
)

// configCmd prints the config file location and the effective values.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the configuration",
	Long:  `Show the config file location and the effective timer settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file: %s\n\n", path)
		fmt.Fprintf(out, "Timer:\n")
		fmt.Fprintf(out, "  work_duration:        %s\n", cfg.Timer.WorkDuration)
		fmt.Fprintf(out, "  short_break:          %s\n", cfg.Timer.ShortBreak)
		fmt.Fprintf(out, "  long_break:           %s\n", cfg.Timer.LongBreak)
		fmt.Fprintf(out, "  sessions_before_long: %d\n", cfg.Timer.SessionsBeforeLong)
		fmt.Fprintf(out, "Notifications:\n")
		fmt.Fprintf(out, "  enabled: %t\n", cfg.Notifications.Enabled)
		fmt.Fprintf(out, "  sound:   %t\n", cfg.Notifications.Sound)
		return nil
	},
}
