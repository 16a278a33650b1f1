package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"plotstack/internal/logging"
	"plotstack/internal/tui"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		layoutPath string
		refresh    time.Duration
		logLevel   string
		logFile    string
	)
	cmd := &cobra.Command{
		Use:           "plotstack [TELEMETRY_FILE]",
		Short:         "Terminal viewer for stacked telemetry plots with a synchronized time axis",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(logLevel, logFile)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			opts := tui.Options{
				LayoutPath: layoutPath,
				Refresh:    refresh,
				Log:        log,
			}
			if len(args) == 1 {
				opts.Path = args[0]
			}
			m := tui.New(opts)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "YAML display layout (plots and readouts)")
	cmd.Flags().DurationVarP(&refresh, "refresh", "r", 0, "reload interval for the telemetry file (0 disables)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "log file path (logging disabled when empty)")
	return cmd
}
