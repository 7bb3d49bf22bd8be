package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "MotionLab"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
	theme      string
}

func newRootCmd() *cobra.Command {
	options := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "motionlab",
		Short: "MotionLab is an interactive UI animation playground",
		Long: `MotionLab opens a window of small demos: a calculator with a live preview,
animated tiles, a flip card, a fading modal and themes with a timed notice.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(*options)
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&options.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.Flags().StringVar(&options.configPath, "config", "", "Settings file (default <config dir>/MotionLab/settings.yaml)")
	rootCmd.Flags().StringVar(&options.theme, "theme", "", "Start with this theme: light, dark or colorful")

	rootCmd.AddCommand(newCalcCmd(), newStatsCmd(), newVersionCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
