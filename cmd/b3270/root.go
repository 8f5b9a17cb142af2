package main

import (
	"os"

	"github.com/aretw0/b3270/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "b3270",
	Short: "b3270 is the event back-end of a 3270 terminal emulator",
	Long: `b3270 reads actions from standard input and writes events for a UI to
standard output, one per line. Logs and diagnostics go to standard error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		tui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Settings file (YAML, or JSON by extension)")
	rootCmd.PersistentFlags().StringArray("set", nil, "Override a setting, as name=value (repeatable)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}
