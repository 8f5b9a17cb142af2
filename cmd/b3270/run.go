package main

import (
	"os"

	"github.com/aretw0/b3270/internal/cli"
	"github.com/aretw0/b3270/internal/config"
	"github.com/aretw0/b3270/pkg/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the back-end on standard input and output",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		sm := runner.NewSignalManager(cmd.Context())
		defer sm.Stop()

		return cli.Run(sm.Context(), cfg, cli.Stdio{
			In:          os.Stdin,
			Out:         os.Stdout,
			Err:         os.Stderr,
			Interactive: term.IsTerminal(int(os.Stdin.Fd())),
		})
	},
}

// flagSettings maps run flags to the settings they override.
var flagSettings = map[string]string{
	"min-version": "min-version",
	"model":       "model",
	"oversize":    "oversize",
	"trace-file":  "trace-file",
	"httpd":       "httpd",
	"redis":       "redis.address",
	"log-level":   "log-level",
}

// loadConfig reads --config, then applies --set overrides, then the
// explicit flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	sets, _ := cmd.Flags().GetStringArray("set")
	for _, s := range sets {
		if err := cfg.Set(s); err != nil {
			return cfg, err
		}
	}

	for flag, setting := range flagSettings {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(flag)
		if err := cfg.Set(setting + "=" + value); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func addRunFlags(fs *pflag.FlagSet) {
	fs.String("min-version", "", "Fail unless this build is at least the given version")
	fs.String("model", "", "Terminal model, e.g. 3279-4")
	fs.String("oversize", "", "Screen oversize, as <rows>x<cols>")
	fs.String("trace-file", "", "Trace file used when tracing is on")
	fs.String("httpd", "", "Serve the HTTP API on this address")
	fs.String("redis", "", "Publish events to the Redis server at this address")
}

func init() {
	rootCmd.AddCommand(runCmd)

	addRunFlags(runCmd.Flags())

	// 'run' is the default when no command is given.
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE
}
