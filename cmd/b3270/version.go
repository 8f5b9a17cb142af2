package main

import (
	"fmt"

	"github.com/aretw0/b3270"
	"github.com/aretw0/b3270/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of b3270",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", b3270.Build, b3270.Copyright)
	},
}

var checkVersionCmd = &cobra.Command{
	Use:   "check-version <minimum>",
	Short: "Exit with an error unless this build is at least <minimum>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := version.Check(b3270.Version, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s satisfies %s\n", spec, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkVersionCmd)
}
