package main

import (
	"fmt"
	"os"

	"github.com/aretw0/b3270"
	"github.com/aretw0/b3270/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the actions the back-end accepts",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := b3270.New()
		if err != nil {
			return err
		}
		defer backend.Close()

		doc := tui.ActionsMarkdown(backend.Actions())
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprint(cmd.OutOrStdout(), doc)
			return nil
		}

		render, err := tui.NewRenderer("")
		if err != nil {
			return err
		}
		out, err := render(doc)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
