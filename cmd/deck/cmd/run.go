package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-deck/deck/internal/core/driver"
	"github.com/go-deck/deck/internal/lint"
)

func newRunCmd() *cobra.Command {
	var noLint bool

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "evaluate a deck source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			nodes, err := load(args[0])
			if err != nil {
				return err
			}

			if !noLint {
				for _, w := range lint.Check(nodes) {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
				}
			}

			defer recoverFatal(&err)
			driver.New(nodes, cmd.OutOrStdout()).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&noLint, "no-lint", false, "skip the duplicate-axiom lint pass")
	return cmd
}
