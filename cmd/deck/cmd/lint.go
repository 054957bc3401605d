package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-deck/deck/internal/lint"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file>",
		Short: "report duplicate top-level axiom definitions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := load(args[0])
			if err != nil {
				return err
			}

			warnings := lint.Check(nodes)
			for _, w := range warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", w)
			}
			if len(warnings) > 0 {
				return ErrPrintedError
			}
			return nil
		},
	}
}
