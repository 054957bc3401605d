// Package cmd implements the deck command-line tool: run, repl, and lint.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-deck/deck/deck/errors"
	"github.com/go-deck/deck/internal/deckconfig"
	"github.com/go-deck/deck/internal/deckdebug"
)

// ErrPrintedError signals that an error's details were already printed (lint
// findings go to stdout), so Main should exit nonzero without printing it
// again.
var ErrPrintedError = errors.New("terminating because of errors")

// New builds the root command.
func New(args []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "deck",
		Short:         "deck evaluates programs in the deck term-rewriting language",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A flag set on the command line always wins over .deckrc.yaml
			// and DECK_DEBUG, since it's the most specific override.
			f := cmd.Flags()
			if f.Changed("trace-stack") {
				deckdebug.Flags.TraceStack, _ = f.GetBool("trace-stack")
			}
			if f.Changed("trace-call") {
				deckdebug.Flags.TraceCall, _ = f.GetBool("trace-call")
			}
			return nil
		},
	}

	addGlobalFlags(root.PersistentFlags())

	root.AddCommand(newRunCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newLintCmd())

	root.SetArgs(args)
	return root
}

// addGlobalFlags registers the flags shared by every subcommand.
func addGlobalFlags(f *pflag.FlagSet) {
	f.Bool("trace-stack", false, "print the scope stack before each evaluator step")
	f.Bool("trace-call", false, "print the result of each function-call (Node) expansion")
}

// Main runs deck and returns the code to pass to os.Exit.
func Main() int {
	if cfg, err := deckconfig.Load(os.Getenv); err == nil {
		deckdebug.Flags = cfg.Debug
		sourceRoots = cfg.SourceRoots
	}
	// An explicit DECK_DEBUG always wins over .deckrc.yaml.
	if err := deckdebug.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "deck: %v\n", err)
		return 1
	}

	cmd := New(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		if err != ErrPrintedError {
			fmt.Fprintf(os.Stderr, "deck: %v\n", err)
		}
		return 1
	}
	return 0
}
