package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/go-deck/deck/internal/core/driver"
	"github.com/go-deck/deck/internal/core/stack"
	"github.com/go-deck/deck/internal/deckdebug"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "start an interactive deck session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// runRepl reads one definition per line from in and drives it against a
// single long-lived stack, so bases and functions defined on one line
// stay visible to later lines. Lines starting with ":" are meta-commands
// (":debug stack on", ":quit") rather than deck source.
func runRepl(in io.Reader, out, errOut io.Writer) error {
	d := driver.New(nil, out)
	lines := bufio.NewScanner(in)
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, ":"); ok {
			if quit, err := runMeta(rest, errOut); quit {
				return nil
			} else if err != nil {
				fmt.Fprintf(errOut, "deck: %v\n", err)
			}
			continue
		}

		d.Stack.Frames()[0].Cursor = stack.NewCursor(parse("<repl>", line))
		if err := stepAll(d); err != nil {
			fmt.Fprintf(errOut, "deck: %v\n", err)
		}
	}
	return lines.Err()
}

func stepAll(d *driver.Driver) (err error) {
	defer recoverFatal(&err)
	d.Drain()
	return err
}

// runMeta handles a ":"-prefixed REPL command. quit reports whether the
// session should end.
func runMeta(line string, errOut io.Writer) (quit bool, err error) {
	fields, err := shlex.Split(line)
	if err != nil {
		return false, fmt.Errorf("cannot parse command: %v", err)
	}
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return true, nil

	case "debug":
		return false, setDebugFlag(fields[1:])

	default:
		return false, fmt.Errorf("unknown command %q", fields[0])
	}
}

func setDebugFlag(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: :debug <stack|call> <on|off>")
	}
	on, err := strconv.ParseBool(args[1])
	switch args[1] {
	case "on":
		on, err = true, nil
	case "off":
		on, err = false, nil
	}
	if err != nil {
		return fmt.Errorf("invalid on/off value %q", args[1])
	}
	switch args[0] {
	case "stack":
		deckdebug.Flags.TraceStack = on
	case "call":
		deckdebug.Flags.TraceCall = on
	default:
		return fmt.Errorf("unknown debug channel %q", args[0])
	}
	return nil
}
