// Package debug renders evaluator diagnostics: scope-stack dumps for the
// STACK trace channel and call-id tagging for the CALL trace channel, so
// that nested, re-entrant evaluator steps can be told apart in output.
package debug

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/kr/pretty"

	"github.com/go-deck/deck/internal/core/stack"
)

// CallID tags a single Node expansion. The zero value means "not inside a
// Node expansion."
type CallID string

// NewCallID returns a fresh, short call id.
func NewCallID() CallID {
	return CallID(uuid.New().String()[:8])
}

// DumpStack pretty-prints every frame of s to w, in insertion order, for
// the STACK trace channel.
func DumpStack(w io.Writer, s *stack.Stack) {
	fmt.Fprintln(w, "----------stack----------")
	for i, f := range s.Frames() {
		fmt.Fprintf(w, "frame %d:\n", i)
		for _, e := range f.Entries {
			fmt.Fprintf(w, "  %# v: %# v\n", pretty.Formatter(e.Pattern), pretty.Formatter(e.Value))
		}
	}
}

// Call writes one CALL-channel trace entry: a header line, carrying id when
// it is non-empty, followed by line. The reducer calls it once per finished
// Node expansion, with that expansion's resulting value.
func Call(w io.Writer, id CallID, line string) {
	if id != "" {
		fmt.Fprintf(w, "----------call[%s]----------\n%s\n", id, line)
		return
	}
	fmt.Fprintf(w, "----------call----------\n%s\n", line)
}
