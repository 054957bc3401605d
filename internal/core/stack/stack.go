// Package stack implements the evaluator's scope stack: an ordered list
// of frames, each holding its own definition table and a cursor over the
// semantic-node stream that owns it.
package stack

import (
	"github.com/go-deck/deck/deck/sem"
	"github.com/go-deck/deck/deck/token"
	"github.com/go-deck/deck/internal/core/def"
	"github.com/go-deck/deck/internal/core/ident"
)

// Entry is one (pattern, value) pair installed in a Frame, in the order it
// was pushed.
type Entry struct {
	Pattern ident.Seq
	Value   def.Value
}

// Cursor advances over a stream of sem.Node, one at a time.
type Cursor struct {
	nodes []sem.Node
	pos   int
}

// NewCursor returns a Cursor over nodes.
func NewCursor(nodes []sem.Node) *Cursor { return &Cursor{nodes: nodes} }

// Next returns the next node, or ok=false once the stream is exhausted.
func (c *Cursor) Next() (sem.Node, bool) {
	if c.pos >= len(c.nodes) {
		return sem.Node{}, false
	}
	n := c.nodes[c.pos]
	c.pos++
	return n, true
}

// Frame is a single lexical scope: its entries, in program order, and the
// cursor over the node stream that introduced it.
type Frame struct {
	Entries []Entry
	Cursor  *Cursor
}

// Result is what Resolve returns on a successful match.
type Result struct {
	Pattern ident.Seq
	Value   def.Value
	Args    ident.Args
}

// Stack is the non-empty sequence of scope Frames. The top frame is the
// current lexical scope.
type Stack struct {
	frames []*Frame
}

// New returns a Stack with a single initial frame over nodes and no
// entries, per the core design's initial-state invariant.
func New(nodes []sem.Node) *Stack {
	return &Stack{frames: []*Frame{{Cursor: NewCursor(nodes)}}}
}

// PushScope pushes a new, empty frame over nodes.
func (s *Stack) PushScope(nodes []sem.Node) {
	s.frames = append(s.frames, &Frame{Cursor: NewCursor(nodes)})
}

// PopScope removes the top frame. Popping the last remaining frame is a
// programmer error: the driver contract guarantees push/pop pairing around
// Node expansion, and the initial frame is never popped.
func (s *Stack) PopScope() {
	if len(s.frames) <= 1 {
		def.Fatal(token.NoPos, "scope stack underflow")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// PushDef appends (pattern, value) to the current (top) frame's table.
// It is fatal for pattern to consist solely of Param elements: that would
// be an ambiguous global wildcard binding.
func (s *Stack) PushDef(pattern ident.Seq, value def.Value) {
	if allParams(pattern) {
		def.Fatal(token.NoPos, "a definition must have at least one non-parameter identifier")
	}
	top := s.frames[len(s.frames)-1]
	top.Entries = append(top.Entries, Entry{Pattern: pattern, Value: value})
}

func allParams(pattern ident.Seq) bool {
	for _, e := range pattern {
		if e.Kind != ident.Param {
			return false
		}
	}
	return true
}

// Resolve scans frames top-to-bottom and, within each frame, entries most-
// recently-inserted first, returning the first pattern that matches query.
// Shadowing is therefore innermost-first, latest-first.
func (s *Stack) Resolve(query ident.Seq) (Result, bool) {
	if len(query) == 0 {
		return Result{}, false
	}
	for i := len(s.frames) - 1; i >= 0; i-- {
		entries := s.frames[i].Entries
		for j := len(entries) - 1; j >= 0; j-- {
			e := entries[j]
			if args, ok := e.Pattern.Match(query); ok {
				return Result{Pattern: e.Pattern, Value: e.Value, Args: args}, true
			}
		}
	}
	return Result{}, false
}

// Next advances the top frame's cursor, the program stream the Driver
// consumes one node at a time.
func (s *Stack) Next() (sem.Node, bool) {
	return s.frames[len(s.frames)-1].Cursor.Next()
}

// Depth reports the number of frames currently on the stack; a fully
// evaluated program leaves this at 1.
func (s *Stack) Depth() int { return len(s.frames) }

// Frames exposes the frame list for diagnostic rendering (internal/debug)
// and for the REPL, which replaces the bottom frame's Cursor to feed each
// new line. Callers must not mutate the returned slice or frame entries.
func (s *Stack) Frames() []*Frame { return s.frames }
