// Package driver steps through a program's top-level definition stream,
// installing bindings on the scope stack and reducing dbg! expressions as
// it goes.
package driver

import (
	"io"

	"github.com/go-deck/deck/deck/sem"
	"github.com/go-deck/deck/internal/core/def"
	"github.com/go-deck/deck/internal/core/reduce"
	"github.com/go-deck/deck/internal/core/stack"
	"github.com/go-deck/deck/internal/debug"
	"github.com/go-deck/deck/internal/deckdebug"
)

const dbgSentinel = "dbg!"

// Driver drives a program's definition stream to completion.
type Driver struct {
	Stack   *stack.Stack
	Reducer *reduce.Reducer
}

// New returns a Driver over the top-level definition stream nodes, writing
// dbg!/trace output to out.
func New(nodes []sem.Node, out io.Writer) *Driver {
	s := stack.New(nodes)
	r := reduce.New(s, out)
	d := &Driver{Stack: s, Reducer: r}
	r.Drainer = d
	return d
}

// Run drives the program to completion.
func (d *Driver) Run() {
	d.Drain()
}

// Drain steps until the current top frame's node stream is exhausted. A
// Reducer expanding a Node calls this to fully install that Node's body
// before reducing its trailing expressions.
func (d *Driver) Drain() {
	for d.Step() {
	}
}

// Step consumes one node from the current frame's stream and applies it,
// returning false once the stream is exhausted.
func (d *Driver) Step() bool {
	node, ok := d.Stack.Next()
	if !ok {
		return false
	}

	if deckdebug.Flags.TraceStack {
		debug.DumpStack(d.Reducer.Out, d.Stack)
	}

	switch node.Kind {
	case sem.NodeErr:
		def.Fatal(node.Pos, "parse error: %s", node.Msg)

	case sem.NodeDef:
		d.step(node)
	}
	return true
}

func (d *Driver) step(node sem.Node) {
	if len(node.Idents) == 0 {
		return
	}

	// The dbg! sentinel check runs before the body check: a dbg! node
	// traces and installs nothing, even when its braces happen to contain
	// a well-formed sub-definition ahead of the traced expression.
	if isDbg(node.Idents) {
		exprIdents := d.Reducer.Classify(node.Exprs, reduce.AlwaysExpr)
		if _, ok := d.Reducer.Reduce(exprIdents, true); !ok {
			def.Fatal(node.Pos, "identifiers not found: %s", exprIdents.String())
		}
		return
	}

	if len(node.Body) > 0 {
		if len(node.Exprs) == 0 {
			def.Fatal(node.Pos, "definition with a body must have expressions")
		}
		pattern := d.Reducer.Classify(node.Idents, reduce.ResolveWithStack)
		d.Stack.PushDef(pattern, def.MakeNode(node.Body, node.Exprs))
		return
	}

	exprIdents := d.Reducer.Classify(node.Exprs, reduce.AlwaysExpr)
	value, ok := d.Reducer.Reduce(exprIdents, false)
	if !ok {
		def.Fatal(node.Pos, "identifiers not found: %s", exprIdents.String())
	}

	// A single bare identifier always (re-)declares itself as a fresh
	// literal name, whether its value is a true axiom (exprs was empty) or
	// a compound expression such as "1 + 1": the name being defined can
	// never have appeared in its own right-hand side. Only a multi-
	// identifier pattern (a function name plus its parameters) needs
	// ResolveWithStack to tell literals and parameters apart.
	mode := reduce.ResolveWithStack
	if len(node.Idents) == 1 {
		mode = reduce.AlwaysExpr
	}
	pattern := d.Reducer.Classify(node.Idents, mode)
	d.Stack.PushDef(pattern, value)
}

func isDbg(idents []sem.Expr) bool {
	last := idents[len(idents)-1]
	return last.Kind == sem.ExprIdent && last.Name == dbgSentinel
}
