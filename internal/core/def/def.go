// Package def holds the evaluator's definition values: the right-hand
// side a pattern resolves to, once installed on the scope stack.
package def

import (
	"github.com/go-deck/deck/deck/sem"
	"github.com/go-deck/deck/deck/token"
	"github.com/go-deck/deck/internal/core/ident"

	"github.com/go-deck/deck/deck/errors"
)

// Kind distinguishes the four shapes a Value can take.
type Kind int

const (
	// Base is an axiom: the pattern exists but has no further reduction.
	Base Kind = iota

	// Ref is an alias: resolving a matching query continues by resolving
	// Target.
	Ref

	// Expanded has the same resolution semantics as Ref; the distinction
	// records that Target was produced by parameter substitution, which
	// matters only for diagnostics/tracing.
	Expanded

	// Node is a function-like binding: matching it opens a new scope over
	// Body, drains it, then reduces Exprs to the final value.
	Node
)

func (k Kind) String() string {
	switch k {
	case Base:
		return "Base"
	case Ref:
		return "Ref"
	case Expanded:
		return "Expanded"
	case Node:
		return "Node"
	default:
		return "Kind(?)"
	}
}

// Value is a definition's right-hand side.
type Value struct {
	Kind Kind

	// Target holds the alias target for Ref and Expanded.
	Target ident.Seq

	// Body and Exprs hold the deferred sub-program for Node: Body is
	// drained into a fresh scope before Exprs is classified and reduced.
	Body  []sem.Node
	Exprs []sem.Expr
}

func MakeBase() Value                 { return Value{Kind: Base} }
func MakeRef(target ident.Seq) Value  { return Value{Kind: Ref, Target: target} }
func MakeExpanded(t ident.Seq) Value  { return Value{Kind: Expanded, Target: t} }
func MakeNode(body []sem.Node, exprs []sem.Expr) Value {
	return Value{Kind: Node, Body: body, Exprs: exprs}
}

// Fatal panics with a deck/errors.Error carrying pos, so every evaluator
// invariant violation surfaces with a source location when one is
// available (token.NoPos otherwise).
func Fatal(pos token.Pos, format string, args ...interface{}) {
	panic(errors.Newf(pos, format, args...))
}
