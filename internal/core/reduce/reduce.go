// Package reduce implements the resolve-and-rewrite loop: given a query
// identifier sequence, walk the scope stack until a terminal Base, Ref, or
// Expanded value is reached, expanding Node bindings (function calls) along
// the way.
package reduce

import (
	"fmt"
	"io"
	"os"

	"github.com/go-deck/deck/deck/sem"
	"github.com/go-deck/deck/deck/token"
	"github.com/go-deck/deck/internal/core/def"
	"github.com/go-deck/deck/internal/core/ident"
	"github.com/go-deck/deck/internal/core/stack"
	"github.com/go-deck/deck/internal/debug"
	"github.com/go-deck/deck/internal/deckdebug"
)

// Mode selects how Classify treats a bare identifier.
type Mode int

const (
	// ResolveWithStack classifies x as Literal if reduce([Literal(x)], false)
	// finds a Ref, as Param if it finds nothing, and is fatal for any other
	// outcome.
	ResolveWithStack Mode = iota
	// AlwaysExpr classifies every identifier as Literal, unconditionally.
	AlwaysExpr
	// AlwaysParam classifies every identifier as Param, unconditionally.
	AlwaysParam
)

// Drainer fully steps a driver over the node stream currently on top of the
// scope stack. Reducer needs this to drain a Node's body before reducing
// its exprs; the driver (which owns the step loop) supplies the
// implementation, injected after construction to avoid an import cycle.
type Drainer interface {
	Drain()
}

// Reducer resolves and rewrites identifier sequences against a Stack.
type Reducer struct {
	Stack   *stack.Stack
	Out     io.Writer
	Drainer Drainer
}

// New returns a Reducer over s. Callers that also drive the program (the
// normal case) must set the returned Reducer's Drainer field once their
// driver exists.
func New(s *stack.Stack, out io.Writer) *Reducer {
	return &Reducer{Stack: s, Out: out}
}

func (r *Reducer) trace(seq ident.Seq) {
	fmt.Fprintf(r.Out, "%s\n", seq.String())
}

// Reduce resolves query against the stack, expanding Ref/Expanded chains
// and Node calls, until a terminal value is reached. trace enables the
// dbg! output channel: every intermediate form is printed as it is
// produced.
func (r *Reducer) Reduce(query ident.Seq, trace bool) (def.Value, bool) {
	if len(query) == 0 {
		return def.MakeBase(), true
	}

	current := query
	hopped := false
	if trace {
		r.trace(current)
	}

	for {
		res, ok := r.Stack.Resolve(current)
		if deckdebug.Flags.LogReduce >= 1 {
			fmt.Fprintf(os.Stderr, "reduce: resolve %s -> ok=%v\n", current.String(), ok)
		}
		if !ok {
			if hopped {
				// current already matched at least once; it is a
				// canonical residual that simply does not reduce further.
				return def.MakeRef(current), true
			}
			if len(current) > 1 {
				return r.reduceCompound(current, trace)
			}
			return def.Value{}, false
		}

		switch res.Value.Kind {
		case def.Base:
			if len(res.Args) == 0 {
				return def.MakeRef(current), true
			}
			bound := ident.Args{}
			for param, arg := range res.Args {
				argSeq := ident.Seq{arg}
				if arg.Kind == ident.Group {
					argSeq = arg.Seq
				}
				reduced, ok := r.Reduce(argSeq, false)
				if !ok || (reduced.Kind != def.Ref && reduced.Kind != def.Expanded) {
					def.Fatal(token.NoPos, "argument did not reduce to a value: %s", argSeq.String())
				}
				if len(reduced.Target) == 1 {
					bound[param] = reduced.Target[0]
				} else {
					bound[param] = ident.Grp(reduced.Target)
				}
			}
			canon := res.Pattern.Substitute(bound)
			if trace {
				r.trace(canon)
			}
			return def.MakeExpanded(canon), true

		case def.Ref, def.Expanded:
			current = res.Value.Target
			hopped = true
			if trace {
				r.trace(current)
			}
			continue

		case def.Node:
			return r.expandNode(res, trace)
		}
	}
}

// reduceCompound handles a multi-element query with no matching pattern of
// that exact arity: each element is reduced independently (falling back to
// the element itself when it has no definition at all) and the results are
// spliced together. This is what lets axiom compositions like "1 + 1" stand
// as their own value without a caller ever declaring a "$a + $b {}"
// pattern.
func (r *Reducer) reduceCompound(seq ident.Seq, trace bool) (def.Value, bool) {
	out := make(ident.Seq, 0, len(seq))
	for _, e := range seq {
		sub := ident.Seq{e}
		if e.Kind == ident.Group {
			sub = e.Seq
		}
		val, ok := r.Reduce(sub, false)
		if ok && (val.Kind == def.Ref || val.Kind == def.Expanded) {
			out = append(out, val.Target...)
		} else {
			out = append(out, e)
		}
	}
	if trace {
		r.trace(out)
	}
	return def.MakeRef(out), true
}

func (r *Reducer) expandNode(res stack.Result, trace bool) (def.Value, bool) {
	id := debug.CallID("")
	if deckdebug.Flags.TraceCall {
		id = debug.NewCallID()
	}

	r.Stack.PushScope(res.Value.Body)
	for param, arg := range res.Args {
		r.Stack.PushDef(ident.Seq{ident.Lit(param)}, def.MakeRef(ident.Seq{arg}))
	}
	if r.Drainer == nil {
		def.Fatal(token.NoPos, "reducer has no drainer installed")
	}
	r.Drainer.Drain()

	innerIdents := r.Classify(res.Value.Exprs, AlwaysExpr)
	value, ok := r.Reduce(innerIdents, trace)
	if !ok {
		def.Fatal(token.NoPos, "identifiers not found: %s", innerIdents.String())
	}
	r.Stack.PopScope()

	if deckdebug.Flags.TraceCall {
		debug.Call(r.Out, id, value.Target.String())
	}
	return value, true
}

// Classify turns a raw expression sequence into an ident.Seq, according to
// mode.
func (r *Reducer) Classify(exprs []sem.Expr, mode Mode) ident.Seq {
	out := make(ident.Seq, 0, len(exprs))
	for _, e := range exprs {
		switch e.Kind {
		case sem.ExprIdent:
			out = append(out, r.classifyIdent(e, mode))
		case sem.ExprInner:
			out = append(out, ident.Grp(r.Classify(e.Inner, mode)))
		case sem.ExprError:
			def.Fatal(e.Pos, "parse error: %s", e.Msg)
		}
	}
	return out
}

func (r *Reducer) classifyIdent(e sem.Expr, mode Mode) ident.Elem {
	switch mode {
	case AlwaysExpr:
		return ident.Lit(e.Name)
	case AlwaysParam:
		return ident.Par(e.Name)
	default:
		query := ident.Seq{ident.Lit(e.Name)}
		val, ok := r.Reduce(query, false)
		switch {
		case ok && val.Kind == def.Ref:
			return ident.Lit(e.Name)
		case !ok:
			return ident.Par(e.Name)
		default:
			def.Fatal(e.Pos, "unexpected definition kind for %q during classification: %s", e.Name, val.Kind)
			panic("unreachable")
		}
	}
}
