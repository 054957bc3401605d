// Package ident implements the pattern language of identifier sequences:
// literals, parameters, and parenthesised groups, along with matching and
// substitution over them.
package ident

import "fmt"

// Kind distinguishes the three shapes an Elem can take.
type Kind int

const (
	Literal Kind = iota
	Param
	Group
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Param:
		return "Param"
	case Group:
		return "Group"
	default:
		return "Kind(?)"
	}
}

// Elem is one element of an identifier sequence: a Literal or Param carries
// a Name, a Group carries a nested Seq.
type Elem struct {
	Kind Kind
	Name string
	Seq  Seq
}

func Lit(name string) Elem  { return Elem{Kind: Literal, Name: name} }
func Par(name string) Elem  { return Elem{Kind: Param, Name: name} }
func Grp(seq Seq) Elem      { return Elem{Kind: Group, Seq: seq} }

// Equal reports structural equality, including Param names.
func (e Elem) Equal(o Elem) bool {
	if e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case Group:
		return e.Seq.Equal(o.Seq)
	default:
		return e.Name == o.Name
	}
}

// Seq is an ordered sequence of Elem. The empty Seq is the base query.
type Seq []Elem

// Equal reports structural equality of two sequences.
func (s Seq) Equal(o Seq) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// String renders the canonical, human-readable form of s: literals joined
// by single spaces, groups wrapped in parentheses. Printing a Param is a
// programmer error and panics, per the language's display contract.
func (s Seq) String() string {
	out := ""
	for i, e := range s {
		if i > 0 {
			out += " "
		}
		switch e.Kind {
		case Literal:
			out += e.Name
		case Group:
			out += "(" + e.Seq.String() + ")"
		case Param:
			panic(fmt.Sprintf("ident: cannot print parameter %q", e.Name))
		}
	}
	return out
}

// Args maps a parameter name to the Elem captured for it during Match.
type Args map[string]Elem

// Match attempts to match query against pattern, capturing parameters.
// It fails (returns false) if the lengths differ or either is empty, or if
// any element-wise comparison mismatches. It panics if pattern binds the
// same parameter name twice, or if query contains a Param (queries must
// never carry one; see invariant 2 in the core design).
func (pattern Seq) Match(query Seq) (Args, bool) {
	if len(pattern) == 0 || len(query) == 0 || len(pattern) != len(query) {
		return nil, false
	}
	args := Args{}
	if !pattern.matchInto(query, args) {
		return nil, false
	}
	return args, true
}

func (pattern Seq) matchInto(query Seq, args Args) bool {
	for i, p := range pattern {
		q := query[i]
		if q.Kind == Param {
			panic(fmt.Sprintf("ident: query contains a parameter: %q", q.Name))
		}
		switch p.Kind {
		case Literal:
			if q.Kind != Literal || p.Name != q.Name {
				return false
			}
		case Group:
			if q.Kind != Group {
				return false
			}
			if len(p.Seq) != len(q.Seq) {
				return false
			}
			if !p.Seq.matchInto(q.Seq, args) {
				return false
			}
		case Param:
			if _, bound := args[p.Name]; bound {
				panic(fmt.Sprintf("ident: parameter already bound in this match: %q", p.Name))
			}
			args[p.Name] = q
		}
	}
	return true
}

// Substitute replaces every Param in pattern with its binding in args,
// recursing into Group elements. It panics if a Param has no binding.
func (pattern Seq) Substitute(args Args) Seq {
	out := make(Seq, len(pattern))
	for i, e := range pattern {
		switch e.Kind {
		case Param:
			bound, ok := args[e.Name]
			if !ok {
				panic(fmt.Sprintf("ident: unbound parameter in substitution: %q", e.Name))
			}
			out[i] = bound
		case Group:
			out[i] = Grp(e.Seq.Substitute(args))
		default:
			out[i] = e
		}
	}
	return out
}
