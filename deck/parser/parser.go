// Copyright 2024 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parser turns a flat ast.Token stream into a forest of ast.SynNode,
// matching brackets and recovering mismatches as Err nodes rather than
// aborting.
package parser

import (
	"fmt"

	"github.com/go-deck/deck/deck/ast"
)

// Parse consumes tokens (already filtered of Spaces/Newlines) and returns
// the top-level forest.
func Parse(tokens []ast.Token) []ast.SynNode {
	p := &parser{toks: tokens}
	return p.manyTop()
}

type parser struct {
	toks []ast.Token
	pos  int
}

func (p *parser) peek() (ast.Token, bool) {
	if p.pos >= len(p.toks) {
		return ast.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (ast.Token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// many parses nodes until none can be produced, leaving a stray CloseBrac
// (if any) unconsumed for the caller — an open bracket's children stop at
// its own closer, which may or may not match.
func (p *parser) many() []ast.SynNode {
	var out []ast.SynNode
	for {
		n, ok := p.node()
		if !ok {
			return out
		}
		out = append(out, n)
	}
}

// manyTop is many for the top-level forest, where there is no enclosing
// bracket to hand a stray CloseBrac back to: it recovers the stray token as
// a SynErr node and keeps parsing, so a mismatched closer never truncates
// the rest of the source silently.
func (p *parser) manyTop() []ast.SynNode {
	var out []ast.SynNode
	for {
		n, ok := p.node()
		if ok {
			out = append(out, n)
			continue
		}
		stray, ok := p.next()
		if !ok {
			return out
		}
		out = append(out, ast.SynNode{
			Kind: ast.SynErr,
			Msg:  fmt.Sprintf("unexpected %q", stray.Ch),
			Pos:  stray.Pos,
			End:  stray.End,
		})
	}
}

// node parses one SynNode: a bare identifier, or a bracketed group.
func (p *parser) node() (ast.SynNode, bool) {
	t, ok := p.peek()
	if !ok {
		return ast.SynNode{}, false
	}

	switch t.Kind {
	case ast.Ident:
		p.next()
		return ast.SynNode{Kind: ast.SynIdent, Name: t.Name, Pos: t.Pos, End: t.End}, true

	case ast.OpenBrac:
		p.next()
		children := p.many()
		close, ok := p.peek()
		if !ok {
			return ast.SynNode{
				Kind:     ast.SynErr,
				Msg:      fmt.Sprintf("unclosed bracket %q", t.Ch),
				Children: children,
				Pos:      t.Pos,
				End:      t.End,
			}, true
		}
		if close.Kind != ast.CloseBrac {
			// Should not happen: many() only stops at a CloseBrac or EOF.
			return ast.SynNode{
				Kind:     ast.SynErr,
				Msg:      fmt.Sprintf("unclosed bracket %q", t.Ch),
				Children: children,
				Pos:      t.Pos,
				End:      t.End,
			}, true
		}
		p.next()
		if !matchBrac(t.Ch, close.Ch) {
			return ast.SynNode{
				Kind:     ast.SynErr,
				Msg:      fmt.Sprintf("mismatched brackets: %q and %q", t.Ch, close.Ch),
				Children: children,
				Pos:      t.Pos,
				End:      close.End,
			}, true
		}
		return ast.SynNode{
			Kind:     ast.SynBrac,
			Open:     t.Ch,
			Close:    close.Ch,
			Children: children,
			Pos:      t.Pos,
			End:      close.End,
		}, true

	default:
		// A bare CloseBrac (or anything else) ends the current group/forest
		// without being consumed, so the caller can match it.
		return ast.SynNode{}, false
	}
}

func matchBrac(open, close rune) bool {
	switch {
	case open == '(' && close == ')':
		return true
	case open == '{' && close == '}':
		return true
	default:
		return false
	}
}
