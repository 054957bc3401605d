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

package sem

import "github.com/go-deck/deck/deck/ast"

// parseExpr consumes one expression element from the front of nodes and
// reports how many ast.SynNode it consumed.
func parseExpr(nodes []ast.SynNode) (Expr, int, bool) {
	if len(nodes) == 0 {
		return Expr{}, 0, false
	}
	n := nodes[0]
	switch n.Kind {
	case ast.SynIdent:
		return Expr{Kind: ExprIdent, Name: n.Name, Pos: n.Pos}, 1, true

	case ast.SynBrac:
		if n.Open != '(' {
			return Expr{}, 0, false
		}
		inner, _ := parseExprVec(n.Children)
		return Expr{Kind: ExprInner, Inner: inner, Pos: n.Pos}, 1, true

	case ast.SynErr:
		var children []Expr
		if e, _, ok := parseExpr(n.Children); ok {
			children = []Expr{e}
		}
		return Expr{Kind: ExprError, Msg: n.Msg, Children: children, Pos: n.Pos}, 1, true

	default:
		return Expr{}, 0, false
	}
}

// parseExprVec greedily consumes expression elements from the front of
// nodes, stopping at the first node that cannot start an expression (e.g.
// a '{...}' group).
func parseExprVec(nodes []ast.SynNode) ([]Expr, int) {
	var exprs []Expr
	consumed := 0
	for consumed < len(nodes) {
		e, n, ok := parseExpr(nodes[consumed:])
		if !ok {
			break
		}
		exprs = append(exprs, e)
		consumed += n
	}
	return exprs, consumed
}

// parseDef consumes one definition from the front of nodes: a (possibly
// empty) run of expression elements followed by a mandatory '{...}' group.
func parseDef(nodes []ast.SynNode) (Node, int, bool) {
	idents, n := parseExprVec(nodes)
	if n >= len(nodes) {
		return Node{}, 0, false
	}

	brac := nodes[n]
	switch brac.Kind {
	case ast.SynBrac:
		if brac.Open != '{' {
			return Node{}, 0, false
		}
		body, bodyConsumed := parseDefVec(brac.Children)
		exprs, _ := parseExprVec(brac.Children[bodyConsumed:])
		return Node{
			Kind:   NodeDef,
			Pos:    brac.Pos,
			Idents: idents,
			Body:   body,
			Exprs:  exprs,
		}, n + 1, true

	case ast.SynErr:
		var children []Node
		if d, _, ok := parseDef(brac.Children); ok {
			children = []Node{d}
		}
		return Node{Kind: NodeErr, Pos: brac.Pos, Msg: brac.Msg, Children: children}, n + 1, true

	default:
		return Node{}, 0, false
	}
}

// parseDefVec greedily consumes as many well-formed definitions as
// possible from the front of nodes and reports how many ast.SynNode it
// consumed doing so; the rest of nodes is the trailing expression suffix.
func parseDefVec(nodes []ast.SynNode) ([]Node, int) {
	var defs []Node
	consumed := 0
	for consumed < len(nodes) {
		d, n, ok := parseDef(nodes[consumed:])
		if !ok {
			break
		}
		defs = append(defs, d)
		consumed += n
	}
	return defs, consumed
}
