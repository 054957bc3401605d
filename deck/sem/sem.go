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

// Package sem turns a forest of ast.SynNode into a stream of definitions:
// each group's children are greedily split into a leading run of
// well-formed sub-definitions ("body") and a trailing expression sequence
// ("exprs"), ready for the core evaluator to drive.
package sem

import (
	"github.com/go-deck/deck/deck/ast"
	"github.com/go-deck/deck/deck/token"
)

// ExprKind classifies an Expr.
type ExprKind int

const (
	ExprIdent ExprKind = iota
	ExprInner
	ExprError
)

// Expr is one element of an unclassified expression sequence: a bare
// identifier, a parenthesised sub-sequence, or a recovered parse error.
type Expr struct {
	Kind ExprKind
	Pos  token.Pos

	Name string // ExprIdent

	Inner []Expr // ExprInner

	Msg      string // ExprError
	Children []Expr // ExprError
}

// NodeKind classifies a Node.
type NodeKind int

const (
	NodeDef NodeKind = iota
	NodeErr
)

// Node is one definition-stream element: either a well-formed definition
// (idents, a nested body, and a trailing expression sequence) or a
// recovered parse error.
type Node struct {
	Kind NodeKind
	Pos  token.Pos

	// NodeDef
	Idents []Expr
	Body   []Node
	Exprs  []Expr

	// NodeErr
	Msg      string
	Children []Node
}

// Parse splits a syntax forest into a definition stream.
func Parse(nodes []ast.SynNode) []Node {
	defs, _ := parseDefVec(nodes)
	return defs
}
