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

// Package ast holds the surface syntax types shared by the scanner, parser,
// and semantic parser: lexical tokens and the bracket-matching syntax tree.
package ast

import (
	"fmt"

	"github.com/go-deck/deck/deck/token"
)

// TokenKind classifies a lexical Token.
type TokenKind int

const (
	OpenBrac TokenKind = iota
	CloseBrac
	Ident
	Spaces
	Newlines
)

func (k TokenKind) String() string {
	switch k {
	case OpenBrac:
		return "OpenBrac"
	case CloseBrac:
		return "CloseBrac"
	case Ident:
		return "Ident"
	case Spaces:
		return "Spaces"
	case Newlines:
		return "Newlines"
	default:
		return "TokenKind(?)"
	}
}

// Token is a single lexical token, spanning [Pos, End) in its source File.
type Token struct {
	Kind TokenKind
	Pos  token.Pos
	End  token.Pos

	// Ch holds the bracket character for OpenBrac/CloseBrac tokens.
	Ch rune

	// Name holds the identifier text for Ident tokens.
	Name string
}

func (t Token) String() string {
	switch t.Kind {
	case OpenBrac, CloseBrac:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Ch)
	case Ident:
		return fmt.Sprintf("Ident(%q)", t.Name)
	default:
		return t.Kind.String()
	}
}

// SynKind classifies a SynNode.
type SynKind int

const (
	SynIdent SynKind = iota
	SynBrac
	SynErr
)

// SynNode is a node of the bracket-matching syntax forest produced by the
// parser: a bare identifier, a bracketed group, or a recovered error.
type SynNode struct {
	Kind SynKind
	Pos  token.Pos
	End  token.Pos

	// Name holds the identifier text for SynIdent nodes.
	Name string

	// Open and Close hold the bracket characters for SynBrac nodes.
	Open, Close rune

	// Children holds the nested forest for SynBrac and SynErr nodes.
	Children []SynNode

	// Msg holds the diagnostic message for SynErr nodes.
	Msg string
}

// SimpleDisplay renders a debug-oriented tree form of n, one indented line
// per descendant.
func (n SynNode) SimpleDisplay() string {
	return n.simpleDisplay(0)
}

func (n SynNode) simpleDisplay(depth int) string {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "    "
	}
	switch n.Kind {
	case SynIdent:
		return fmt.Sprintf("%sIdent %q", indent, n.Name)
	case SynBrac:
		s := fmt.Sprintf("%sBrac %q%q", indent, n.Open, n.Close)
		for _, c := range n.Children {
			s += "\n" + c.simpleDisplay(depth+1)
		}
		return s
	case SynErr:
		s := fmt.Sprintf("%sError %q", indent, n.Msg)
		for _, c := range n.Children {
			s += "\n" + c.simpleDisplay(depth+1)
		}
		return s
	default:
		return indent + "?"
	}
}
