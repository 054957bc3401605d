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

// Package scanner turns deck source text into a stream of ast.Tokens:
// brackets, identifiers, and runs of whitespace.
package scanner

import (
	"unicode"
	"unicode/utf8"

	"github.com/go-deck/deck/deck/ast"
	"github.com/go-deck/deck/deck/token"
)

// isBracket reports whether r is one of the four bracket characters. The
// scanner treats '{'/'}' exactly like '('/')' for both token recognition
// and identifier-boundary purposes.
func isBracket(r rune) bool {
	switch r {
	case '(', ')', '{', '}':
		return true
	default:
		return false
	}
}

// Scanner tokenizes a single source file.
type Scanner struct {
	file *token.File
	src  string
	off  int // byte offset into src
}

// New returns a Scanner over src, whose positions are resolved against file.
// file.SetContent(src) must already have been called.
func New(file *token.File, src string) *Scanner {
	return &Scanner{file: file, src: src}
}

// Next returns the next token, or ok=false at end of input.
func (s *Scanner) Next() (tok ast.Token, ok bool) {
	if s.off >= len(s.src) {
		return ast.Token{}, false
	}
	start := s.off
	r, w := utf8.DecodeRuneInString(s.src[s.off:])

	switch {
	case r == '(' || r == '{':
		s.off += w
		return s.token(ast.OpenBrac, start, s.off, r, ""), true

	case r == ')' || r == '}':
		s.off += w
		return s.token(ast.CloseBrac, start, s.off, r, ""), true

	case r == '\n' || r == '\r':
		s.off += w
		for s.off < len(s.src) {
			r2, w2 := utf8.DecodeRuneInString(s.src[s.off:])
			if r2 != '\n' && r2 != '\r' {
				break
			}
			s.off += w2
		}
		return s.token(ast.Newlines, start, s.off, 0, ""), true

	case unicode.IsSpace(r):
		s.off += w
		for s.off < len(s.src) {
			r2, w2 := utf8.DecodeRuneInString(s.src[s.off:])
			if !unicode.IsSpace(r2) {
				break
			}
			s.off += w2
		}
		return s.token(ast.Spaces, start, s.off, 0, ""), true

	default:
		s.off += w
		for s.off < len(s.src) {
			r2, w2 := utf8.DecodeRuneInString(s.src[s.off:])
			if unicode.IsSpace(r2) || isBracket(r2) {
				break
			}
			s.off += w2
		}
		return s.token(ast.Ident, start, s.off, 0, s.src[start:s.off]), true
	}
}

func (s *Scanner) token(kind ast.TokenKind, start, end int, ch rune, name string) ast.Token {
	return ast.Token{
		Kind: kind,
		Pos:  s.file.Pos(start),
		End:  s.file.Pos(end),
		Ch:   ch,
		Name: name,
	}
}

// Tokens scans all of file's content and returns the full token slice,
// with Spaces and Newlines filtered out, as consumed by the syntax parser.
func Tokens(file *token.File, src string) []ast.Token {
	sc := New(file, src)
	var out []ast.Token
	for {
		t, ok := sc.Next()
		if !ok {
			break
		}
		if t.Kind == ast.Spaces || t.Kind == ast.Newlines {
			continue
		}
		out = append(out, t)
	}
	return out
}
