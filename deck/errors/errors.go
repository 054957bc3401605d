// Copyright 2018 The CUE Authors
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

// Package errors defines the error types used throughout deck: a plain
// sentinel for CLI-level failures, and a position-carrying Error for
// evaluator diagnostics raised by internal/core/def.Fatal.
package errors

import (
	"errors"
	"fmt"

	"github.com/go-deck/deck/deck/token"
)

// New is a convenience wrapper for [errors.New] in the core library.
// It does not return a deck error.
func New(msg string) error {
	return errors.New(msg)
}

// Error is a deck error that knows where in the source it occurred.
type Error interface {
	error

	// Position returns the source position the error occurred at, or
	// token.NoPos if none is available.
	Position() token.Pos
}

// Newf creates an Error with the associated position and message.
func Newf(p token.Pos, format string, args ...interface{}) Error {
	return &posError{pos: p, msg: fmt.Sprintf(format, args...)}
}

type posError struct {
	pos token.Pos
	msg string
}

func (e *posError) Error() string       { return e.msg }
func (e *posError) Position() token.Pos { return e.pos }
