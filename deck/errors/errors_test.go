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

package errors

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/go-deck/deck/deck/token"
)

func TestNew(t *testing.T) {
	err := New("boom")
	qt.Assert(t, qt.Equals(err.Error(), "boom"))
}

func TestNewf(t *testing.T) {
	f := token.NewFile("input.deck", 0)
	f.SetContent([]byte("x x { dbg! x }\n"))
	pos := f.Pos(2)

	err := Newf(pos, "parameter %q already bound in this pattern", "x")
	qt.Assert(t, qt.Equals(err.Error(), `parameter "x" already bound in this pattern`))
	qt.Assert(t, qt.Equals(err.Position(), pos))
}
