package stack

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/go-quicktest/qt"

	"github.com/go-deck/deck/internal/core/def"
	"github.com/go-deck/deck/internal/core/ident"
)

// wantPanic runs f and fails the test unless it panics with a message
// containing substr.
func wantPanic(t *testing.T, substr string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", substr)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, substr) {
			t.Fatalf("expected panic containing %q, got %q", substr, msg)
		}
	}()
	f()
}

func litSeq(names ...string) ident.Seq {
	seq := make(ident.Seq, len(names))
	for i, n := range names {
		seq[i] = ident.Lit(n)
	}
	return seq
}

func TestPushDefAndResolve(t *testing.T) {
	s := New(nil)
	s.PushDef(litSeq("1"), def.MakeBase())

	res, ok := s.Resolve(litSeq("1"))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(res.Value.Kind, def.Base))
}

func TestResolveUnknownFails(t *testing.T) {
	s := New(nil)
	s.PushDef(litSeq("1"), def.MakeBase())

	_, ok := s.Resolve(litSeq("2"))
	qt.Assert(t, qt.IsFalse(ok))
}

func TestLaterPushShadowsEarlier(t *testing.T) {
	s := New(nil)
	s.PushDef(litSeq("x"), def.MakeBase())
	s.PushDef(litSeq("x"), def.MakeRef(litSeq("y")))

	res, ok := s.Resolve(litSeq("x"))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(res.Value.Kind, def.Ref))
}

func TestPushScopeShadowsOuter(t *testing.T) {
	s := New(nil)
	s.PushDef(litSeq("x"), def.MakeBase())
	s.PushScope(nil)
	s.PushDef(litSeq("x"), def.MakeRef(litSeq("y")))

	res, ok := s.Resolve(litSeq("x"))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(res.Value.Kind, def.Ref))

	s.PopScope()
	res, ok = s.Resolve(litSeq("x"))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(res.Value.Kind, def.Base))
}

func TestPopScopeUnderflowPanics(t *testing.T) {
	s := New(nil)
	wantPanic(t, "underflow", func() { s.PopScope() })
}

func TestPushDefAllParamsPanics(t *testing.T) {
	s := New(nil)
	pattern := ident.Seq{ident.Par("x"), ident.Par("y")}
	wantPanic(t, "non-parameter", func() { s.PushDef(pattern, def.MakeBase()) })
}

func TestResolveCapturesArgs(t *testing.T) {
	s := New(nil)
	pattern := ident.Seq{ident.Lit("f"), ident.Par("x")}
	s.PushDef(pattern, def.MakeBase())

	res, ok := s.Resolve(litSeq("f", "1"))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(res.Args["x"].Name, "1"))
}

func TestResolveCapturesMultipleArgs(t *testing.T) {
	s := New(nil)
	pattern := ident.Seq{ident.Par("x"), ident.Lit("+"), ident.Par("y")}
	s.PushDef(pattern, def.MakeBase())

	res, ok := s.Resolve(litSeq("1", "+", "2"))
	qt.Assert(t, qt.IsTrue(ok))

	want := ident.Args{"x": ident.Lit("1"), "y": ident.Lit("2")}
	if diff := cmp.Diff(want, res.Args); diff != "" {
		t.Fatalf("captured args mismatch (-want +got):\n%s", diff)
	}
}

func TestDepthTracksPushPop(t *testing.T) {
	s := New(nil)
	qt.Assert(t, qt.Equals(s.Depth(), 1))
	s.PushScope(nil)
	qt.Assert(t, qt.Equals(s.Depth(), 2))
	s.PopScope()
	qt.Assert(t, qt.Equals(s.Depth(), 1))
}
