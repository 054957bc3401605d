package ident

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestMatchLiteral(t *testing.T) {
	pattern := Seq{Lit("a"), Lit("b")}
	args, ok := pattern.Match(Seq{Lit("a"), Lit("b")})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(args, 0))
}

func TestMatchMismatch(t *testing.T) {
	pattern := Seq{Lit("a")}
	_, ok := pattern.Match(Seq{Lit("b")})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestMatchLengthMismatch(t *testing.T) {
	pattern := Seq{Lit("a")}
	_, ok := pattern.Match(Seq{Lit("a"), Lit("b")})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestMatchEmptyFails(t *testing.T) {
	_, ok := Seq{}.Match(Seq{})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestMatchParamCapture(t *testing.T) {
	pattern := Seq{Par("$x"), Lit("+"), Par("$y")}
	args, ok := pattern.Match(Seq{Lit("1"), Lit("+"), Lit("2")})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(args, Args{"$x": Lit("1"), "$y": Lit("2")}))
}

func TestMatchGroup(t *testing.T) {
	pattern := Seq{Lit("f"), Grp(Seq{Par("$x")})}
	args, ok := pattern.Match(Seq{Lit("f"), Grp(Seq{Lit("g")})})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(args, Args{"$x": Lit("g")}))
}

func TestMatchGroupStructureMismatch(t *testing.T) {
	pattern := Seq{Grp(Seq{Lit("a")})}
	_, ok := pattern.Match(Seq{Lit("a")})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestMatchDoubleBindingPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on double binding")
		}
	}()
	pattern := Seq{Par("$x"), Par("$x")}
	pattern.Match(Seq{Lit("a"), Lit("b")})
}

func TestMatchQueryParamPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on query containing a parameter")
		}
	}()
	pattern := Seq{Lit("a")}
	pattern.Match(Seq{Par("$x")})
}

func TestSubstituteRoundTrip(t *testing.T) {
	pattern := Seq{Par("$x"), Lit("+"), Par("$y")}
	query := Seq{Lit("1"), Lit("+"), Lit("2")}
	args, ok := pattern.Match(query)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(pattern.Substitute(args), query))
}

func TestSubstituteUnboundPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on unbound parameter")
		}
	}()
	Seq{Par("$x")}.Substitute(Args{})
}

func TestStringPanicsOnParam(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic printing a parameter")
		}
	}()
	_ = Seq{Par("$x")}.String()
}

func TestStringGroup(t *testing.T) {
	s := Seq{Lit("f"), Grp(Seq{Lit("g"), Lit("x")})}
	qt.Assert(t, qt.Equals(s.String(), "f (g x)"))
}
