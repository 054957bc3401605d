package driver

import (
	"bytes"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/go-deck/deck/deck/parser"
	"github.com/go-deck/deck/deck/scanner"
	"github.com/go-deck/deck/deck/sem"
	"github.com/go-deck/deck/deck/token"
)

func run(t *testing.T, src string) string {
	t.Helper()
	f := token.NewFile("test.deck", 0)
	f.SetContent([]byte(src))
	nodes := sem.Parse(parser.Parse(scanner.Tokens(f, src)))

	var out bytes.Buffer
	d := New(nodes, &out)
	d.Run()
	return out.String()
}

func TestDbgPrintsAxiom(t *testing.T) {
	out := run(t, "1 {} dbg! { 1 }")
	qt.Assert(t, qt.Equals(out, "1\n"))
}

func TestDbgPrintsRefChain(t *testing.T) {
	out := run(t, "1 {} one { 1 } dbg! { one }")
	qt.Assert(t, qt.Equals(out, "one\n1\n"))
}

func TestDbgPrintsCompoundExpression(t *testing.T) {
	out := run(t, "1 {} + {} 2 { 1 + 1 } dbg! { 2 }")
	qt.Assert(t, qt.Equals(out, "2\n1 + 1\n"))
}

func TestDbgPrintsNestedCompound(t *testing.T) {
	out := run(t, "1 {} + {} 2 { 1 + 1 } 3 { 2 + 1 } dbg! { 3 }")
	qt.Assert(t, qt.Equals(out, "3\n1 + 1 + 1\n"))
}

func TestShadowingLaterDefinitionWins(t *testing.T) {
	out := run(t, "1 {} 2 {} x { 1 } x { 2 } dbg! { x }")
	qt.Assert(t, qt.Equals(out, "x\n2\n"))
}

func TestEmptyIdentsDefinitionIsSkipped(t *testing.T) {
	out := run(t, "{ a stray comment } 1 {} dbg! { 1 }")
	qt.Assert(t, qt.Equals(out, "1\n"))
}

func TestNodeCallExpandsParameter(t *testing.T) {
	out := run(t, "1 {} + {} f {} f $x { f_body {} f_body { $x + $x } f_body } dbg! { f 1 }")
	qt.Assert(t, qt.Equals(out, "f 1\nf_body\n1 + 1\n"))
}

// A dbg! node whose braces happen to start with a well-formed sub-
// definition must still just trace its trailing expression and install
// nothing: the dbg! sentinel check takes precedence over the body check.
func TestDbgSentinelTakesPrecedenceOverBody(t *testing.T) {
	out := run(t, "1 {} x { 1 } dbg! { x {} x }")
	qt.Assert(t, qt.Equals(out, "x\n1\n"))
}

// Covers spec.md §8 scenario 5: a two-parameter pattern installed alongside
// a plain axiom of the same name. Installing "2 { 1 + 1 }" itself resolves
// against the freshly-registered "$a + $b {}" pattern (rather than falling
// back to an elementwise splice), so "2" ends up Expanded to "1 + 1", not a
// Ref to itself.
func TestDbgPrintsTwoParamPatternReduction(t *testing.T) {
	out := run(t, "1 {} + {} 2 {} $a + $b {} 2 { 1 + 1 } dbg! { 2 }")
	qt.Assert(t, qt.Equals(out, "2\n1 + 1\n1 + 1\n"))
}
