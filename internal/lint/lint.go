// Package lint reports non-fatal diagnostics about a definition stream
// before it is driven: today, just duplicate top-level axiom names. It only
// reads the stream, so it cannot change results, even though `deck run`
// calls it before evaluating unless --no-lint is given.
package lint

import (
	"fmt"
	"sort"

	"github.com/mpvl/unique"

	"github.com/go-deck/deck/deck/sem"
	"github.com/go-deck/deck/deck/token"
)

// Warning is one lint finding.
type Warning struct {
	Name string
	Pos  token.Pos
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: duplicate top-level axiom %q", w.Pos, w.Name)
}

// stringSlice implements unique.Interface (sort.Interface plus Equal and
// Truncate) over a *[]string, so unique.Sort can shrink the backing slice
// in place once a sorted run of duplicates collapses to one entry.
type stringSlice struct{ p *[]string }

func (s stringSlice) Len() int            { return len(*s.p) }
func (s stringSlice) Less(i, j int) bool  { return (*s.p)[i] < (*s.p)[j] }
func (s stringSlice) Swap(i, j int)       { (*s.p)[i], (*s.p)[j] = (*s.p)[j], (*s.p)[i] }
func (s stringSlice) Equal(i, j int) bool { return (*s.p)[i] == (*s.p)[j] }
func (s stringSlice) Truncate(n int)      { *s.p = (*s.p)[:n] }

// Check scans the top-level definition stream for names declared as a
// bare single-identifier axiom (no body, no parameters) more than once.
// Later declarations shadow earlier ones at runtime (see
// internal/core/stack), so these are never fatal, but they are usually a
// typo or a leftover definition.
func Check(nodes []sem.Node) []Warning {
	type occurrence struct {
		name string
		pos  token.Pos
	}
	var axioms []occurrence
	for _, n := range nodes {
		if n.Kind != sem.NodeDef || len(n.Body) > 0 || len(n.Idents) != 1 {
			continue
		}
		e := n.Idents[0]
		if e.Kind != sem.ExprIdent {
			continue
		}
		axioms = append(axioms, occurrence{e.Name, n.Pos})
	}

	firstPos := make(map[string]token.Pos, len(axioms))
	sorted := make([]occurrence, len(axioms))
	copy(sorted, axioms)
	for _, o := range axioms {
		if _, seen := firstPos[o.name]; !seen {
			firstPos[o.name] = o.pos
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })

	// Every name with more than one occurrence appears as an adjacent
	// equal pair at least once in the sorted run; a name repeated three or
	// more times produces that pair more than once, which is exactly what
	// unique.Sort below collapses back down to a single report.
	var dupeNames []string
	for i := 1; i < len(sorted); i++ {
		if sorted[i].name == sorted[i-1].name {
			dupeNames = append(dupeNames, sorted[i].name)
		}
	}
	s := stringSlice{&dupeNames}
	sort.Sort(s)
	unique.Sort(s)

	warnings := make([]Warning, 0, len(dupeNames))
	for _, name := range dupeNames {
		warnings = append(warnings, Warning{Name: name, Pos: firstPos[name]})
	}
	return warnings
}
