package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestResolvePathFindsFileAsGiven(t *testing.T) {
	path := writeProg(t, "1 {}\n")
	got, err := resolvePath(path)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, path))
}

func TestResolvePathSearchesSourceRoots(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "prog.deck"), []byte("1 {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	old := sourceRoots
	sourceRoots = []string{t.TempDir(), root}
	t.Cleanup(func() { sourceRoots = old })

	got, err := resolvePath("prog.deck")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, filepath.Join(root, "prog.deck")))
}

func TestResolvePathReportsSearchedCount(t *testing.T) {
	old := sourceRoots
	sourceRoots = []string{t.TempDir(), t.TempDir()}
	t.Cleanup(func() { sourceRoots = old })

	_, err := resolvePath("absent.deck")
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.StringContains(err.Error(), "searched 2 source root(s)"))
}

func TestLoadUsesSourceRoots(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "prog.deck"), []byte("1 {}\ndbg! { 1 }\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	old := sourceRoots
	sourceRoots = []string{root}
	t.Cleanup(func() { sourceRoots = old })

	nodes, err := load("prog.deck")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(nodes, 2))
}
