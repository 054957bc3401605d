package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-deck/deck/deck/parser"
	"github.com/go-deck/deck/deck/scanner"
	"github.com/go-deck/deck/deck/sem"
	"github.com/go-deck/deck/deck/token"
)

// sourceRoots lists the directories load searches for a named source file,
// in order, when it isn't found as given. It is populated from
// .deckrc.yaml's sourceRoots key by Main before any command runs.
var sourceRoots []string

// load reads path and runs it through the scanner, parser, and semantic
// parser, returning the resulting definition stream.
func load(path string) ([]sem.Node, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %v", resolved, err)
	}
	return parse(resolved, string(src)), nil
}

// resolvePath returns path unchanged if it names an existing file;
// otherwise it searches sourceRoots, in order, for the first directory
// containing a file of that name.
func resolvePath(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	for _, root := range sourceRoots {
		candidate := filepath.Join(root, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("cannot find %s (searched %d source root(s))", path, len(sourceRoots))
}

func parse(filename, src string) []sem.Node {
	f := token.NewFile(filename, len(src))
	f.SetContent([]byte(src))
	tokens := scanner.Tokens(f, src)
	forest := parser.Parse(tokens)
	return sem.Parse(forest)
}

// recoverFatal turns a panic raised by internal/core/def.Fatal into a
// returned error, so a malformed program becomes a clean nonzero exit
// instead of a crash.
func recoverFatal(errp *error) {
	if r := recover(); r != nil {
		if err, ok := r.(error); ok {
			*errp = err
			return
		}
		panic(r)
	}
}
