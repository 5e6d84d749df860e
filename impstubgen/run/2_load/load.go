// Package load parses the Go files of one package directory into DST.
package load

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// Exported variables.
var (
	ErrNoGoFiles = errors.New("no go files found")
)

// PackageDST parses every .go file in dir, test files included, and returns
// the files in directory order together with their FileSet.
// Files that fail to parse are skipped; generated stubs from an earlier run
// must not block regeneration.
func PackageDST(dir string) ([]*dst.File, *token.FileSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	goFiles := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}

		goFiles = append(goFiles, filepath.Join(dir, entry.Name()))
	}

	if len(goFiles) == 0 {
		return nil, nil, fmt.Errorf("%w: in %s", ErrNoGoFiles, dir)
	}

	fset := token.NewFileSet()
	dec := decorator.NewDecorator(fset)

	files := make([]*dst.File, 0, len(goFiles))

	for _, goFile := range goFiles {
		dstFile, err := parseFile(fset, dec, goFile, nil)
		if err != nil {
			continue
		}

		files = append(files, dstFile)
	}

	if len(files) == 0 {
		return nil, nil, fmt.Errorf("%w: failed to parse any .go files in %s", ErrNoGoFiles, dir)
	}

	return files, fset, nil
}

// Source parses in-memory sources keyed by file name, in the given order.
// It backs loaders that do not read from disk.
func Source(names []string, sources map[string]string) ([]*dst.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	dec := decorator.NewDecorator(fset)

	files := make([]*dst.File, 0, len(names))

	for _, name := range names {
		dstFile, err := parseFile(fset, dec, name, sources[name])
		if err != nil {
			return nil, nil, err
		}

		files = append(files, dstFile)
	}

	if len(files) == 0 {
		return nil, nil, ErrNoGoFiles
	}

	return files, fset, nil
}

// parseFile parses with go/parser before decorating: the decorator does not
// survive files without a package clause.
func parseFile(fset *token.FileSet, dec *decorator.Decorator, name string, src any) (*dst.File, error) {
	astFile, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	dstFile, err := dec.DecorateFile(astFile)
	if err != nil {
		return nil, fmt.Errorf("failed to decorate %s: %w", name, err)
	}

	return dstFile, nil
}
