// Package project implements the dependency-aware module loader (spec
// §4.1): depth-first traversal keyed by canonicalized path, cycle
// detection, and a topologically ordered module set for the analyzer.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/lexer"
	"cinder/internal/parser"
	"cinder/internal/source"
)

// VisitState tags a path's progress through the DFS traversal.
type VisitState uint8

const (
	Unvisited VisitState = iota
	Visiting
	Visited
)

// Unit is one loaded module: its normalized path and parsed AST (spec §3
// "Module unit").
type Unit struct {
	Path string
	AST  *ast.Module
}

// Loader loads a set of entry files and their transitive imports into a
// topologically ordered []*Unit (spec §4.1).
type Loader struct {
	fs       *source.FileSet
	reporter diag.Reporter
	roots    []string

	nameToPath map[string]string
	state      map[string]VisitState
	units      map[string]*Unit
	stack      []string
	order      []*Unit
	lastErr    error
}

// NewLoader returns a Loader that reads files through fs and searches
// roots (in order) plus each importing file's own directory when
// resolving `import NAME;`.
func NewLoader(fs *source.FileSet, reporter diag.Reporter, roots []string) *Loader {
	return &Loader{
		fs:         fs,
		reporter:   reporter,
		roots:      roots,
		nameToPath: make(map[string]string),
		state:      make(map[string]VisitState),
		units:      make(map[string]*Unit),
	}
}

// LastError returns the error for the first unrecoverable failure (its
// message is the diagnostic text), or nil if none has occurred. Callers must not invoke semantic
// analysis after a failed load (spec §4.1 "Failure semantics").
func (l *Loader) LastError() error { return l.lastErr }

// LoadEntries loads every entry path and its transitive imports, returning
// the ordered unit list. On failure it returns the same error available
// from LastError and the caller must stop.
func (l *Loader) LoadEntries(entryPaths []string) ([]*Unit, error) {
	for _, p := range entryPaths {
		norm, err := canonicalize(p)
		if err != nil {
			return nil, l.fail("I/O error resolving %s: %v", p, err)
		}
		if err := l.load(norm); err != nil {
			return nil, err
		}
	}
	return l.order, nil
}

func (l *Loader) load(path string) error {
	switch l.state[path] {
	case Visited:
		return nil
	case Visiting:
		return l.cycleError(path)
	}

	l.state[path] = Visiting
	l.stack = append(l.stack, path)
	defer func() {
		l.stack = l.stack[:len(l.stack)-1]
	}()

	content, err := os.ReadFile(path) // #nosec G304 -- path resolved by the loader itself
	if err != nil {
		return l.fail("I/O error reading %s: %v", path, err)
	}

	fileID := l.fs.Add(path, content, 0)
	file := l.fs.Get(fileID)
	lx := lexer.New(file, lexer.Options{Reporter: l.reporter})
	ps := parser.New(lx, l.reporter)
	mod, err := ps.Parse()
	if err != nil {
		l.lastErr = err
		return err
	}

	modName := mod.Name.Lexeme
	if existing, ok := l.nameToPath[modName]; ok && existing != path {
		return l.fail("duplicate module name %q declared in both %s and %s", modName, existing, path)
	}
	l.nameToPath[modName] = path
	l.units[path] = &Unit{Path: path, AST: mod}

	for _, stmt := range mod.Stmts {
		imp, ok := stmt.(*ast.Import)
		if !ok {
			continue
		}
		importPath, err := l.resolveImport(imp.ModName.Lexeme, filepath.Dir(path))
		if err != nil {
			return err
		}
		if err := l.load(importPath); err != nil {
			return err
		}
	}

	l.state[path] = Visited
	l.order = append(l.order, l.units[path])
	return nil
}

// resolveImport implements spec §4.1 "Import resolution": (a) an
// already-indexed module name, (b) NAME.ci under a configured root, (c)
// NAME.ci as a sibling of the importing file.
func (l *Loader) resolveImport(name, importingDir string) (string, error) {
	if p, ok := l.nameToPath[name]; ok {
		return p, nil
	}
	for _, root := range l.roots {
		candidate := filepath.Join(root, name+".ci")
		if fileExists(candidate) {
			return canonicalize(candidate)
		}
	}
	sibling := filepath.Join(importingDir, name+".ci")
	if fileExists(sibling) {
		return canonicalize(sibling)
	}
	return "", l.fail("unresolved import %q", name)
}

// cycleError builds the "A -> B -> ... -> A" chain message (spec §4.1
// "Cycle reporting").
func (l *Loader) cycleError(path string) error {
	idx := 0
	for i, p := range l.stack {
		if p == path {
			idx = i
			break
		}
	}
	chain := append(append([]string{}, l.stack[idx:]...), path)
	return l.fail("Import cycle detected: %s", strings.Join(chain, " -> "))
}

func (l *Loader) fail(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	l.lastErr = err
	return err
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
