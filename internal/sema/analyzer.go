// Package sema implements the semantic analyzer (spec §4.3): three ordered
// passes over a topologically loaded module set that resolve names,
// compute expression types, bind symbol ids, and accumulate diagnostics
// without aborting.
package sema

import (
	"fmt"

	"cinder/internal/diag"
	"cinder/internal/project"
	"cinder/internal/source"
	"cinder/internal/symbols"
	"cinder/internal/types"
)

// Analyzer holds every piece of shared state the three passes mutate:
// the type context, the symbol table and scope stack, and the
// diagnostics bag. Analyzer owns none of the ASTs it walks — the loader
// does (spec §5 "Ownership").
type Analyzer struct {
	Types   *types.Context
	Symbols *symbols.Table
	Scopes  *symbols.Scopes

	bag *diag.Bag
	fs  *source.FileSet

	currentModule string
	currentReturn *types.Type
}

// New returns an Analyzer that reports through bag, resolving spans
// against fs.
func New(fs *source.FileSet, bag *diag.Bag) *Analyzer {
	return &Analyzer{
		Types:   types.NewContext(),
		Symbols: symbols.NewTable(),
		Scopes:  symbols.NewScopes(),
		bag:     bag,
		fs:      fs,
	}
}

// HadError reports whether any Error-severity diagnostic has been
// recorded so far (spec §4.3 "Diagnostics").
func (a *Analyzer) HadError() bool { return a.bag.HadError() }

// Analyze runs the three ordered passes over units, in the loader's
// topological order (spec §5 "Ordering guarantees"). The struct pass takes
// two sweeps (declare every struct name, then resolve fields); the
// signature and body passes take one sweep each.
func (a *Analyzer) Analyze(units []*project.Unit) {
	for _, u := range units {
		a.structPass(u.AST)
	}
	for _, u := range units {
		a.resolveStructFields(u.AST)
	}
	for _, u := range units {
		a.signaturePass(u.AST)
	}
	for _, u := range units {
		a.bodyPass(u.AST)
	}
}

func (a *Analyzer) report(sev diag.Severity, span source.Span, msg string) {
	a.bag.Report(a.fs, sev, span, msg)
}

func (a *Analyzer) errorAt(span source.Span, format string, args ...any) {
	a.report(diag.SevError, span, fmt.Sprintf(format, args...))
}

// qualify returns the MODULE.NAME global symbol spelling for a bare name
// declared inside the module currently being analyzed.
func (a *Analyzer) qualify(name string) string {
	return a.currentModule + "." + name
}
