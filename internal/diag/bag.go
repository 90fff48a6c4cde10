package diag

import (
	"fmt"
	"io"
	"sort"

	"fortio.org/safecast"

	"cinder/internal/source"
)

// Bag buffers diagnostics for one compile, up to a capacity limit. The
// analyzer never aborts on an error (spec §4.3/§7); it keeps pushing into
// the Bag instead.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag returns a Bag that accepts at most max diagnostics.
func NewBag(maximum int) *Bag {
	m, err := safecast.Conv[uint16](maximum)
	if err != nil {
		panic(fmt.Errorf("diag: bag capacity overflow: %w", err))
	}
	return &Bag{max: m}
}

// Report appends a diagnostic, computing its Line from fs if fs is non-nil
// and Line has not already been set. Returns false if the bag is full.
func (b *Bag) Report(fs *source.FileSet, sev Severity, span source.Span, msg string) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	d := Diagnostic{Severity: sev, Message: msg, Primary: span}
	if fs != nil {
		start, _ := fs.Resolve(span)
		d.Line = start.Line
	}
	b.items = append(b.items, d)
	return true
}

// Items returns the buffered diagnostics; callers must not mutate the slice.
func (b *Bag) Items() []Diagnostic { return b.items }

// Len returns the number of buffered diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// HadError reports whether any Error-severity diagnostic was recorded —
// the HadError() predicate required by spec §4.3/§7.
func (b *Bag) HadError() bool {
	for i := range b.items {
		if b.items[i].Severity == SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any Warning-severity diagnostic was recorded.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity == SevWarning {
			return true
		}
	}
	return false
}

// Sort orders diagnostics by file, byte offset, then severity (descending),
// giving a deterministic dump order across repeated runs (spec §8 round-trip
// property: re-running the analyzer yields an identical diagnostic sequence).
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		return di.Severity > dj.Severity
	})
}

// DumpErrors writes every buffered diagnostic to w in insertion order,
// using the "SEVERITY: message at line N" format fixed by spec §7.
func (b *Bag) DumpErrors(w io.Writer) {
	for i := range b.items {
		fmt.Fprintln(w, b.items[i].String()) //nolint:errcheck // best-effort diagnostic dump
	}
}
