package diag

import "cinder/internal/source"

// Reporter decouples diagnostic producers (lexer, parser, analyzer) from
// Bag ownership, mirroring the teacher's lexer/parser Options.Reporter field.
type Reporter interface {
	Report(sev Severity, span source.Span, msg string)
}

// BagReporter adapts a Bag (plus the FileSet used to resolve line numbers)
// to the Reporter interface.
type BagReporter struct {
	Bag *Bag
	FS  *source.FileSet
}

// Report implements Reporter.
func (r BagReporter) Report(sev Severity, span source.Span, msg string) {
	r.Bag.Report(r.FS, sev, span, msg)
}
