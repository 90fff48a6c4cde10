package diag

import (
	"strconv"

	"cinder/internal/source"
)

// Diagnostic is the {severity, message, line} record fixed by spec §3/§7.
// Primary additionally carries the byte span so diagfmt can render a
// source-line preview with an underline; it is not part of the spec's
// required shape and callers that only need severity/message/line can
// ignore it.
type Diagnostic struct {
	Severity Severity
	Message  string
	Line     uint32
	Primary  source.Span
}

// String renders the diagnostic using the user-visible format fixed by
// spec §7: "SEVERITY: message at line N".
func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Message + " at line " + strconv.FormatUint(uint64(d.Line), 10)
}
