// Package diag implements the buffered, severity-tagged diagnostics engine
// described in spec §3 and §7: diagnostics are collected rather than
// thrown, and dumped to stderr once analysis finishes.
package diag

// Severity classifies how serious a diagnostic is.
type Severity uint8

const (
	// SevDebug is for diagnostics useful only during compiler development.
	SevDebug Severity = iota
	// SevWarning flags a likely mistake that does not block compilation.
	SevWarning
	// SevError flags a violation that makes the program invalid.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevDebug:
		return "DEBUG"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
