package lexer

import "cinder/internal/diag"

// Options configures a Lexer instance.
type Options struct {
	// Reporter receives lex-time diagnostics (invalid character,
	// unterminated string). May be nil to silently drop them.
	Reporter diag.Reporter
}
