package sema

import (
	"strings"

	"cinder/internal/token"
	"cinder/internal/types"
)

// resolveTypeSpec resolves one typeSpec token (spec §4.2 grammar) to a
// concrete type: either a primitive keyword or a dotted qualified struct
// name. An unqualified struct name is resolved relative to the module
// currently being analyzed before falling back to a literal lookup, so a
// struct may reference a sibling struct by its bare name.
func (a *Analyzer) resolveTypeSpec(tok token.Token) (*types.Type, bool) {
	if tok.Kind.IsTypeSpec() {
		return a.Types.Primitive(tok.Lexeme), true
	}

	if !strings.Contains(tok.Lexeme, ".") {
		if t, ok := a.Types.LookupStruct(a.qualify(tok.Lexeme)); ok {
			return t, true
		}
	}
	if t, ok := a.Types.LookupStruct(tok.Lexeme); ok {
		return t, true
	}

	a.errorAt(tok.Span, "Invalid type: %s", tok.Lexeme)
	return nil, false
}
