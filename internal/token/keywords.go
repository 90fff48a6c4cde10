package token

// keywords maps every reserved word and type-specifier keyword fixed by
// spec §6 to its Kind. Keyword matching is case-sensitive.
var keywords = map[string]Kind{
	"mod":    KwMod,
	"import": KwImport,
	"def":    KwDef,
	"end":    KwEnd,
	"extern": KwExtern,
	"return": KwReturn,
	"if":     KwIf,
	"elif":   KwElif,
	"else":   KwElse,
	"for":    KwFor,
	"while":  KwWhile,
	"true":   KwTrue,
	"false":  KwFalse,
	"struct": KwStruct,
	"int32":  KwInt32,
	"int64":  KwInt64,
	"flt32":  KwFlt32,
	"flt64":  KwFlt64,
	"bool":   KwBool,
	"str":    KwStr,
	"void":   KwVoid,
}

// LookupKeyword reports whether ident names a reserved word, returning its Kind.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
