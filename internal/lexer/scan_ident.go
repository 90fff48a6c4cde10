package lexer

import "cinder/internal/token"

// scanIdentOrKeyword scans /[_A-Za-z][_A-Za-z0-9]*/ and classifies it as a
// keyword or a plain identifier (spec §6).
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lexeme := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(lexeme); ok {
		if k == token.KwTrue || k == token.KwFalse {
			return token.Token{
				Kind: k, Span: sp, Lexeme: lexeme,
				Literal: token.Literal{Kind: token.LiteralBool, Bool: k == token.KwTrue},
			}
		}
		return token.Token{Kind: k, Span: sp, Lexeme: lexeme}
	}
	return token.Token{Kind: token.Ident, Span: sp, Lexeme: lexeme}
}
