package lexer

import (
	"strconv"

	"cinder/internal/diag"
	"cinder/internal/token"
)

// scanNumber scans a decimal INT or FLT literal (spec §6: no hex, binary, or
// exponent forms — a bare dot separates the integer and fractional parts).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDecDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	isFloat := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDecDigit(b1) {
		isFloat = true
		lx.cursor.Bump() // '.'
		for isDecDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lexeme := string(lx.file.Content[sp.Start:sp.End])

	if isFloat {
		v, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			lx.report(diag.SevError, sp, "Invalid float literal: "+lexeme)
			v = 0
		}
		return token.Token{
			Kind: token.FltLit, Span: sp, Lexeme: lexeme,
			Literal: token.Literal{Kind: token.LiteralFloat, Float: v},
		}
	}

	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		lx.report(diag.SevError, sp, "Invalid integer literal: "+lexeme)
		v = 0
	}
	return token.Token{
		Kind: token.IntLit, Span: sp, Lexeme: lexeme,
		Literal: token.Literal{Kind: token.LiteralInt, Int: v},
	}
}
