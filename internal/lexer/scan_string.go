package lexer

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"cinder/internal/diag"
	"cinder/internal/token"
)

// scanString scans a "..." literal with \" \n \t escapes (spec §6). An
// unterminated string or an embedded raw newline is reported and the token
// is returned with whatever content was recovered, so the parser keeps
// making progress.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	var sb strings.Builder
	closed := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			closed = true
			break
		}
		if b == '\n' {
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			esc := lx.cursor.Peek()
			switch esc {
			case '"':
				sb.WriteByte('"')
				lx.cursor.Bump()
			case 'n':
				sb.WriteByte('\n')
				lx.cursor.Bump()
			case 't':
				sb.WriteByte('\t')
				lx.cursor.Bump()
			default:
				sb.WriteByte('\\')
			}
			continue
		}
		sb.WriteByte(b)
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.report(diag.SevError, sp, "Unterminated string literal")
	}

	value := norm.NFC.String(sb.String())
	return token.Token{
		Kind: token.StrLit, Span: sp, Lexeme: string(lx.file.Content[sp.Start:sp.End]),
		Literal: token.Literal{Kind: token.LiteralString, String: value},
	}
}
