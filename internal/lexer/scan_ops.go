package lexer

import (
	"cinder/internal/diag"
	"cinder/internal/token"
)

// scanOperatorOrPunct scans an operator or delimiter token, matching the
// longest lexeme first (spec §6): "..." before "++"/"--"/"!="/"=="/"<="/
// ">="/"->" before single-character forms.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b0, b1, have2 := lx.cursor.Peek2()

	if have2 && b0 == '.' && b1 == '.' {
		if third, ok := lx.thirdByte(); ok && third == '.' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.tok(token.Ellipsis, start)
		}
	}

	if have2 {
		if k, ok := twoCharOps[[2]byte{b0, b1}]; ok {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.tok(k, start)
		}
	}

	ch := lx.cursor.Bump()
	if k, ok := oneCharOps[ch]; ok {
		return lx.tok(k, start)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.SevError, sp, "Invalid character")
	return token.Token{Kind: token.Invalid, Span: sp, Lexeme: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) thirdByte() (byte, bool) {
	off := lx.cursor.Off + 2
	if off >= lx.cursor.limit() {
		return 0, false
	}
	return lx.cursor.File.Content[off], true
}

func (lx *Lexer) tok(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Lexeme: string(lx.file.Content[sp.Start:sp.End])}
}

var twoCharOps = map[[2]byte]token.Kind{
	{'+', '+'}: token.PlusPlus,
	{'-', '-'}: token.MinusMinus,
	{'!', '='}: token.BangEq,
	{'=', '='}: token.EqEq,
	{'<', '='}: token.LtEq,
	{'>', '='}: token.GtEq,
	{'-', '>'}: token.Arrow,
}

var oneCharOps = map[byte]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'!': token.Bang,
	'=': token.Assign,
	'<': token.Lt,
	'>': token.Gt,
	'.': token.Dot,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
	':': token.Colon,
	';': token.Semicolon,
	',': token.Comma,
}
