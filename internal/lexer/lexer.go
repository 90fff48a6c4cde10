// Package lexer scans cinder source text into the token stream consumed by
// the parser (spec §6). It is treated as an external collaborator by the
// core subjects (parser, analyzer, loader) — they depend only on the
// token.Token grammar it produces.
package lexer

import (
	"cinder/internal/diag"
	"cinder/internal/source"
	"cinder/internal/token"
)

// Lexer converts one source file into a stream of tokens, one token of
// lookahead, skipping whitespace and "//" line comments as it goes.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
}

// New returns a Lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file), opts: opts}
}

// Next returns the next significant token. Once EOF is reached, it keeps
// returning an EOF token.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		t := *lx.look
		lx.look = nil
		return t
	}
	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDecDigit(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		t := lx.Next()
		lx.look = &t
	}
	return *lx.look
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// skipTrivia consumes whitespace and "//" line comments (spec §6, §8
// boundary: "// to EOF consumes the rest of a line").
func (lx *Lexer) skipTrivia() {
	for {
		for isSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '/' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}
		return
	}
}

func (lx *Lexer) report(sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(sev, sp, msg)
	}
}
