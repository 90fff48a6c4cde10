// Package parser builds one Module AST from a token stream with one token
// of lookahead and no backtracking (spec §4.2). A parse error writes a
// diagnostic and returns immediately through Go's error value — there is
// no error-recovery mode (spec §9 "No exceptions ... an early-return
// sentinel for parse/loader failures").
package parser

import (
	"fmt"

	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/lexer"
	"cinder/internal/token"
)

// ParseError is returned by Parse when the token stream does not match the
// grammar. It is terminal: the caller must not retry parsing this file.
// The diagnostic itself was already sent to the reporter, carrying the
// line number resolved against the FileSet; ParseError only signals "stop".
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }

// Parser holds the state needed to build one Module from one file's token
// stream.
type Parser struct {
	lx       *lexer.Lexer
	reporter diag.Reporter
	cur      token.Token

	// pendingAtom, when non-nil, is an already-built expression (a
	// qualified-name chain disambiguated by parseIdentLedStatement) that
	// parseAtom must return in place of consuming new tokens.
	pendingAtom ast.Expr
}

// New returns a Parser positioned at the first token of lx.
func New(lx *lexer.Lexer, reporter diag.Reporter) *Parser {
	p := &Parser{lx: lx, reporter: reporter}
	p.cur = lx.Next()
	return p
}

// Parse consumes the whole token stream and returns the file's Module.
func (p *Parser) Parse() (*ast.Module, error) {
	return p.parseModule()
}

func (p *Parser) advance() token.Token {
	t := p.cur
	p.cur = p.lx.Next()
	return t
}

func (p *Parser) check(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) match(k token.Kind) (token.Token, bool) {
	if p.check(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

func (p *Parser) expect(k token.Kind, what string) (token.Token, error) {
	if !p.check(k) {
		return token.Token{}, p.errorf("expected %s, found %q", what, p.cur.Lexeme)
	}
	return p.advance(), nil
}

func (p *Parser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if p.reporter != nil {
		p.reporter.Report(diag.SevError, p.cur.Span, msg)
	}
	return &ParseError{Message: msg}
}

// parseModule implements: module := 'mod' IDENT ';' import* toplevel*
func (p *Parser) parseModule() (*ast.Module, error) {
	if _, err := p.expect(token.KwMod, "'mod'"); err != nil {
		return nil, err
	}
	name, err := p.expect(token.Ident, "module name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "';'"); err != nil {
		return nil, err
	}

	mod := &ast.Module{Name: name}
	seenToplevel := false

	for !p.check(token.EOF) {
		if p.check(token.KwImport) {
			if seenToplevel {
				return nil, p.errorf("import must precede top-level declarations")
			}
			stmt, err := p.parseImport()
			if err != nil {
				return nil, err
			}
			mod.Stmts = append(mod.Stmts, stmt)
			continue
		}
		seenToplevel = true
		stmt, err := p.parseToplevel()
		if err != nil {
			return nil, err
		}
		mod.Stmts = append(mod.Stmts, stmt)
	}
	return mod, nil
}

func (p *Parser) parseImport() (ast.Stmt, error) {
	p.advance() // 'import'
	name, err := p.expect(token.Ident, "imported module name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	return &ast.Import{ModName: name}, nil
}

// parseToplevel implements: toplevel := ('extern' FunctionPrototype ';') | Function | StructStmt
func (p *Parser) parseToplevel() (ast.Stmt, error) {
	switch {
	case p.check(token.KwExtern):
		p.advance()
		proto, err := p.parseFunctionProto(true)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon, "';'"); err != nil {
			return nil, err
		}
		return proto, nil
	case p.check(token.KwStruct):
		return p.parseStructStmt()
	case p.check(token.KwDef):
		return p.parseFunctionStmt()
	default:
		return nil, p.errorf("expected top-level declaration, found %q", p.cur.Lexeme)
	}
}
