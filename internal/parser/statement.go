package parser

import (
	"cinder/internal/ast"
	"cinder/internal/token"
)

// parseBody implements: body := stmt*, stopping at any of the given
// terminator keywords without consuming them.
func (p *Parser) parseBody(terminators ...token.Kind) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.atAny(terminators...) && !p.check(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

// parseStatement implements: stmt := varDecl | return | if | for | while | exprStmt
//
// A primitive type keyword unambiguously starts a varDecl (no primitive
// keyword is a valid expression atom). An IDENT is ambiguous between a
// (possibly dotted) varDecl typeSpec and a qualified-name expression; it is
// resolved by parseIdentLedStatement, which consumes the dotted chain once
// and branches on whatever token follows it.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch {
	case p.cur.Kind.IsTypeSpec():
		return p.parsePrimitiveVarDeclaration()
	case p.check(token.Ident):
		return p.parseIdentLedStatement()
	case p.check(token.KwReturn):
		return p.parseReturn()
	case p.check(token.KwIf):
		return p.parseIf()
	case p.check(token.KwFor):
		return p.parseFor()
	case p.check(token.KwWhile):
		return p.parseWhile()
	default:
		return p.parseExpressionStmt()
	}
}

// parsePrimitiveVarDeclaration handles the unambiguous case: typeSpec is a
// single primitive keyword token.
func (p *Parser) parsePrimitiveVarDeclaration() (ast.Stmt, error) {
	typeTok := p.advance()
	return p.finishVarDeclaration(typeTok)
}

// parseIdentLedStatement consumes a dotted IDENT chain once, then decides
// whether it was a qualified typeSpec (followed by ':') or the start of a
// qualified-name expression (followed by anything else). In the latter
// case the already-built Variable/MemberAccess chain is threaded back into
// the expression grammar via pendingAtom so no token is re-lexed.
func (p *Parser) parseIdentLedStatement() (ast.Stmt, error) {
	first := p.advance() // IDENT
	nameTok := first
	var expr ast.Expr = ast.NewVariable(first)

	for p.check(token.Dot) {
		p.advance()
		part, err := p.expect(token.Ident, "qualified name")
		if err != nil {
			return nil, err
		}
		nameTok.Lexeme += "." + part.Lexeme
		nameTok.Span = nameTok.Span.Cover(part.Span)
		expr = ast.NewMemberAccess(expr, part)
	}

	if p.check(token.Colon) {
		return p.finishVarDeclaration(nameTok)
	}

	p.pendingAtom = expr
	return p.parseExpressionStmt()
}

// finishVarDeclaration implements the tail of varDecl once typeTok (either
// a primitive keyword token or a synthesized qualified-name token) is in
// hand: ':' IDENT '=' expr ';'
func (p *Parser) finishVarDeclaration(typeTok token.Token) (ast.Stmt, error) {
	if _, err := p.expect(token.Colon, "':'"); err != nil {
		return nil, err
	}
	name, err := p.expect(token.Ident, "variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign, "'='"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	return &ast.VarDeclaration{TypeTok: typeTok, Name: name, Value: value}, nil
}

// parseTypeSpec consumes a primitive keyword or a dotted IDENT chain in a
// context with no expression ambiguity (function prototype argument and
// return types, struct field types), returning a single token whose
// Lexeme carries the full qualified spelling (e.g. "math.Vector2").
func (p *Parser) parseTypeSpec() (token.Token, error) {
	if p.cur.Kind.IsTypeSpec() {
		return p.advance(), nil
	}
	first, err := p.expect(token.Ident, "type name")
	if err != nil {
		return token.Token{}, err
	}
	name := first
	for p.check(token.Dot) {
		p.advance()
		part, err := p.expect(token.Ident, "qualified type name")
		if err != nil {
			return token.Token{}, err
		}
		name.Lexeme += "." + part.Lexeme
		name.Span = name.Span.Cover(part.Span)
	}
	return name, nil
}

// parseReturn implements: return := 'return' expr? ';'
func (p *Parser) parseReturn() (ast.Stmt, error) {
	retTok := p.advance()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		v, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = v
	}
	if _, err := p.expect(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	return &ast.Return{RetTok: retTok, Value: value}, nil
}

// parseIf implements: if := 'if' expr stmt ('else' stmt)? 'end'
func (p *Parser) parseIf() (ast.Stmt, error) {
	p.advance() // 'if'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Stmt
	if p.check(token.KwElse) {
		p.advance()
		elseStmt, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.KwEnd, "'end'"); err != nil {
		return nil, err
	}
	return &ast.If{Cond: cond, Then: then, Else: elseStmt}, nil
}

// parseFor implements the canonical grammar chosen for this implementation
// (spec §9 open question): for := 'for' stmt expr ';' expr body 'end'
func (p *Parser) parseFor() (ast.Stmt, error) {
	p.advance() // 'for'
	init, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	step, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody(token.KwEnd)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwEnd, "'end'"); err != nil {
		return nil, err
	}
	return &ast.For{Init: init, Cond: cond, Step: step, Body: body}, nil
}

// parseWhile implements: while := 'while' expr body 'end'
func (p *Parser) parseWhile() (ast.Stmt, error) {
	p.advance() // 'while'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody(token.KwEnd)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwEnd, "'end'"); err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

func (p *Parser) parseExpressionStmt() (ast.Stmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expr: expr}, nil
}
