package parser

import (
	"cinder/internal/ast"
	"cinder/internal/token"
)

// parseExpression is the grammar's entry point: assign := comparison
// ('=' assign)?, right-associative.
func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseAssign()
}

func (p *Parser) parseAssign() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if !p.check(token.Assign) {
		return left, nil
	}
	p.advance()
	value, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	switch target := left.(type) {
	case *ast.Variable:
		return ast.NewAssign(target.Name, value), nil
	case *ast.MemberAccess:
		return ast.NewMemberAssign(target, value), nil
	default:
		return nil, p.errorf("invalid assignment target")
	}
}

// comparison := term (cmpOp term)*, left-associative.
func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind.IsComparison() {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = ast.NewConditional(left, op, right)
	}
	return left, nil
}

// term := factor (('+'|'-') factor)*, left-associative.
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.check(token.Plus) || p.check(token.Minus) {
		op := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(left, op, right)
	}
	return left, nil
}

// factor := preFix (('*'|'/'|'%') preFix)*, left-associative. '%' is
// admitted at this level alongside '*'/'/' to give the '%' operator
// token (spec §6 operator list) conventional modulo precedence; the
// grammar in §4.2 only spells out '*'|'/' explicitly.
func (p *Parser) parseFactor() (ast.Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for p.check(token.Star) || p.check(token.Slash) || p.check(token.Percent) {
		op := p.advance()
		right, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(left, op, right)
	}
	return left, nil
}

// preFix := ('++'|'--') IDENT | call
func (p *Parser) parsePrefix() (ast.Expr, error) {
	if p.check(token.PlusPlus) || p.check(token.MinusMinus) {
		op := p.advance()
		name, err := p.expect(token.Ident, "identifier after prefix operator")
		if err != nil {
			return nil, err
		}
		return ast.NewPreFixOp(op, name), nil
	}
	return p.parseCall()
}

// call := atom ( '(' argList? ')' )?
func (p *Parser) parseCall() (ast.Expr, error) {
	callee, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if !p.check(token.LParen) {
		return callee, nil
	}
	p.advance()
	var args []ast.Expr
	if !p.check(token.RParen) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.check(token.Comma) {
				break
			}
			p.advance()
		}
	}
	rparen, err := p.expect(token.RParen, "')'")
	if err != nil {
		return nil, err
	}
	return ast.NewCallExpr(callee, args, rparen.Span), nil
}

// atom := LITERAL | TRUE | FALSE | IDENT ('.' IDENT)* | '(' expr ')'
func (p *Parser) parseAtom() (ast.Expr, error) {
	if p.pendingAtom != nil {
		e := p.pendingAtom
		p.pendingAtom = nil
		return e, nil
	}

	switch {
	case p.cur.IsLiteral() || p.check(token.KwTrue) || p.check(token.KwFalse):
		return ast.NewLiteral(p.advance()), nil
	case p.check(token.Ident):
		var expr ast.Expr = ast.NewVariable(p.advance())
		for p.check(token.Dot) {
			p.advance()
			member, err := p.expect(token.Ident, "member name")
			if err != nil {
				return nil, err
			}
			expr = ast.NewMemberAccess(expr, member)
		}
		return expr, nil
	case p.check(token.LParen):
		lparen := p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		rparen, err := p.expect(token.RParen, "')'")
		if err != nil {
			return nil, err
		}
		return ast.NewGrouping(lparen.Span, inner, rparen.Span), nil
	default:
		return nil, p.errorf("unexpected token %q in expression", p.cur.Lexeme)
	}
}
