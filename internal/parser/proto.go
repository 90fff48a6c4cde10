package parser

import (
	"cinder/internal/ast"
	"cinder/internal/token"
)

// maxFunctionArgs is the argument count cap fixed by spec §4.2.
const maxFunctionArgs = 255

// parseFunctionProto implements:
// IDENT '(' (argList (',' '...')?)? ')' '->' returnType
func (p *Parser) parseFunctionProto(isExtern bool) (*ast.FunctionProto, error) {
	name, err := p.expect(token.Ident, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}

	var args []ast.FuncArg
	variadic := false
	if !p.check(token.RParen) {
		for {
			if p.check(token.Ellipsis) {
				p.advance()
				variadic = true
				break
			}
			arg, err := p.parseFuncArg()
			if err != nil {
				return nil, err
			}
			if len(args) >= maxFunctionArgs {
				return nil, p.errorf("function has more than %d arguments", maxFunctionArgs)
			}
			args = append(args, arg)
			if !p.check(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RParen, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Arrow, "'->'"); err != nil {
		return nil, err
	}
	retType, err := p.parseTypeSpec()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionProto{
		Name: name, ReturnType: retType, Args: args,
		IsVariadic: variadic, IsExtern: isExtern,
	}, nil
}

// parseFuncArg implements: typeSpec IDENT (used for both prototype
// arguments and struct fields).
func (p *Parser) parseFuncArg() (ast.FuncArg, error) {
	typeTok, err := p.parseTypeSpec()
	if err != nil {
		return ast.FuncArg{}, err
	}
	name, err := p.expect(token.Ident, "argument name")
	if err != nil {
		return ast.FuncArg{}, err
	}
	return ast.FuncArg{TypeTok: typeTok, Name: name}, nil
}

// parseFunctionStmt implements: 'def' FunctionPrototype body 'end'
func (p *Parser) parseFunctionStmt() (ast.Stmt, error) {
	p.advance() // 'def'
	proto, err := p.parseFunctionProto(false)
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
	return &ast.FunctionStmt{Proto: proto, Body: body}, nil
}

// parseStructStmt implements: 'struct' IDENT (typeSpec ':' IDENT ';')* 'end'
func (p *Parser) parseStructStmt() (ast.Stmt, error) {
	p.advance() // 'struct'
	name, err := p.expect(token.Ident, "struct name")
	if err != nil {
		return nil, err
	}
	var fields []ast.FuncArg
	for !p.check(token.KwEnd) && !p.check(token.EOF) {
		typeTok, err := p.parseTypeSpec()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon, "':'"); err != nil {
			return nil, err
		}
		fieldName, err := p.expect(token.Ident, "field name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon, "';'"); err != nil {
			return nil, err
		}
		fields = append(fields, ast.FuncArg{TypeTok: typeTok, Name: fieldName})
	}
	if _, err := p.expect(token.KwEnd, "'end'"); err != nil {
		return nil, err
	}
	return &ast.StructStmt{Name: name, Fields: fields}, nil
}
