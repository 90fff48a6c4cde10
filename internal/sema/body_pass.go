package sema

import (
	"cinder/internal/ast"
	"cinder/internal/symbols"
	"cinder/internal/token"
	"cinder/internal/types"
)

// bodyPass walks every defined function's body (spec §4.3 "Body pass").
// Externs have no body and are skipped; their signature was already
// declared by signaturePass.
func (a *Analyzer) bodyPass(mod *ast.Module) {
	a.currentModule = mod.Name.Lexeme
	a.Scopes.BeginScope()
	for _, stmt := range mod.Stmts {
		if fn, ok := stmt.(*ast.FunctionStmt); ok {
			a.analyzeFunction(fn)
		}
	}
	a.Scopes.EndScope()
}

func (a *Analyzer) analyzeFunction(fn *ast.FunctionStmt) {
	sym := a.Symbols.Get(*fn.Proto.ID())
	fnType := sym.Type
	prevReturn := a.currentReturn
	if fnType != nil {
		a.currentReturn = fnType.Return
	} else {
		a.currentReturn = nil
	}

	a.Scopes.BeginScope()
	for i := range fn.Proto.Args {
		arg := &fn.Proto.Args[i]
		id := a.Symbols.Declare(arg.Name.Lexeme, arg.ResolvedType, false)
		if !a.Scopes.Declare(arg.Name.Lexeme, id) {
			a.errorAt(arg.Name.Span, "Redeclaration in scope: %s", arg.Name.Lexeme)
		}
	}
	for _, s := range fn.Body {
		a.analyzeStmt(s)
	}
	a.Scopes.EndScope()

	a.currentReturn = prevReturn
}

func (a *Analyzer) analyzeStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		a.analyzeExpr(s.Expr)
	case *ast.VarDeclaration:
		a.analyzeVarDeclaration(s)
	case *ast.Return:
		a.analyzeReturn(s)
	case *ast.If:
		a.analyzeIf(s)
	case *ast.For:
		a.analyzeFor(s)
	case *ast.While:
		a.analyzeWhile(s)
	}
}

func (a *Analyzer) analyzeVarDeclaration(s *ast.VarDeclaration) {
	declType, _ := a.resolveTypeSpec(s.TypeTok)
	valType := a.analyzeExpr(s.Value)

	if declType != nil && valType != nil && declType != valType {
		a.errorAt(s.Span(), "Type mismatch in declaration: %s", s.Name.Lexeme)
	}

	id := a.Symbols.Declare(s.Name.Lexeme, declType, false)
	if !a.Scopes.Declare(s.Name.Lexeme, id) {
		a.errorAt(s.Name.Span, "Redeclaration in scope: %s", s.Name.Lexeme)
	}
	*s.ID() = id
}

func (a *Analyzer) analyzeReturn(s *ast.Return) {
	if s.Value == nil {
		if a.currentReturn != nil && a.currentReturn.Kind != types.KindVoid {
			a.errorAt(s.Span(), "Missing return value")
		}
		return
	}

	valType := a.analyzeExpr(s.Value)
	if a.currentReturn == nil {
		return
	}
	if a.currentReturn.Kind == types.KindVoid {
		a.errorAt(s.Span(), "Unexpected return value")
		return
	}
	if valType != nil && valType.Kind != a.currentReturn.Kind {
		a.errorAt(s.Span(), "Type mismatch in return")
	}
}

func (a *Analyzer) analyzeIf(s *ast.If) {
	condType := a.analyzeExpr(s.Cond)
	if condType != nil && condType.Kind != types.KindBool {
		a.errorAt(s.Cond.Span(), "Condition must be bool")
	}
	a.analyzeStmt(s.Then)
	if s.Else != nil {
		a.analyzeStmt(s.Else)
	}
}

func (a *Analyzer) analyzeWhile(s *ast.While) {
	condType := a.analyzeExpr(s.Cond)
	if condType != nil && condType.Kind != types.KindBool {
		a.errorAt(s.Cond.Span(), "Condition must be bool")
	}
	for _, stmt := range s.Body {
		a.analyzeStmt(stmt)
	}
}

func (a *Analyzer) analyzeFor(s *ast.For) {
	a.Scopes.BeginScope()
	a.analyzeStmt(s.Init)
	condType := a.analyzeExpr(s.Cond)
	if condType != nil && condType.Kind != types.KindBool {
		a.errorAt(s.Cond.Span(), "Condition must be bool")
	}
	a.analyzeExpr(s.Step)
	for _, stmt := range s.Body {
		a.analyzeStmt(stmt)
	}
	a.Scopes.EndScope()
}

// resolveName resolves a bare identifier per spec §4.3 "Name resolution
// order": the scope stack top-down, then a module-qualified global lookup,
// reporting "undeclared" on failure.
func (a *Analyzer) resolveName(tok token.Token) (*types.Type, symbols.SymbolID, bool) {
	if id, ok := a.Scopes.Lookup(tok.Lexeme); ok {
		sym := a.Symbols.Get(id)
		return sym.Type, id, true
	}
	if id, ok := a.Scopes.LookupGlobal(a.qualify(tok.Lexeme)); ok {
		sym := a.Symbols.Get(id)
		return sym.Type, id, true
	}
	a.errorAt(tok.Span, "Undeclared identifier: %s", tok.Lexeme)
	return nil, symbols.NoSymbolID, false
}
