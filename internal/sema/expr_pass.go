package sema

import (
	"cinder/internal/ast"
	"cinder/internal/symbols"
	"cinder/internal/token"
	"cinder/internal/types"
)

// analyzeExpr implements spec §4.3 "Type rules": it computes e's type,
// writes it (and a resolved symbol id, where one applies) into e's
// annotations, and returns the computed type so callers can chain checks.
// A nil return means the expression already failed and a diagnostic was
// recorded; callers must not assume every sub-expression typed cleanly.
func (a *Analyzer) analyzeExpr(e ast.Expr) *types.Type {
	switch v := e.(type) {
	case *ast.Literal:
		t := a.literalType(v.Value)
		v.Annotations().Type = t
		return t
	case *ast.Variable:
		t, id, _ := a.resolveName(v.Name)
		v.Annotations().Type = t
		v.Annotations().ID = id
		return t
	case *ast.Grouping:
		t := a.analyzeExpr(v.Inner)
		v.Annotations().Type = t
		return t
	case *ast.PreFixOp:
		return a.analyzePrefixOp(v)
	case *ast.Binary:
		return a.analyzeBinary(v)
	case *ast.Conditional:
		return a.analyzeConditional(v)
	case *ast.Assign:
		return a.analyzeAssign(v)
	case *ast.MemberAccess:
		return a.analyzeMemberAccess(v)
	case *ast.MemberAssign:
		return a.analyzeMemberAssign(v)
	case *ast.CallExpr:
		return a.analyzeCall(v)
	default:
		return nil
	}
}

func (a *Analyzer) literalType(lit token.Literal) *types.Type {
	switch lit.Kind {
	case token.LiteralInt:
		return a.Types.Int32
	case token.LiteralFloat:
		return a.Types.Flt32
	case token.LiteralString:
		return a.Types.String
	case token.LiteralBool:
		return a.Types.Bool
	default:
		return nil
	}
}

func (a *Analyzer) analyzePrefixOp(v *ast.PreFixOp) *types.Type {
	t, id, ok := a.resolveName(v.Name)
	if !ok || t == nil {
		return nil
	}
	if t.Kind != types.KindInt && t.Kind != types.KindFloat {
		a.errorAt(v.Span(), "Invalid operand for %s: %s", v.Op.Lexeme, v.Name.Lexeme)
		return nil
	}
	v.Annotations().ID = id
	v.Annotations().Type = t
	return t
}

func (a *Analyzer) analyzeBinary(v *ast.Binary) *types.Type {
	lt := a.analyzeExpr(v.Left)
	rt := a.analyzeExpr(v.Right)
	if lt == nil || rt == nil {
		return nil
	}
	if lt.Kind != rt.Kind {
		a.errorAt(v.Span(), "Type mismatch in binary expression: %s", v.Op.Lexeme)
		return nil
	}
	v.Annotations().Type = lt
	return lt
}

func (a *Analyzer) analyzeConditional(v *ast.Conditional) *types.Type {
	lt := a.analyzeExpr(v.Left)
	rt := a.analyzeExpr(v.Right)
	if lt != nil && rt != nil && lt.Kind != rt.Kind {
		a.errorAt(v.Span(), "Type mismatch in comparison: %s", v.Op.Lexeme)
	}
	v.Annotations().Type = a.Types.Bool
	return a.Types.Bool
}

func (a *Analyzer) analyzeAssign(v *ast.Assign) *types.Type {
	declType, id, ok := a.resolveName(v.Name)
	valType := a.analyzeExpr(v.Value)
	if ok && declType != nil && valType != nil && declType != valType {
		a.errorAt(v.Span(), "Type mismatch in assignment: %s", v.Name.Lexeme)
	}
	v.Annotations().ID = id
	v.Annotations().Type = declType
	return declType
}

// analyzeMemberAccess implements spec §4.3 "Dotted names are resolved as
// (i) struct member if the base is a variable of struct type; (ii)
// otherwise as BASE.MEMBER in globals (cross-module reference)."
func (a *Analyzer) analyzeMemberAccess(v *ast.MemberAccess) *types.Type {
	if base, isVar := v.Object.(*ast.Variable); isVar {
		if id, ok := a.Scopes.Lookup(base.Name.Lexeme); ok {
			sym := a.Symbols.Get(id)
			base.Annotations().Type = sym.Type
			base.Annotations().ID = id
			if sym.Type != nil && sym.Type.Kind == types.KindStruct {
				return a.resolveStructField(v, sym.Type)
			}
		}

		qualified := base.Name.Lexeme + "." + v.Member.Lexeme
		id, ok := a.Scopes.LookupGlobal(qualified)
		if !ok {
			a.errorAt(v.Span(), "Undeclared identifier: %s", qualified)
			return nil
		}
		sym := a.Symbols.Get(id)
		v.Annotations().ID = id
		v.Annotations().Type = sym.Type
		return sym.Type
	}

	objType := a.analyzeExpr(v.Object)
	if objType == nil {
		return nil
	}
	if objType.Kind != types.KindStruct {
		a.errorAt(v.Span(), "Member access on non-struct type: %s", v.Member.Lexeme)
		return nil
	}
	return a.resolveStructField(v, objType)
}

func (a *Analyzer) resolveStructField(v *ast.MemberAccess, structType *types.Type) *types.Type {
	idx := structType.FieldIndex(v.Member.Lexeme)
	if idx < 0 {
		a.errorAt(v.Member.Span, "Unknown field: %s", v.Member.Lexeme)
		return nil
	}
	v.FieldIndex = idx
	ft := structType.Fields[idx].Type
	v.Annotations().Type = ft
	return ft
}

func (a *Analyzer) analyzeMemberAssign(v *ast.MemberAssign) *types.Type {
	fieldType := a.analyzeMemberAccess(v.Target)
	if base, isVar := v.Target.Object.(*ast.Variable); isVar {
		v.BaseID = base.Annotations().ID
	}

	valType := a.analyzeExpr(v.Value)
	if fieldType != nil && valType != nil && fieldType != valType {
		a.errorAt(v.Span(), "Type mismatch in assignment: %s", v.Target.Member.Lexeme)
	}
	v.Annotations().Type = fieldType
	return fieldType
}

// analyzeCall implements spec §4.3's two CallExpr rules: calling a
// function symbol (with variadic promotion past the fixed prefix) or
// calling a struct-name symbol as its literal constructor.
func (a *Analyzer) analyzeCall(v *ast.CallExpr) *types.Type {
	var sym *symbols.Symbol

	switch callee := v.Callee.(type) {
	case *ast.Variable:
		t, id, ok := a.resolveCallee(callee.Name)
		if !ok {
			return nil
		}
		callee.Annotations().ID = id
		callee.Annotations().Type = t
		sym = a.Symbols.Get(id)
	case *ast.MemberAccess:
		base, isVar := callee.Object.(*ast.Variable)
		if !isVar {
			a.errorAt(callee.Span(), "Invalid call target")
			return nil
		}
		qualified := base.Name.Lexeme + "." + callee.Member.Lexeme
		id, ok := a.Scopes.LookupGlobal(qualified)
		if !ok {
			a.errorAt(callee.Span(), "Undeclared identifier: %s", qualified)
			return nil
		}
		sym = a.Symbols.Get(id)
		callee.Annotations().ID = id
		callee.Annotations().Type = sym.Type
	default:
		a.errorAt(v.Span(), "Invalid call target")
		return nil
	}

	if sym.Type == nil {
		return nil
	}
	if sym.Type.Kind == types.KindStruct {
		return a.analyzeConstructorCall(v, sym.Type)
	}
	if sym.Type.Kind != types.KindFunction {
		a.errorAt(v.Span(), "Not callable: %s", sym.Name)
		return nil
	}
	return a.analyzeFunctionCall(v, sym.Type)
}

// resolveCallee resolves a call target's bare name: the scope stack
// top-down (covering externs, declared under their bare name), then the
// current module's qualified spelling (covering sibling functions).
func (a *Analyzer) resolveCallee(name token.Token) (*types.Type, symbols.SymbolID, bool) {
	if id, ok := a.Scopes.Lookup(name.Lexeme); ok {
		return a.Symbols.Get(id).Type, id, true
	}
	if id, ok := a.Scopes.LookupGlobal(a.qualify(name.Lexeme)); ok {
		return a.Symbols.Get(id).Type, id, true
	}
	a.errorAt(name.Span, "Undeclared identifier: %s", name.Lexeme)
	return nil, symbols.NoSymbolID, false
}

func (a *Analyzer) analyzeFunctionCall(v *ast.CallExpr, fnType *types.Type) *types.Type {
	fixed := len(fnType.Params)
	for i, argExpr := range v.Args {
		argType := a.analyzeExpr(argExpr)
		switch {
		case i < fixed:
			if argType != nil && fnType.Params[i] != nil && argType.Kind != fnType.Params[i].Kind {
				a.errorAt(argExpr.Span(), "Type mismatch in argument %d", i+1)
			}
		case fnType.Variadic:
			promoted := a.promoteVariadic(argType)
			argExpr.Annotations().Type = promoted
		default:
			a.errorAt(argExpr.Span(), "Too many arguments")
		}
	}
	if len(v.Args) < fixed {
		a.errorAt(v.Span(), "Too few arguments")
	}
	v.Annotations().Type = fnType.Return
	return fnType.Return
}

// promoteVariadic implements spec §4.3's fixed promotion table, applied
// only to arguments past a variadic function's fixed parameter count.
func (a *Analyzer) promoteVariadic(t *types.Type) *types.Type {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case types.KindBool:
		return a.Types.Int32
	case types.KindFloat:
		return a.Types.Flt32
	case types.KindInt:
		return a.Types.Int32
	default:
		return t
	}
}

func (a *Analyzer) analyzeConstructorCall(v *ast.CallExpr, structType *types.Type) *types.Type {
	fields := structType.Fields
	if len(v.Args) != len(fields) {
		a.errorAt(v.Span(), "Wrong number of constructor arguments: %s", structType.QualifiedName)
	}
	for i, argExpr := range v.Args {
		argType := a.analyzeExpr(argExpr)
		if i < len(fields) && argType != nil && fields[i].Type != nil && argType.Kind != fields[i].Type.Kind {
			a.errorAt(argExpr.Span(), "Type mismatch in constructor argument %d", i+1)
		}
	}
	v.Annotations().Type = structType
	return structType
}
