package sema

import (
	"cinder/internal/ast"
	"cinder/internal/types"
)

// signaturePass resolves every top-level function prototype's return and
// argument types and declares the resulting Function type as a global
// symbol (spec §4.3 "Signature pass"). Defined functions are declared
// under the qualified MODULE.FNAME spelling; extern functions are
// declared under the bare name only, since they name an external symbol
// with no module of its own (spec §9 open question, resolved).
func (a *Analyzer) signaturePass(mod *ast.Module) {
	a.currentModule = mod.Name.Lexeme
	for _, stmt := range mod.Stmts {
		switch s := stmt.(type) {
		case *ast.FunctionProto:
			a.declareProto(s)
		case *ast.FunctionStmt:
			a.declareProto(s.Proto)
		}
	}
}

func (a *Analyzer) declareProto(proto *ast.FunctionProto) {
	ret, ok := a.resolveTypeSpec(proto.ReturnType)
	if !ok {
		ret = a.Types.Void
	}

	params := make([]*types.Type, 0, len(proto.Args))
	for i := range proto.Args {
		arg := &proto.Args[i]
		t, ok := a.resolveTypeSpec(arg.TypeTok)
		if !ok {
			t = a.Types.Void
		}
		arg.ResolvedType = t
		params = append(params, t)
	}

	fnType := a.Types.Function(ret, params, proto.IsVariadic)

	name := proto.Name.Lexeme
	if !proto.IsExtern {
		name = a.qualify(name)
	}

	id := a.Symbols.Declare(name, fnType, true)
	if !a.Scopes.DeclareGlobal(name, id) {
		a.errorAt(proto.Name.Span, "Redeclaration in scope: %s", name)
		return
	}
	*proto.ID() = id
}
