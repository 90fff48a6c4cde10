package sema

import (
	"cinder/internal/ast"
	"cinder/internal/types"
)

// structPass declares every StructStmt's qualified name with no fields yet
// (spec §9 "A struct type may be referenced before its fields are known").
// It runs once over the whole ordered module set before any fields are
// resolved, so a struct anywhere in the program may reference a struct
// declared later in the same or a different module.
func (a *Analyzer) structPass(mod *ast.Module) {
	moduleName := mod.Name.Lexeme
	for _, stmt := range mod.Stmts {
		st, ok := stmt.(*ast.StructStmt)
		if !ok {
			continue
		}
		qualified := moduleName + "." + st.Name.Lexeme
		typ := a.Types.DeclareStruct(qualified)
		id := a.Symbols.Declare(qualified, typ, false)
		if !a.Scopes.DeclareGlobal(qualified, id) {
			a.errorAt(st.Name.Span, "Redeclaration in scope: %s", qualified)
		}
		*st.ID() = id
	}
}

// resolveStructFields fills in the fields declared by structPass, once
// every struct name in the program is known (spec §4.3 struct pass).
func (a *Analyzer) resolveStructFields(mod *ast.Module) {
	a.currentModule = mod.Name.Lexeme
	for _, stmt := range mod.Stmts {
		st, ok := stmt.(*ast.StructStmt)
		if !ok {
			continue
		}
		qualified := a.currentModule + "." + st.Name.Lexeme
		typ, ok := a.Types.LookupStruct(qualified)
		if !ok {
			continue // declaration failed earlier; already diagnosed
		}

		seen := make(map[string]bool, len(st.Fields))
		fields := make([]types.Field, 0, len(st.Fields))
		for _, f := range st.Fields {
			if seen[f.Name.Lexeme] {
				a.errorAt(f.Name.Span, "Duplicate struct field: %s", f.Name.Lexeme)
				continue
			}
			seen[f.Name.Lexeme] = true

			fieldType, ok := a.resolveTypeSpec(f.TypeTok)
			if !ok {
				continue
			}
			if fieldType.Kind == types.KindVoid || fieldType.Kind == types.KindFunction {
				a.errorAt(f.TypeTok.Span, "Invalid field type: %s", f.TypeTok.Lexeme)
				continue
			}
			fields = append(fields, types.Field{Name: f.Name.Lexeme, Type: fieldType})
		}
		a.Types.SetStructFields(typ, fields)
	}
}
