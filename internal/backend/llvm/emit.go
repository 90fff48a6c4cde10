// Package llvm is the IR emitter collaborator described in spec §4.4: it
// consumes a fully analyzed module set — resolved types, symbol ids, and
// struct field order — and produces textual LLVM IR. Machine-code
// generation, optimization passes, and the clang link step are out of
// scope (spec §2); this package stops at emitting `.ll` text.
package llvm

import (
	"fmt"
	"strconv"
	"strings"

	"cinder/internal/ast"
	"cinder/internal/project"
	"cinder/internal/sema"
	"cinder/internal/token"
	"cinder/internal/types"
)

// EmitModules renders every unit's struct layouts and function signatures
// (plus best-effort bodies) as one textual IR module. Callers must only
// invoke this once Analyzer.HadError() is false (spec §4.3 "Terminal
// state"); emitting from a failed analysis is undefined.
func EmitModules(units []*project.Unit, a *sema.Analyzer) string {
	var b strings.Builder
	e := &emitter{a: a, b: &b}

	for _, u := range units {
		e.module(u.AST)
	}
	return b.String()
}

type emitter struct {
	a      *sema.Analyzer
	b      *strings.Builder
	nextID int
}

func (e *emitter) module(mod *ast.Module) {
	fmt.Fprintf(e.b, "; module %s\n", mod.Name.Lexeme)
	for _, stmt := range mod.Stmts {
		if s, ok := stmt.(*ast.StructStmt); ok {
			e.structType(mod.Name.Lexeme, s)
		}
	}
	for _, stmt := range mod.Stmts {
		switch s := stmt.(type) {
		case *ast.FunctionProto:
			if s.IsExtern {
				e.declare(s)
			}
		case *ast.FunctionStmt:
			e.define(s)
		}
	}
}

func (e *emitter) structType(moduleName string, s *ast.StructStmt) {
	t, ok := e.a.Types.LookupStruct(moduleName + "." + s.Name.Lexeme)
	if !ok {
		return
	}
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = irType(f.Type)
	}
	fmt.Fprintf(e.b, "%%%s = type { %s }\n", irStructName(t.QualifiedName), strings.Join(names, ", "))
}

func (e *emitter) declare(proto *ast.FunctionProto) {
	sym := e.a.Symbols.Get(*proto.ID())
	fmt.Fprintf(e.b, "declare %s @%s(%s)\n", irType(sym.Type.Return), proto.Name.Lexeme, irParamList(proto))
}

func (e *emitter) define(fn *ast.FunctionStmt) {
	proto := fn.Proto
	sym := e.a.Symbols.Get(*proto.ID())
	fnType := sym.Type

	fmt.Fprintf(e.b, "define %s @%s(%s) {\n", irType(fnType.Return), irFuncName(sym.Name, proto), irParamListTyped(proto))
	fmt.Fprintln(e.b, "entry:")

	e.nextID = 0
	for i := range proto.Args {
		arg := &proto.Args[i]
		fmt.Fprintf(e.b, "  %%%s = alloca %s\n", arg.Name.Lexeme, irType(arg.ResolvedType))
		fmt.Fprintf(e.b, "  store %s %%arg.%s, %s* %%%s\n", irType(arg.ResolvedType), arg.Name.Lexeme, irType(arg.ResolvedType), arg.Name.Lexeme)
	}
	for _, stmt := range fn.Body {
		e.stmt(stmt)
	}
	if fnType.Return.Kind == types.KindVoid {
		fmt.Fprintln(e.b, "  ret void")
	}
	fmt.Fprintln(e.b, "}")
}

func (e *emitter) stmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.VarDeclaration:
		t := v.Value.Annotations().Type
		fmt.Fprintf(e.b, "  %%%s = alloca %s\n", v.Name.Lexeme, irType(t))
	case *ast.Return:
		if v.Value == nil {
			fmt.Fprintln(e.b, "  ret void")
			return
		}
		t := v.Value.Annotations().Type
		fmt.Fprintf(e.b, "  ret %s %s\n", irType(t), e.operand(v.Value))
	case *ast.ExpressionStmt:
		e.operand(v.Expr)
	case *ast.If:
		e.stmt(v.Then)
		if v.Else != nil {
			e.stmt(v.Else)
		}
	case *ast.While:
		for _, bs := range v.Body {
			e.stmt(bs)
		}
	case *ast.For:
		e.stmt(v.Init)
		for _, bs := range v.Body {
			e.stmt(bs)
		}
	}
}

// operand renders a value-producing expression as an IR operand,
// allocating a fresh SSA-style name when the expression needs one. This
// is a minimal lowering: block layout and value materialization are the
// emitter's own concern (spec §4.4), not something the analyzer contract
// constrains.
func (e *emitter) operand(expr ast.Expr) string {
	switch v := expr.(type) {
	case *ast.Literal:
		return literalOperand(v.Value)
	case *ast.Variable:
		return "%" + v.Name.Lexeme
	case *ast.Binary:
		l := e.operand(v.Left)
		r := e.operand(v.Right)
		dst := e.fresh()
		fmt.Fprintf(e.b, "  %s = %s %s %s, %s\n", dst, binOp(v.Op.Lexeme), irType(v.Annotations().Type), l, r)
		return dst
	default:
		return "undef"
	}
}

func (e *emitter) fresh() string {
	e.nextID++
	return fmt.Sprintf("%%t%d", e.nextID)
}

func literalOperand(lit token.Literal) string {
	switch lit.Kind {
	case token.LiteralInt:
		return strconv.FormatInt(lit.Int, 10)
	case token.LiteralFloat:
		return strconv.FormatFloat(lit.Float, 'g', -1, 64)
	case token.LiteralBool:
		if lit.Bool {
			return "1"
		}
		return "0"
	case token.LiteralString:
		return strconv.Quote(lit.String)
	default:
		return "undef"
	}
}

func binOp(lexeme string) string {
	switch lexeme {
	case "+":
		return "add"
	case "-":
		return "sub"
	case "*":
		return "mul"
	case "/":
		return "sdiv"
	case "%":
		return "srem"
	default:
		return "add"
	}
}

func irType(t *types.Type) string {
	if t == nil {
		return "void"
	}
	switch t.Kind {
	case types.KindVoid:
		return "void"
	case types.KindBool:
		return "i1"
	case types.KindInt:
		return fmt.Sprintf("i%d", t.Bits)
	case types.KindFloat:
		if t.Bits == 64 {
			return "double"
		}
		return "float"
	case types.KindString:
		return "i8*"
	case types.KindStruct:
		return "%" + irStructName(t.QualifiedName)
	default:
		return "i8*"
	}
}

func irStructName(qualifiedName string) string {
	return strings.ReplaceAll(qualifiedName, ".", "_")
}

func irFuncName(symbolName string, proto *ast.FunctionProto) string {
	if proto.IsExtern {
		return proto.Name.Lexeme
	}
	return strings.ReplaceAll(symbolName, ".", "_")
}

func irParamList(proto *ast.FunctionProto) string {
	parts := make([]string, 0, len(proto.Args))
	for i := range proto.Args {
		parts = append(parts, irType(proto.Args[i].ResolvedType))
	}
	if proto.IsVariadic {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}

func irParamListTyped(proto *ast.FunctionProto) string {
	parts := make([]string, 0, len(proto.Args))
	for i := range proto.Args {
		arg := &proto.Args[i]
		parts = append(parts, fmt.Sprintf("%s %%arg.%s", irType(arg.ResolvedType), arg.Name.Lexeme))
	}
	if proto.IsVariadic {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}
