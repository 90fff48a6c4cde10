package ast_test

import (
	"testing"

	"cinder/internal/ast"
	"cinder/internal/source"
	"cinder/internal/token"
)

func TestLiteralAnnotationsStartNil(t *testing.T) {
	tok := token.Token{Kind: token.IntLit, Literal: token.Literal{Kind: token.LiteralInt, Int: 42}}
	lit := ast.NewLiteral(tok)
	if lit.Annotations().Type != nil {
		t.Fatal("a fresh node must start with a nil type annotation")
	}
}

func TestMemberAccessFieldIndexUnresolved(t *testing.T) {
	base := ast.NewVariable(token.Token{Kind: token.Ident, Lexeme: "p"})
	ma := ast.NewMemberAccess(base, token.Token{Kind: token.Ident, Lexeme: "x"})
	if ma.FieldIndex != -1 {
		t.Fatalf("FieldIndex = %d, want -1 before struct-pass resolution", ma.FieldIndex)
	}
}

func TestModuleStmtsOrdering(t *testing.T) {
	mod := &ast.Module{
		Name: token.Token{Lexeme: "demo"},
		Stmts: []ast.Stmt{
			&ast.Import{ModName: token.Token{Lexeme: "math"}},
			&ast.FunctionProto{Name: token.Token{Lexeme: "f"}},
		},
	}
	if _, ok := mod.Stmts[0].(*ast.Import); !ok {
		t.Fatal("expected first statement to be an Import")
	}
	_ = source.Span{}
}
