package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/lexer"
	"cinder/internal/parser"
	"cinder/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse <src>",
	Short: "Parse a cinder source file and dump its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return err
	}

	bag := diag.NewBag(maxDiagnostics(cmd))
	reporter := diag.BagReporter{Bag: bag, FS: fs}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: reporter})
	p := parser.New(lx, reporter)

	mod, perr := p.Parse()
	if perr != nil {
		printDiagnostics(cmd, fs, bag)
		return perr
	}

	dumpModule(cmd.OutOrStdout(), mod)
	return nil
}

func dumpModule(w io.Writer, mod *ast.Module) {
	fmt.Fprintf(w, "mod %s\n", mod.Name.Lexeme)
	for _, s := range mod.Stmts {
		dumpStmt(w, s, 1)
	}
}

func dumpStmt(w io.Writer, s ast.Stmt, depth int) {
	indent := indentOf(depth)
	switch v := s.(type) {
	case *ast.Import:
		fmt.Fprintf(w, "%simport %s\n", indent, v.ModName.Lexeme)
	case *ast.StructStmt:
		fmt.Fprintf(w, "%sstruct %s (%d fields)\n", indent, v.Name.Lexeme, len(v.Fields))
	case *ast.FunctionProto:
		fmt.Fprintf(w, "%sextern %s -> %s\n", indent, v.Name.Lexeme, v.ReturnType.Lexeme)
	case *ast.FunctionStmt:
		fmt.Fprintf(w, "%sdef %s -> %s\n", indent, v.Proto.Name.Lexeme, v.Proto.ReturnType.Lexeme)
		for _, bs := range v.Body {
			dumpStmt(w, bs, depth+1)
		}
	case *ast.VarDeclaration:
		fmt.Fprintf(w, "%svar %s: %s\n", indent, v.Name.Lexeme, v.TypeTok.Lexeme)
	case *ast.Return:
		fmt.Fprintf(w, "%sreturn\n", indent)
	case *ast.If:
		fmt.Fprintf(w, "%sif\n", indent)
		dumpStmt(w, v.Then, depth+1)
		if v.Else != nil {
			fmt.Fprintf(w, "%selse\n", indent)
			dumpStmt(w, v.Else, depth+1)
		}
	case *ast.For:
		fmt.Fprintf(w, "%sfor\n", indent)
		for _, bs := range v.Body {
			dumpStmt(w, bs, depth+1)
		}
	case *ast.While:
		fmt.Fprintf(w, "%swhile\n", indent)
		for _, bs := range v.Body {
			dumpStmt(w, bs, depth+1)
		}
	case *ast.ExpressionStmt:
		fmt.Fprintf(w, "%sexpr\n", indent)
	}
}

func indentOf(depth int) string {
	s := ""
	for i := 0; i < depth; i++ {
		s += "  "
	}
	return s
}
