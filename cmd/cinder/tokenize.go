package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cinder/internal/diag"
	"cinder/internal/lexer"
	"cinder/internal/source"
	"cinder/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <src>",
	Short: "Dump the token stream for a cinder source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return err
	}

	bag := diag.NewBag(maxDiagnostics(cmd))
	reporter := diag.BagReporter{Bag: bag, FS: fs}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: reporter})

	out := cmd.OutOrStdout()
	for {
		tok := lx.Next()
		fmt.Fprintf(out, "%-12s %-20q line %d\n", tok.Kind, tok.Lexeme, lineOf(fs, tok))
		if tok.Kind == token.EOF {
			break
		}
	}

	if bag.Len() > 0 {
		printDiagnostics(cmd, fs, bag)
	}
	if bag.HadError() {
		return fmt.Errorf("tokenize failed")
	}
	return nil
}

func lineOf(fs *source.FileSet, tok token.Token) uint32 {
	start, _ := fs.Resolve(tok.Span)
	return start.Line
}
