package lexer_test

import (
	"testing"

	"cinder/internal/diag"
	"cinder/internal/lexer"
	"cinder/internal/source"
	"cinder/internal/token"
)

// testReporter collects every diagnostic handed to it by a Lexer.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(sev diag.Severity, primary source.Span, msg string) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{Severity: sev, Message: msg, Primary: primary})
}

func (r *testReporter) errorCount() int {
	n := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			n++
		}
	}
	return n
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ci", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestLexerKeywordsAndIdents(t *testing.T) {
	lx, rep := makeTestLexer("def main x0 end")
	toks := collectAllTokens(lx)

	want := []token.Kind{token.KwDef, token.Ident, token.Ident, token.KwEnd, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
	if rep.errorCount() != 0 {
		t.Errorf("unexpected errors: %v", rep.diagnostics)
	}
}

func TestLexerBoolLiterals(t *testing.T) {
	lx, _ := makeTestLexer("true false")
	toks := collectAllTokens(lx)
	if toks[0].Literal.Kind != token.LiteralBool || toks[0].Literal.Bool != true {
		t.Errorf("expected true literal, got %+v", toks[0].Literal)
	}
	if toks[1].Literal.Kind != token.LiteralBool || toks[1].Literal.Bool != false {
		t.Errorf("expected false literal, got %+v", toks[1].Literal)
	}
}

func TestLexerNumberLiterals(t *testing.T) {
	lx, _ := makeTestLexer("42 3.14")
	toks := collectAllTokens(lx)

	if toks[0].Kind != token.IntLit || toks[0].Literal.Int != 42 {
		t.Errorf("got %+v, want int 42", toks[0])
	}
	if toks[1].Kind != token.FltLit || toks[1].Literal.Float != 3.14 {
		t.Errorf("got %+v, want flt 3.14", toks[1])
	}
}

func TestLexerStringEscapes(t *testing.T) {
	lx, rep := makeTestLexer(`"hi\nthere\t\""`)
	tok := lx.Next()
	if tok.Kind != token.StrLit {
		t.Fatalf("got %s, want StrLit", tok.Kind)
	}
	want := "hi\nthere\t\""
	if tok.Literal.String != want {
		t.Errorf("got %q, want %q", tok.Literal.String, want)
	}
	if rep.errorCount() != 0 {
		t.Errorf("unexpected errors: %v", rep.diagnostics)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	lx, rep := makeTestLexer(`"oops`)
	lx.Next()
	if rep.errorCount() != 1 {
		t.Fatalf("got %d errors, want 1", rep.errorCount())
	}
}

func TestLexerOperators(t *testing.T) {
	lx, rep := makeTestLexer("+ ++ - -- == != <= >= -> ... . ( )")
	toks := collectAllTokens(lx)
	want := []token.Kind{
		token.Plus, token.PlusPlus, token.Minus, token.MinusMinus,
		token.EqEq, token.BangEq, token.LtEq, token.GtEq, token.Arrow,
		token.Ellipsis, token.Dot, token.LParen, token.RParen, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
	if rep.errorCount() != 0 {
		t.Errorf("unexpected errors: %v", rep.diagnostics)
	}
}

func TestLexerLineComment(t *testing.T) {
	lx, _ := makeTestLexer("x // this is a comment\ny")
	toks := collectAllTokens(lx)
	if len(toks) != 3 || toks[0].Kind != token.Ident || toks[1].Kind != token.Ident {
		t.Fatalf("got %v", toks)
	}
}

func TestLexerInvalidCharacter(t *testing.T) {
	lx, rep := makeTestLexer("x @ y")
	collectAllTokens(lx)
	if rep.errorCount() != 1 {
		t.Fatalf("got %d errors, want 1", rep.errorCount())
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	first := lx.Peek()
	second := lx.Peek()
	if first.Lexeme != second.Lexeme {
		t.Fatalf("peek is not idempotent: %q vs %q", first.Lexeme, second.Lexeme)
	}
	third := lx.Next()
	if third.Lexeme != first.Lexeme {
		t.Fatalf("Next after Peek returned %q, want %q", third.Lexeme, first.Lexeme)
	}
	fourth := lx.Next()
	if fourth.Lexeme != "b" {
		t.Fatalf("got %q, want b", fourth.Lexeme)
	}
}
