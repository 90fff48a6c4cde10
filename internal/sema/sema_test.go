package sema_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/project"
	"cinder/internal/sema"
	"cinder/internal/source"
	"cinder/internal/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// analyze loads entryPath and its transitive imports, runs the full
// analyzer, and returns the diagnostics bag plus the analyzer for
// assertions against its type/symbol state.
func analyze(t *testing.T, dir, entryPath string) (*diag.Bag, *sema.Analyzer) {
	t.Helper()
	fs := source.NewFileSet()
	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag, FS: fs}

	loader := project.NewLoader(fs, reporter, []string{dir})
	units, err := loader.LoadEntries([]string{entryPath})
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	a := sema.New(fs, bag)
	a.Analyze(units)
	return bag, a
}

func TestArithmeticFunction(t *testing.T) {
	dir := t.TempDir()
	entry := writeFile(t, dir, "demo.ci",
		"mod demo;\ndef add(int32 a, int32 b) -> int32\n  return a + b;\nend\n")

	bag, a := analyze(t, dir, entry)
	if bag.HadError() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	id, ok := a.Scopes.LookupGlobal("demo.add")
	if !ok {
		t.Fatal("demo.add not found in globals")
	}
	sym := a.Symbols.Get(id)
	if !sym.IsFunction {
		t.Fatal("demo.add is not recorded as a function symbol")
	}
	if sym.Type.Kind != types.KindFunction {
		t.Fatalf("got kind %s, want function", sym.Type.Kind)
	}
	if len(sym.Type.Params) != 2 || sym.Type.Params[0] != a.Types.Int32 || sym.Type.Params[1] != a.Types.Int32 {
		t.Fatalf("unexpected param types: %+v", sym.Type.Params)
	}
	if sym.Type.Variadic {
		t.Fatal("add must not be variadic")
	}
}

func TestTypeMismatchInAssignment(t *testing.T) {
	dir := t.TempDir()
	entry := writeFile(t, dir, "demo.ci",
		"mod demo;\ndef f() -> int32\n  int32: x = 1;\n  x = 1.5;\n  return x;\nend\n")

	bag, _ := analyze(t, dir, entry)
	if !bag.HadError() {
		t.Fatal("expected an error")
	}
	found := false
	for _, d := range bag.Items() {
		if strings.Contains(d.Message, "Type mismatch in assignment: x") {
			found = true
			if d.Line != 4 {
				t.Fatalf("expected line 4, got %d", d.Line)
			}
		}
	}
	if !found {
		t.Fatalf("expected message not found, got: %v", bag.Items())
	}
}

func TestCrossModuleStructConstructor(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "math.ci",
		"mod math;\nstruct Vector2 int32: x; int32: y; end\ndef sum(Vector2 p) -> int32 return p.x + p.y; end\n")
	entry := writeFile(t, dir, "main.ci",
		"mod main;\nimport math;\ndef main() -> int32\n  math.Vector2: p = math.Vector2(1, 2);\n  int32: r = math.sum(p);\n  return r;\nend\n")

	bag, a := analyze(t, dir, entry)
	if bag.HadError() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	structType, ok := a.Types.LookupStruct("math.Vector2")
	if !ok {
		t.Fatal("math.Vector2 not declared")
	}
	if len(structType.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(structType.Fields))
	}
}

func TestVariadicPromotion(t *testing.T) {
	dir := t.TempDir()
	entry := writeFile(t, dir, "demo.ci",
		"mod demo;\nextern printf(str fmt, ...) -> int32;\ndef main() -> int32\n  bool: b = true;\n  printf(\"%d\", b);\n  return 0;\nend\n")

	fs := source.NewFileSet()
	bag := diag.NewBag(64)
	loader := project.NewLoader(fs, diag.BagReporter{Bag: bag, FS: fs}, []string{dir})
	units, err := loader.LoadEntries([]string{entry})
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	sema.New(fs, bag).Analyze(units)
	if bag.HadError() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}

	fn := units[0].AST.Stmts[1].(*ast.FunctionStmt)
	call := fn.Body[1].(*ast.ExpressionStmt).Expr.(*ast.CallExpr)
	if got := call.Args[1].Annotations().Type; got == nil || got.Kind != types.KindInt {
		t.Fatalf("variadic bool argument type = %v, want int after promotion", got)
	}
}

func TestUnknownQualifiedType(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "math.ci", "mod math;\nstruct V int32: x; end\n")
	entry := writeFile(t, dir, "main.ci",
		"mod main;\nimport math;\ndef f() -> int32\n  math.Missing: p = math.V(1);\n  return 0;\nend\n")

	bag, _ := analyze(t, dir, entry)
	if !bag.HadError() {
		t.Fatal("expected an error")
	}
	found := false
	for _, d := range bag.Items() {
		if strings.Contains(d.Message, "Invalid type: math.Missing") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected message not found, got: %v", bag.Items())
	}
}
