package project_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cinder/internal/project"
	"cinder/internal/source"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderOrdersImportsBeforeImporters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "math.ci", "mod math;\ndef sum(int32 a, int32 b) -> int32\n  return a + b;\nend\n")
	mainPath := writeFile(t, dir, "main.ci", "mod main;\nimport math;\ndef main() -> int32\n  return 0;\nend\n")

	fs := source.NewFileSet()
	loader := project.NewLoader(fs, nil, []string{dir})
	units, err := loader.LoadEntries([]string{mainPath})
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("got %d units, want 2", len(units))
	}
	if units[0].AST.Name.Lexeme != "math" {
		t.Fatalf("expected math to be ordered before main, got %q first", units[0].AST.Name.Lexeme)
	}
	if units[1].AST.Name.Lexeme != "main" {
		t.Fatalf("expected main last, got %q", units[1].AST.Name.Lexeme)
	}
}

func TestLoaderDetectsImportCycle(t *testing.T) {
	dir := t.TempDir()
	aPath := writeFile(t, dir, "a.ci", "mod a;\nimport b;\n")
	writeFile(t, dir, "b.ci", "mod b;\nimport a;\n")

	fs := source.NewFileSet()
	loader := project.NewLoader(fs, nil, []string{dir})
	_, err := loader.LoadEntries([]string{aPath})
	if err == nil {
		t.Fatal("expected an import cycle error")
	}
	if !strings.Contains(err.Error(), "Import cycle detected") {
		t.Fatalf("error %q does not mention the cycle", err.Error())
	}
	if !strings.Contains(err.Error(), "a.ci") || !strings.Contains(err.Error(), "b.ci") {
		t.Fatalf("error %q does not name both modules", err.Error())
	}
	if loader.LastError() == nil {
		t.Fatal("LastError() should report the same failure")
	}
}

func TestLoaderRejectsDuplicateModuleName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dup1.ci", "mod shared;\n")
	writeFile(t, dir, "dup2.ci", "mod shared;\n")
	entryPath := writeFile(t, dir, "entry.ci", "mod entry;\nimport dup1;\nimport dup2;\n")

	fs := source.NewFileSet()
	loader := project.NewLoader(fs, nil, []string{dir})
	if _, err := loader.LoadEntries([]string{entryPath}); err == nil {
		t.Fatal("expected a duplicate module name error")
	}
}

func TestLoaderUnresolvedImport(t *testing.T) {
	dir := t.TempDir()
	entryPath := writeFile(t, dir, "entry.ci", "mod entry;\nimport nope;\n")

	fs := source.NewFileSet()
	loader := project.NewLoader(fs, nil, []string{dir})
	if _, err := loader.LoadEntries([]string{entryPath}); err == nil {
		t.Fatal("expected an unresolved import error")
	}
}
