package symbols_test

import (
	"testing"

	"cinder/internal/symbols"
	"cinder/internal/types"
)

func TestDenseMonotonicIDs(t *testing.T) {
	tbl := symbols.NewTable()
	a := tbl.Declare("demo.a", types.NewContext().Int32, false)
	b := tbl.Declare("demo.b", types.NewContext().Int32, false)
	if b != a+1 {
		t.Fatalf("expected dense increasing ids, got %d then %d", a, b)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
}

func TestScopeLookupTopDown(t *testing.T) {
	tbl := symbols.NewTable()
	scopes := symbols.NewScopes()

	gID := tbl.Declare("x", nil, false)
	scopes.DeclareGlobal("x", gID)

	scopes.BeginScope()
	lID := tbl.Declare("x", nil, false)
	scopes.Declare("x", lID)

	got, ok := scopes.Lookup("x")
	if !ok || got != lID {
		t.Fatalf("expected inner shadowing symbol %d, got %d, ok=%v", lID, got, ok)
	}

	scopes.EndScope()
	got, ok = scopes.Lookup("x")
	if !ok || got != gID {
		t.Fatalf("expected global symbol %d after pop, got %d, ok=%v", gID, got, ok)
	}
}

func TestDeclareRejectsRedeclarationInSameFrame(t *testing.T) {
	scopes := symbols.NewScopes()
	if !scopes.Declare("y", 1) {
		t.Fatal("first declaration should succeed")
	}
	if scopes.Declare("y", 2) {
		t.Fatal("redeclaring the same name in the same frame must fail")
	}
}

func TestLookupGlobalByQualifiedName(t *testing.T) {
	scopes := symbols.NewScopes()
	scopes.DeclareGlobal("demo.add", 7)

	scopes.BeginScope()
	defer scopes.EndScope()

	if id, ok := scopes.Lookup("demo.add"); !ok || id != 7 {
		t.Fatalf("Lookup should fall through to the global frame: id=%d ok=%v", id, ok)
	}
	id, ok := scopes.LookupGlobal("demo.add")
	if !ok || id != 7 {
		t.Fatalf("LookupGlobal failed: id=%d ok=%v", id, ok)
	}
}
