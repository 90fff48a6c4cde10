package types_test

import (
	"testing"

	"cinder/internal/types"
)

func TestPrimitivesAreSingletons(t *testing.T) {
	c := types.NewContext()
	if c.Primitive("int32") != c.Int32 {
		t.Fatal("Primitive(int32) did not return the singleton")
	}
	if c.Primitive("bool") != c.Primitive("bool") {
		t.Fatal("bool singleton not stable across calls")
	}
	if c.Primitive("nope") != nil {
		t.Fatal("expected nil for unknown primitive spelling")
	}
}

func TestFunctionTypesAreInterned(t *testing.T) {
	c := types.NewContext()
	f1 := c.Function(c.Int32, []*types.Type{c.Bool, c.String}, false)
	f2 := c.Function(c.Int32, []*types.Type{c.Bool, c.String}, false)
	if f1 != f2 {
		t.Fatal("identical function signatures were not interned to the same pointer")
	}

	f3 := c.Function(c.Int32, []*types.Type{c.Bool, c.String}, true)
	if f1 == f3 {
		t.Fatal("variadic flag should produce a distinct interned type")
	}
}

func TestStructForwardReference(t *testing.T) {
	c := types.NewContext()
	node := c.DeclareStruct("list.Node")
	if node.Kind != types.KindStruct {
		t.Fatalf("expected KindStruct, got %s", node.Kind)
	}
	if len(node.Fields) != 0 {
		t.Fatal("freshly declared struct should have no fields yet")
	}

	same, ok := c.LookupStruct("list.Node")
	if !ok || same != node {
		t.Fatal("LookupStruct must return the identical pointer declared earlier")
	}

	c.SetStructFields(node, []types.Field{
		{Name: "value", Type: c.Int32},
		{Name: "next", Type: node},
	})
	if idx := node.FieldIndex("next"); idx != 1 {
		t.Fatalf("FieldIndex(next) = %d, want 1", idx)
	}
}

func TestDeclareStructIsIdempotent(t *testing.T) {
	c := types.NewContext()
	a := c.DeclareStruct("m.S")
	b := c.DeclareStruct("m.S")
	if a != b {
		t.Fatal("redeclaring the same qualified name must return the same pointer")
	}
}
