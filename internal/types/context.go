package types

import "strings"

// Context owns every Type value in a compilation: primitive singletons,
// an interned pool of function types, and a qualified-name map of struct
// types (spec §9: "Primitive types are singletons owned by the type
// context. Function and struct types are owned by the context's pool; AST
// and symbol records hold non-owning references.").
type Context struct {
	Void    *Type
	Int32   *Type
	Int64   *Type
	Flt32   *Type
	Flt64   *Type
	Bool    *Type
	String  *Type

	fns     map[string]*Type // interning key -> function type
	structs map[string]*Type // qualified name -> struct type
}

// NewContext allocates the singleton primitives and empty pools.
func NewContext() *Context {
	return &Context{
		Void:    &Type{Kind: KindVoid},
		Int32:   &Type{Kind: KindInt, Bits: 32, Signed: true},
		Int64:   &Type{Kind: KindInt, Bits: 64, Signed: true},
		Flt32:   &Type{Kind: KindFloat, Bits: 32},
		Flt64:   &Type{Kind: KindFloat, Bits: 64},
		Bool:    &Type{Kind: KindBool},
		String:  &Type{Kind: KindString},
		fns:     make(map[string]*Type),
		structs: make(map[string]*Type),
	}
}

// Primitive resolves one of the fixed primitive keyword spellings
// (int32|int64|flt32|flt64|bool|str|void), or returns nil.
func (c *Context) Primitive(name string) *Type {
	switch name {
	case "int32":
		return c.Int32
	case "int64":
		return c.Int64
	case "flt32":
		return c.Flt32
	case "flt64":
		return c.Flt64
	case "bool":
		return c.Bool
	case "str":
		return c.String
	case "void":
		return c.Void
	default:
		return nil
	}
}

// Function interns a function type, returning the existing instance if an
// identical signature was already interned.
func (c *Context) Function(ret *Type, params []*Type, variadic bool) *Type {
	key := fnKey(ret, params, variadic)
	if t, ok := c.fns[key]; ok {
		return t
	}
	t := &Type{Kind: KindFunction, Return: ret, Params: append([]*Type(nil), params...), Variadic: variadic}
	c.fns[key] = t
	return t
}

func fnKey(ret *Type, params []*Type, variadic bool) string {
	var sb strings.Builder
	sb.WriteString(ret.String())
	sb.WriteByte('|')
	for _, p := range params {
		sb.WriteString(p.String())
		sb.WriteByte(',')
	}
	if variadic {
		sb.WriteString("...")
	}
	return sb.String()
}

// DeclareStruct registers qualifiedName (MODULE.STRUCTNAME) with no fields
// yet, supporting the forward reference a struct field may make to the
// enclosing module's own types during the struct pass. Returns the
// existing type if qualifiedName was already declared.
func (c *Context) DeclareStruct(qualifiedName string) *Type {
	if t, ok := c.structs[qualifiedName]; ok {
		return t
	}
	t := &Type{Kind: KindStruct, QualifiedName: qualifiedName}
	c.structs[qualifiedName] = t
	return t
}

// SetStructFields finishes a struct declared with DeclareStruct, assigning
// its fields in declaration order (field_index in MemberAccess nodes
// matches this order, per spec §4.3).
func (c *Context) SetStructFields(t *Type, fields []Field) {
	t.Fields = fields
}

// LookupStruct returns the struct type registered under qualifiedName, if
// any.
func (c *Context) LookupStruct(qualifiedName string) (*Type, bool) {
	t, ok := c.structs[qualifiedName]
	return t, ok
}
