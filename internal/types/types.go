// Package types implements the analyzer's type context (spec §9 "Ownership
// of types"): a closed variant of primitive, function, and struct types,
// compared by reference identity rather than by structural equality.
package types

import "fmt"

// Kind tags the variant a Type holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindInt
	KindFloat
	KindBool
	KindString
	KindFunction
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindStruct:
		return "struct"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Field describes one struct member, in declaration order.
type Field struct {
	Name string
	Type *Type
}

// Type is a closed variant over the primitive, function, and struct shapes
// named in the spec's type grammar. Two Types describe the same type iff
// they are the same pointer — the Context is the sole owner and allocator.
type Type struct {
	Kind Kind

	// Int / Float
	Bits   uint8
	Signed bool // Int only

	// Function
	Return   *Type
	Params   []*Type
	Variadic bool

	// Struct
	QualifiedName string
	Fields        []Field
}

// String renders a human-readable type name, used in diagnostic messages.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindString:
		return "str"
	case KindInt:
		if t.Signed {
			return fmt.Sprintf("int%d", t.Bits)
		}
		return fmt.Sprintf("uint%d", t.Bits)
	case KindFloat:
		return fmt.Sprintf("flt%d", t.Bits)
	case KindStruct:
		return t.QualifiedName
	case KindFunction:
		s := "("
		for i, p := range t.Params {
			if i > 0 {
				s += ", "
			}
			s += p.String()
		}
		if t.Variadic {
			if len(t.Params) > 0 {
				s += ", "
			}
			s += "..."
		}
		return s + ") -> " + t.Return.String()
	default:
		return "<invalid>"
	}
}

// FieldIndex returns the declaration-order index of name, or -1.
func (t *Type) FieldIndex(name string) int {
	for i, f := range t.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// IsNumeric reports whether t is Int or Float.
func (t *Type) IsNumeric() bool {
	return t != nil && (t.Kind == KindInt || t.Kind == KindFloat)
}
