// Package symbols implements the analyzer's symbol table and lexical scope
// stack (spec §4.3, §9 "Symbol table & scope stack"): dense, monotonically
// increasing SymbolIds, a flat table owning every Symbol record, and a
// LIFO stack of name->SymbolId frames that the scope stack manipulates.
package symbols

import "cinder/internal/types"

// SymbolID is a dense identifier assigned in declaration order. Ids are
// never reused and remain stable for the rest of the compile.
type SymbolID uint32

// NoSymbolID marks the absence of a symbol.
const NoSymbolID SymbolID = 0

// Symbol records one declared name: a variable, parameter, function, or
// struct type.
type Symbol struct {
	ID         SymbolID
	Name       string // module-qualified for globals, bare otherwise
	Type       *types.Type
	IsFunction bool
}

// Table owns every Symbol record for a compile. The scope stack below
// stores only ids; Table is the single place symbol data lives (spec §9:
// "The symbol table uniquely owns SymbolInfo records; the scope stack
// stores only ids.").
type Table struct {
	symbols []Symbol // index 0 reserved, so SymbolID 0 stays invalid
}

// NewTable returns an empty table with the sentinel slot reserved.
func NewTable() *Table {
	return &Table{symbols: []Symbol{{}}}
}

// Declare allocates a new dense SymbolID and records its data.
func (t *Table) Declare(name string, typ *types.Type, isFunction bool) SymbolID {
	id := SymbolID(len(t.symbols))
	t.symbols = append(t.symbols, Symbol{ID: id, Name: name, Type: typ, IsFunction: isFunction})
	return id
}

// Get returns the symbol recorded under id. Get(NoSymbolID) returns the
// empty sentinel record (nil Type); an id outside the table panics.
func (t *Table) Get(id SymbolID) *Symbol {
	return &t.symbols[id]
}

// Len returns the number of declared symbols (excluding the sentinel).
func (t *Table) Len() int { return len(t.symbols) - 1 }
