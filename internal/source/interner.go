package source

// StringID identifies an interned string such as an identifier or a
// qualified symbol name.
type StringID uint32

// NoStringID marks the absence of an interned string.
const NoStringID StringID = 0

// Interner deduplicates strings and hands out stable, dense StringIDs.
// The compile is single-threaded (spec §5), so no locking is needed.
type Interner struct {
	byID  []string
	index map[string]StringID
}

// NewInterner returns an interner with NoStringID pre-bound to "".
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the stable ID for s, allocating a new one if necessary.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	id := StringID(len(in.byID))
	in.byID = append(in.byID, s)
	in.index[s] = id
	return id
}

// Lookup returns the string for id, if id was produced by this interner.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if int(id) < 0 || int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup is Lookup, panicking on an invalid id.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid string id")
	}
	return s
}

// Len returns the number of distinct strings interned, including NoStringID.
func (in *Interner) Len() int {
	return len(in.byID)
}
