package symbols

// frame is one lexical level: a mapping from bare name to SymbolID.
type frame map[string]SymbolID

// Scopes is a strictly LIFO stack of lexical frames. The bottom frame
// holds globals, including the module-qualified names of every top-level
// declaration (spec §4.3 "Scope stack discipline"). Frames contain only
// value copies of ids; the Table above owns the actual Symbol data.
type Scopes struct {
	frames []frame
}

// NewScopes returns a stack with the global frame already pushed.
func NewScopes() *Scopes {
	return &Scopes{frames: []frame{make(frame)}}
}

// BeginScope pushes a fresh frame, used on module, function body, and
// `for` loop entry.
func (s *Scopes) BeginScope() {
	s.frames = append(s.frames, make(frame))
}

// EndScope pops the top frame. Callers must guarantee this runs on every
// structural exit, including error exits (spec §9 "Lexical scope
// resource").
func (s *Scopes) EndScope() {
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth reports how many frames are currently pushed.
func (s *Scopes) Depth() int { return len(s.frames) }

// Declare binds name to id in the current (top) frame. Returns false if
// name is already bound in that same frame — a redeclaration error at the
// call site.
func (s *Scopes) Declare(name string, id SymbolID) bool {
	top := s.frames[len(s.frames)-1]
	if _, exists := top[name]; exists {
		return false
	}
	top[name] = id
	return true
}

// DeclareGlobal binds name in the bottom (global) frame, regardless of how
// deep the stack currently is. Used by the struct and signature passes,
// which populate globals before any scope is pushed for a body.
func (s *Scopes) DeclareGlobal(name string, id SymbolID) bool {
	bottom := s.frames[0]
	if _, exists := bottom[name]; exists {
		return false
	}
	bottom[name] = id
	return true
}

// Lookup walks the stack top-down looking for a bare name (spec §4.3 step
// 1: "Walk the scope stack top-down.").
func (s *Scopes) Lookup(name string) (SymbolID, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if id, ok := s.frames[i][name]; ok {
			return id, true
		}
	}
	return NoSymbolID, false
}

// LookupGlobal looks up a module-qualified or bare name directly in the
// global frame (spec §4.3 step 2: "look up M.x in globals").
func (s *Scopes) LookupGlobal(qualifiedName string) (SymbolID, bool) {
	id, ok := s.frames[0][qualifiedName]
	return id, ok
}
