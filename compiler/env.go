package compiler

import "fmt"

// FuncTable maps a declared function name to its arity. It is shared
// across the translation of every sibling FuncDef and grows
// monotonically as each is emitted — never shrinks, never mutated
// outside Insert.
type FuncTable struct {
	arity map[string]int
}

// NewFuncTable builds a FuncTable pre-seeded with the two runtime
// built-ins, write/1 and read/0.
func NewFuncTable() *FuncTable {
	return &FuncTable{arity: map[string]int{
		"write": 1,
		"read":  0,
	}}
}

// Insert records name with the given arity. It fails if name is
// already present — function names are unique across the whole
// translation.
func (t *FuncTable) Insert(name string, arity int) error {
	if _, exists := t.arity[name]; exists {
		return CreateNameError(fmt.Sprintf("function %q is already defined", name))
	}
	t.arity[name] = arity
	return nil
}

// Lookup reports name's declared arity and whether it is present.
func (t *FuncTable) Lookup(name string) (int, bool) {
	arity, ok := t.arity[name]
	return arity, ok
}

// Has reports whether name is present in the table, regardless of
// arity.
func (t *FuncTable) Has(name string) bool {
	_, ok := t.arity[name]
	return ok
}

// VarScope is the set of parameter names visible in the body of the
// function currently being translated. It is built once per FuncDef
// and never mutated afterward.
type VarScope struct {
	names map[string]struct{}
}

// NewVarScope builds a VarScope from a function's parameter list. It
// fails if params contains a duplicate name.
func NewVarScope(params []string) (*VarScope, error) {
	names := make(map[string]struct{}, len(params))
	for _, p := range params {
		if _, dup := names[p]; dup {
			return nil, CreateNameError(fmt.Sprintf("duplicate parameter name %q", p))
		}
		names[p] = struct{}{}
	}
	return &VarScope{names: names}, nil
}

// Has reports whether name is a visible variable in this scope.
func (s *VarScope) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}
