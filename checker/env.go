package checker

import (
	"github.com/benbjohnson/immutable"

	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

// TypeEnv is the persistent identifier -> QualifiedType environment
// plus the in-scope type-variable set. Every mutating operation returns
// a new *TypeEnv sharing structure with the receiver via
// github.com/benbjohnson/immutable's hash-array-mapped-trie Map, so
// "copy" is free and mutation of a branch is never observable from a
// sibling branch.
type TypeEnv struct {
	bindings *immutable.Map
	typeVars *immutable.Map
}

// NewTypeEnv returns the empty environment.
func NewTypeEnv() *TypeEnv {
	return &TypeEnv{
		bindings: immutable.NewMap(nil),
		typeVars: immutable.NewMap(nil),
	}
}

// Copy returns an independent handle onto the same persistent state.
// Because the underlying maps are never mutated in place, this is O(1)
// and later writes through either handle cannot affect the other.
func (e *TypeEnv) Copy() *TypeEnv {
	return &TypeEnv{bindings: e.bindings, typeVars: e.typeVars}
}

// AddT extends the environment with name -> ty, shadowing any prior
// binding of name, and returns the extended environment.
func (e *TypeEnv) AddT(name string, qt types.QualifiedType) *TypeEnv {
	return &TypeEnv{bindings: e.bindings.Set(name, qt), typeVars: e.typeVars}
}

// NamedType is one (name, type) pair, used by AddTs.
type NamedType struct {
	Name string
	Type types.QualifiedType
}

// AddTs applies AddT left to right.
func (e *TypeEnv) AddTs(pairs []NamedType) *TypeEnv {
	env := e
	for _, p := range pairs {
		env = env.AddT(p.Name, p.Type)
	}
	return env
}

// AddV adds a type variable to the in-scope set.
func (e *TypeEnv) AddV(name string) *TypeEnv {
	return &TypeEnv{bindings: e.bindings, typeVars: e.typeVars.Set(name, struct{}{})}
}

// HasTypeVar reports whether name is an in-scope type variable.
func (e *TypeEnv) HasTypeVar(name string) bool {
	_, ok := e.typeVars.Get(name)
	return ok
}

// ResolveT looks up name, or reports UnboundError at loc.
func (e *TypeEnv) ResolveT(name string, loc common.Loc) (types.QualifiedType, error) {
	v, ok := e.bindings.Get(name)
	if !ok {
		return types.QualifiedType{}, &UnboundError{Name: name, L: loc}
	}
	return v.(types.QualifiedType), nil
}

// Lookup is like ResolveT but never reports an error, for call sites
// that only want to know whether a name is bound (e.g. free-variable /
// blacklist intersection in ModuleDriver).
func (e *TypeEnv) Lookup(name string) (types.QualifiedType, bool) {
	v, ok := e.bindings.Get(name)
	if !ok {
		return types.QualifiedType{}, false
	}
	return v.(types.QualifiedType), true
}
