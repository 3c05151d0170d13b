// Package stdlib provides the concrete external collaborators
// checker.Config asks for: the ADT/builtin/blockchain registries, the
// message field policy, and the implicit-parameter provider, plus the
// small set of recursion primitives that bootstrap every module. None
// of this lives in package checker itself, since the checker is
// deliberately parametric over what ADTs, what builtins, and what
// implicit fields a host exposes.
package stdlib

import (
	"github.com/vela-lang/vela/checker"
	"github.com/vela-lang/vela/types"
)

// ADTs is the built-in constructor/type registry: Bool, Option, List,
// Nat and Pair, a small closed set typical example contracts are
// written against.
type ADTs struct {
	constructors map[string]checker.ConstructorInfo
	adts         map[string]checker.ADTTypeInfo
}

// NewADTs builds a new registry on every call; NewConfig calls it once
// per Config it assembles.
func NewADTs() *ADTs {
	r := &ADTs{
		constructors: map[string]checker.ConstructorInfo{},
		adts:         map[string]checker.ADTTypeInfo{},
	}

	r.declare("Bool", nil, map[string][]types.Type{
		"True":  nil,
		"False": nil,
	})

	tvA := types.TypeVar{Name: "A"}
	r.declare("Option", []string{"A"}, map[string][]types.Type{
		"None": nil,
		"Some": {tvA},
	})

	r.declare("List", []string{"A"}, map[string][]types.Type{
		"Nil":  nil,
		"Cons": {tvA, types.ADT{Name: "List", Args: []types.Type{tvA}}},
	})

	r.declare("Nat", nil, map[string][]types.Type{
		"Zero": nil,
		"Succ": {types.ADT{Name: "Nat"}},
	})

	tvB := types.TypeVar{Name: "B"}
	r.declare("Pair", []string{"A", "B"}, map[string][]types.Type{
		"Pair": {tvA, tvB},
	})

	return r
}

func (r *ADTs) declare(name string, typeParams []string, ctrs map[string][]types.Type) {
	r.adts[name] = checker.ADTTypeInfo{Name: name, TypeParams: typeParams}
	for cname, argTys := range ctrs {
		r.constructors[cname] = checker.ConstructorInfo{
			ADTName:        name,
			ADTTypeParams:  typeParams,
			ArgTypeSchemas: argTys,
		}
	}
}

func (r *ADTs) LookupConstructor(name string) (checker.ConstructorInfo, bool) {
	info, ok := r.constructors[name]
	return info, ok
}

func (r *ADTs) LookupADT(name string) (checker.ADTTypeInfo, bool) {
	info, ok := r.adts[name]
	return info, ok
}
