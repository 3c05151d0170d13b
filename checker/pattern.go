package checker

import (
	"fmt"

	"github.com/vela-lang/vela/ast"
	"github.com/vela-lang/vela/types"
	"github.com/vela-lang/vela/vela_errors"
)

// assignTypesForPattern decorates pat with scrutineeTy (or the relevant
// sub-type) and returns the bindings the pattern introduces.
//
// Constructor-pattern bindings are concatenated right-to-left: the
// rightmost subpattern is recursed into first and its bindings are
// prepended beneath everything recursed into afterwards, so that the
// leftmost subpattern's bindings end up first in the returned slice.
// This ordering is observable by downstream consumers building an
// environment from the result and must not be changed casually.
func (c *Checker) assignTypesForPattern(scrutineeTy types.Type, pat ast.Pattern) ([]NamedType, error) {
	switch p := pat.(type) {

	case *ast.WildcardPattern:
		p.SetAnnotation(types.PlainType(scrutineeTy))
		return nil, nil

	case *ast.BinderPattern:
		qt := types.PlainType(scrutineeTy)
		p.SetAnnotation(qt)
		p.Name.SetAnnotation(qt)
		return []NamedType{{Name: p.Name.Name, Type: qt}}, nil

	case *ast.ConstructorPattern:
		argTys, err := c.constrPatternArgTypes(scrutineeTy, p.Name, p.Loc())
		if err != nil {
			return nil, err
		}
		if len(argTys) != len(p.Args) {
			return nil, &ArityError{
				Expected: len(argTys),
				Got:      len(p.Args),
				Context:  fmt.Sprintf("constructor pattern %q", p.Name),
				L:        p.Loc(),
			}
		}
		p.SetAnnotation(types.PlainType(scrutineeTy))

		var bindings []NamedType
		for i := len(p.Args) - 1; i >= 0; i-- {
			subBindings, err := c.assignTypesForPattern(argTys[i], p.Args[i])
			if err != nil {
				return nil, err
			}
			bindings = append(subBindings, bindings...)
		}
		return bindings, nil

	default:
		panic(vela_errors.NewInternalError("unknown pattern kind %T", pat))
	}
}
