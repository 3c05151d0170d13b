package checker

import (
	"github.com/vela-lang/vela/ast"
	"github.com/vela-lang/vela/types"
)

// typeMatchExpr types a MatchExpr: every branch's pattern is assigned
// types against the scrutinee's type, its body is typed under the
// bindings the pattern introduces, and all branch body types must be
// pairwise equivalent, and the match's own type is that common type.
func (c *Checker) typeMatchExpr(env *TypeEnv, e *ast.MatchExpr) (types.Type, error) {
	if len(e.Clauses) == 0 {
		return nil, &EmptyMatchError{L: e.Loc()}
	}

	scrutineeQT, err := env.ResolveT(e.Scrutinee.Name, e.Scrutinee.Loc())
	if err != nil {
		return nil, err
	}
	e.Scrutinee.SetAnnotation(scrutineeQT)

	var commonTy types.Type
	for _, clause := range e.Clauses {
		branchEnv := env.Copy()
		bindings, err := c.assignTypesForPattern(scrutineeQT.Type, clause.Pattern)
		if err != nil {
			return nil, err
		}
		branchEnv = branchEnv.AddTs(bindings)

		bodyTy, err := c.typeExpr(branchEnv, clause.Body)
		if err != nil {
			return nil, err
		}

		if commonTy == nil {
			commonTy = bodyTy
		} else if !types.Equivalent(commonTy, bodyTy) {
			return nil, &TypeMismatchError{Expected: commonTy, Got: bodyTy, L: clause.Body.Loc(), Context: "match branch"}
		}
	}
	return commonTy, nil
}
