package checker

import (
	"github.com/vela-lang/vela/ast"
	"github.com/vela-lang/vela/types"
	"github.com/vela-lang/vela/vela_errors"
)

// typeStmts processes a statement list head-then-tail, threading the
// pure environment forward so that extensions a statement introduces
// are visible only to the suffix of its own block, and returns the
// residual pure environment. fields never grows across statements;
// only field declaration (in ModuleDriver) can do that.
func (c *Checker) typeStmts(pure, fields *TypeEnv, stmts []ast.Stmt) (*TypeEnv, error) {
	for _, stmt := range stmts {
		newPure, err := c.typeStmt(pure, fields, stmt)
		if err != nil {
			return nil, err
		}
		pure = newPure
	}
	return pure, nil
}

func (c *Checker) typeStmt(pure, fields *TypeEnv, stmt ast.Stmt) (*TypeEnv, error) {
	switch s := stmt.(type) {

	case *ast.LoadStmt:
		qt, err := fields.ResolveT(s.Field, s.Loc())
		if err != nil {
			return nil, err
		}
		s.Result.SetAnnotation(qt)
		return pure.AddT(s.Result.Name, qt), nil

	case *ast.StoreStmt:
		if c.isReadOnlyField(s.Field) {
			return nil, &WriteToReadOnlyError{Field: s.Field, L: s.Loc()}
		}
		fieldQT, err := fields.ResolveT(s.Field, s.Loc())
		if err != nil {
			return nil, err
		}
		valQT, err := pure.ResolveT(s.Value.Name, s.Value.Loc())
		if err != nil {
			return nil, err
		}
		s.Value.SetAnnotation(valQT)
		if !types.Equivalent(fieldQT.Type, valQT.Type) {
			return nil, &TypeMismatchError{Expected: fieldQT.Type, Got: valQT.Type, L: s.Loc(), Context: "store"}
		}
		return pure, nil

	case *ast.BindStmt:
		ty, err := c.typeExpr(pure, s.Expr)
		if err != nil {
			return nil, err
		}
		qt := types.PlainType(ty)
		s.Result.SetAnnotation(qt)
		return pure.AddT(s.Result.Name, qt), nil

	case *ast.MapUpdateStmt:
		return c.typeMapUpdate(pure, fields, s)

	case *ast.MapGetStmt:
		return c.typeMapGet(pure, fields, s)

	case *ast.ReadFromBCStmt:
		ty, ok := c.config.Blockchain.LookupField(s.Field)
		if !ok {
			return nil, &UnknownBCFieldError{Name: s.Field, L: s.Loc()}
		}
		qt := types.PlainType(ty)
		s.Result.SetAnnotation(qt)
		return pure.AddT(s.Result.Name, qt), nil

	case *ast.MatchStmt:
		return c.typeMatchStmt(pure, fields, s)

	case *ast.AcceptPaymentStmt:
		return pure, nil

	case *ast.SendMsgsStmt:
		qt, err := pure.ResolveT(s.Ident.Name, s.Ident.Loc())
		if err != nil {
			return nil, err
		}
		s.Ident.SetAnnotation(qt)
		expected := types.Type(types.ADT{Name: "List", Args: []types.Type{types.MessageType{}}})
		if !types.Equivalent(expected, qt.Type) {
			return nil, &TypeMismatchError{Expected: expected, Got: qt.Type, L: s.Loc(), Context: "send"}
		}
		return pure, nil

	case *ast.CreateEvntStmt:
		qt, err := pure.ResolveT(s.Ident.Name, s.Ident.Loc())
		if err != nil {
			return nil, err
		}
		s.Ident.SetAnnotation(qt)
		if !types.Equivalent(types.EventType{}, qt.Type) {
			return nil, &TypeMismatchError{Expected: types.EventType{}, Got: qt.Type, L: s.Loc(), Context: "event"}
		}
		return pure, nil

	case *ast.ThrowStmt:
		return nil, &NotImplementedError{What: "throw", L: s.Loc()}

	default:
		panic(vela_errors.NewInternalError("unknown statement kind %T", stmt))
	}
}

// typeMatchStmt types each branch's statement list under its own copy
// of pure, extended with the pattern's bindings; the branch's resulting
// environment is discarded, so bindings never escape to the suffix.
func (c *Checker) typeMatchStmt(pure, fields *TypeEnv, s *ast.MatchStmt) (*TypeEnv, error) {
	scrutineeQT, err := pure.ResolveT(s.Scrutinee.Name, s.Scrutinee.Loc())
	if err != nil {
		return nil, err
	}
	s.Scrutinee.SetAnnotation(scrutineeQT)

	for _, clause := range s.Clauses {
		branchPure := pure.Copy()
		bindings, err := c.assignTypesForPattern(scrutineeQT.Type, clause.Pattern)
		if err != nil {
			return nil, err
		}
		branchPure = branchPure.AddTs(bindings)
		if _, err := c.typeStmts(branchPure, fields, clause.Body); err != nil {
			return nil, err
		}
	}
	return pure, nil
}

// isReadOnlyField reports whether Store may never target name: the
// implicit balance field, plus whatever else the host declares
// read-only.
func (c *Checker) isReadOnlyField(name string) bool {
	balanceName, _ := c.config.Implicits.BalanceField()
	if name == balanceName {
		return true
	}
	for _, ro := range c.config.Implicits.ReadOnlyFields() {
		if ro == name {
			return true
		}
	}
	return false
}
