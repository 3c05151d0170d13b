package checker

import (
	"fmt"

	"github.com/vela-lang/vela/ast"
	"github.com/vela-lang/vela/types"
	"github.com/vela-lang/vela/vela_errors"
)

// typeExpr types expr under env, decorates it (and any nested
// ident/pattern nodes) in place, and returns its inferred type. Every
// failure is wrapped with the "typechecking" context and expr's source
// rendering before being returned.
func (c *Checker) typeExpr(env *TypeEnv, expr ast.Expr) (types.Type, error) {
	ty, err := c.typeExprInner(env, expr)
	if err != nil {
		return nil, wrapTypechecking(string(expr.SourceRep()), err)
	}
	expr.SetAnnotation(types.PlainType(ty))
	return ty, nil
}

func (c *Checker) typeExprInner(env *TypeEnv, expr ast.Expr) (types.Type, error) {
	switch e := expr.(type) {

	case *ast.Lit:
		return types.LiteralType(e.Value), nil

	case *ast.Var:
		qt, err := env.ResolveT(e.Ident.Name, e.Loc())
		if err != nil {
			return nil, err
		}
		e.Ident.SetAnnotation(qt)
		return qt.Type, nil

	case *ast.Fun:
		if err := c.isWellFormed(env, e.ParamType, e.Loc()); err != nil {
			return nil, err
		}
		paramQT := types.PlainType(e.ParamType)
		e.Param.SetAnnotation(paramQT)
		bodyTy, err := c.typeExpr(env.AddT(e.Param.Name, paramQT), e.Body)
		if err != nil {
			return nil, err
		}
		return types.FunType{Arg: e.ParamType, Result: bodyTy}, nil

	case *ast.App:
		fnTy, err := c.typeExpr(env, e.Fn)
		if err != nil {
			return nil, err
		}
		argTys := make([]types.Type, len(e.Args))
		for i, a := range e.Args {
			argTy, err := c.typeExpr(env, a)
			if err != nil {
				return nil, err
			}
			argTys[i] = argTy
		}
		return funTypeApplies(fnTy, argTys, e.Loc(), "function application")

	case *ast.Builtin:
		argTys := make([]types.Type, len(e.Args))
		for i, a := range e.Args {
			argTy, err := c.typeExpr(env, a)
			if err != nil {
				return nil, err
			}
			argTys[i] = argTy
		}
		_, resultTy, ok := c.config.Builtins.FindBuiltinOp(e.Op, argTys)
		if !ok {
			return nil, &UnknownBuiltinError{Op: e.Op, ArgTypes: argTys, L: e.Loc()}
		}
		e.OpIdent.SetAnnotation(types.PlainType(resultTy))
		return resultTy, nil

	case *ast.Let:
		lhsTy, err := c.typeExpr(env, e.Lhs)
		if err != nil {
			return nil, err
		}
		if e.DeclaredType != nil && !types.Equivalent(e.DeclaredType, lhsTy) {
			return nil, &TypeMismatchError{Expected: e.DeclaredType, Got: lhsTy, L: e.Lhs.Loc(), Context: "let binding"}
		}
		qt := types.PlainType(lhsTy)
		e.Name.SetAnnotation(qt)
		return c.typeExpr(env.AddT(e.Name.Name, qt), e.Rhs)

	case *ast.Constr:
		return c.typeConstr(env, e)

	case *ast.MatchExpr:
		return c.typeMatchExpr(env, e)

	case *ast.Fixpoint:
		if err := c.isWellFormed(env, e.Type, e.Loc()); err != nil {
			return nil, err
		}
		qt := types.PlainType(e.Type)
		e.Name.SetAnnotation(qt)
		bodyTy, err := c.typeExpr(env.AddT(e.Name.Name, qt), e.Body)
		if err != nil {
			return nil, err
		}
		if !types.Equivalent(e.Type, bodyTy) {
			return nil, &TypeMismatchError{Expected: e.Type, Got: bodyTy, L: e.Loc(), Context: "fixpoint"}
		}
		return e.Type, nil

	case *ast.TFun:
		bodyTy, err := c.typeExpr(env.AddV(e.TypeVar), e.Body)
		if err != nil {
			return nil, err
		}
		return types.PolyFun{TypeVar: e.TypeVar, Body: bodyTy}, nil

	case *ast.TApp:
		fnTy, err := c.typeExpr(env, e.Fn)
		if err != nil {
			return nil, err
		}
		for _, tyArg := range e.TypeArgs {
			if err := c.isWellFormed(env, tyArg, e.Loc()); err != nil {
				return nil, err
			}
		}
		return elabTFunWithArgs(fnTy, e.TypeArgs, e.Loc())

	case *ast.MessageExpr:
		return c.typeMessageExpr(env, e)

	default:
		panic(vela_errors.NewInternalError("unknown expression kind %T", expr))
	}
}

func (c *Checker) typeConstr(env *TypeEnv, e *ast.Constr) (types.Type, error) {
	for _, tyArg := range e.TypeArgs {
		if err := c.isWellFormed(env, tyArg, e.Loc()); err != nil {
			return nil, err
		}
	}

	info, ok := c.config.ADTs.LookupConstructor(e.Name)
	if !ok {
		return nil, &UnboundError{Name: e.Name, L: e.Loc()}
	}
	if len(e.ValueArgs) != len(info.ArgTypeSchemas) {
		return nil, &ArityError{
			Expected: len(info.ArgTypeSchemas),
			Got:      len(e.ValueArgs),
			Context:  fmt.Sprintf("constructor %q", e.Name),
			L:        e.Loc(),
		}
	}

	fnTy, err := c.elabConstrType(e.Name, e.TypeArgs, e.Loc())
	if err != nil {
		return nil, err
	}

	argTys := make([]types.Type, len(e.ValueArgs))
	for i, a := range e.ValueArgs {
		argTy, err := c.typeExpr(env, a)
		if err != nil {
			return nil, err
		}
		argTys[i] = argTy
	}
	return funTypeApplies(fnTy, argTys, e.Loc(), fmt.Sprintf("constructor %q", e.Name))
}
