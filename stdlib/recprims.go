package stdlib

import (
	"github.com/vela-lang/vela/ast"
	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

// RecPrims returns the small, fixed set of recursion primitives every
// module is checked against before its own libraries: list_length and
// list_foldl, the two Scilla-shaped primitives every example contract
// assumes are already in scope. Each is built as an ordinary LibVar so
// the ModuleDriver's phase-1 typing walks it exactly like a user
// binding; only the restriction against LibTyp entries here is
// special-cased.
func RecPrims() []ast.LibEntry {
	return []ast.LibEntry{
		listLength(),
		listFoldl(),
	}
}

func ident(name string) ast.Ident { return ast.NewIdent(name, common.Unknown) }

func base() ast.Base { return ast.Base{L: common.Unknown} }

func listOf(elem types.Type) types.Type {
	return types.ADT{Name: "List", Args: []types.Type{elem}}
}

// listLength : forall A. List A -> Nat
//
//	= TFun A. fix self : List A -> Nat =
//	    fun l => match l with
//	      | Nil        => Zero
//	      | Cons x xs  => Succ (self xs)
func listLength() *ast.LibVar {
	tvA := types.TypeVar{Name: "A"}

	body := &ast.MatchExpr{
		Base:      base(),
		Scrutinee: ident("l"),
		Clauses: []ast.ExprMatchClause{
			{
				Pattern: &ast.ConstructorPattern{Base: base(), Name: "Nil"},
				Body:    &ast.Constr{Base: base(), Name: "Zero"},
			},
			{
				Pattern: &ast.ConstructorPattern{
					Base: base(),
					Name: "Cons",
					Args: []ast.Pattern{
						&ast.BinderPattern{Base: base(), Name: ident("x")},
						&ast.BinderPattern{Base: base(), Name: ident("xs")},
					},
				},
				Body: &ast.Constr{
					Base: base(),
					Name: "Succ",
					ValueArgs: []ast.Expr{
						&ast.App{
							Base: base(),
							Fn:   &ast.Var{Base: base(), Ident: ident("list_length_self")},
							Args: []ast.Expr{&ast.Var{Base: base(), Ident: ident("xs")}},
						},
					},
				},
			},
		},
	}

	fixBody := &ast.Fun{
		Base:      base(),
		Param:     ident("l"),
		ParamType: listOf(tvA),
		Body:      body,
	}

	fix := &ast.Fixpoint{
		Base: base(),
		Name: ident("list_length_self"),
		Type: types.FunType{Arg: listOf(tvA), Result: types.ADT{Name: "Nat"}},
		Body: fixBody,
	}

	tfun := &ast.TFun{Base: base(), TypeVar: "A", Body: fix}

	return &ast.LibVar{Base: base(), Name: ident("list_length"), Expr: tfun}
}

// listFoldl : forall A. forall B. (B -> A -> B) -> B -> List A -> B
//
//	= TFun A. TFun B. fix self : (B -> A -> B) -> B -> List A -> B =
//	    fun f => fun z => fun l => match l with
//	      | Nil       => z
//	      | Cons x xs => self f (f z x) xs
func listFoldl() *ast.LibVar {
	tvA := types.TypeVar{Name: "A"}
	tvB := types.TypeVar{Name: "B"}
	combinerTy := types.FunType{Arg: tvB, Result: types.FunType{Arg: tvA, Result: tvB}}
	fullTy := types.FunType{
		Arg: combinerTy,
		Result: types.FunType{
			Arg: tvB,
			Result: types.FunType{
				Arg:    listOf(tvA),
				Result: tvB,
			},
		},
	}

	body := &ast.MatchExpr{
		Base:      base(),
		Scrutinee: ident("l"),
		Clauses: []ast.ExprMatchClause{
			{
				Pattern: &ast.ConstructorPattern{Base: base(), Name: "Nil"},
				Body:    &ast.Var{Base: base(), Ident: ident("z")},
			},
			{
				Pattern: &ast.ConstructorPattern{
					Base: base(),
					Name: "Cons",
					Args: []ast.Pattern{
						&ast.BinderPattern{Base: base(), Name: ident("x")},
						&ast.BinderPattern{Base: base(), Name: ident("xs")},
					},
				},
				Body: &ast.App{
					Base: base(),
					Fn:   &ast.Var{Base: base(), Ident: ident("list_foldl_self")},
					Args: []ast.Expr{
						&ast.Var{Base: base(), Ident: ident("f")},
						&ast.App{
							Base: base(),
							Fn:   &ast.Var{Base: base(), Ident: ident("f")},
							Args: []ast.Expr{
								&ast.Var{Base: base(), Ident: ident("z")},
								&ast.Var{Base: base(), Ident: ident("x")},
							},
						},
						&ast.Var{Base: base(), Ident: ident("xs")},
					},
				},
			},
		},
	}

	fixBody := &ast.Fun{
		Base:      base(),
		Param:     ident("f"),
		ParamType: combinerTy,
		Body: &ast.Fun{
			Base:      base(),
			Param:     ident("z"),
			ParamType: tvB,
			Body: &ast.Fun{
				Base:      base(),
				Param:     ident("l"),
				ParamType: listOf(tvA),
				Body:      body,
			},
		},
	}

	fix := &ast.Fixpoint{
		Base: base(),
		Name: ident("list_foldl_self"),
		Type: fullTy,
		Body: fixBody,
	}

	tfunB := &ast.TFun{Base: base(), TypeVar: "B", Body: fix}
	tfunA := &ast.TFun{Base: base(), TypeVar: "A", Body: tfunB}

	return &ast.LibVar{Base: base(), Name: ident("list_foldl"), Expr: tfunA}
}
