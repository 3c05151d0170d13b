package checker

import "github.com/vela-lang/vela/ast"

// freeVars computes the free identifier names of expr, respecting the
// binding forms that can shadow them (Fun, Let, Fixpoint, match
// patterns). ModuleDriver intersects this against the library
// blacklist to decide whether a later entry can be skipped cleanly.
func freeVars(expr ast.Expr) map[string]bool {
	fv := map[string]bool{}
	collectExprFreeVars(expr, map[string]bool{}, fv)
	return fv
}

func collectExprFreeVars(expr ast.Expr, bound map[string]bool, fv map[string]bool) {
	switch e := expr.(type) {

	case *ast.Lit:
		// no identifiers

	case *ast.Var:
		if !bound[e.Ident.Name] {
			fv[e.Ident.Name] = true
		}

	case *ast.Fun:
		collectExprFreeVars(e.Body, extend(bound, e.Param.Name), fv)

	case *ast.App:
		collectExprFreeVars(e.Fn, bound, fv)
		for _, a := range e.Args {
			collectExprFreeVars(a, bound, fv)
		}

	case *ast.Builtin:
		for _, a := range e.Args {
			collectExprFreeVars(a, bound, fv)
		}

	case *ast.Let:
		collectExprFreeVars(e.Lhs, bound, fv)
		collectExprFreeVars(e.Rhs, extend(bound, e.Name.Name), fv)

	case *ast.Constr:
		for _, a := range e.ValueArgs {
			collectExprFreeVars(a, bound, fv)
		}

	case *ast.MatchExpr:
		if !bound[e.Scrutinee.Name] {
			fv[e.Scrutinee.Name] = true
		}
		for _, clause := range e.Clauses {
			collectExprFreeVars(clause.Body, extendPattern(bound, clause.Pattern), fv)
		}

	case *ast.Fixpoint:
		collectExprFreeVars(e.Body, extend(bound, e.Name.Name), fv)

	case *ast.TFun:
		collectExprFreeVars(e.Body, bound, fv)

	case *ast.TApp:
		collectExprFreeVars(e.Fn, bound, fv)

	case *ast.MessageExpr:
		for _, f := range e.Fields {
			if mv, ok := f.Payload.(ast.MVar); ok && !bound[mv.Ident.Name] {
				fv[mv.Ident.Name] = true
			}
		}
	}
}

func extend(bound map[string]bool, name string) map[string]bool {
	child := make(map[string]bool, len(bound)+1)
	for k := range bound {
		child[k] = true
	}
	child[name] = true
	return child
}

func extendPattern(bound map[string]bool, pat ast.Pattern) map[string]bool {
	switch p := pat.(type) {
	case *ast.BinderPattern:
		return extend(bound, p.Name.Name)
	case *ast.ConstructorPattern:
		child := bound
		for _, sub := range p.Args {
			child = extendPattern(child, sub)
		}
		return child
	default:
		return bound
	}
}

func intersects(a, b map[string]bool) bool {
	for k := range a {
		if b[k] {
			return true
		}
	}
	return false
}
