package checker

import (
	"github.com/vela-lang/vela/ast"
	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

// ModuleResult is what CheckModule returns on success: the two
// environments a transition body would see (pure and fields), so a
// caller (e.g. package diagnostics, or a future interpreter) can reuse
// them without re-deriving anything from the accumulated errors.
type ModuleResult struct {
	PureEnv   *TypeEnv
	FieldsEnv *TypeEnv
}

// CheckModule runs the five ordered phases: recursion primitives,
// libraries, contract parameters, fields, transitions, threading the
// environment forward and annotating every ast.Ident it touches.
// Phases 2, 4 and 5 make forward progress across their own entries even
// when some of those entries fail, since errors are accumulated rather
// than fatal; phases 1 and 3 accumulate errors across their own entries
// too, but a failure anywhere in either one aborts the remaining
// phases, since fields and transitions both assume a fully-formed
// rec-prim/parameter environment to type-check against and continuing
// past a broken one would only produce meaningless cascades (see
// DESIGN.md).
func (c *Checker) CheckModule(m *ast.Module) (*ModuleResult, *CheckerError) {
	c.errors = nil
	pure := NewTypeEnv()

	c.logf("checking recursion primitives (%d entries)", len(m.RecPrims))
	pure = c.checkRecPrims(pure, m.RecPrims)
	if len(c.errors) > 0 {
		return nil, c.CheckerError()
	}

	blacklist := map[string]bool{}

	c.logf("checking %d external librar(y/ies)", len(m.ExternalLibs))
	for i := range m.ExternalLibs {
		pure = c.checkLibraryEntries(pure, m.ExternalLibs[i].Entries, blacklist)
	}
	if m.OwnLib != nil {
		c.logf("checking own library %q", m.OwnLib.Name)
		pure = c.checkLibraryEntries(pure, m.OwnLib.Entries, blacklist)
	}

	c.logf("checking contract parameters (%d declared)", len(m.Params))
	before := len(c.errors)
	pure = c.checkParams(pure, c.config.Implicits.ContractParams())
	pure = c.checkParams(pure, m.Params)
	if len(c.errors) > before {
		return nil, c.CheckerError()
	}

	c.logf("checking %d field(s)", len(m.Fields))
	fields := c.checkFields(pure, m.Fields)

	c.logf("checking %d transition(s)", len(m.Transitions))
	c.checkTransitions(pure, fields, m.Transitions)

	if err := c.CheckerError(); err != nil {
		return nil, err
	}
	return &ModuleResult{PureEnv: pure, FieldsEnv: fields}, nil
}

// checkRecPrims implements phase 1: every entry must be a LibVar; any
// LibTyp is rejected outright, failing the whole module if any type
// declarations appear here. The LibVars that do appear
// are typed with the same blacklist machinery as an ordinary library,
// since a bootstrap primitive failing is no different in kind from a
// user library entry failing.
func (c *Checker) checkRecPrims(env *TypeEnv, entries []ast.LibEntry) *TypeEnv {
	for _, entry := range entries {
		if libTyp, isTyp := entry.(*ast.LibTyp); isTyp {
			c.report(&RecPrimsTypeDeclError{Name: libTyp.Name.Name, L: libTyp.Loc()})
		}
	}
	if len(c.errors) > 0 {
		return env
	}
	return c.checkLibraryEntries(env, entries, map[string]bool{})
}

// checkLibraryEntries implements phase 2 for one library's entry list:
// a LibTyp validates its constructors' argument types are well formed;
// a LibVar whose free
// variables intersect the blacklist is skipped and blacklisted without
// being re-typechecked, and a LibVar that fails on its own merits is
// reported and blacklisted so its dependents can be skipped in turn.
func (c *Checker) checkLibraryEntries(env *TypeEnv, entries []ast.LibEntry, blacklist map[string]bool) *TypeEnv {
	for _, entry := range entries {
		switch e := entry.(type) {

		case *ast.LibTyp:
			for _, ctr := range e.Constructors {
				for _, argTy := range ctr.ArgTypes {
					if err := c.isWellFormed(env, argTy, ctr.Name.Loc()); err != nil {
						c.report(err)
					}
				}
			}

		case *ast.LibVar:
			if intersects(freeVars(e.Expr), blacklist) {
				blacklist[e.Name.Name] = true
				continue
			}
			ty, err := c.typeExpr(env, e.Expr)
			if err != nil {
				c.report(err)
				blacklist[e.Name.Name] = true
				continue
			}
			qt := types.PlainType(ty)
			e.Name.SetAnnotation(qt)
			env = env.AddT(e.Name.Name, qt)
		}
	}
	return env
}

// checkParams implements the per-parameter body of phase 3 (and, when
// reused from checkTransitions, the parameter half of phase 5): each
// parameter's declared type must be well formed and serializable, and
// each successfully-checked parameter is bound in the returned pure
// environment, in order, so a later parameter's type may not itself
// depend on an earlier one's value, since there are no dependent
// types.
func (c *Checker) checkParams(pure *TypeEnv, params []ast.Param) *TypeEnv {
	for i := range params {
		p := &params[i]
		if err := c.isWellFormed(pure, p.Type, p.Name.Loc()); err != nil {
			c.report(err)
			continue
		}
		if !types.IsSerializable(p.Type, c.config.Messages) {
			c.report(&NonSerializableError{Type: p.Type, Kind: common.DeclarationKindParameter, L: p.Name.Loc()})
			continue
		}
		qt := types.PlainType(p.Type)
		p.Name.SetAnnotation(qt)
		pure = pure.AddT(p.Name.Name, qt)
	}
	return pure
}

// checkFields implements phase 4: each field initializer is typed
// under the parameter-only pure environment, must produce exactly the
// field's declared type, and that type must be storable; the implicit
// balance field is bound afterward, replacing any user field of the
// same name, and since initializers are typed under pure alone none of
// them can read it.
func (c *Checker) checkFields(pure *TypeEnv, decls []ast.Field) *TypeEnv {
	fields := NewTypeEnv()
	for i := range decls {
		f := &decls[i]

		initTy, err := c.typeExpr(pure, f.Init)
		if err != nil {
			c.report(err)
			continue
		}
		if !types.Equivalent(f.Type, initTy) {
			c.report(&TypeMismatchError{Expected: f.Type, Got: initTy, L: f.Name.Loc(), Context: "field initializer"})
			continue
		}
		if !types.IsStorable(f.Type) {
			c.report(&NonStorableError{Type: f.Type, Kind: common.DeclarationKindField, L: f.Name.Loc()})
			continue
		}

		qt := types.PlainType(f.Type)
		f.Name.SetAnnotation(qt)
		fields = fields.AddT(f.Name.Name, qt)
	}

	balanceName, balanceTy := c.config.Implicits.BalanceField()
	fields = fields.AddT(balanceName, types.PlainType(balanceTy))
	return fields
}

// checkTransitions implements phase 5: each transition is checked
// independently against its own copies of pure and fields, so one
// transition's implicit/explicit parameters never leak into another's
// A transition whose own parameters fail to check is
// skipped entirely; a transition whose body fails is reported and the
// next transition is still attempted.
func (c *Checker) checkTransitions(pure, fields *TypeEnv, transitions []ast.Transition) {
	for i := range transitions {
		t := &transitions[i]

		transPure := pure.Copy()
		before := len(c.errors)
		transPure = c.checkParams(transPure, c.config.Implicits.TransitionParams())
		transPure = c.checkParams(transPure, t.Params)
		if len(c.errors) > before {
			continue
		}

		if _, err := c.typeStmts(transPure, fields.Copy(), t.Body); err != nil {
			c.report(err)
		}
	}
}
