package checker

import (
	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

// isWellFormed ensures every free type variable in ty is in scope in
// env, and every named ADT it mentions resolves in the registry.
func (c *Checker) isWellFormed(env *TypeEnv, ty types.Type, loc common.Loc) error {
	switch t := ty.(type) {
	case types.TypeVar:
		if !env.HasTypeVar(t.Name) {
			return &NotWellFormedError{Type: ty, L: loc}
		}
		return nil
	case types.PolyFun:
		return c.isWellFormed(env.AddV(t.TypeVar), t.Body, loc)
	case types.FunType:
		if err := c.isWellFormed(env, t.Arg, loc); err != nil {
			return err
		}
		return c.isWellFormed(env, t.Result, loc)
	case types.MapType:
		if !types.IsPrimitive(t.Key) {
			return &NotWellFormedError{Type: ty, L: loc}
		}
		if err := c.isWellFormed(env, t.Key, loc); err != nil {
			return err
		}
		return c.isWellFormed(env, t.Value, loc)
	case types.ADT:
		info, ok := c.config.ADTs.LookupADT(t.Name)
		if !ok || len(info.TypeParams) != len(t.Args) {
			return &NotWellFormedError{Type: ty, L: loc}
		}
		for _, arg := range t.Args {
			if err := c.isWellFormed(env, arg, loc); err != nil {
				return err
			}
		}
		return nil
	default:
		// primitive types are always well formed
		return nil
	}
}

// funTypeApplies walks fty's arrows against argTys in order, returning
// the final codomain.
func funTypeApplies(fty types.Type, argTys []types.Type, loc common.Loc, context string) (types.Type, error) {
	current := fty
	for i, argTy := range argTys {
		fn, ok := current.(types.FunType)
		if !ok {
			return nil, &ArityError{
				Expected: i,
				Got:      len(argTys),
				Context:  context,
				L:        loc,
			}
		}
		if !types.Equivalent(fn.Arg, argTy) {
			return nil, &TypeMismatchError{Expected: fn.Arg, Got: argTy, L: loc, Context: context}
		}
		current = fn.Result
	}
	return current, nil
}

// elabTFunWithArgs instantiates nested PolyFun binders in order.
func elabTFunWithArgs(pfty types.Type, tyArgs []types.Type, loc common.Loc) (types.Type, error) {
	current := pfty
	for _, tyArg := range tyArgs {
		poly, ok := current.(types.PolyFun)
		if !ok {
			return nil, &ArityError{Expected: 0, Got: len(tyArgs), Context: "type application", L: loc}
		}
		current = substitute(poly.Body, poly.TypeVar, tyArg)
	}
	return current, nil
}

// substitute replaces every free occurrence of TypeVar{name} in ty with
// replacement.
func substitute(ty types.Type, name string, replacement types.Type) types.Type {
	switch t := ty.(type) {
	case types.TypeVar:
		if t.Name == name {
			return replacement
		}
		return t
	case types.PolyFun:
		if t.TypeVar == name {
			// name is shadowed by this binder; stop substituting
			return t
		}
		return types.PolyFun{TypeVar: t.TypeVar, Body: substitute(t.Body, name, replacement)}
	case types.FunType:
		return types.FunType{Arg: substitute(t.Arg, name, replacement), Result: substitute(t.Result, name, replacement)}
	case types.MapType:
		return types.MapType{Key: substitute(t.Key, name, replacement), Value: substitute(t.Value, name, replacement)}
	case types.ADT:
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = substitute(a, name, replacement)
		}
		return types.ADT{Name: t.Name, Args: args}
	default:
		return t
	}
}

// substituteAll substitutes several type-parameter names at once,
// applying each independently to the original schema (the ADT type
// parameters a schema mentions are pairwise distinct, so order does not
// matter).
func substituteAll(ty types.Type, params []string, args []types.Type) types.Type {
	// Rename every parameter to a name no argument can contain first, so
	// an argument that mentions a later parameter's name is left alone.
	for _, p := range params {
		ty = substitute(ty, p, types.TypeVar{Name: "\x00" + p})
	}
	for i, p := range params {
		ty = substitute(ty, "\x00"+p, args[i])
	}
	return ty
}

// elabConstrType looks up cname's declaring ADT, substitutes typeArgs
// into its declared argument types, and returns the constructor's
// function type.
func (c *Checker) elabConstrType(cname string, typeArgs []types.Type, loc common.Loc) (types.Type, error) {
	info, ok := c.config.ADTs.LookupConstructor(cname)
	if !ok {
		return nil, &UnboundError{Name: cname, L: loc}
	}
	if len(typeArgs) != len(info.ADTTypeParams) {
		return nil, &ArityError{
			Expected: len(info.ADTTypeParams),
			Got:      len(typeArgs),
			Context:  "constructor type arguments",
			L:        loc,
		}
	}
	resultType := types.Type(types.ADT{Name: info.ADTName, Args: typeArgs})
	fnType := resultType
	for i := len(info.ArgTypeSchemas) - 1; i >= 0; i-- {
		argTy := substituteAll(info.ArgTypeSchemas[i], info.ADTTypeParams, typeArgs)
		fnType = types.FunType{Arg: argTy, Result: fnType}
	}
	return fnType, nil
}

// constrPatternArgTypes is the dual of elabConstrType: given a known
// ADT instantiation and a constructor name, it returns the substituted
// argument types so a pattern can destructure correctly.
func (c *Checker) constrPatternArgTypes(scrutineeTy types.Type, cname string, loc common.Loc) ([]types.Type, error) {
	adt, ok := scrutineeTy.(types.ADT)
	if !ok {
		return nil, &TypeMismatchError{Expected: types.ADT{Name: "<some ADT>"}, Got: scrutineeTy, L: loc, Context: "pattern match"}
	}
	info, ok := c.config.ADTs.LookupConstructor(cname)
	if !ok || info.ADTName != adt.Name {
		return nil, &UnboundError{Name: cname, L: loc}
	}
	argTys := make([]types.Type, len(info.ArgTypeSchemas))
	for i, schema := range info.ArgTypeSchemas {
		argTys[i] = substituteAll(schema, info.ADTTypeParams, adt.Args)
	}
	return argTys, nil
}

// getMsgEvntType inspects the field names of a message literal to
// decide whether it denotes a Message or an Event, delegating the
// actual decision to the injected MessageFieldPolicy.
func (c *Checker) getMsgEvntType(fieldNames map[string]bool, loc common.Loc) (types.Type, bool, error) {
	isMessage, isEvent, ok := c.config.Messages.Classify(fieldNames)
	if !ok {
		return nil, false, &NotWellFormedError{Type: types.MessageType{}, L: loc}
	}
	if isMessage {
		return types.MessageType{}, true, nil
	}
	_ = isEvent
	return types.EventType{}, false, nil
}
