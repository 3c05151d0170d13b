package checker

import (
	"github.com/vela-lang/vela/ast"
	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

// walkMapKeys walks mapTy as a chain of MapType layers, one per key,
// checking each key's inferred type against the corresponding layer's
// key type, and returns whatever type remains after peeling len(keys)
// layers.
func (c *Checker) walkMapKeys(pure *TypeEnv, mapTy types.Type, keys []ast.Ident, loc common.Loc) (types.Type, error) {
	current := mapTy
	for i := range keys {
		key := &keys[i]
		keyQT, err := pure.ResolveT(key.Name, key.Loc())
		if err != nil {
			return nil, err
		}
		key.SetAnnotation(keyQT)

		m, ok := current.(types.MapType)
		if !ok {
			return nil, &ArityError{Expected: i, Got: len(keys), Context: "map access depth", L: loc}
		}
		if !types.Equivalent(m.Key, keyQT.Type) {
			return nil, &TypeMismatchError{Expected: m.Key, Got: keyQT.Type, L: key.Loc(), Context: "map key"}
		}
		current = m.Value
	}
	return current, nil
}

func mapDepth(t types.Type) int {
	depth := 0
	for {
		m, ok := t.(types.MapType)
		if !ok {
			return depth
		}
		depth++
		t = m.Value
	}
}

func (c *Checker) typeMapUpdate(pure, fields *TypeEnv, s *ast.MapUpdateStmt) (*TypeEnv, error) {
	mapQT, err := fields.ResolveT(s.Map, s.Loc())
	if err != nil {
		return nil, err
	}
	finalTy, err := c.walkMapKeys(pure, mapQT.Type, s.Keys, s.Loc())
	if err != nil {
		return nil, err
	}

	if s.Value == nil {
		if _, stillMap := finalTy.(types.MapType); stillMap {
			return nil, &ArityError{
				Expected: mapDepth(mapQT.Type),
				Got:      len(s.Keys),
				Context:  "map delete",
				L:        s.Loc(),
			}
		}
		return pure, nil
	}

	valQT, err := pure.ResolveT(s.Value.Name, s.Value.Loc())
	if err != nil {
		return nil, err
	}
	s.Value.SetAnnotation(valQT)
	if !types.Equivalent(finalTy, valQT.Type) {
		return nil, &TypeMismatchError{Expected: finalTy, Got: valQT.Type, L: s.Loc(), Context: "map update"}
	}
	return pure, nil
}

func (c *Checker) typeMapGet(pure, fields *TypeEnv, s *ast.MapGetStmt) (*TypeEnv, error) {
	mapQT, err := fields.ResolveT(s.Map, s.Loc())
	if err != nil {
		return nil, err
	}
	finalTy, err := c.walkMapKeys(pure, mapQT.Type, s.Keys, s.Loc())
	if err != nil {
		return nil, err
	}

	var resultTy types.Type
	if s.Fetch {
		resultTy = types.ADT{Name: "Option", Args: []types.Type{finalTy}}
	} else {
		resultTy = types.ADT{Name: "Bool"}
	}
	qt := types.PlainType(resultTy)
	s.Result.SetAnnotation(qt)
	return pure.AddT(s.Result.Name, qt), nil
}
