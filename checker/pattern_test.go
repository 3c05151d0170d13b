package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vela-lang/vela/ast"
	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

// fakeADTs is a minimal ADTRegistry stand-in for pattern/expr tests
// that only need List/Cons/Nil, so tests here do not need to import
// package stdlib (which itself imports checker).
type fakeADTs struct {
	constructors map[string]ConstructorInfo
	adts         map[string]ADTTypeInfo
}

func newFakeADTs() *fakeADTs {
	tvA := types.TypeVar{Name: "A"}
	return &fakeADTs{
		constructors: map[string]ConstructorInfo{
			"Nil":  {ADTName: "List", ADTTypeParams: []string{"A"}},
			"Cons": {ADTName: "List", ADTTypeParams: []string{"A"}, ArgTypeSchemas: []types.Type{tvA, types.ADT{Name: "List", Args: []types.Type{tvA}}}},
			"Pair": {ADTName: "Pair", ADTTypeParams: []string{"A", "B"}, ArgTypeSchemas: []types.Type{tvA, types.TypeVar{Name: "B"}}},
		},
		adts: map[string]ADTTypeInfo{
			"List": {Name: "List", TypeParams: []string{"A"}},
			"Pair": {Name: "Pair", TypeParams: []string{"A", "B"}},
		},
	}
}

func (f *fakeADTs) LookupConstructor(name string) (ConstructorInfo, bool) {
	info, ok := f.constructors[name]
	return info, ok
}

func (f *fakeADTs) LookupADT(name string) (ADTTypeInfo, bool) {
	info, ok := f.adts[name]
	return info, ok
}

func newTestChecker() *Checker {
	return NewChecker(Config{ADTs: newFakeADTs()})
}

func TestAssignTypesForPatternWildcard(t *testing.T) {
	t.Parallel()

	c := newTestChecker()
	pat := &ast.WildcardPattern{}
	bindings, err := c.assignTypesForPattern(types.IntType{Width: 32}, pat)
	require.NoError(t, err)
	assert.Empty(t, bindings)
	require.NotNil(t, pat.Annotation())
	assert.Equal(t, types.IntType{Width: 32}, pat.Annotation().Type)
}

func TestAssignTypesForPatternBinder(t *testing.T) {
	t.Parallel()

	c := newTestChecker()
	pat := &ast.BinderPattern{Name: ast.NewIdent("x", common.Unknown)}
	bindings, err := c.assignTypesForPattern(types.StringType{}, pat)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "x", bindings[0].Name)
	assert.Equal(t, types.StringType{}, bindings[0].Type.Type)
}

// Cons x xs against List Int32 must bind x:Int32, xs:List Int32, in
// that order: leftmost subpattern's binding first, even though the
// implementation recurses right-to-left internally.
func TestAssignTypesForPatternConstructorBindingOrder(t *testing.T) {
	t.Parallel()

	c := newTestChecker()
	listInt32 := types.ADT{Name: "List", Args: []types.Type{types.IntType{Width: 32}}}

	pat := &ast.ConstructorPattern{
		Name: "Cons",
		Args: []ast.Pattern{
			&ast.BinderPattern{Name: ast.NewIdent("x", common.Unknown)},
			&ast.BinderPattern{Name: ast.NewIdent("xs", common.Unknown)},
		},
	}

	bindings, err := c.assignTypesForPattern(listInt32, pat)
	require.NoError(t, err)
	require.Len(t, bindings, 2)

	assert.Equal(t, "x", bindings[0].Name)
	assert.Equal(t, types.IntType{Width: 32}, bindings[0].Type.Type)

	assert.Equal(t, "xs", bindings[1].Name)
	assert.Equal(t, listInt32, bindings[1].Type.Type)
}

func TestAssignTypesForPatternConstructorArityMismatch(t *testing.T) {
	t.Parallel()

	c := newTestChecker()
	listInt32 := types.ADT{Name: "List", Args: []types.Type{types.IntType{Width: 32}}}

	pat := &ast.ConstructorPattern{
		Name: "Cons",
		Args: []ast.Pattern{
			&ast.BinderPattern{Name: ast.NewIdent("x", common.Unknown)},
		},
	}

	_, err := c.assignTypesForPattern(listInt32, pat)
	require.Error(t, err)
	_, ok := err.(*ArityError)
	assert.True(t, ok)
}

func TestAssignTypesForPatternPairWithWildcard(t *testing.T) {
	t.Parallel()

	c := newTestChecker()
	pairTy := types.ADT{Name: "Pair", Args: []types.Type{types.IntType{Width: 32}, types.StringType{}}}

	pat := &ast.ConstructorPattern{
		Name: "Pair",
		Args: []ast.Pattern{
			&ast.BinderPattern{Name: ast.NewIdent("a", common.Unknown)},
			&ast.WildcardPattern{},
		},
	}

	bindings, err := c.assignTypesForPattern(pairTy, pat)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "a", bindings[0].Name)
	assert.Equal(t, types.IntType{Width: 32}, bindings[0].Type.Type)
}
