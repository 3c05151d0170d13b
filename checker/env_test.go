package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

func TestTypeEnvResolveUnbound(t *testing.T) {
	t.Parallel()

	env := NewTypeEnv()
	_, err := env.ResolveT("x", common.Loc{Line: 1, Column: 1})
	require.Error(t, err)
	_, ok := err.(*UnboundError)
	assert.True(t, ok)
}

func TestTypeEnvAddTAndResolve(t *testing.T) {
	t.Parallel()

	env := NewTypeEnv()
	qt := types.PlainType(types.IntType{Width: 32})
	env2 := env.AddT("x", qt)

	got, err := env2.ResolveT("x", common.Unknown)
	require.NoError(t, err)
	assert.Equal(t, qt, got)

	_, err = env.ResolveT("x", common.Unknown)
	assert.Error(t, err, "the original environment must not observe the extension")
}

func TestTypeEnvCopyIsolatesBranches(t *testing.T) {
	t.Parallel()

	base := NewTypeEnv().AddT("shared", types.PlainType(types.BNumType{}))

	left := base.Copy().AddT("only_left", types.PlainType(types.IntType{Width: 32}))
	right := base.Copy().AddT("only_right", types.PlainType(types.StringType{}))

	_, ok := left.Lookup("only_right")
	assert.False(t, ok)
	_, ok = right.Lookup("only_left")
	assert.False(t, ok)

	_, ok = left.Lookup("shared")
	assert.True(t, ok)
	_, ok = right.Lookup("shared")
	assert.True(t, ok)
}

func TestTypeEnvAddTShadows(t *testing.T) {
	t.Parallel()

	env := NewTypeEnv().
		AddT("x", types.PlainType(types.IntType{Width: 32})).
		AddT("x", types.PlainType(types.StringType{}))

	got, err := env.ResolveT("x", common.Unknown)
	require.NoError(t, err)
	assert.Equal(t, types.StringType{}, got.Type)
}

func TestTypeEnvAddTsAppliesLeftToRight(t *testing.T) {
	t.Parallel()

	env := NewTypeEnv().AddTs([]NamedType{
		{Name: "a", Type: types.PlainType(types.IntType{Width: 32})},
		{Name: "b", Type: types.PlainType(types.StringType{})},
	})

	a, err := env.ResolveT("a", common.Unknown)
	require.NoError(t, err)
	assert.Equal(t, types.IntType{Width: 32}, a.Type)

	b, err := env.ResolveT("b", common.Unknown)
	require.NoError(t, err)
	assert.Equal(t, types.StringType{}, b.Type)
}

func TestTypeEnvHasTypeVar(t *testing.T) {
	t.Parallel()

	env := NewTypeEnv()
	assert.False(t, env.HasTypeVar("A"))
	env = env.AddV("A")
	assert.True(t, env.HasTypeVar("A"))
}
