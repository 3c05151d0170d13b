package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vela-lang/vela/ast"
	"github.com/vela-lang/vela/stdlib"
	"github.com/vela-lang/vela/types"
)

func TestADTsLookupConstructor(t *testing.T) {
	t.Parallel()

	adts := stdlib.NewADTs()

	info, ok := adts.LookupConstructor("Cons")
	require.True(t, ok)
	assert.Equal(t, "List", info.ADTName)
	assert.Equal(t, []string{"A"}, info.ADTTypeParams)
	require.Len(t, info.ArgTypeSchemas, 2)

	_, ok = adts.LookupConstructor("DoesNotExist")
	assert.False(t, ok)
}

func TestADTsLookupADT(t *testing.T) {
	t.Parallel()

	adts := stdlib.NewADTs()

	info, ok := adts.LookupADT("Pair")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"A", "B"}, info.TypeParams)
}

func TestBuiltinsArithmeticRequiresSameWidth(t *testing.T) {
	t.Parallel()

	b := stdlib.NewBuiltins()

	_, resultTy, ok := b.FindBuiltinOp("add", []types.Type{types.IntType{Width: 32}, types.IntType{Width: 32}})
	require.True(t, ok)
	assert.Equal(t, types.IntType{Width: 32}, resultTy)

	_, _, ok = b.FindBuiltinOp("add", []types.Type{types.IntType{Width: 32}, types.IntType{Width: 64}})
	assert.False(t, ok)

	_, _, ok = b.FindBuiltinOp("add", []types.Type{types.IntType{Width: 32}, types.UintType{Width: 32}})
	assert.False(t, ok)
}

func TestBuiltinsComparisonReturnsBool(t *testing.T) {
	t.Parallel()

	b := stdlib.NewBuiltins()

	_, resultTy, ok := b.FindBuiltinOp("lt", []types.Type{types.UintType{Width: 128}, types.UintType{Width: 128}})
	require.True(t, ok)
	assert.Equal(t, types.ADT{Name: "Bool"}, resultTy)
}

func TestBuiltinsUnknownOpFails(t *testing.T) {
	t.Parallel()

	b := stdlib.NewBuiltins()
	_, _, ok := b.FindBuiltinOp("frobnicate", []types.Type{types.IntType{Width: 32}})
	assert.False(t, ok)
}

func TestMessagePolicyClassify(t *testing.T) {
	t.Parallel()

	p := stdlib.NewMessagePolicy()

	isMessage, isEvent, ok := p.Classify(map[string]bool{"_tag": true, "_recipient": true, "_amount": true})
	require.True(t, ok)
	assert.True(t, isMessage)
	assert.False(t, isEvent)

	isMessage, isEvent, ok = p.Classify(map[string]bool{"_eventname": true})
	require.True(t, ok)
	assert.False(t, isMessage)
	assert.True(t, isEvent)

	_, _, ok = p.Classify(map[string]bool{"foo": true})
	assert.False(t, ok)

	assert.False(t, p.AllowMapInPayload())
}

func TestBlockchainLookupField(t *testing.T) {
	t.Parallel()

	bc := stdlib.NewBlockchain()

	ty, ok := bc.LookupField("BLOCKNUMBER")
	require.True(t, ok)
	assert.Equal(t, types.BNumType{}, ty)

	_, ok = bc.LookupField("NOT_A_FIELD")
	assert.False(t, ok)
}

func TestImplicitsBalanceField(t *testing.T) {
	t.Parallel()

	name, ty := stdlib.NewImplicits().BalanceField()
	assert.Equal(t, "_balance", name)
	assert.Equal(t, types.UintType{Width: 128}, ty)
}

func TestRecPrimsAreLibVars(t *testing.T) {
	t.Parallel()

	entries := stdlib.RecPrims()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		_, ok := entry.(*ast.LibVar)
		assert.True(t, ok, "recursion primitives must never be LibTyp entries")
	}
}
