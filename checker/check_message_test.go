package checker

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vela-lang/vela/ast"
	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

type fakeMessages struct {
	types.DefaultSerializationPolicy
}

func (fakeMessages) Classify(fieldNames map[string]bool) (isMessage, isEvent, ok bool) {
	if fieldNames["_eventname"] {
		return false, true, true
	}
	if fieldNames["_tag"] && fieldNames["_recipient"] && fieldNames["_amount"] {
		return true, false, true
	}
	return false, false, false
}

func (fakeMessages) MandatoryFields(isMessage bool) map[string]types.Type {
	if isMessage {
		return map[string]types.Type{
			"_tag":       types.StringType{},
			"_recipient": types.ByStr20Type{},
			"_amount":    types.UintType{Width: 128},
		}
	}
	return map[string]types.Type{"_eventname": types.StringType{}}
}

func newMessageTestChecker() *Checker {
	return NewChecker(Config{ADTs: newFakeADTs(), Messages: fakeMessages{}})
}

func messageField(name string, payload ast.MessagePayload) ast.MessageField {
	return ast.MessageField{Name: name, Payload: payload}
}

func TestTypeMessageExprValidMessage(t *testing.T) {
	t.Parallel()

	c := newMessageTestChecker()
	env := NewTypeEnv().AddT("recipient", types.PlainType(types.ByStr20Type{}))

	e := &ast.MessageExpr{
		Fields: []ast.MessageField{
			messageField("_tag", ast.MTag{S: "Deposit"}),
			messageField("_recipient", ast.MVar{Ident: ast.NewIdent("recipient", common.Unknown)}),
			messageField("_amount", ast.MLit{Value: types.UintLiteral{Width: 128, Value: big.NewInt(10)}}),
		},
	}

	ty, err := c.typeMessageExpr(env, e)
	require.NoError(t, err)
	assert.Equal(t, types.MessageType{}, ty)
}

func TestTypeMessageExprRecipientTooShort(t *testing.T) {
	t.Parallel()

	c := newMessageTestChecker()
	env := NewTypeEnv()

	e := &ast.MessageExpr{
		Fields: []ast.MessageField{
			messageField("_tag", ast.MTag{S: "Deposit"}),
			messageField("_recipient", ast.MLit{Value: types.ByStrLiteral{N: 2, Value: []byte{0xab, 0xad}}}),
			messageField("_amount", ast.MLit{Value: types.UintLiteral{Width: 128, Value: big.NewInt(10)}}),
		},
	}

	_, err := c.typeMessageExpr(env, e)
	require.Error(t, err)
	badField, ok := err.(*BadMessageFieldError)
	require.True(t, ok)
	assert.Equal(t, "_recipient", badField.Field)
}

func TestTypeMessageExprMismatchedAmountType(t *testing.T) {
	t.Parallel()

	c := newMessageTestChecker()
	env := NewTypeEnv().AddT("recipient", types.PlainType(types.ByStr20Type{}))

	e := &ast.MessageExpr{
		Fields: []ast.MessageField{
			messageField("_tag", ast.MTag{S: "Deposit"}),
			messageField("_recipient", ast.MVar{Ident: ast.NewIdent("recipient", common.Unknown)}),
			messageField("_amount", ast.MLit{Value: types.UintLiteral{Width: 32, Value: big.NewInt(10)}}),
		},
	}

	_, err := c.typeMessageExpr(env, e)
	require.Error(t, err)
	badField, ok := err.(*BadMessageFieldError)
	require.True(t, ok)
	assert.Equal(t, "_amount", badField.Field)
}

func TestTypeMessageExprADTTag(t *testing.T) {
	t.Parallel()

	c := newMessageTestChecker()
	env := NewTypeEnv().
		AddT("recipient", types.PlainType(types.ByStr20Type{})).
		AddT("tag", types.PlainType(types.ADT{Name: "Bool"}))

	e := &ast.MessageExpr{
		Fields: []ast.MessageField{
			messageField("_tag", ast.MVar{Ident: ast.NewIdent("tag", common.Unknown)}),
			messageField("_recipient", ast.MVar{Ident: ast.NewIdent("recipient", common.Unknown)}),
			messageField("_amount", ast.MLit{Value: types.UintLiteral{Width: 128, Value: big.NewInt(10)}}),
		},
	}

	_, err := c.typeMessageExpr(env, e)
	require.Error(t, err)
	badField, ok := err.(*BadMessageFieldError)
	require.True(t, ok)
	assert.Equal(t, "_tag", badField.Field)
}

func TestTypeMessageExprNonStringTagIsRejected(t *testing.T) {
	t.Parallel()

	c := newMessageTestChecker()
	env := NewTypeEnv().AddT("recipient", types.PlainType(types.ByStr20Type{}))

	e := &ast.MessageExpr{
		Fields: []ast.MessageField{
			messageField("_tag", ast.MLit{Value: types.UintLiteral{Width: 32, Value: big.NewInt(1)}}),
			messageField("_recipient", ast.MVar{Ident: ast.NewIdent("recipient", common.Unknown)}),
			messageField("_amount", ast.MLit{Value: types.UintLiteral{Width: 128, Value: big.NewInt(10)}}),
		},
	}

	_, err := c.typeMessageExpr(env, e)
	require.Error(t, err)
	_, ok := err.(*BadMessageFieldError)
	assert.True(t, ok)
}

func TestTypeMessageExprAmbiguousFieldsAreRejected(t *testing.T) {
	t.Parallel()

	c := newMessageTestChecker()
	env := NewTypeEnv()

	e := &ast.MessageExpr{
		Fields: []ast.MessageField{
			messageField("foo", ast.MLit{Value: types.StringLiteral{Value: "bar"}}),
		},
	}

	_, err := c.typeMessageExpr(env, e)
	require.Error(t, err)
	_, ok := err.(*NotWellFormedError)
	assert.True(t, ok)
}

func TestTypeMessageExprValidEvent(t *testing.T) {
	t.Parallel()

	c := newMessageTestChecker()
	env := NewTypeEnv()

	e := &ast.MessageExpr{
		Fields: []ast.MessageField{
			messageField("_eventname", ast.MTag{S: "Deposited"}),
		},
	}

	ty, err := c.typeMessageExpr(env, e)
	require.NoError(t, err)
	assert.Equal(t, types.EventType{}, ty)
}
