package stdlib

import (
	"github.com/vela-lang/vela/ast"
	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

// Implicits implements checker.ImplicitParams: the host-supplied
// identifiers that exist in every contract without being written by
// the contract author.
type Implicits struct{}

func NewImplicits() Implicits { return Implicits{} }

// ContractParams returns the parameters implicitly prepended to every
// contract's own declared parameter list.
func (Implicits) ContractParams() []ast.Param {
	return []ast.Param{
		{Name: ast.NewIdent("_this_address", common.Unknown), Type: types.ByStr20Type{}},
		{Name: ast.NewIdent("_creation_block", common.Unknown), Type: types.BNumType{}},
	}
}

// TransitionParams returns the parameters implicitly prepended to
// every transition's own declared parameter list.
func (Implicits) TransitionParams() []ast.Param {
	return []ast.Param{
		{Name: ast.NewIdent("_sender", common.Unknown), Type: types.ByStr20Type{}},
		{Name: ast.NewIdent("_amount", common.Unknown), Type: types.UintType{Width: 128}},
		{Name: ast.NewIdent("_origin", common.Unknown), Type: types.ByStr20Type{}},
	}
}

// BalanceField names the implicit, always-present, read-only balance
// field added to the field environment after user fields are checked.
func (Implicits) BalanceField() (string, types.Type) {
	return "_balance", types.UintType{Width: 128}
}

// ReadOnlyFields lists field names Store may never target beyond the
// balance field itself; none, for this host.
func (Implicits) ReadOnlyFields() []string {
	return nil
}
