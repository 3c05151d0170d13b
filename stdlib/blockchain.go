package stdlib

import "github.com/vela-lang/vela/types"

// Blockchain implements checker.BlockchainRegistry: the fixed set of
// read-only chain fields a ReadFromBC statement may name.
type Blockchain struct {
	fields map[string]types.Type
}

func NewBlockchain() Blockchain {
	return Blockchain{
		fields: map[string]types.Type{
			"BLOCKNUMBER": types.BNumType{},
			"TIMESTAMP":   types.UintType{Width: 64},
			"CHAINID":     types.UintType{Width: 32},
		},
	}
}

func (b Blockchain) LookupField(name string) (types.Type, bool) {
	ty, ok := b.fields[name]
	return ty, ok
}
