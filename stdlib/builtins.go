package stdlib

import "github.com/vela-lang/vela/types"

// Builtins implements checker.BuiltinRegistry over a fixed operator
// set: same-width integer/uint arithmetic and comparison, boolean
// connectives, equality over integer, string, byte-string and BNum
// types, string concatenation, and ByStrN-to-ByStr20 conversion.
type Builtins struct{}

func NewBuiltins() Builtins { return Builtins{} }

var boolT = types.Type(types.ADT{Name: "Bool"})

func sameWidthInt(a, b types.Type) (int, bool) {
	ia, ok := a.(types.IntType)
	if !ok {
		return 0, false
	}
	ib, ok := b.(types.IntType)
	if !ok || ib.Width != ia.Width {
		return 0, false
	}
	return ia.Width, true
}

func sameWidthUint(a, b types.Type) (int, bool) {
	ia, ok := a.(types.UintType)
	if !ok {
		return 0, false
	}
	ib, ok := b.(types.UintType)
	if !ok || ib.Width != ia.Width {
		return 0, false
	}
	return ia.Width, true
}

// FindBuiltinOp looks up an operator by name against its already-typed
// argument list, returning the parameter types and result type, or
// ok=false if no overload applies.
func (Builtins) FindBuiltinOp(op string, argTypes []types.Type) ([]types.Type, types.Type, bool) {
	switch op {
	case "add", "sub", "mul", "div", "rem":
		if len(argTypes) != 2 {
			return nil, nil, false
		}
		if w, ok := sameWidthInt(argTypes[0], argTypes[1]); ok {
			t := types.IntType{Width: w}
			return []types.Type{t, t}, t, true
		}
		if w, ok := sameWidthUint(argTypes[0], argTypes[1]); ok {
			t := types.UintType{Width: w}
			return []types.Type{t, t}, t, true
		}
		return nil, nil, false

	case "lt", "le", "gt", "ge":
		if len(argTypes) != 2 {
			return nil, nil, false
		}
		if w, ok := sameWidthInt(argTypes[0], argTypes[1]); ok {
			t := types.IntType{Width: w}
			return []types.Type{t, t}, boolT, true
		}
		if w, ok := sameWidthUint(argTypes[0], argTypes[1]); ok {
			t := types.UintType{Width: w}
			return []types.Type{t, t}, boolT, true
		}
		return nil, nil, false

	case "eq":
		if len(argTypes) != 2 || !types.Equivalent(argTypes[0], argTypes[1]) {
			return nil, nil, false
		}
		switch argTypes[0].(type) {
		case types.IntType, types.UintType, types.StringType, types.ByStr20Type, types.ByStrNType, types.BNumType:
			return []types.Type{argTypes[0], argTypes[1]}, boolT, true
		}
		return nil, nil, false

	case "and", "or":
		if len(argTypes) != 2 || !types.Equivalent(argTypes[0], boolT) || !types.Equivalent(argTypes[1], boolT) {
			return nil, nil, false
		}
		return []types.Type{boolT, boolT}, boolT, true

	case "not":
		if len(argTypes) != 1 || !types.Equivalent(argTypes[0], boolT) {
			return nil, nil, false
		}
		return []types.Type{boolT}, boolT, true

	case "concat":
		if len(argTypes) != 2 {
			return nil, nil, false
		}
		if _, ok := argTypes[0].(types.StringType); !ok {
			return nil, nil, false
		}
		if _, ok := argTypes[1].(types.StringType); !ok {
			return nil, nil, false
		}
		return []types.Type{types.StringType{}, types.StringType{}}, types.StringType{}, true

	case "to_bystr20":
		if len(argTypes) != 1 {
			return nil, nil, false
		}
		if _, ok := argTypes[0].(types.ByStrNType); !ok {
			return nil, nil, false
		}
		return []types.Type{argTypes[0]}, types.ByStr20Type{}, true

	default:
		return nil, nil, false
	}
}
