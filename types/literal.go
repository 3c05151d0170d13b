package types

import (
	"math/big"

	"github.com/rivo/uniseg"
)

// LiteralValue is the leaf value grammar the parser hands the checker;
// LiteralType maps each to its primitive type.
type LiteralValue interface {
	isLiteral()
}

type IntLiteral struct {
	Width int
	Value *big.Int
}

func (IntLiteral) isLiteral() {}

type UintLiteral struct {
	Width int
	Value *big.Int
}

func (UintLiteral) isLiteral() {}

// ByStrLiteral is a sized byte-string literal, e.g. 0xdead (ByStr2).
// Address-shaped literals of exactly 20 bytes are still represented as
// ByStrLiteral{N: 20, ...}; LiteralType always assigns them ByStrNType,
// never ByStr20Type, so a 20-byte literal does not satisfy a place that
// requires ByStr20, such as the _recipient message header.
type ByStrLiteral struct {
	N     int
	Value []byte
}

func (ByStrLiteral) isLiteral() {}

type BNumLiteral struct {
	Value uint64
}

func (BNumLiteral) isLiteral() {}

type StringLiteral struct {
	Value string
}

func (StringLiteral) isLiteral() {}

// LiteralType maps a syntactic literal to its primitive type.
func LiteralType(lit LiteralValue) Type {
	switch l := lit.(type) {
	case IntLiteral:
		return IntType{Width: l.Width}
	case UintLiteral:
		return UintType{Width: l.Width}
	case ByStrLiteral:
		return ByStrNType{N: l.N}
	case BNumLiteral:
		return BNumType{}
	case StringLiteral:
		return StringType{}
	default:
		return nil
	}
}

// MaxMessageStringGraphemes bounds the length, in grapheme clusters, of a
// String literal used as a message or event field payload. is_storable
// and is_serializable are shape-only predicates that never look at
// literal values, so this bound is applied where the literal value is
// actually in hand, during message field checking
// (checker.typeMessageExpr), not as a Type predicate.
const MaxMessageStringGraphemes = 20000

// StringLiteralWithinLimit reports whether s is short enough, measured
// in grapheme clusters rather than bytes, to be sent as a message or
// event field. Counting grapheme clusters, not runes or bytes, is the
// same primitive used to validate that a Character literal is exactly
// one grapheme cluster, reused here as an upper bound instead of an
// exact-one check.
func StringLiteralWithinLimit(s string) bool {
	return uniseg.GraphemeClusterCount(s) <= MaxMessageStringGraphemes
}
