package ast

import (
	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

// Pattern is implemented by every pattern form the checker types.
type Pattern interface {
	Loc() common.Loc
	Annotation() *types.QualifiedType
	SetAnnotation(types.QualifiedType)
	isPattern()
}

// WildcardPattern matches anything and introduces no bindings.
type WildcardPattern struct {
	Base
}

func (*WildcardPattern) isPattern() {}

// BinderPattern matches anything and binds it to Name.
type BinderPattern struct {
	Base
	Name Ident
}

func (*BinderPattern) isPattern() {}

// ConstructorPattern destructures a scrutinee via a named ADT
// constructor and recursively matches each argument.
type ConstructorPattern struct {
	Base
	Name string
	Args []Pattern
}

func (*ConstructorPattern) isPattern() {}
