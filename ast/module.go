package ast

import (
	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

// Param is a formal parameter of a transition or the contract itself.
type Param struct {
	Name Ident
	Type types.Type
}

// Field is a mutable contract field with its initializer.
type Field struct {
	Name Ident
	Type types.Type
	Init Expr
}

// CtrDecl declares one constructor's positional argument-type schemas
// when a library introduces its own ADT.
type CtrDecl struct {
	Name     Ident
	ArgTypes []types.Type
}

// LibEntry is either a LibVar or a LibTyp.
type LibEntry interface {
	Loc() common.Loc
	isLibEntry()
}

// LibVar is a top-level library value binding.
type LibVar struct {
	Base
	Name Ident
	Expr Expr
}

func (*LibVar) isLibEntry() {}

// LibTyp declares a user-defined ADT and its constructors. Registration
// of the ADT itself is the external registry's job; the checker only
// validates that each constructor's argument types are well formed.
type LibTyp struct {
	Base
	Name         Ident
	Constructors []CtrDecl
}

func (*LibTyp) isLibEntry() {}

// Library is an ordered list of entries: either one of the module's
// external libraries, or its own library.
type Library struct {
	Name    string
	Entries []LibEntry
}

// Transition is a contract entry point.
type Transition struct {
	Base
	Name   string
	Params []Param
	Body   []Stmt
}

// Module is the top-level unit the ModuleDriver checks.
type Module struct {
	RecPrims     []LibEntry
	ExternalLibs []Library
	OwnLib       *Library
	Params       []Param
	Fields       []Field
	Transitions  []Transition
}
