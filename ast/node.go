// Package ast is the untyped-to-typed abstract syntax tree for Vela
// contracts. Nodes are produced by an external parser and handed to
// package checker, which decorates them in place: every expression,
// identifier, pattern and statement node grows an Annotation once
// checker.Checker has assigned it a type.
package ast

import (
	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

// SourceRep is the opaque source-level rendering of a node, used only
// to enrich diagnostic messages. Pretty-printing source is a separate
// collaborator's job, so this is never parsed or rendered here, only
// carried through.
type SourceRep string

// Base is embedded by every AST node; it carries the node's source
// location, its source rendering, and the type annotation the checker
// fills in. Once checking succeeds, every expression node's Annotation
// equals the type computed for it by the checker's typing rules.
type Base struct {
	L   common.Loc
	Src SourceRep
	Ann *types.QualifiedType
}

func (b *Base) Loc() common.Loc { return b.L }

func (b *Base) SourceRep() SourceRep { return b.Src }

func (b *Base) Annotation() *types.QualifiedType { return b.Ann }

func (b *Base) SetAnnotation(qt types.QualifiedType) { b.Ann = &qt }

// Ident is an identifier occurrence: either a binder (in a Fun, Let,
// pattern, etc.) or a use-site (Var, MVar). Both kinds carry the same
// Annotation field once typed.
type Ident struct {
	Base
	Name string
}

func NewIdent(name string, loc common.Loc) Ident {
	return Ident{Base: Base{L: loc}, Name: name}
}
