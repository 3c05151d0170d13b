package ast

import (
	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

// Expr is implemented by every expression form the checker types.
type Expr interface {
	Loc() common.Loc
	SourceRep() SourceRep
	Annotation() *types.QualifiedType
	SetAnnotation(types.QualifiedType)
	isExpr()
}

// Lit is a literal value.
type Lit struct {
	Base
	Value types.LiteralValue
}

func (*Lit) isExpr() {}

// Var is a use-site of an identifier.
type Var struct {
	Base
	Ident Ident
}

func (*Var) isExpr() {}

// Fun is a one-argument lambda; all binders are explicitly typed,
// there is no inference for unannotated parameters.
type Fun struct {
	Base
	Param     Ident
	ParamType types.Type
	Body      Expr
}

func (*Fun) isExpr() {}

// App is function application to one or more arguments.
type App struct {
	Base
	Fn   Expr
	Args []Expr
}

func (*App) isExpr() {}

// Builtin is an operator application dispatched through the builtin
// dictionary. OpIdent is annotated with the resolved return type.
type Builtin struct {
	Base
	Op      string
	OpIdent Ident
	Args    []Expr
}

func (*Builtin) isExpr() {}

// Let optionally ascribes a type to the bound name; if DeclaredType is
// non-nil it must be equivalent to the inferred type of Lhs.
type Let struct {
	Base
	Name         Ident
	DeclaredType types.Type
	Lhs          Expr
	Rhs          Expr
}

func (*Let) isExpr() {}

// Constr applies a named ADT constructor to explicit type arguments and
// value arguments.
type Constr struct {
	Base
	Name      string
	TypeArgs  []types.Type
	ValueArgs []Expr
}

func (*Constr) isExpr() {}

// ExprMatchClause is one branch of a MatchExpr.
type ExprMatchClause struct {
	Pattern Pattern
	Body    Expr
}

// MatchExpr matches Scrutinee against each clause's pattern in order.
type MatchExpr struct {
	Base
	Scrutinee Ident
	Clauses   []ExprMatchClause
}

func (*MatchExpr) isExpr() {}

// Fixpoint types Body under an environment where Name is already bound
// to Type, then asserts the body's inferred type equals Type.
type Fixpoint struct {
	Base
	Name Ident
	Type types.Type
	Body Expr
}

func (*Fixpoint) isExpr() {}

// TFun is type abstraction over one type variable.
type TFun struct {
	Base
	TypeVar string
	Body    Expr
}

func (*TFun) isExpr() {}

// TApp is type application, instantiating nested TFun binders in order.
type TApp struct {
	Base
	Fn       Expr
	TypeArgs []types.Type
}

func (*TApp) isExpr() {}

// MessagePayload is one of MTag, MLit or MVar.
type MessagePayload interface {
	isMessagePayload()
}

type MTag struct {
	S string
}

func (MTag) isMessagePayload() {}

type MLit struct {
	Value types.LiteralValue
}

func (MLit) isMessagePayload() {}

type MVar struct {
	Ident Ident
}

func (MVar) isMessagePayload() {}

// MessageField is one (name, payload) pair inside a message/event
// literal.
type MessageField struct {
	Name    string
	Payload MessagePayload
}

// MessageExpr is a message or event literal; which one it is is
// determined by which field names are present against the header
// contract.
type MessageExpr struct {
	Base
	Fields []MessageField
}

func (*MessageExpr) isExpr() {}
