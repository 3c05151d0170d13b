package ast

import (
	"github.com/vela-lang/vela/common"
)

// Stmt is implemented by every statement form the checker types.
type Stmt interface {
	Loc() common.Loc
	isStmt()
}

// LoadStmt reads a contract field into a fresh pure-environment binding.
type LoadStmt struct {
	Base
	Result Ident
	Field  string
}

func (*LoadStmt) isStmt() {}

// StoreStmt writes a pure-environment value into a contract field.
type StoreStmt struct {
	Base
	Field string
	Value Ident
}

func (*StoreStmt) isStmt() {}

// BindStmt types Expr and binds its result in the pure environment.
type BindStmt struct {
	Base
	Result Ident
	Expr   Expr
}

func (*BindStmt) isStmt() {}

// MapUpdateStmt updates (Value != nil) or deletes (Value == nil) an
// entry at the end of a chain of map accesses.
type MapUpdateStmt struct {
	Base
	Map   string
	Keys  []Ident
	Value *Ident
}

func (*MapUpdateStmt) isStmt() {}

// MapGetStmt reads along a chain of map accesses. If Fetch is true,
// Result is bound to Option(value-type); otherwise to Bool (an
// existence check).
type MapGetStmt struct {
	Base
	Result Ident
	Map    string
	Keys   []Ident
	Fetch  bool
}

func (*MapGetStmt) isStmt() {}

// ReadFromBCStmt reads a well-known blockchain field.
type ReadFromBCStmt struct {
	Base
	Result Ident
	Field  string
}

func (*ReadFromBCStmt) isStmt() {}

// StmtMatchClause is one branch of a MatchStmt; its bindings do not
// escape to the statement suffix.
type StmtMatchClause struct {
	Pattern Pattern
	Body    []Stmt
}

// MatchStmt matches Scrutinee against each clause's pattern in order.
type MatchStmt struct {
	Base
	Scrutinee Ident
	Clauses   []StmtMatchClause
}

func (*MatchStmt) isStmt() {}

// AcceptPaymentStmt has no typing obligation.
type AcceptPaymentStmt struct {
	Base
}

func (*AcceptPaymentStmt) isStmt() {}

// SendMsgsStmt sends a List(Message) computed earlier in the block.
type SendMsgsStmt struct {
	Base
	Ident Ident
}

func (*SendMsgsStmt) isStmt() {}

// CreateEvntStmt emits an Event computed earlier in the block.
type CreateEvntStmt struct {
	Base
	Ident Ident
}

func (*CreateEvntStmt) isStmt() {}

// ThrowStmt is explicitly unsupported.
type ThrowStmt struct {
	Base
	Ident *Ident
}

func (*ThrowStmt) isStmt() {}
