package checker

import (
	"fmt"

	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

// SemanticError is implemented by every diagnostic tag the checker can
// produce. It carries enough to render a one-line message plus a
// location.
type SemanticError interface {
	error
	IsUserError()
	Loc() common.Loc
}

// UnboundError: identifier not in scope.
type UnboundError struct {
	Name string
	L    common.Loc
}

func (e *UnboundError) Loc() common.Loc { return e.L }
func (e *UnboundError) Error() string {
	return fmt.Sprintf("%s: unbound identifier %q", e.L, e.Name)
}
func (*UnboundError) IsUserError() {}

// TypeMismatchError: assert_type_equiv failed.
type TypeMismatchError struct {
	Expected types.Type
	Got      types.Type
	L        common.Loc
	Context  string
}

func (e *TypeMismatchError) Loc() common.Loc { return e.L }
func (e *TypeMismatchError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: expected type %s, got %s", e.L, e.Context, e.Expected, e.Got)
	}
	return fmt.Sprintf("%s: expected type %s, got %s", e.L, e.Expected, e.Got)
}
func (*TypeMismatchError) IsUserError() {}

// ArityError: function/constructor/type application, or map indexing
// depth, arity disagreement.
type ArityError struct {
	Expected int
	Got      int
	Context  string
	L        common.Loc
}

func (e *ArityError) Loc() common.Loc { return e.L }
func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %s: expected %d argument(s), got %d", e.L, e.Context, e.Expected, e.Got)
}
func (*ArityError) IsUserError() {}

// NotWellFormedError: free type variable or unknown ADT name.
type NotWellFormedError struct {
	Type types.Type
	L    common.Loc
}

func (e *NotWellFormedError) Loc() common.Loc { return e.L }
func (e *NotWellFormedError) Error() string {
	return fmt.Sprintf("%s: not a well-formed type: %s", e.L, e.Type)
}
func (*NotWellFormedError) IsUserError() {}

// UnknownBuiltinError.
type UnknownBuiltinError struct {
	Op       string
	ArgTypes []types.Type
	L        common.Loc
}

func (e *UnknownBuiltinError) Loc() common.Loc { return e.L }
func (e *UnknownBuiltinError) Error() string {
	return fmt.Sprintf("%s: no builtin operator %q for argument types %v", e.L, e.Op, e.ArgTypes)
}
func (*UnknownBuiltinError) IsUserError() {}

// NonStorableError. Kind names what was being declared when the check
// failed: a field, a parameter, and so on.
type NonStorableError struct {
	Type types.Type
	Kind common.DeclarationKind
	L    common.Loc
}

func (e *NonStorableError) Loc() common.Loc { return e.L }
func (e *NonStorableError) Error() string {
	return fmt.Sprintf("%s: %s type %s is not storable", e.L, e.Kind.Name(), e.Type)
}
func (*NonStorableError) IsUserError() {}

// NonSerializableError. Kind is as in NonStorableError.
type NonSerializableError struct {
	Type types.Type
	Kind common.DeclarationKind
	L    common.Loc
}

func (e *NonSerializableError) Loc() common.Loc { return e.L }
func (e *NonSerializableError) Error() string {
	return fmt.Sprintf("%s: %s type %s is not serializable", e.L, e.Kind.Name(), e.Type)
}
func (*NonSerializableError) IsUserError() {}

// EmptyMatchError.
type EmptyMatchError struct {
	L common.Loc
}

func (e *EmptyMatchError) Loc() common.Loc { return e.L }
func (e *EmptyMatchError) Error() string {
	return fmt.Sprintf("%s: match expression has no clauses", e.L)
}
func (*EmptyMatchError) IsUserError() {}

// BadMessageFieldError.
type BadMessageFieldError struct {
	Field    string
	Expected types.Type
	Got      types.Type
	L        common.Loc
}

func (e *BadMessageFieldError) Loc() common.Loc { return e.L }
func (e *BadMessageFieldError) Error() string {
	return fmt.Sprintf("%s: field %q: expected type %s, got %s", e.L, e.Field, e.Expected, e.Got)
}
func (*BadMessageFieldError) IsUserError() {}

// WriteToReadOnlyError.
type WriteToReadOnlyError struct {
	Field string
	L     common.Loc
}

func (e *WriteToReadOnlyError) Loc() common.Loc { return e.L }
func (e *WriteToReadOnlyError) Error() string {
	return fmt.Sprintf("%s: cannot write to read-only field %q", e.L, e.Field)
}
func (*WriteToReadOnlyError) IsUserError() {}

// RecPrimsTypeDeclError: a LibTyp appeared in the recursion-primitives
// block.
type RecPrimsTypeDeclError struct {
	Name string
	L    common.Loc
}

func (e *RecPrimsTypeDeclError) Loc() common.Loc { return e.L }
func (e *RecPrimsTypeDeclError) Error() string {
	return fmt.Sprintf("%s: type declaration %q is not allowed among recursion primitives", e.L, e.Name)
}
func (*RecPrimsTypeDeclError) IsUserError() {}

// UnknownBCFieldError.
type UnknownBCFieldError struct {
	Name string
	L    common.Loc
}

func (e *UnknownBCFieldError) Loc() common.Loc { return e.L }
func (e *UnknownBCFieldError) Error() string {
	return fmt.Sprintf("%s: unknown blockchain field %q", e.L, e.Name)
}
func (*UnknownBCFieldError) IsUserError() {}

// NotImplementedError: e.g. Throw.
type NotImplementedError struct {
	What string
	L    common.Loc
}

func (e *NotImplementedError) Loc() common.Loc { return e.L }
func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s: %s is not supported by this checker", e.L, e.What)
}
func (*NotImplementedError) IsUserError() {}

// contextError wraps a leaf failure with the "typechecking" context and
// an expression's source rep: the first failure short-circuits and is
// wrapped with a "typechecking" context plus the expression's location.
type contextError struct {
	Context string
	SrcRep  string
	Inner   error
}

func (e *contextError) Loc() common.Loc {
	if le, ok := e.Inner.(interface{ Loc() common.Loc }); ok {
		return le.Loc()
	}
	return common.Unknown
}

func (e *contextError) Error() string {
	if e.SrcRep != "" {
		return fmt.Sprintf("%s while %s `%s`: %s", e.Loc(), e.Context, e.SrcRep, e.Inner.Error())
	}
	return fmt.Sprintf("%s while %s: %s", e.Loc(), e.Context, e.Inner.Error())
}

func (*contextError) IsUserError() {}

func (e *contextError) Unwrap() error { return e.Inner }

// wrapTypechecking is the single helper used everywhere an expression
// failure needs the "typechecking" context, so no call site improvises
// its own wording. If err is already wrapped (e.g. re-reported from a
// nested expression), it is returned unchanged rather than
// double-wrapped.
func wrapTypechecking(srcRep string, err error) error {
	if err == nil {
		return nil
	}
	if _, already := err.(*contextError); already {
		return err
	}
	return &contextError{
		Context: "typechecking",
		SrcRep:  srcRep,
		Inner:   err,
	}
}

// CheckerError aggregates every error accumulated across a module
// check: library entries, field initializers and transitions are
// collected, not fatal.
type CheckerError struct {
	Errors []error
}

func (e *CheckerError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	s := fmt.Sprintf("checking failed with %d error(s):\n", len(e.Errors))
	for _, err := range e.Errors {
		s += "  " + err.Error() + "\n"
	}
	return s
}

func (*CheckerError) IsUserError() {}
