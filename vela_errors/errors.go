// Package vela_errors holds the base error facilities shared across the
// module: a small "internal, never user-visible" error kind, separate
// from the per-package user-facing diagnostics. Internal invariant
// violations are fatal (panic/abort), never surfaced as a diagnostic.
package vela_errors

import "fmt"

// UserError is implemented by every diagnostic the checker can produce
// for a malformed program. It exists purely as a marker so that callers
// can distinguish "the program is wrong" from "the checker is broken"
// without a type switch over every concrete error type.
type UserError interface {
	error
	IsUserError()
}

// InternalError wraps an invariant violation that should never occur if
// the earlier checks that were supposed to guard it did their job (e.g.
// an arity mismatch surviving past an arity check). Package checker
// panics with this type rather than reporting it as a diagnostic.
type InternalError struct {
	Message string
}

func NewInternalError(format string, args ...interface{}) InternalError {
	return InternalError{Message: fmt.Sprintf(format, args...)}
}

func (e InternalError) Error() string {
	return "internal error: " + e.Message
}

// Recover turns a recovered InternalError back into a Go error for
// callers that would rather receive an error than a panic. Nothing in
// package checker calls this itself; CheckModule leaves an internal
// invariant violation fatal, and this exists for an embedder or test
// harness that wants to catch the panic at its own call site instead.
func Recover(r interface{}) (InternalError, bool) {
	if r == nil {
		return InternalError{}, false
	}
	ie, ok := r.(InternalError)
	return ie, ok
}
