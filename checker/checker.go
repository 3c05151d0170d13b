// Package checker is the bidirectional typing engine for contracts:
// TypeEnv, the expression and statement typers, the pattern-matching
// machinery, and the whole-module orchestration that threads
// environments through recursion primitives, libraries, fields and
// transitions while accumulating errors.
package checker

// Checker holds the external collaborators (Config) and the errors
// accumulated so far. It carries no mutable per-program state beyond
// the error list: every typing rule takes the environment it needs as
// an explicit argument and returns a new one, and CheckModule clears
// the error list when it starts, so a Checker value can be reused for
// one module after another. The error list is not guarded by a mutex,
// so one Checker value must not run two checks at the same time.
type Checker struct {
	config Config
	errors []error
}

// NewChecker constructs a Checker over the given external collaborators.
func NewChecker(config Config) *Checker {
	return &Checker{config: config}
}

// report accumulates a non-fatal diagnostic: library entries, field
// initializers and transitions collect errors rather than aborting the
// module check.
func (c *Checker) report(err error) {
	if err == nil {
		return
	}
	c.errors = append(c.errors, err)
}

// Errors returns every diagnostic accumulated so far.
func (c *Checker) Errors() []error {
	return c.errors
}

// CheckerError returns the aggregate error for the current error list,
// or nil if it is empty.
func (c *Checker) CheckerError() *CheckerError {
	if len(c.errors) == 0 {
		return nil
	}
	return &CheckerError{Errors: c.errors}
}

func (c *Checker) logf(format string, args ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Printf(format, args...)
	}
}
