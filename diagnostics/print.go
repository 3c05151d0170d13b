// Package diagnostics renders a checker.CheckerError's accumulated
// errors against the module's source text: a one-line message, a
// "-->line:column" pointer, and (when the source is available) the
// offending line with a caret underneath. A separate value/type printer
// is a different concern; this package only renders diagnostics.
package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora/v4"

	"github.com/vela-lang/vela/common"
)

// Printer renders errors to an io.Writer, optionally colorized.
type Printer struct {
	w  io.Writer
	au *aurora.Aurora
}

// NewPrinter constructs a Printer. When color is false every aurora
// call is a no-op passthrough.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, au: aurora.New(aurora.WithColors(color))}
}

// locater is implemented by every semantic error in package checker.
type locater interface {
	error
	Loc() common.Loc
}

// PrintAll renders every error in errs against source, one after
// another, in the order they were accumulated. The printer never
// reorders what it is given.
func (p *Printer) PrintAll(errs []error, source string) error {
	lines := strings.Split(source, "\n")
	for _, err := range errs {
		if err := p.printOne(err, lines); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printOne(err error, lines []string) error {
	loc, hasLoc := common.Unknown, false
	if le, ok := err.(locater); ok {
		loc = le.Loc()
		hasLoc = true
	}

	if _, err := fmt.Fprintf(p.w, "%s: %s\n", p.au.Red("error").Bold(), err.Error()); err != nil {
		return err
	}
	if !hasLoc || loc == common.Unknown {
		return nil
	}

	if _, err := fmt.Fprintf(p.w, " %s %d:%d\n", p.au.Blue("-->"), loc.Line, loc.Column); err != nil {
		return err
	}

	lineIdx := loc.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		return nil
	}
	lineText := lines[lineIdx]
	gutter := fmt.Sprintf("%d", loc.Line)

	if _, err := fmt.Fprintf(p.w, "%s |\n", strings.Repeat(" ", len(gutter))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.w, "%s | %s\n", gutter, lineText); err != nil {
		return err
	}

	col := loc.Column
	if col < 0 {
		col = 0
	}
	pad := strings.Repeat(" ", col)
	if _, err := fmt.Fprintf(p.w, "%s | %s%s\n", strings.Repeat(" ", len(gutter)), pad, p.au.Red("^").Bold()); err != nil {
		return err
	}
	return nil
}
