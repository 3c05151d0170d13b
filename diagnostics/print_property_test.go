package diagnostics

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/vela-lang/vela/common"
)

// namedError is a minimal locater implementation whose message is just
// its own name, so a property test can check where each one lands in
// the rendered output without depending on any real diagnostic tag.
type namedError struct {
	name string
}

func (e namedError) Error() string   { return e.name }
func (e namedError) Loc() common.Loc { return common.Unknown }

func genDistinctNames() gopter.Gen {
	return gen.SliceOfN(6, gen.RegexMatch(`[a-z]{4,10}`)).Map(func(names []string) []string {
		seen := map[string]bool{}
		out := make([]string, 0, len(names))
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
		return out
	})
}

// TestPrintAllPreservesAccumulationOrder matches the
// deterministic-ordering invariant: the printer never reorders the
// error list it is handed, no matter how many errors there are or what
// their messages contain.
func TestPrintAllPreservesAccumulationOrder(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("errors appear in the output in accumulation order", prop.ForAll(
		func(names []string) bool {
			if len(names) < 2 {
				return true
			}
			errs := make([]error, len(names))
			for i, n := range names {
				errs[i] = namedError{name: n}
			}

			var sb strings.Builder
			p := NewPrinter(&sb, false)
			if err := p.PrintAll(errs, ""); err != nil {
				return false
			}
			out := sb.String()

			lastIdx := -1
			for _, n := range names {
				idx := strings.Index(out, n)
				if idx == -1 || idx <= lastIdx {
					return false
				}
				lastIdx = idx
			}
			return true
		},
		genDistinctNames(),
	))

	properties.TestingRun(t)
}
