package gen

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// diffText returns a unified line diff between the existing and generated
// text, or the empty string when they are identical. The diff is
// diagnostic only; the pass/fail decision is made on the raw bytes.
func diffText(existing, generated string) string {
	if existing == generated {
		return ""
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(existing),
		B:        difflib.SplitLines(generated),
		FromFile: "existing",
		ToFile:   "generated",
		Context:  3,
	})
	if err != nil {
		return fmt.Sprintf("diff unavailable: %v", err)
	}
	return text
}
