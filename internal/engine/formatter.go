package engine

import (
	"fmt"
	"strings"
)

// FormatChain renders a resolved chain as the printable report, one
// line per step. Steps with a following relationship render as
// "Name(ID) is Kind of", the final step as "Name(ID)":
//
//	Wilhelm(5) is Father of
//	Robert(3) is Father of
//	Karl(2) is Father of
//	Anna(1)
func FormatChain(steps []PathStep) string {
	var b strings.Builder
	for i, s := range steps {
		if i > 0 {
			b.WriteByte('\n')
		}
		if s.Rel != "" {
			fmt.Fprintf(&b, "%s(%d) is %s of", s.Name, s.ID, s.Rel)
		} else {
			fmt.Fprintf(&b, "%s(%d)", s.Name, s.ID)
		}
	}
	return b.String()
}
