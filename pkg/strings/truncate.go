// Package strings holds text helpers for terminal output.
package strings

import (
	"strings"
)

// DefaultCellMaxLen bounds free-text cells (column docs, property values)
// in table output.
const DefaultCellMaxLen = 60

const ellipsis = "..."

// minCellLen leaves room for one rune before the ellipsis.
const minCellLen = len(ellipsis) + 1

// SingleLine collapses every run of whitespace, newlines included, into a
// single space and trims the ends.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Ellipsize returns s on a single line, cut to at most maxLen runes with a
// trailing "..." when it was longer. maxLen <= 0 disables the cut; other
// values below 4 are raised to 4.
func Ellipsize(s string, maxLen int) string {
	s = SingleLine(s)
	if maxLen <= 0 {
		return s
	}
	if maxLen < minCellLen {
		maxLen = minCellLen
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}
