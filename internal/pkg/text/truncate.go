package text

import (
	"strings"
	"unicode/utf8"
)

// Truncate trims s to at most max bytes without splitting a UTF-8 rune and
// marks the cut with "...". Surrounding whitespace is dropped first.
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
