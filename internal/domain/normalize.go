package domain

import (
	"strings"
	"unicode"
)

// NormalizeQuery prepares a catalog search query:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case is preserved, the catalog handles it.
func NormalizeQuery(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeISBN strips hyphens and whitespace from an ISBN.
func NormalizeISBN(isbn string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, isbn)
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
