package logic

import (
	"strings"
	"unicode"
)

// Normalize returns the canonical search form of text: lowercase with all
// whitespace and hyphens removed. Two strings normalize equal iff they are
// equal ignoring case, spaces and hyphens.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, strings.ToLower(text))
}
