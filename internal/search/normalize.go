// Package search implements the fuzzy title-matching engine: text
// normalization, the composite similarity score, and ranked lookups over a
// catalog store.
package search

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[a-z0-9]+`)

// Normalize lowercases s and reduces it to its maximal alphanumeric runs
// joined by single spaces. Input with no alphanumeric characters yields "".
func Normalize(s string) string {
	return strings.Join(Tokens(s), " ")
}

// Tokens returns the lowercase maximal alphanumeric runs of s.
func Tokens(s string) []string {
	return wordRe.FindAllString(strings.ToLower(s), -1)
}
