package search

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// maxWindowWords caps the partial-window length for long queries.
const maxWindowWords = 8

// Score rates how well query matches candidate on a 0..1 scale. Four signals
// are computed independently and the maximum wins, so any single strong
// signal surfaces a match: a literal substring check, token overlap,
// whole-string edit similarity, and the best edit similarity against any
// window of the candidate's tokens. Titles get abbreviated, reordered and
// repunctuated inconsistently, so no single metric is trustworthy on its own.
func Score(query, candidate string) float64 {
	qNorm := Normalize(query)
	cNorm := Normalize(candidate)

	sub := 0.0
	if qNorm != "" && strings.Contains(cNorm, qNorm) {
		sub = 1.0
	}
	tok := tokenOverlap(Tokens(query), Tokens(candidate))
	glob := ratio(qNorm, cNorm)
	part := partialWindowRatio(qNorm, cNorm)

	return max(sub, part, 0.85*tok, 0.75*glob)
}

// tokenOverlap is the fraction of distinct query tokens present in the
// candidate's token set.
func tokenOverlap(qTokens, cTokens []string) float64 {
	if len(qTokens) == 0 {
		return 0
	}
	qSet := make(map[string]struct{}, len(qTokens))
	for _, t := range qTokens {
		qSet[t] = struct{}{}
	}
	cSet := make(map[string]struct{}, len(cTokens))
	for _, t := range cTokens {
		cSet[t] = struct{}{}
	}
	overlap := 0
	for t := range qSet {
		if _, ok := cSet[t]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(qSet))
}

// partialWindowRatio slides a window of the query's token count (capped at
// maxWindowWords) across the candidate's tokens and keeps the best edit
// similarity. A literal substring short-circuits to 1.0. Both arguments must
// already be normalized.
func partialWindowRatio(qNorm, cNorm string) float64 {
	qTokens := strings.Fields(qNorm)
	cTokens := strings.Fields(cNorm)
	if len(qTokens) == 0 || len(cTokens) == 0 {
		return 0
	}
	if strings.Contains(cNorm, qNorm) {
		return 1.0
	}

	w := min(len(qTokens), maxWindowWords)
	best := 0.0
	for i := range cTokens {
		window := strings.Join(cTokens[i:min(i+w, len(cTokens))], " ")
		if r := ratio(qNorm, window); r > best {
			best = r
		}
	}
	return best
}

// ratio is the classic sequence-matcher similarity: twice the number of
// matching characters over the combined length of both strings.
func ratio(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
