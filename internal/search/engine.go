package search

import (
	"sort"
	"strings"

	"github.com/blackwell-systems/boxctl/internal/catalog"
)

// Result is one ranked fuzzy match.
type Result struct {
	Entry catalog.Entry
	Score float64
}

// Engine runs exact and fuzzy lookups over a catalog store.
type Engine struct {
	store *catalog.Store
}

// NewEngine wraps a store.
func NewEngine(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// Exact returns the entry whose title equals query, ignoring case and
// surrounding whitespace. Never fuzzy.
func (e *Engine) Exact(query string) (catalog.Entry, bool) {
	return e.store.Get(query)
}

// Fuzzy scores every entry against query and returns at most topN results
// scoring at least minScore, best first. Ties break on case-insensitive
// title so rankings are deterministic. An empty or non-alphanumeric query
// matches nothing.
func (e *Engine) Fuzzy(query string, topN int, minScore float64) []Result {
	if Normalize(query) == "" {
		return nil
	}
	var results []Result
	for _, entry := range e.store.All() {
		if s := Score(query, entry.Title); s >= minScore {
			results = append(results, Result{Entry: entry, Score: s})
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return strings.ToLower(results[i].Entry.Title) < strings.ToLower(results[j].Entry.Title)
	})
	if topN >= 0 && len(results) > topN {
		results = results[:topN]
	}
	return results
}

// GroupByLabel partitions the catalog by display label. A non-empty filter
// restricts the output to that one label, matched case-insensitively.
// Titles within each group are sorted case-insensitively. Every entry lands
// in exactly one group.
func (e *Engine) GroupByLabel(filter string) map[string][]catalog.Entry {
	groups := make(map[string][]catalog.Entry)
	for _, entry := range e.store.All() {
		label := entry.DisplayLabel()
		if filter != "" && !strings.EqualFold(label, filter) {
			continue
		}
		groups[label] = append(groups[label], entry)
	}
	for _, g := range groups {
		sort.Slice(g, func(i, j int) bool {
			return strings.ToLower(g[i].Title) < strings.ToLower(g[j].Title)
		})
	}
	return groups
}

// Covered returns every entry with the cover flag set, regardless of box,
// sorted case-insensitively by title.
func (e *Engine) Covered() []catalog.Entry {
	var out []catalog.Entry
	for _, entry := range e.store.All() {
		if entry.Cover {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	return out
}
