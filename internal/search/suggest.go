package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest ranks previously used search terms against a partial query for
// prompt completion. Results are ordered best match first; an empty query
// returns the history newest-first as given.
func Suggest(query string, history []string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]string, len(history))
		copy(out, history)
		return out
	}

	ranks := fuzzy.RankFindFold(query, history)
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})

	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.Target
	}
	return out
}

// Remember adds a term to the front of the history, deduplicating and
// keeping at most limit entries.
func Remember(history []string, term string, limit int) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return history
	}

	out := make([]string, 0, len(history)+1)
	out = append(out, term)
	for _, h := range history {
		if strings.EqualFold(h, term) {
			continue
		}
		out = append(out, h)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
