package filter

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"emojigrip/internal/domain"
)

// maxDistance is the largest edit distance still considered a match
// when the query is not a substring of the name.
const maxDistance = 3

// Rank filters palette entries against a query. Substring matches come
// first in palette order, then near-misses ranked by edit distance on
// the entry name. An empty query returns the palette unchanged.
func Rank(entries []domain.PaletteEntry, query string) []domain.PaletteEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]domain.PaletteEntry, len(entries))
		copy(out, entries)
		return out
	}

	type scored struct {
		entry domain.PaletteEntry
		dist  int
		pos   int
	}

	var matches []scored
	for i, e := range entries {
		name := strings.ToLower(e.Name)
		if strings.Contains(name, query) {
			matches = append(matches, scored{entry: e, dist: 0, pos: i})
			continue
		}
		if dist := bestWordDistance(name, query); dist <= maxDistance {
			matches = append(matches, scored{entry: e, dist: dist, pos: i})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].dist != matches[b].dist {
			return matches[a].dist < matches[b].dist
		}
		return matches[a].pos < matches[b].pos
	})

	out := make([]domain.PaletteEntry, len(matches))
	for i, m := range matches {
		out[i] = m.entry
	}
	return out
}

// bestWordDistance returns the smallest edit distance between the query
// and any single word of the name, so "rocket" still matches a typo
// like "roket" without penalizing multi-word names.
func bestWordDistance(name, query string) int {
	best := levenshtein.ComputeDistance(name, query)
	for _, word := range strings.Fields(name) {
		if d := levenshtein.ComputeDistance(word, query); d < best {
			best = d
		}
	}
	return best
}
