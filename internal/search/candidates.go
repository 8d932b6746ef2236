package search

import (
	"math/rand/v2"
	"sort"

	"github.com/tamberg/xwgen/pkg/dictionary"
	"github.com/tamberg/xwgen/pkg/grid"
)

// Ordering selects how a slot's candidate words are ordered before
// the search tries them in sequence.
type Ordering int

const (
	// Heuristic orders candidates by descending letter-frequency
	// score over their wildcard positions.
	Heuristic Ordering = iota
	// Random shuffles candidates with the engine's seeded rng.
	Random
)

// candidatesFor returns the words of dict matching pattern at slot's
// length, minus anything already in used, ordered per ordering, and
// truncated to cap (cap <= 0 means unbounded).
func candidatesFor(dict *dictionary.Index, s grid.Slot, pattern grid.Pattern, used map[string]struct{}, ordering Ordering, rng *rand.Rand, cap int) []string {
	var words []string
	for w := range dict.Matching(s.Length, pattern) {
		if _, dup := used[w]; dup {
			continue
		}
		words = append(words, w)
	}

	switch ordering {
	case Random:
		rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	default:
		sort.SliceStable(words, func(i, j int) bool {
			return letterScore(words[i], pattern) > letterScore(words[j], pattern)
		})
	}

	if cap > 0 && len(words) > cap {
		words = words[:cap]
	}
	return words
}
