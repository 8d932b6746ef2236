// Package feasibility implements the single-step crossing look-ahead
// that the search engine uses to prune a candidate before committing
// to it: a placement is endorsed only if every crossing slot is still
// satisfiable afterward.
package feasibility

import (
	"github.com/tamberg/xwgen/pkg/dictionary"
	"github.com/tamberg/xwgen/pkg/grid"
)

// Endorses tentatively places word into slot s on g, inspects every
// crossing slot's post-placement pattern, and reports whether the
// placement should be accepted. It always restores g to its prior
// state before returning, regardless of the verdict.
//
// used is the engine's used-word set; Endorses refuses to endorse a
// word already present in it, and refuses a placement that completes
// a crossing spelling a word already present in it.
func Endorses(g *grid.Grid, dict *dictionary.Index, s grid.Slot, word string, used map[string]struct{}) bool {
	if _, dup := used[word]; dup {
		return false
	}

	before, err := g.Place(s, word)
	if err != nil {
		return false
	}
	defer g.Unplace(s, before)

	for i := 0; i < s.Length; i++ {
		cross, _, ok := g.CrossingSlot(s, i)
		if !ok {
			continue
		}

		pattern := g.PatternOf(cross)
		if pattern.IsFull() {
			completed := pattern.AsWord()
			if !dict.Contains(completed) {
				return false
			}
			if completed == word {
				return false
			}
			if !before[i].IsEmpty() {
				// This crossing was already complete before the placement;
				// its word is already accounted for in used.
				continue
			}
			if _, dup := used[completed]; dup {
				return false
			}
			continue
		}
		if dict.CountMatching(cross.Length, pattern) < 1 {
			return false
		}
	}

	return true
}
