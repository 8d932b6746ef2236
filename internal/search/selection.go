package search

import (
	"github.com/tamberg/xwgen/pkg/dictionary"
	"github.com/tamberg/xwgen/pkg/grid"
)

// selectSlot implements the MRV-style "most constrained" ordering of
// spec §4.5: among unassigned slots, prefer the fewest remaining
// Wildcards (most crossing letters already fixed), then fewest
// candidates (true MRV), then the slot's deterministic position in
// g.Slots(). It returns ok=false once every slot is assigned.
func selectSlot(slots []grid.Slot, assignment map[grid.Slot]string, g *grid.Grid, dict *dictionary.Index) (grid.Slot, bool) {
	bestIdx := -1
	var bestSlot grid.Slot
	bestWildcards := -1
	bestCount := -1

	for i, s := range slots {
		if _, done := assignment[s]; done {
			continue
		}

		pattern := g.PatternOf(s)
		wildcards := pattern.WildcardCount()
		count := dict.CountMatching(s.Length, pattern)

		if bestIdx == -1 || wildcards < bestWildcards || (wildcards == bestWildcards && count < bestCount) {
			bestIdx = i
			bestSlot = s
			bestWildcards = wildcards
			bestCount = count
		}
	}

	if bestIdx == -1 {
		return grid.Slot{}, false
	}
	return bestSlot, true
}
