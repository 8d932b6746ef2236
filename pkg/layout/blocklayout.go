// Package layout generates 180°-rotationally-symmetric block patterns
// for N >= 5 crossword grids, ensuring every resulting run of letter
// cells has length >= 3.
package layout

import (
	"errors"
	"math/rand/v2"
)

// ErrLayoutUnreachable is returned when no symmetric block layout
// within the attempt and retry caps produced only length->=3 runs.
var ErrLayoutUnreachable = errors.New("layout: could not find a layout with no short runs")

// BlockSet is the set of (row, col) cells marked Block.
type BlockSet map[[2]int]bool

const (
	attemptLimitPerTry = 500
	retryCap           = 12
)

// Generate returns a symmetric block layout for an N×N grid. For N <=
// 4 it returns an empty, all-open BlockSet — every row and column is
// already a single length-N slot. For N >= 5 it randomly places up to
// N/2 180°-symmetric block pairs in the interior (rows/cols 1..N-2).
// A pair that would leave a non-Block run shorter than 3 in any row or
// column is taken back and not counted, so a layout may hold fewer
// pairs than that; on 5×5 and 6×6 grids every interior block leaves
// such a run, and the layout comes back all-open.
func Generate(n int, rng *rand.Rand) (BlockSet, error) {
	if n <= 4 {
		return BlockSet{}, nil
	}

	pairs := n / 2
	for retry := 0; retry <= retryCap; retry++ {
		blocks, ok := tryLayout(n, pairs, rng)
		if ok {
			return blocks, nil
		}
		pairs++
	}
	return nil, ErrLayoutUnreachable
}

func tryLayout(n, pairs int, rng *rand.Rand) (BlockSet, bool) {
	blocks := BlockSet{}
	placed := 0
	for attempt := 0; attempt < attemptLimitPerTry && placed < pairs; attempt++ {
		r := 1 + rng.IntN(n-2)
		c := 1 + rng.IntN(n-2)
		mr, mc := n-1-r, n-1-c

		if blocks[[2]int{r, c}] {
			continue
		}
		blocks[[2]int{r, c}] = true
		blocks[[2]int{mr, mc}] = true
		if degenerate(n, blocks) {
			delete(blocks, [2]int{r, c})
			delete(blocks, [2]int{mr, mc})
			continue
		}
		placed++
	}

	if degenerate(n, blocks) {
		return nil, false
	}
	return blocks, true
}

// degenerate reports whether any row or column contains a maximal
// non-Block run of length 1 or 2 — too short to be an admissible
// slot, and so an orphaned, permanently unfillable stretch of cells.
func degenerate(n int, blocks BlockSet) bool {
	isBlock := func(r, c int) bool { return blocks[[2]int{r, c}] }

	for r := 0; r < n; r++ {
		c := 0
		for c < n {
			if isBlock(r, c) {
				c++
				continue
			}
			start := c
			for c < n && !isBlock(r, c) {
				c++
			}
			if length := c - start; length > 0 && length < 3 {
				return true
			}
		}
	}

	for c := 0; c < n; c++ {
		r := 0
		for r < n {
			if isBlock(r, c) {
				r++
				continue
			}
			start := r
			for r < n && !isBlock(r, c) {
				r++
			}
			if length := r - start; length > 0 && length < 3 {
				return true
			}
		}
	}

	return false
}

// AsGridBlocks converts a BlockSet into the map[[2]int]bool shape
// grid.WithBlocks expects. BlockSet already is that shape; this
// exists so callers don't need to know the two types are identical.
func (b BlockSet) AsGridBlocks() map[[2]int]bool { return b }
