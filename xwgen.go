// Package xwgen fills a crossword grid of dictionary words under
// crossing-letter constraints. It wires together a trie-backed
// dictionary index, a symmetric block-layout generator, and a
// heuristic backtracking search engine into the single public
// operation Generate.
package xwgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/tamberg/xwgen/internal/numbering"
	"github.com/tamberg/xwgen/internal/search"
	"github.com/tamberg/xwgen/pkg/grid"
	"github.com/tamberg/xwgen/pkg/layout"
)

// FilledPuzzle is the completed product of Generate: a solved grid
// plus the numbered across/down entries an external clue-writing or
// rendering collaborator would consume.
type FilledPuzzle struct {
	Grid      *grid.Grid
	Numbering [][]*int
	Entries   numbering.Entries
}

// sufficiencyThreshold is spec §4.5's heuristic floor on admissible
// words of a required length: at least max(2*size, 10).
func sufficiencyThreshold(size int) int {
	t := 2 * size
	if t < 10 {
		t = 10
	}
	return t
}

// Generate fills a Size×Size grid from cfg.Dictionary, returning a
// GenerationError wrapping one of the exported sentinels on failure.
func Generate(cfg Config) (*FilledPuzzle, error) {
	if cfg.Size < 3 || cfg.Size > 7 {
		return nil, newGenerationError(KindInvariant, fmt.Errorf("size %d outside the supported 3..7 range", cfg.Size))
	}
	if cfg.Dictionary == nil {
		return nil, newGenerationError(KindInvariant, fmt.Errorf("cfg.Dictionary is nil"))
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	blocks := cfg.BlockLayout
	if blocks == nil {
		var err error
		blocks, err = layout.Generate(cfg.Size, rng)
		if err != nil {
			return nil, newGenerationError(kindOf(err), err)
		}
	}

	g, err := grid.WithBlocks(cfg.Size, blocks.AsGridBlocks())
	if err != nil {
		return nil, newGenerationError(KindInvariant, err)
	}

	if err := checkSufficiency(cfg, g); err != nil {
		return nil, newGenerationError(KindInsufficientDictionary, err)
	}

	engine := search.NewEngine(cfg.Dictionary, cfg.searchConfig(), cfg.Logger)
	solved, assignment, err := engine.Solve(g, cfg.Seeds, rng)
	if err != nil {
		return nil, newGenerationError(kindOf(err), err)
	}

	nums, entries := numbering.Number(solved, assignment)
	return &FilledPuzzle{Grid: solved, Numbering: nums, Entries: entries}, nil
}

// checkSufficiency enforces spec §4.5's InsufficientDictionary
// precondition over every length that will actually appear as a slot
// in g, before a single backtracking step is attempted.
func checkSufficiency(cfg Config, g *grid.Grid) error {
	threshold := sufficiencyThreshold(cfg.Size)
	seen := make(map[int]bool)
	for _, s := range g.Slots() {
		if seen[s.Length] {
			continue
		}
		seen[s.Length] = true
		if have := cfg.Dictionary.CountByLength(s.Length); have < threshold {
			return fmt.Errorf("%w: need >= %d words of length %d, have %d", ErrInsufficientDictionary, threshold, s.Length, have)
		}
	}
	return nil
}
