package layout

import (
	"math/rand/v2"
	"testing"

	"github.com/tamberg/xwgen/pkg/grid"
)

func TestGenerate_SmallSizesAreAllOpen(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{3, 4} {
		blocks, err := Generate(n, rng)
		if err != nil {
			t.Fatalf("Generate(%d): %v", n, err)
		}
		if len(blocks) != 0 {
			t.Errorf("Generate(%d) = %v, want no blocks", n, blocks)
		}
	}
}

func TestGenerate_SymmetricAndNoShortRuns(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for _, n := range []int{5, 6, 7} {
		blocks, err := Generate(n, rng)
		if err != nil {
			t.Fatalf("Generate(%d): %v", n, err)
		}
		for rc, isBlock := range blocks {
			if !isBlock {
				continue
			}
			mirror := [2]int{n - 1 - rc[0], n - 1 - rc[1]}
			if !blocks[mirror] {
				t.Errorf("Generate(%d): block at %v has no symmetric mirror at %v", n, rc, mirror)
			}
		}
		if degenerate(n, blocks) {
			t.Errorf("Generate(%d) left a non-block run shorter than 3: %v", n, blocks)
		}

		g, err := grid.WithBlocks(n, blocks.AsGridBlocks())
		if err != nil {
			t.Fatalf("grid.WithBlocks(%d): %v", n, err)
		}
		for _, s := range g.Slots() {
			if s.Length < 3 {
				t.Errorf("Generate(%d) produced a slot shorter than 3: %+v", n, s)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(7, rand.New(rand.NewPCG(42, 42)))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(7, rand.New(rand.NewPCG(42, 42)))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("same-seed layouts differ in block count: %d vs %d", len(a), len(b))
	}
	for rc, v := range a {
		if b[rc] != v {
			t.Fatalf("same-seed layouts differ at %v", rc)
		}
	}
}
