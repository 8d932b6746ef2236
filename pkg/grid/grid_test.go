package grid

import (
	"testing"
)

func TestSlots_AllOpen4x4(t *testing.T) {
	g, err := Empty(4)
	if err != nil {
		t.Fatalf("Empty: %v", err)
	}
	slots := g.Slots()
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots (4 across + 4 down), got %d", len(slots))
	}
	for i := 0; i < 4; i++ {
		if slots[i].Dir != Across || slots[i].Row != i || slots[i].Col != 0 || slots[i].Length != 4 {
			t.Errorf("across slot %d = %+v, want Across row %d col 0 len 4", i, slots[i], i)
		}
	}
	for i := 0; i < 4; i++ {
		d := slots[4+i]
		if d.Dir != Down || d.Col != i || d.Row != 0 || d.Length != 4 {
			t.Errorf("down slot %d = %+v, want Down col %d row 0 len 4", i, d, i)
		}
	}
}

func TestSlots_SkipShortRuns(t *testing.T) {
	// Blocking the center cell (2,2) of a 5x5 splits row 2 (and column 2)
	// into two length-2 runs, which must not be admitted as slots.
	blocks := map[[2]int]bool{{2, 2}: true}
	g, err := WithBlocks(5, blocks)
	if err != nil {
		t.Fatalf("WithBlocks: %v", err)
	}
	for _, s := range g.Slots() {
		if s.Dir == Across && s.Row == 2 {
			t.Errorf("row 2 should have no admissible across slot, got %+v", s)
		}
	}
}

func TestPlaceUnplace_Atomicity(t *testing.T) {
	g, err := Empty(4)
	if err != nil {
		t.Fatalf("Empty: %v", err)
	}
	before := g.Repr()

	s := g.Slots()[0]
	snap, err := g.Place(s, "area")
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if g.Repr() == before {
		t.Fatalf("Place did not change grid contents")
	}

	g.Unplace(s, snap)
	if g.Repr() != before {
		t.Fatalf("Unplace did not restore original grid:\nwant:\n%s\ngot:\n%s", before, g.Repr())
	}
}

func TestPlace_ConflictingLetter(t *testing.T) {
	g, err := Empty(4)
	if err != nil {
		t.Fatalf("Empty: %v", err)
	}
	across := g.Slots()[0] // row 0
	if _, err := g.Place(across, "area"); err != nil {
		t.Fatalf("Place across: %v", err)
	}

	// The down slot starting at (0,0) now requires its first letter to
	// be 'a'; placing a word starting with a different letter must fail
	// and leave the grid untouched.
	var down Slot
	for _, s := range g.Slots() {
		if s.Dir == Down && s.Col == 0 {
			down = s
			break
		}
	}
	before := g.Repr()
	if _, err := g.Place(down, "rest"); err == nil {
		t.Fatalf("expected ErrConflict placing %q over existing 'a'", "rest")
	}
	if g.Repr() != before {
		t.Fatalf("failed Place must not mutate the grid")
	}
}

func TestPatternOf(t *testing.T) {
	g, err := Empty(4)
	if err != nil {
		t.Fatalf("Empty: %v", err)
	}
	s := g.Slots()[0]
	p := g.PatternOf(s)
	if p.String() != "????" {
		t.Fatalf("pattern of empty slot = %q, want ????", p.String())
	}

	if _, err := g.Place(s, "area"); err != nil {
		t.Fatalf("Place: %v", err)
	}
	p = g.PatternOf(s)
	if p.String() != "area" || !p.IsFull() {
		t.Fatalf("pattern of filled slot = %q, want area (full)", p.String())
	}
}

func TestCrossingSlot(t *testing.T) {
	g, err := Empty(4)
	if err != nil {
		t.Fatalf("Empty: %v", err)
	}
	row0 := g.Slots()[0]
	cross, idx, ok := g.CrossingSlot(row0, 1)
	if !ok {
		t.Fatalf("expected a crossing slot at index 1")
	}
	if cross.Dir != Down || cross.Col != 1 || idx != 0 {
		t.Fatalf("crossing slot = %+v at idx %d, want Down col 1 idx 0", cross, idx)
	}
}

func TestClone_Independence(t *testing.T) {
	g, err := Empty(4)
	if err != nil {
		t.Fatalf("Empty: %v", err)
	}
	s := g.Slots()[0]
	clone := g.Clone()
	if _, err := g.Place(s, "area"); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if clone.Repr() == g.Repr() {
		t.Fatalf("mutating the original must not affect the clone")
	}
}
