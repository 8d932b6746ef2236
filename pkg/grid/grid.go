package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConflict is returned by Place when a cell already holds a letter
// that disagrees with the word being placed. It signals a caller bug:
// the Feasibility Checker must never endorse a word that would trigger
// it.
var ErrConflict = errors.New("grid: conflicting letter at placement")

// ErrInvalidSize is returned by Empty/WithBlocks for N outside 3..7.
var ErrInvalidSize = errors.New("grid: size must be between 3 and 7")

// Grid is an N×N board of Cells. The block layout is fixed at
// construction; only cell contents change afterwards.
type Grid struct {
	n     int
	cells []Cell

	across []Slot
	down   []Slot

	// cellAcross/cellDown map a row-major cell index to the index of the
	// Across/Down slot covering it, or -1 if the cell is Block or
	// belongs to no slot of length >= 3 in that direction.
	cellAcross []int
	cellDown   []int
}

// Empty returns an N×N grid with every cell Empty and no blocks.
func Empty(n int) (*Grid, error) {
	return WithBlocks(n, nil)
}

// WithBlocks returns an N×N grid with every cell Empty except the
// given (row, col) pairs, which are marked Block.
func WithBlocks(n int, blocks map[[2]int]bool) (*Grid, error) {
	if n < 3 || n > 7 {
		return nil, ErrInvalidSize
	}

	g := &Grid{
		n:     n,
		cells: make([]Cell, n*n),
	}
	for rc, isBlock := range blocks {
		if !isBlock {
			continue
		}
		r, c := rc[0], rc[1]
		if r < 0 || r >= n || c < 0 || c >= n {
			return nil, fmt.Errorf("grid: block (%d,%d) out of bounds for size %d", r, c, n)
		}
		g.cells[r*n+c] = BlockCell()
	}

	g.computeSlots()
	return g, nil
}

func (g *Grid) idx(r, c int) int { return r*g.n + c }

func (g *Grid) isBlockAt(r, c int) bool { return g.cells[g.idx(r, c)].IsBlock() }

func (g *Grid) computeSlots() {
	n := g.n
	g.cellAcross = make([]int, n*n)
	g.cellDown = make([]int, n*n)
	for i := range g.cellAcross {
		g.cellAcross[i] = -1
		g.cellDown[i] = -1
	}

	for r := 0; r < n; r++ {
		c := 0
		for c < n {
			if g.isBlockAt(r, c) {
				c++
				continue
			}
			start := c
			for c < n && !g.isBlockAt(r, c) {
				c++
			}
			length := c - start
			if length >= 3 {
				slotIdx := len(g.across)
				g.across = append(g.across, Slot{Dir: Across, Row: r, Col: start, Length: length})
				for cc := start; cc < start+length; cc++ {
					g.cellAcross[g.idx(r, cc)] = slotIdx
				}
			}
		}
	}

	for c := 0; c < n; c++ {
		r := 0
		for r < n {
			if g.isBlockAt(r, c) {
				r++
				continue
			}
			start := r
			for r < n && !g.isBlockAt(r, c) {
				r++
			}
			length := r - start
			if length >= 3 {
				slotIdx := len(g.down)
				g.down = append(g.down, Slot{Dir: Down, Row: start, Col: c, Length: length})
				for rr := start; rr < start+length; rr++ {
					g.cellDown[g.idx(rr, c)] = slotIdx
				}
			}
		}
	}
}

// N returns the grid's side length.
func (g *Grid) N() int { return g.n }

// At returns the cell at (r, c).
func (g *Grid) At(r, c int) Cell { return g.cells[g.idx(r, c)] }

// Slots returns the deterministic list of slots: all Across slots
// ordered by (row, col), then all Down slots ordered by (col, row).
func (g *Grid) Slots() []Slot {
	out := make([]Slot, 0, len(g.across)+len(g.down))
	out = append(out, g.across...)
	out = append(out, g.down...)
	return out
}

// PatternOf returns the slot's current Pattern, reading cell contents.
func (g *Grid) PatternOf(s Slot) Pattern {
	p := make(Pattern, s.Length)
	for i := 0; i < s.Length; i++ {
		r, c := s.CellAt(i)
		cell := g.At(r, c)
		if l, ok := cell.Letter(); ok {
			p[i] = FixedAtom(l)
		} else {
			p[i] = WildcardAtom
		}
	}
	return p
}

// CrossingSlot returns the slot perpendicular to s that crosses it at
// s's i-th cell, and the index within that crossing slot, or
// (Slot{}, 0, false) if that cell belongs to no perpendicular slot.
func (g *Grid) CrossingSlot(s Slot, i int) (Slot, int, bool) {
	r, c := s.CellAt(i)
	var crossIdx int
	if s.Dir == Across {
		crossIdx = g.cellDown[g.idx(r, c)]
		if crossIdx < 0 {
			return Slot{}, 0, false
		}
		cross := g.down[crossIdx]
		return cross, r - cross.Row, true
	}
	crossIdx = g.cellAcross[g.idx(r, c)]
	if crossIdx < 0 {
		return Slot{}, 0, false
	}
	cross := g.across[crossIdx]
	return cross, c - cross.Col, true
}

// Place writes word into s's cells. Every affected cell must be
// either Empty or already hold the letter the word places there;
// otherwise Place returns ErrConflict and leaves the grid unchanged.
// On success it returns a snapshot of the cells' prior contents,
// suitable for Unplace.
func (g *Grid) Place(s Slot, word string) ([]Cell, error) {
	if len(word) != s.Length {
		return nil, fmt.Errorf("grid: word %q has length %d, slot wants %d", word, len(word), s.Length)
	}
	before := make([]Cell, s.Length)
	for i := 0; i < s.Length; i++ {
		r, c := s.CellAt(i)
		cell := g.At(r, c)
		before[i] = cell
		if l, ok := cell.Letter(); ok && l != word[i] {
			return nil, fmt.Errorf("%w: slot %s(%d,%d) cell %d holds %q, word wants %q", ErrConflict, s.Dir, s.Row, s.Col, i, l, word[i])
		}
	}
	for i := 0; i < s.Length; i++ {
		r, c := s.CellAt(i)
		g.cells[g.idx(r, c)] = LetterCell(word[i])
	}
	return before, nil
}

// Unplace restores s's cells to the state captured by before, undoing
// a prior Place exactly.
func (g *Grid) Unplace(s Slot, before []Cell) {
	for i := 0; i < s.Length && i < len(before); i++ {
		r, c := s.CellAt(i)
		g.cells[g.idx(r, c)] = before[i]
	}
}

// Clone returns a deep copy of the grid's cell contents; the block
// layout (and therefore the slot structure) is immutable and shared.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		n:          g.n,
		cells:      make([]Cell, len(g.cells)),
		across:     g.across,
		down:       g.down,
		cellAcross: g.cellAcross,
		cellDown:   g.cellDown,
	}
	copy(clone.cells, g.cells)
	return clone
}

// Repr renders the grid as N newline-joined rows, one character per
// cell ('.' Empty, '#' Block, the letter otherwise).
func (g *Grid) Repr() string {
	rows := make([]string, g.n)
	for r := 0; r < g.n; r++ {
		var b strings.Builder
		for c := 0; c < g.n; c++ {
			b.WriteString(g.At(r, c).String())
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}
