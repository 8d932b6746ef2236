// Package numbering assigns standard crossword clue numbers to a
// solved grid and extracts its across/down word entries.
package numbering

import (
	"sort"

	"github.com/tamberg/xwgen/pkg/grid"
)

// Entry is one numbered across or down word: its clue number, length,
// starting coordinate, and the word itself.
type Entry struct {
	Number int
	Length int
	Row    int
	Col    int
	Word   string
}

// Entries groups a puzzle's numbered entries by direction, each
// sorted ascending by number.
type Entries struct {
	Across []Entry
	Down   []Entry
}

// Number scans g in row-major order and assigns the next sequential
// integer, starting at 1, to every cell that begins at least one slot
// (an Across slot, a Down slot, or both). It returns the per-cell
// numbering grid (nil where no number applies) and the extracted
// entries, reading words from assignment.
func Number(g *grid.Grid, assignment map[grid.Slot]string) ([][]*int, Entries) {
	n := g.N()

	type starts struct {
		across, down *grid.Slot
	}
	startAt := make(map[[2]int]*starts)

	for _, s := range g.Slots() {
		key := [2]int{s.Row, s.Col}
		st, ok := startAt[key]
		if !ok {
			st = &starts{}
			startAt[key] = st
		}
		sc := s
		if s.Dir == grid.Across {
			st.across = &sc
		} else {
			st.down = &sc
		}
	}

	numbering := make([][]*int, n)
	for r := range numbering {
		numbering[r] = make([]*int, n)
	}

	var entries Entries
	next := 1
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			st, ok := startAt[[2]int{r, c}]
			if !ok {
				continue
			}
			num := next
			next++
			numbering[r][c] = &num

			if st.across != nil {
				entries.Across = append(entries.Across, Entry{
					Number: num,
					Length: st.across.Length,
					Row:    r,
					Col:    c,
					Word:   assignment[*st.across],
				})
			}
			if st.down != nil {
				entries.Down = append(entries.Down, Entry{
					Number: num,
					Length: st.down.Length,
					Row:    r,
					Col:    c,
					Word:   assignment[*st.down],
				})
			}
		}
	}

	sort.Slice(entries.Across, func(i, j int) bool { return entries.Across[i].Number < entries.Across[j].Number })
	sort.Slice(entries.Down, func(i, j int) bool { return entries.Down[i].Number < entries.Down[j].Number })

	return numbering, entries
}
