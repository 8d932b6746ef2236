package grid

import "strings"

// AtomKind distinguishes a fixed letter position from a wildcard.
type AtomKind uint8

const (
	Wildcard AtomKind = iota
	Fixed
)

// Atom is one position of a Pattern: either Wildcard or Fixed(letter).
type Atom struct {
	Kind   AtomKind
	Letter byte
}

// Pattern describes what a slot currently requires, position by
// position, for dictionary pattern queries.
type Pattern []Atom

// FixedAtom builds a Fixed atom for the given lowercase letter.
func FixedAtom(l byte) Atom { return Atom{Kind: Fixed, Letter: l} }

// WildcardAtom is the Wildcard atom singleton value.
var WildcardAtom = Atom{Kind: Wildcard}

// WildcardCount returns how many positions are still undetermined.
func (p Pattern) WildcardCount() int {
	n := 0
	for _, a := range p {
		if a.Kind == Wildcard {
			n++
		}
	}
	return n
}

// IsFull reports whether every position is Fixed.
func (p Pattern) IsFull() bool { return p.WildcardCount() == 0 }

// AsWord returns the word a fully-Fixed pattern spells. It panics if
// the pattern still has a Wildcard; callers must check IsFull first.
func (p Pattern) AsWord() string {
	b := make([]byte, len(p))
	for i, a := range p {
		if a.Kind != Fixed {
			panic("grid: Pattern.AsWord called on a pattern with a Wildcard")
		}
		b[i] = a.Letter
	}
	return string(b)
}

// Matches reports whether word agrees with p on every Fixed position.
// A word whose length differs from the pattern's never matches.
func (p Pattern) Matches(word string) bool {
	if len(word) != len(p) {
		return false
	}
	for i, a := range p {
		if a.Kind == Fixed && word[i] != a.Letter {
			return false
		}
	}
	return true
}

func (p Pattern) String() string {
	var b strings.Builder
	for _, a := range p {
		if a.Kind == Wildcard {
			b.WriteByte('?')
		} else {
			b.WriteByte(a.Letter)
		}
	}
	return b.String()
}
