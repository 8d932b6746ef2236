// Package dictionary indexes an admissible word set by length, one
// trie per length bucket, to answer exact-membership and
// wildcard-pattern queries without ever scanning the full word list.
package dictionary

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/tamberg/xwgen/pkg/grid"
)

// ErrMalformedWord is returned by Build in strict mode when a
// candidate word contains non-alphabetic characters.
var ErrMalformedWord = errors.New("dictionary: malformed word")

// BuildOptions configures how Build normalizes and filters its input.
type BuildOptions struct {
	// Strict rejects a malformed candidate with ErrMalformedWord
	// instead of silently skipping it.
	Strict bool

	// MinWordLength and MaxWordLength bound which lengths are indexed
	// at all; words outside the range are dropped. Zero means
	// unbounded on that side.
	MinWordLength int
	MaxWordLength int

	// ExcludedWords are dropped at build time regardless of length, so
	// queries never have to re-check an exclusion list.
	ExcludedWords []string
}

// Index is an immutable, length-bucketed trie forest plus an exact
// membership set. It is safe for concurrent read-only use once Build
// returns.
type Index struct {
	words     map[string]struct{}
	byLength  map[int]*trieNode
	countByLn map[int]int
}

// Build normalizes words (trim, lowercase), rejects or skips anything
// non-alphabetic per opts.Strict, deduplicates, and indexes the
// survivors by length.
func Build(words []string, opts BuildOptions) (*Index, error) {
	excluded := make(map[string]struct{}, len(opts.ExcludedWords))
	for _, w := range opts.ExcludedWords {
		excluded[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}

	ix := &Index{
		words:     make(map[string]struct{}),
		byLength:  make(map[int]*trieNode),
		countByLn: make(map[int]int),
	}

	for _, raw := range words {
		w := strings.ToLower(strings.TrimSpace(raw))
		if w == "" {
			continue
		}
		if !isAlpha(w) {
			if opts.Strict {
				return nil, fmt.Errorf("%w: %q", ErrMalformedWord, raw)
			}
			continue
		}
		if opts.MinWordLength > 0 && len(w) < opts.MinWordLength {
			continue
		}
		if opts.MaxWordLength > 0 && len(w) > opts.MaxWordLength {
			continue
		}
		if _, skip := excluded[w]; skip {
			continue
		}
		if _, dup := ix.words[w]; dup {
			continue
		}

		ix.words[w] = struct{}{}
		root, ok := ix.byLength[len(w)]
		if !ok {
			root = newTrieNode()
			ix.byLength[len(w)] = root
		}
		root.insert(w)
		ix.countByLn[len(w)]++
	}

	return ix, nil
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// Contains reports exact membership in O(|word|).
func (ix *Index) Contains(word string) bool {
	w := strings.ToLower(word)
	root, ok := ix.byLength[len(w)]
	if !ok {
		return false
	}
	return root.contains(w)
}

// CountByLength returns how many admissible words of exactly that
// length the index holds.
func (ix *Index) CountByLength(length int) int { return ix.countByLn[length] }

// Len returns the total number of distinct admissible words.
func (ix *Index) Len() int { return len(ix.words) }

// Matching enumerates, in lexicographic order, every word of exactly
// length whose letters agree with pattern. A pattern whose length
// does not equal length is a programming error, not a dictionary
// miss, and panics.
func (ix *Index) Matching(length int, pattern grid.Pattern) iter.Seq[string] {
	if len(pattern) != length {
		panic(fmt.Sprintf("dictionary: pattern length %d does not match requested length %d", len(pattern), length))
	}
	return func(yield func(string) bool) {
		if length == 0 {
			return
		}
		root, ok := ix.byLength[length]
		if !ok {
			return
		}
		buf := make([]byte, length)
		root.walk(pattern, 0, buf, yield)
	}
}

// MatchingSorted materializes Matching's results already
// lexicographically ordered (walk already visits children in 'a'..'z'
// order, so this is just a defensive re-sort for callers that mutate
// the slice).
func (ix *Index) MatchingSorted(length int, pattern grid.Pattern) []string {
	var out []string
	for w := range ix.Matching(length, pattern) {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// CountMatching is equivalent to len(slices.Collect(Matching(...)))
// but never materializes the results; it is the fast O(size of the
// pruned search) path the Feasibility Checker relies on.
func (ix *Index) CountMatching(length int, pattern grid.Pattern) int {
	if len(pattern) != length {
		panic(fmt.Sprintf("dictionary: pattern length %d does not match requested length %d", len(pattern), length))
	}
	if length == 0 {
		return 0
	}
	root, ok := ix.byLength[length]
	if !ok {
		return 0
	}
	return root.countMatching(pattern, 0)
}
