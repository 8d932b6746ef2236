package dictionary

import "github.com/tamberg/xwgen/pkg/grid"

// trieNode is one node of a per-length trie. Children are indexed by
// letter (0 = 'a' .. 25 = 'z'); a nil child means no word continues
// down that branch.
type trieNode struct {
	children [26]*trieNode
	terminal bool
}

func newTrieNode() *trieNode { return &trieNode{} }

func (n *trieNode) insert(word string) {
	cur := n
	for i := 0; i < len(word); i++ {
		ci := word[i] - 'a'
		if cur.children[ci] == nil {
			cur.children[ci] = newTrieNode()
		}
		cur = cur.children[ci]
	}
	cur.terminal = true
}

func (n *trieNode) contains(word string) bool {
	cur := n
	for i := 0; i < len(word); i++ {
		ci := word[i] - 'a'
		cur = cur.children[ci]
		if cur == nil {
			return false
		}
	}
	return cur.terminal
}

// walk performs the depth-first, prefix-pruned descent described in
// the dictionary index's pattern-match contract: at depth i, a Fixed
// atom descends only its one matching child, a Wildcard descends
// every existing child. yield is called with each complete word found
// at the pattern's length; it returns false to stop early.
func (n *trieNode) walk(pattern grid.Pattern, depth int, buf []byte, yield func(string) bool) bool {
	if depth == len(pattern) {
		if n.terminal {
			return yield(string(buf))
		}
		return true
	}

	atom := pattern[depth]
	if atom.Kind == grid.Fixed {
		ci := atom.Letter - 'a'
		child := n.children[ci]
		if child == nil {
			return true
		}
		buf[depth] = atom.Letter
		return child.walk(pattern, depth+1, buf, yield)
	}

	for ci, child := range n.children {
		if child == nil {
			continue
		}
		buf[depth] = byte('a' + ci)
		if !child.walk(pattern, depth+1, buf, yield) {
			return false
		}
	}
	return true
}

// countMatching mirrors walk but only counts, never materializing a
// result string; it still short-circuits on exhausted branches so it
// costs O(size of the pruned search), per the index's contract.
func (n *trieNode) countMatching(pattern grid.Pattern, depth int) int {
	if depth == len(pattern) {
		if n.terminal {
			return 1
		}
		return 0
	}

	atom := pattern[depth]
	if atom.Kind == grid.Fixed {
		child := n.children[atom.Letter-'a']
		if child == nil {
			return 0
		}
		return child.countMatching(pattern, depth+1)
	}

	total := 0
	for _, child := range n.children {
		if child == nil {
			continue
		}
		total += child.countMatching(pattern, depth+1)
	}
	return total
}
