package search

import "github.com/tamberg/xwgen/pkg/grid"

// englishLetterFrequency is the standard relative-frequency table
// (percent occurrence in English text) used to score how
// "informative" placing a given letter is.
var englishLetterFrequency = map[byte]float64{
	'a': 8.2, 'b': 1.5, 'c': 2.8, 'd': 4.3, 'e': 12.7, 'f': 2.2,
	'g': 2.0, 'h': 6.1, 'i': 7.0, 'j': 0.15, 'k': 0.77, 'l': 4.0,
	'm': 2.4, 'n': 6.7, 'o': 7.5, 'p': 1.9, 'q': 0.095, 'r': 6.0,
	's': 6.3, 't': 9.1, 'u': 2.8, 'v': 0.98, 'w': 2.4, 'x': 0.15,
	'y': 2.0, 'z': 0.074,
}

// letterScore sums the letter-frequency weight of word over every
// position that was Wildcard in pattern, so placements that fix more
// high-frequency crossing letters are tried first.
func letterScore(word string, pattern grid.Pattern) float64 {
	var total float64
	for i, atom := range pattern {
		if atom.Kind == grid.Wildcard {
			total += englishLetterFrequency[word[i]]
		}
	}
	return total
}
