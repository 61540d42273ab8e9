package engine

import "unicode/utf8"

// Score returns the points a word is worth
func Score(word string) int {
	n := utf8.RuneCountInString(word)
	switch {
	case n < MinWordLength:
		return 0
	case n <= 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	default:
		return 11
	}
}

// TotalScore sums the points of words
func TotalScore(words []string) int {
	total := 0
	for _, w := range words {
		total += Score(w)
	}
	return total
}
