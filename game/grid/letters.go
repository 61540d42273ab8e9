package grid

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// LetterSource produces grid letters one at a time
type LetterSource interface {
	Letter() rune
}

// LetterFunc adapts a function to LetterSource
type LetterFunc func() rune

// Letter calls f
func (f LetterFunc) Letter() rune {
	return f()
}

type seededSource struct {
	rng *rand.Rand
}

// RandomLetters returns a source of uniformly random lowercase letters.
// Equal seeds produce equal sequences.
func RandomLetters(seed uint64) LetterSource {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Letter() rune {
	return rune(alphabet[s.rng.IntN(len(alphabet))])
}

type defaultSource struct{}

func (defaultSource) Letter() rune {
	return rune(alphabet[rand.IntN(len(alphabet))])
}

// Generate draws n letters from src
func Generate(n int, src LetterSource) string {
	if src == nil {
		src = defaultSource{}
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteRune(src.Letter())
	}
	return sb.String()
}
