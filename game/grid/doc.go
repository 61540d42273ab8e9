// Package grid provides the square letter grid that words are searched in.
//
// A Grid of size n holds n*n letters in row-major order. Two cells are
// adjacent when their rows and columns each differ by at most one (king
// moves), so interior cells have eight neighbours and border cells fewer.
// Adjacency is computed once at construction; a Grid never changes after
// that and can be shared between goroutines.
//
// Letters come either from a caller-supplied string or from a LetterSource.
// RandomLetters returns a seeded source for reproducible boards.
package grid
