package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidSize     = fmt.Errorf("%w: grid size must be at least 1", ErrInvalidArgument)
	ErrTooFewLetters   = fmt.Errorf("%w: not enough letters to fill the grid", ErrInvalidArgument)
)

// Cell identifies a grid position
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// offsets lists neighbour directions in row-major order: NW, N, NE, W, E, SW, S, SE
var offsets = []struct{ dr, dc int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is an immutable square arrangement of letters
type Grid struct {
	size      int
	letters   []rune
	neighbors [][]int
}

// New creates a size x size grid from the first size*size letters. Extra
// letters are ignored.
func New(size int, letters string) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSize, size)
	}

	runes := []rune(letters)
	cells, ok := cellCount(size)
	if !ok {
		return nil, fmt.Errorf("%w: need %d squared, got %d", ErrTooFewLetters, size, len(runes))
	}
	if len(runes) < cells {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrTooFewLetters, cells, len(runes))
	}

	g := &Grid{
		size:    size,
		letters: runes[:cells:cells],
	}
	g.neighbors = buildAdjacency(size)
	return g, nil
}

// NewRandom creates a size x size grid filled from src. A nil src uses
// unseeded random lowercase letters.
func NewRandom(size int, src LetterSource) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSize, size)
	}
	cells, ok := cellCount(size)
	if !ok {
		return nil, fmt.Errorf("%w, %d squared overflows", ErrInvalidSize, size)
	}
	if src == nil {
		src = defaultSource{}
	}
	return New(size, Generate(cells, src))
}

// cellCount returns size*size, or false when it does not fit in an int
func cellCount(size int) (int, bool) {
	if size > math.MaxInt/size {
		return 0, false
	}
	return size * size, true
}

func buildAdjacency(size int) [][]int {
	adj := make([][]int, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			idx := row*size + col
			list := make([]int, 0, len(offsets))
			for _, o := range offsets {
				r, c := row+o.dr, col+o.dc
				if r >= 0 && r < size && c >= 0 && c < size {
					list = append(list, r*size+c)
				}
			}
			adj[idx] = list
		}
	}
	return adj
}

// Size returns the number of rows (and columns)
func (g *Grid) Size() int {
	return g.size
}

// VertexCount returns the number of cells
func (g *Grid) VertexCount() int {
	return len(g.letters)
}

// InBounds reports whether c is a cell of the grid
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Index returns the row-major index of c
func (g *Grid) Index(c Cell) int {
	return c.Row*g.size + c.Col
}

// CellAt returns the cell at row-major index i
func (g *Grid) CellAt(i int) Cell {
	return Cell{Row: i / g.size, Col: i % g.size}
}

// Letter returns the letter at c. It panics if c is out of bounds.
func (g *Grid) Letter(c Cell) rune {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: cell (%d,%d) out of bounds for size %d", c.Row, c.Col, g.size))
	}
	return g.letters[g.Index(c)]
}

// LetterAt returns the letter at row-major index i
func (g *Grid) LetterAt(i int) rune {
	return g.letters[i]
}

// Neighbors returns the cells adjacent to c in row-major order
func (g *Grid) Neighbors(c Cell) []Cell {
	if !g.InBounds(c) {
		return nil
	}
	idx := g.neighbors[g.Index(c)]
	cells := make([]Cell, len(idx))
	for i, n := range idx {
		cells[i] = g.CellAt(n)
	}
	return cells
}

// NeighborsAt returns the row-major indexes adjacent to index i. The slice
// is shared and must not be modified.
func (g *Grid) NeighborsAt(i int) []int {
	return g.neighbors[i]
}

// Cells returns every cell in row-major order
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, len(g.letters))
	for i := range cells {
		cells[i] = g.CellAt(i)
	}
	return cells
}

// Letters returns the letters in row-major order
func (g *Grid) Letters() string {
	return string(g.letters)
}

// Rows returns one string per row
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	for r := 0; r < g.size; r++ {
		rows[r] = string(g.letters[r*g.size : (r+1)*g.size])
	}
	return rows
}

// String renders the grid with a bar around every letter, one row per line:
//
//	|r|h|r|e|
//	|y|p|c|s|
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Rows() {
		sb.WriteByte('|')
		for _, r := range row {
			sb.WriteRune(r)
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
