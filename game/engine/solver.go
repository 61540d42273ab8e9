package engine

import (
	"maps"
	"slices"

	"github.com/wricardo/wordgrid-game/game/grid"
)

// Dictionary is the part of the word store the search needs. IsPrefix is
// called with raw grid letters on every step and must not allocate more
// than it has to.
type Dictionary interface {
	IsPrefix(text string) bool
	ContainsWord(word string) bool
}

// Solver searches one grid against one dictionary. Both are read only, so a
// Solver may be shared; every call allocates its own search state.
type Solver struct {
	grid *grid.Grid
	dict Dictionary
}

// NewSolver creates a solver for g backed by dict
func NewSolver(g *grid.Grid, dict Dictionary) *Solver {
	return &Solver{grid: g, dict: dict}
}

// Grid returns the searched grid
func (s *Solver) Grid() *grid.Grid {
	return s.grid
}

// Contains reports whether word can be traced on the grid through adjacent,
// distinct cells. Only letter equality is checked; the dictionary is not
// consulted. The empty word is always contained.
func (s *Solver) Contains(word string) bool {
	_, ok := s.Trace(word)
	return ok
}

// Trace returns the first path spelling word, trying start cells in
// row-major order.
func (s *Solver) Trace(word string) ([]grid.Cell, bool) {
	target := []rune(word)
	if len(target) == 0 {
		return []grid.Cell{}, true
	}
	if len(target) > s.grid.VertexCount() {
		return nil, false
	}

	visited := make([]bool, s.grid.VertexCount())
	path := make([]int, 0, len(target))
	for start := 0; start < s.grid.VertexCount(); start++ {
		if s.match(start, target, visited, &path) {
			cells := make([]grid.Cell, len(path))
			for i, idx := range path {
				cells[i] = s.grid.CellAt(idx)
			}
			return cells, true
		}
	}
	return nil, false
}

// match reports whether rest can be spelled starting at cell i. On success
// path ends with the matched cells; visited is always restored.
func (s *Solver) match(i int, rest []rune, visited []bool, path *[]int) bool {
	if visited[i] || s.grid.LetterAt(i) != rest[0] {
		return false
	}

	*path = append(*path, i)
	if len(rest) == 1 {
		return true
	}

	visited[i] = true
	found := false
	for _, n := range s.grid.NeighborsAt(i) {
		if s.match(n, rest[1:], visited, path) {
			found = true
			break
		}
	}
	visited[i] = false

	if !found {
		*path = (*path)[:len(*path)-1]
	}
	return found
}

// Solve returns every dictionary word of at least MinWordLength letters
// that can be traced on the grid. A word reachable by several paths appears
// once.
func (s *Solver) Solve() map[string]struct{} {
	found := make(map[string]struct{})
	visited := make([]bool, s.grid.VertexCount())
	buf := make([]rune, 0, s.grid.VertexCount())

	for start := 0; start < s.grid.VertexCount(); start++ {
		s.search(start, visited, buf, found)
	}
	return found
}

// SolveSorted returns the result of Solve in byte order
func (s *Solver) SolveSorted() []string {
	return slices.Sorted(maps.Keys(s.Solve()))
}

// search extends buf with the letter at cell i and explores its unvisited
// neighbours while the dictionary still knows the candidate as a prefix.
// buf is passed by value; its backing array is shared down the recursion
// and each depth only writes its own slot.
func (s *Solver) search(i int, visited []bool, buf []rune, found map[string]struct{}) {
	visited[i] = true
	buf = append(buf, s.grid.LetterAt(i))
	candidate := string(buf)

	if s.dict.IsPrefix(candidate) {
		if len(buf) >= MinWordLength && s.dict.ContainsWord(candidate) {
			found[candidate] = struct{}{}
		}
		for _, n := range s.grid.NeighborsAt(i) {
			if !visited[n] {
				s.search(n, visited, buf, found)
			}
		}
	}

	visited[i] = false
}
