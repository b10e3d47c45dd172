package maze

import (
	"fmt"
	"iter"

	"github.com/zyedidia/generic/mapset"
)

// Generator carves a perfect maze with a randomized depth-first traversal.
//
// The starting cell is chosen at random, marked visited and left with a zero
// direction, which makes it the root of the spanning tree. Each call to Next
// carves exactly one new cell; dead ends are resolved by backtracking inside
// the same call.
type Generator struct {
	grid    *Grid
	src     Source
	start   int
	current int
	visited mapset.Set[int]
	stack   []int
	done    bool
}

// NewGenerator binds a generator to grid, drawing all random choices from src.
func NewGenerator(grid *Grid, src Source) (*Generator, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidConfiguration)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfiguration)
	}

	start := grid.randomIndex(src)
	visited := mapset.New[int]()
	visited.Put(start)

	return &Generator{
		grid:    grid,
		src:     src,
		start:   start,
		current: start,
		visited: visited,
	}, nil
}

// Next carves the next cell and returns it. Once every cell has been visited it
// returns false, and keeps doing so on every later call.
func (g *Generator) Next() (Cell, bool) {
	for !g.done && g.visited.Size() < g.grid.Len() {
		if next, ok := g.pickNeighbour(); ok {
			cell := g.grid.connect(next, g.grid.cells[g.current].Position)
			g.visited.Put(next)
			g.stack = append(g.stack, g.current)
			g.current = next
			return cell, true
		}

		if len(g.stack) == 0 {
			break
		}
		g.current = pop(&g.stack)
	}

	g.done = true
	return Cell{}, false
}

// pickNeighbour chooses a random unvisited in-grid neighbour of the current cell.
func (g *Generator) pickNeighbour() (int, bool) {
	var candidates [len(neighbourOffsets)]int
	n := 0

	pos := g.grid.cells[g.current].Position
	for _, offset := range neighbourOffsets {
		idx, ok := g.grid.Index(pos.Add(offset))
		if !ok || g.visited.Has(idx) {
			continue
		}
		candidates[n] = idx
		n++
	}

	if n == 0 {
		return 0, false
	}
	return candidates[g.src.Intn(n)], true
}

// All returns an iterator over the remaining carved cells.
func (g *Generator) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for {
			cell, ok := g.Next()
			if !ok || !yield(cell) {
				return
			}
		}
	}
}

// Start returns the root cell of the traversal.
func (g *Generator) Start() Cell {
	return g.grid.cells[g.start]
}

// Current returns the cell the traversal is positioned on.
func (g *Generator) Current() Cell {
	return g.grid.cells[g.current]
}

// Visited returns the number of cells reached so far, the start included.
func (g *Generator) Visited() int {
	return g.visited.Size()
}

// Done reports whether the traversal has finished.
func (g *Generator) Done() bool {
	return g.done
}

// Generate builds a grid and carves it completely, returning the carved cells
// in production order.
func Generate(width, height int, src Source) (*Grid, []Cell, error) {
	grid, err := New(width, height)
	if err != nil {
		return nil, nil, err
	}

	gen, err := NewGenerator(grid, src)
	if err != nil {
		return nil, nil, err
	}

	carved := make([]Cell, 0, grid.Len()-1)
	for cell := range gen.All() {
		carved = append(carved, cell)
	}
	return grid, carved, nil
}

// pop removes and returns the last element of a stack of cell indices.
func pop(s *[]int) int {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
