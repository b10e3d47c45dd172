/*
Package maze provides tools for carving perfect mazes over rectangular grids.

A Grid owns one Cell per position, laid out row-major. A Generator walks the
grid with a randomized depth-first traversal and backtracking, producing the
newly carved cells one at a time through Next. Every produced cell records the
direction of the neighbour it was carved from, so the produced cells together
describe a spanning tree whose edges are the maze's passages.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidConfiguration = errors.New("invalid maze configuration")
)

// Grid is a rectangular, fixed-size collection of cells.
type Grid struct {
	width  int
	height int
	cells  []Cell // Row-major: index = y*width + x
}

// New creates a grid of the given dimensions. Both dimensions must be positive.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfiguration, width, height)
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Position: Vector{X: i % width, Y: i / width}}
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index returns the row-major index of pos, or false if pos lies outside the grid.
func (g *Grid) Index(pos Vector) (int, bool) {
	if pos.X < 0 || pos.X >= g.width || pos.Y < 0 || pos.Y >= g.height {
		return 0, false
	}
	return pos.Y*g.width + pos.X, true
}

// Cell returns the cell at pos. The boolean is false when pos is out of bounds.
func (g *Grid) Cell(pos Vector) (Cell, bool) {
	idx, ok := g.Index(pos)
	if !ok {
		return Cell{}, false
	}
	return g.cells[idx], true
}

// CellAt returns the cell stored at a row-major index.
func (g *Grid) CellAt(index int) Cell {
	return g.cells[index]
}

// RandomCell returns a uniformly chosen cell.
func (g *Grid) RandomCell(src Source) Cell {
	return g.cells[g.randomIndex(src)]
}

func (g *Grid) randomIndex(src Source) int {
	return src.Intn(len(g.cells))
}

// Cells returns a copy of every cell in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// IsOpen reports whether a passage joins the adjacent positions a and b.
func (g *Grid) IsOpen(a, b Vector) bool {
	if a.Manhattan(b) != 1 {
		return false
	}
	ca, okA := g.Cell(a)
	cb, okB := g.Cell(b)
	if !okA || !okB {
		return false
	}
	return (ca.Connected() && ca.Parent() == b) || (cb.Connected() && cb.Parent() == a)
}

// connect points the cell at index toward parent.
func (g *Grid) connect(index int, parent Vector) Cell {
	g.cells[index].Direction = parent.Sub(g.cells[index].Position)
	return g.cells[index]
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", g.width) + "\n")

	for y := 0; y < g.height; y++ {
		cellRow := "|"
		wallRow := "+"
		for x := 0; x < g.width; x++ {
			pos := Vector{X: x, Y: y}

			if g.IsOpen(pos, pos.Add(East)) {
				cellRow += "    "
			} else {
				cellRow += "   |"
			}

			if g.IsOpen(pos, pos.Add(South)) {
				wallRow += "   +"
			} else {
				wallRow += "---+"
			}
		}
		b.WriteString(cellRow + "\n")
		b.WriteString(wallRow + "\n")
	}

	return b.String()
}
