package i

import "github.com/beka-birhanu/vinom-maze/maze"

// Renderer draws a maze as it is being carved.
type Renderer interface {
	// DrawGrid draws the initial, uncarved grid. It is called once per run.
	DrawGrid(*maze.Grid) error

	// DrawCell draws the passage between a carved cell and its parent.
	// It is called once per carved cell, in carving order, and must not
	// modify the cell or the grid.
	DrawCell(maze.Cell) error
}
