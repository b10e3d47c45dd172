package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firstSource struct{}

func (firstSource) Intn(int) int { return 0 }

func TestRenderer_DrawsPassages(t *testing.T) {
	grid, err := maze.New(2, 1)
	require.NoError(t, err)
	gen, err := maze.NewGenerator(grid, firstSource{})
	require.NoError(t, err)

	var buf bytes.Buffer
	r := NewRenderer(&buf)

	require.NoError(t, r.DrawGrid(grid))
	assert.Equal(t, "#####\n# # #\n#####\n", r.String())
	assert.Contains(t, buf.String(), "\033[?25l")

	cell, ok := gen.Next()
	require.True(t, ok)
	require.NoError(t, r.DrawCell(cell))
	assert.Equal(t, "#####\n#   #\n#####\n", r.String())
	assert.Contains(t, buf.String(), "\033[2;5H")

	require.NoError(t, r.Close())
	assert.True(t, strings.HasSuffix(buf.String(), "\033[4;1H\033[?25h\n"))
}

func TestRenderer_FullMazeIsPerfect(t *testing.T) {
	grid, carved, err := maze.Generate(7, 5, maze.NewSource(17))
	require.NoError(t, err)

	r := NewRenderer(&bytes.Buffer{})
	require.NoError(t, r.DrawGrid(grid))
	for _, cell := range carved {
		require.NoError(t, r.DrawCell(cell))
	}

	// A w*h perfect maze opens w*h chambers and w*h-1 connectors.
	open := strings.Count(r.String(), " ")
	assert.Equal(t, 2*grid.Len()-1, open)
}

func TestRenderer_Errors(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	err := r.DrawCell(maze.Cell{Position: maze.Vector{X: 1}, Direction: maze.West})
	assert.ErrorIs(t, err, ErrNoGrid)

	grid, err := maze.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, r.DrawGrid(grid))

	before := r.String()
	require.NoError(t, r.DrawCell(grid.CellAt(0)))
	assert.Equal(t, before, r.String(), "an unconnected cell draws nothing")

	err = r.DrawCell(maze.Cell{Position: maze.Vector{X: 5, Y: 5}, Direction: maze.East})
	assert.Error(t, err)
}

func TestFitGrid(t *testing.T) {
	tests := []struct {
		cols, rows    int
		width, height int
	}{
		{cols: 80, rows: 24, width: 19, height: 11},
		{cols: 200, rows: 60, width: 49, height: 29},
		{cols: 3, rows: 2, width: 1, height: 1},
	}

	for _, tt := range tests {
		w, h := FitGrid(tt.cols, tt.rows)
		assert.Equal(t, tt.width, w, "width for %dx%d", tt.cols, tt.rows)
		assert.Equal(t, tt.height, h, "height for %dx%d", tt.cols, tt.rows)
	}
}
