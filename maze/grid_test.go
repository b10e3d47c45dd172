package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr bool
	}{
		{name: "single cell", width: 1, height: 1},
		{name: "wide", width: 32, height: 24},
		{name: "zero width", width: 0, height: 3, wantErr: true},
		{name: "zero height", width: 3, height: 0, wantErr: true},
		{name: "negative", width: -2, height: 4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := New(tt.width, tt.height)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				assert.Nil(t, grid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width*tt.height, grid.Len())
			assert.Equal(t, tt.width, grid.Width())
			assert.Equal(t, tt.height, grid.Height())
		})
	}
}

func TestGrid_RowMajorLayout(t *testing.T) {
	grid, err := New(4, 3)
	require.NoError(t, err)

	for i, cell := range grid.Cells() {
		assert.Equal(t, Vector{X: i % 4, Y: i / 4}, cell.Position)
		assert.False(t, cell.Connected())

		idx, ok := grid.Index(cell.Position)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestGrid_Cell(t *testing.T) {
	grid, err := New(3, 2)
	require.NoError(t, err)

	cell, ok := grid.Cell(Vector{X: 2, Y: 1})
	assert.True(t, ok)
	assert.Equal(t, Vector{X: 2, Y: 1}, cell.Position)

	for _, pos := range []Vector{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}} {
		_, ok := grid.Cell(pos)
		assert.False(t, ok, "position %v should be absent", pos)
	}
}

func TestGrid_RandomCell(t *testing.T) {
	grid, err := New(3, 2)
	require.NoError(t, err)

	assert.Equal(t, Vector{X: 0, Y: 0}, grid.RandomCell(constSource(0)).Position)
	assert.Equal(t, Vector{X: 1, Y: 1}, grid.RandomCell(constSource(4)).Position)
	assert.Equal(t, Vector{X: 2, Y: 1}, grid.RandomCell(constSource(100)).Position)
}

func TestGrid_CellsIsACopy(t *testing.T) {
	grid, err := New(2, 2)
	require.NoError(t, err)

	cells := grid.Cells()
	cells[0].Direction = East
	assert.False(t, grid.CellAt(0).Connected())
}

func TestGrid_IsOpenAndString(t *testing.T) {
	grid, err := New(2, 1)
	require.NoError(t, err)

	assert.False(t, grid.IsOpen(Vector{0, 0}, Vector{1, 0}))
	assert.Equal(t, "+---+---+\n|   |   |\n+---+---+\n", grid.String())

	gen, err := NewGenerator(grid, constSource(0))
	require.NoError(t, err)
	drain(t, gen)

	assert.True(t, grid.IsOpen(Vector{0, 0}, Vector{1, 0}))
	assert.True(t, grid.IsOpen(Vector{1, 0}, Vector{0, 0}))
	assert.False(t, grid.IsOpen(Vector{0, 0}, Vector{0, 0}))
	assert.False(t, grid.IsOpen(Vector{1, 0}, Vector{2, 0}))
	assert.Equal(t, "+---+---+\n|       |\n+---+---+\n", grid.String())
}

func TestVector(t *testing.T) {
	a := Vector{X: 3, Y: -2}
	b := Vector{X: 1, Y: 4}

	assert.Equal(t, Vector{X: 4, Y: 2}, a.Add(b))
	assert.Equal(t, Vector{X: 2, Y: -6}, a.Sub(b))
	assert.Equal(t, 8, a.Manhattan(b))
	assert.True(t, Vector{}.IsZero())
	assert.False(t, North.IsZero())
	assert.Equal(t, Vector{}, East.Add(West))
	assert.Equal(t, Vector{}, North.Add(South))
}
