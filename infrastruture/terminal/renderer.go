// Package terminal animates maze carving in an ANSI terminal.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/gookit/color"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// blockWidth is the number of terminal columns one canvas block takes.
	blockWidth = 2
)

var (
	ErrNoGrid = errors.New("DrawGrid must be called before DrawCell")
)

// Renderer paints a maze onto a block canvas of (2w+1)x(2h+1) blocks: cell
// (x, y) sits on block (2x+1, 2y+1) and the passage to its parent on the block
// between them. Everything else is wall.
type Renderer struct {
	out     io.Writer
	canvas  [][]bool // canvas[row][col] is true when open
	wall    color.Style
	passage color.Style
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		wall:    color.Style{color.BgWhite},
		passage: color.Style{color.BgBlack},
	}
}

// DrawGrid clears the screen and paints every cell as an isolated chamber.
func (r *Renderer) DrawGrid(g *maze.Grid) error {
	rows, cols := 2*g.Height()+1, 2*g.Width()+1
	r.canvas = make([][]bool, rows)
	for y := range r.canvas {
		r.canvas[y] = make([]bool, cols)
	}
	for _, cell := range g.Cells() {
		r.canvas[2*cell.Position.Y+1][2*cell.Position.X+1] = true
	}

	var b strings.Builder
	b.WriteString("\033[2J\033[H\033[?25l")
	for y, row := range r.canvas {
		b.WriteString(moveTo(y, 0))
		for _, open := range row {
			b.WriteString(r.block(open))
		}
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// DrawCell opens the wall between cell and its parent.
func (r *Renderer) DrawCell(cell maze.Cell) error {
	if r.canvas == nil {
		return ErrNoGrid
	}
	if !cell.Connected() {
		return nil
	}

	parent := cell.Parent()
	row := cell.Position.Y + parent.Y + 1
	col := cell.Position.X + parent.X + 1
	if row < 0 || row >= len(r.canvas) || col < 0 || col >= len(r.canvas[row]) {
		return fmt.Errorf("cell %v outside canvas", cell.Position)
	}
	r.canvas[row][col] = true

	_, err := io.WriteString(r.out, moveTo(row, col)+r.block(true))
	return err
}

// Close shows the cursor again and moves it below the maze.
func (r *Renderer) Close() error {
	_, err := io.WriteString(r.out, moveTo(len(r.canvas), 0)+"\033[?25h\n")
	return err
}

// String returns the canvas as text, '#' for walls and ' ' for passages.
func (r *Renderer) String() string {
	var b strings.Builder
	for _, row := range r.canvas {
		for _, open := range row {
			if open {
				b.WriteByte(' ')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) block(open bool) string {
	if open {
		return r.passage.Sprint(strings.Repeat(" ", blockWidth))
	}
	return r.wall.Sprint(strings.Repeat(" ", blockWidth))
}

// moveTo positions the cursor on a canvas block; ANSI coordinates are 1-based.
func moveTo(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row+1, col*blockWidth+1)
}

// Size returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func Size() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// FitGrid returns the largest maze dimensions whose canvas fits in a terminal
// of cols x rows characters, keeping one row free for the prompt.
func FitGrid(cols, rows int) (width, height int) {
	width = (cols/blockWidth - 1) / 2
	height = (rows - 2) / 2
	return max(width, 1), max(height, 1)
}
