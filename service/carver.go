package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

const (
	defaultStepDelay = 40 * time.Millisecond
)

var (
	ErrNilRenderer  = errors.New("renderer must not be nil")
	ErrNilLogger    = errors.New("logger must not be nil")
	ErrNilGenerator = errors.New("grid and generator must not be nil")
)

// Options tunes a Carver.
type Options struct {
	// StepDelay is the pause before each carved cell is drawn. Zero draws as
	// fast as the renderer accepts cells.
	StepDelay time.Duration
}

// Carver pulls cells out of a maze generator and hands them to a renderer at a
// steady pace.
type Carver struct {
	renderer i.Renderer
	logger   i.Logger
	opts     *Options
}

// NewCarver creates a Carver. A nil opts uses a 40ms step delay.
func NewCarver(renderer i.Renderer, logger i.Logger, opts *Options) (*Carver, error) {
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	if opts == nil {
		opts = &Options{StepDelay: defaultStepDelay}
	}
	if opts.StepDelay < 0 {
		opts.StepDelay = 0
	}

	return &Carver{
		renderer: renderer,
		logger:   logger,
		opts:     opts,
	}, nil
}

// Run draws grid, then every cell gen carves, until gen is exhausted or ctx is
// cancelled. It returns the number of cells drawn.
func (c *Carver) Run(ctx context.Context, grid *maze.Grid, gen *maze.Generator) (int, error) {
	if grid == nil || gen == nil {
		return 0, ErrNilGenerator
	}

	if err := c.renderer.DrawGrid(grid); err != nil {
		return 0, fmt.Errorf("drawing grid: %w", err)
	}
	c.logger.Info(fmt.Sprintf("Carving %dx%d maze from %v", grid.Width(), grid.Height(), gen.Start().Position))

	var tick <-chan time.Time
	if c.opts.StepDelay > 0 {
		ticker := time.NewTicker(c.opts.StepDelay)
		defer ticker.Stop()
		tick = ticker.C
	}

	drawn := 0
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				c.logger.Warning(fmt.Sprintf("Carving stopped after %d cells: %v", drawn, ctx.Err()))
				return drawn, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			c.logger.Warning(fmt.Sprintf("Carving stopped after %d cells: %v", drawn, err))
			return drawn, err
		}

		cell, ok := gen.Next()
		if !ok {
			c.logger.Info(fmt.Sprintf("Maze complete: %d cells carved", drawn))
			return drawn, nil
		}

		if err := c.renderer.DrawCell(cell); err != nil {
			c.logger.Error(fmt.Sprintf("Drawing cell %v: %s", cell.Position, err))
			return drawn, fmt.Errorf("drawing cell %v: %w", cell.Position, err)
		}
		drawn++
	}
}
