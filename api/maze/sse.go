package mazeapi

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sseRenderer writes carving progress to a gin response as server-sent events.
type sseRenderer struct {
	ctx   *gin.Context
	runID uuid.UUID
	start maze.Vector
}

func newSSERenderer(ctx *gin.Context, runID uuid.UUID, start maze.Vector) *sseRenderer {
	return &sseRenderer{ctx: ctx, runID: runID, start: start}
}

// DrawGrid sends the grid event.
func (r *sseRenderer) DrawGrid(g *maze.Grid) error {
	return r.send("grid", GridEvent{
		RunID:  r.runID,
		Width:  g.Width(),
		Height: g.Height(),
		Start:  toPoint(r.start),
	})
}

// DrawCell sends one carve event.
func (r *sseRenderer) DrawCell(c maze.Cell) error {
	return r.send("carve", CarveEvent{
		Position:  toPoint(c.Position),
		Direction: toPoint(c.Direction),
	})
}

func (r *sseRenderer) done(carved int) error {
	return r.send("done", DoneEvent{RunID: r.runID, Carved: carved})
}

func (r *sseRenderer) send(event string, payload any) error {
	// A client that went away surfaces as a cancelled request context.
	if err := r.ctx.Request.Context().Err(); err != nil {
		return err
	}
	r.ctx.SSEvent(event, payload)
	r.ctx.Writer.Flush()
	return nil
}
