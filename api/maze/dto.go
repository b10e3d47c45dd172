// Package mazeapi streams maze carving to HTTP clients as server-sent events.
package mazeapi

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// StreamRequest holds the query parameters of a carving stream.
type StreamRequest struct {
	Width   int   `form:"width" binding:"required,min=1"`
	Height  int   `form:"height" binding:"required,min=1"`
	Seed    int64 `form:"seed"`
	DelayMS *int  `form:"delay_ms" binding:"omitempty,min=0,max=10000"`
}

// Point is a grid coordinate or offset.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GridEvent opens a stream and describes the uncarved grid.
type GridEvent struct {
	RunID  uuid.UUID `json:"run_id"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Start  Point     `json:"start"`
}

// CarveEvent reports one carved cell and the offset to its parent.
type CarveEvent struct {
	Position  Point `json:"position"`
	Direction Point `json:"direction"`
}

// DoneEvent closes a stream.
type DoneEvent struct {
	RunID  uuid.UUID `json:"run_id"`
	Carved int       `json:"carved"`
}

func toPoint(v maze.Vector) Point {
	return Point{X: v.X, Y: v.Y}
}
