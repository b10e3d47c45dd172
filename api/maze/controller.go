package mazeapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves maze carving streams.
type MazeController struct {
	logger       i.Logger
	maxDimension int
	stepDelay    time.Duration
}

// Config holds the settings of a MazeController.
type Config struct {
	Logger       i.Logger
	MaxDimension int           // Largest accepted width or height
	StepDelay    time.Duration // Used when a request has no delay_ms
}

// NewMazeController initializes a MazeController.
func NewMazeController(cfg Config) (*MazeController, error) {
	if cfg.Logger == nil {
		return nil, service.ErrNilLogger
	}
	if cfg.MaxDimension <= 0 {
		return nil, fmt.Errorf("max dimension must be positive, got %d", cfg.MaxDimension)
	}

	return &MazeController{
		logger:       cfg.Logger,
		maxDimension: cfg.MaxDimension,
		stepDelay:    cfg.StepDelay,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/stream", mc.stream)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {}

// stream carves a new maze and streams every step as it happens.
func (mc *MazeController) stream(ctx *gin.Context) {
	var request StreamRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Width > mc.maxDimension || request.Height > mc.maxDimension {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("maze dimensions must not exceed %d", mc.maxDimension)})
		return
	}

	grid, err := maze.New(request.Width, request.Height)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gen, err := maze.NewGenerator(grid, maze.NewSource(request.Seed))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while preparing maze"})
		return
	}

	delay := mc.stepDelay
	if request.DelayMS != nil {
		delay = time.Duration(*request.DelayMS) * time.Millisecond
	}

	runID := uuid.New()
	renderer := newSSERenderer(ctx, runID, gen.Start().Position)
	carver, err := service.NewCarver(renderer, mc.logger, &service.Options{StepDelay: delay})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while preparing maze"})
		return
	}

	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("X-Run-ID", runID.String())

	mc.logger.Info(fmt.Sprintf("Streaming maze run %s (%dx%d)", runID, request.Width, request.Height))
	carved, err := carver.Run(ctx.Request.Context(), grid, gen)
	if err != nil {
		mc.logger.Warning(fmt.Sprintf("Maze run %s ended early: %s", runID, err))
		return
	}

	if err := renderer.done(carved); err != nil {
		mc.logger.Warning(fmt.Sprintf("Maze run %s: sending done event: %s", runID, err))
	}
}
