package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/infrastruture/terminal"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

// Global variables for dependencies
var (
	cfg            config.Config
	appLogger      i.Logger
	grid           *maze.Grid
	generator      *maze.Generator
	screen         *terminal.Renderer
	carver         *service.Carver
	mazeController api_i.Controller
	router         *api.Router
)

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading configuration: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Configuration loaded (mode=%s)", cfg.Mode))
}

func initGenerator() {
	width, height := cfg.MazeWidth, cfg.MazeHeight
	if width == 0 || height == 0 {
		fitW, fitH := terminal.FitGrid(terminal.Size())
		if width == 0 {
			width = min(fitW, cfg.MaxDimension)
		}
		if height == 0 {
			height = min(fitH, cfg.MaxDimension)
		}
	}

	var err error
	grid, err = maze.New(width, height)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating grid: %v", err))
		os.Exit(1)
	}

	generator, err = maze.NewGenerator(grid, maze.NewSource(cfg.Seed))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating generator: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Generator initialized for %dx%d grid", width, height))
}

func initCarver() {
	// The terminal belongs to the animation while it runs.
	carverLogger, err := logger.New("CARVER", config.ColorCyan, io.Discard)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating carver logger: %v", err))
		os.Exit(1)
	}

	screen = terminal.NewRenderer(os.Stdout)
	carver, err = service.NewCarver(screen, carverLogger, &service.Options{StepDelay: cfg.StepDelay})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating carver: %v", err))
		os.Exit(1)
	}
}

func initMazeController() {
	streamLogger, err := logger.New("STREAM", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating stream logger: %v", err))
		os.Exit(1)
	}

	mazeController, err = mazeapi.NewMazeController(mazeapi.Config{
		Logger:       streamLogger,
		MaxDimension: cfg.MaxDimension,
		StepDelay:    cfg.StepDelay,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", cfg.HostIP, cfg.RESTPort),
		BaseURL:     "/api",
		GinMode:     cfg.GinMode,
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func runTerminal() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	carved, err := carver.Run(ctx, grid, generator)
	_ = screen.Close()
	if err != nil && ctx.Err() == nil {
		appLogger.Error(fmt.Sprintf("Animating maze: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Reached %d of %d cells", carved+1, grid.Len()))
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stderr)

	initConfig()

	switch cfg.Mode {
	case config.ModeHTTP:
		initMazeController()
		initRouter()

		// Run HTTP server
		if err := router.Run(); err != nil {
			appLogger.Error(fmt.Sprintf("Starting server: %v", err))
			os.Exit(1)
		}
	default:
		initGenerator()
		initCarver()
		runTerminal()
	}
}
