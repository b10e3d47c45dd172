package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ModeTerminal = "terminal"
	ModeHTTP     = "http"

	// MaxStepDelayMS caps the pause between carved cells.
	MaxStepDelayMS = 10000
)

var (
	ErrInvalidEnv = errors.New("invalid environment variable")
)

// Config holds the application's configuration values.
type Config struct {
	Mode         string        // Front-end to run: terminal or http
	MazeWidth    int           // Columns of the maze, 32 by default; 0 fits the terminal
	MazeHeight   int           // Rows of the maze, 24 by default; 0 fits the terminal
	Seed         int64         // Seed for the random source; 0 picks a time-based seed
	StepDelay    time.Duration // Pause between carved cells
	MaxDimension int           // Upper bound accepted for width and height
	HostIP       string        // Host IP for the server
	RESTPort     int           // Port for the REST API
	GinMode      string        // Mode for the Gin framework (e.g., release, debug, test)
}

// Load reads the configuration from the environment.
// It loads environment variables from a .env file first, if one exists.
func Load() (Config, error) {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (Config, error) {
	var (
		cfg Config
		err error
	)

	cfg.Mode = getEnvWithDefault("MAZE_MODE", ModeTerminal)
	if cfg.Mode != ModeTerminal && cfg.Mode != ModeHTTP {
		return Config{}, fmt.Errorf("%w: MAZE_MODE must be %q or %q, got %q", ErrInvalidEnv, ModeTerminal, ModeHTTP, cfg.Mode)
	}

	if cfg.MazeWidth, err = getEnvAsIntWithDefault("MAZE_WIDTH", 32); err != nil {
		return Config{}, err
	}
	if cfg.MazeHeight, err = getEnvAsIntWithDefault("MAZE_HEIGHT", 24); err != nil {
		return Config{}, err
	}
	if cfg.MaxDimension, err = getEnvAsIntWithDefault("MAZE_MAX_DIMENSION", 100); err != nil {
		return Config{}, err
	}

	seed, err := getEnvAsIntWithDefault("MAZE_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)

	// 40ms matches 25 carved cells per second.
	delayMS, err := getEnvAsIntWithDefault("MAZE_STEP_DELAY_MS", 40)
	if err != nil {
		return Config{}, err
	}
	if delayMS < 0 || delayMS > MaxStepDelayMS {
		return Config{}, fmt.Errorf("%w: MAZE_STEP_DELAY_MS must be between 0 and %d", ErrInvalidEnv, MaxStepDelayMS)
	}
	cfg.StepDelay = time.Duration(delayMS) * time.Millisecond

	if cfg.RESTPort, err = getEnvAsIntWithDefault("REST_PORT", 8080); err != nil {
		return Config{}, err
	}
	cfg.HostIP = getEnvWithDefault("HOST_IP", "0.0.0.0")
	cfg.GinMode = getEnvWithDefault("GIN_MODE", "release")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MazeWidth < 0 || c.MazeHeight < 0 {
		return fmt.Errorf("%w: maze dimensions must not be negative", ErrInvalidEnv)
	}
	if c.MaxDimension <= 0 {
		return fmt.Errorf("%w: MAZE_MAX_DIMENSION must be positive", ErrInvalidEnv)
	}
	if c.MazeWidth > c.MaxDimension || c.MazeHeight > c.MaxDimension {
		return fmt.Errorf("%w: maze dimensions exceed %d", ErrInvalidEnv, c.MaxDimension)
	}
	if c.StepDelay < 0 || c.StepDelay > MaxStepDelayMS*time.Millisecond {
		return fmt.Errorf("%w: MAZE_STEP_DELAY_MS must be between 0 and %d", ErrInvalidEnv, MaxStepDelayMS)
	}
	return nil
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// returning defaultValue when it is not set.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidEnv, key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set or empty.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
