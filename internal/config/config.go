package config

import (
	"flag"
	"time"

	"github.com/pkg/errors"

	"github.com/diegok/pongsim/internal/game"
)

// Frontend names
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
	FrontendHeadless = "headless"
)

// Default values for configuration
const (
	DefaultFrontend = FrontendTerminal
	DefaultFrames   = 600
	DefaultDT       = 0.016
	DefaultHold     = 150 * time.Millisecond
)

// Config holds the application configuration
type Config struct {
	Frontend    string
	FieldWidth  float64
	FieldHeight float64
	PaddleSpeed float64
	ServeSpeed  float64
	Frames      int
	DT          float64
	Hold        time.Duration
	TracePath   string
	LogPath     string
	Mute        bool
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pongsim", flag.ContinueOnError)

	frontend := fs.String("frontend", DefaultFrontend, "terminal, window or headless")
	width := fs.Float64("width", game.DefaultFieldWidth, "field width (>0)")
	height := fs.Float64("height", game.DefaultFieldHeight, "field height (>0)")
	paddleSpeed := fs.Float64("paddle-speed", game.DefaultPaddleSpeed, "paddle speed in units/s (>0)")
	serveSpeed := fs.Float64("serve-speed", game.DefaultServeSpeed, "ball speed per axis in units/s (>0)")
	frames := fs.Int("frames", DefaultFrames, "frames to simulate in headless mode (>=1)")
	dt := fs.Float64("dt", DefaultDT, "seconds per frame in headless mode (>0)")
	hold := fs.Duration("hold", DefaultHold, "how long a terminal key counts as held")
	trace := fs.String("trace", "", "write a msgpack frame trace to this file")
	logPath := fs.String("log", "", "write logs to this file")
	mute := fs.Bool("mute", false, "disable sound")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch *frontend {
	case FrontendTerminal, FrontendWindow, FrontendHeadless:
	default:
		return nil, errors.Errorf("frontend must be terminal, window or headless, got %q", *frontend)
	}

	if *width <= 0 || *height <= 0 {
		return nil, errors.Errorf("field size must be positive, got %gx%g", *width, *height)
	}

	if *paddleSpeed <= 0 {
		return nil, errors.Errorf("paddle speed must be positive, got %g", *paddleSpeed)
	}

	if *serveSpeed <= 0 {
		return nil, errors.Errorf("serve speed must be positive, got %g", *serveSpeed)
	}

	if *frames < 1 {
		return nil, errors.Errorf("frames must be at least 1, got %d", *frames)
	}

	if *dt <= 0 {
		return nil, errors.Errorf("dt must be positive, got %g", *dt)
	}

	if *hold <= 0 {
		return nil, errors.Errorf("hold must be positive, got %s", *hold)
	}

	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := &Config{
		Frontend:    *frontend,
		FieldWidth:  *width,
		FieldHeight: *height,
		PaddleSpeed: *paddleSpeed,
		ServeSpeed:  *serveSpeed,
		Frames:      *frames,
		DT:          *dt,
		Hold:        *hold,
		TracePath:   *trace,
		LogPath:     *logPath,
		Mute:        *mute,
	}

	return cfg, nil
}

// GameConfig builds the simulation parameters, keeping the default paddle
// and ball sizes
func (c *Config) GameConfig() game.Config {
	gc := game.DefaultConfig()
	gc.Field = game.Field{Width: c.FieldWidth, Height: c.FieldHeight}
	gc.PaddleSpeed = c.PaddleSpeed
	gc.ServeVelocity = game.Vec2{X: c.ServeSpeed, Y: c.ServeSpeed}
	if gc.PaddleInset >= gc.Field.HalfWidth() {
		gc.PaddleInset = gc.Field.Width / 10
	}
	return gc
}
