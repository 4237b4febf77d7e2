package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/diegok/pongsim/internal/audio"
	"github.com/diegok/pongsim/internal/config"
	"github.com/diegok/pongsim/internal/game"
	"github.com/diegok/pongsim/internal/gui"
	"github.com/diegok/pongsim/internal/protocol"
	"github.com/diegok/pongsim/internal/ui"
)

// FrameInterval is the terminal frontend's target frame period (~60fps)
const FrameInterval = 16 * time.Millisecond

// App wires the simulation to a frontend, the sound sink, logs and the
// frame trace.
type App struct {
	cfg       *config.Config
	sim       *game.Simulation
	sessionID string
	log       *slog.Logger
	logFile   io.Closer
	trace     *traceWriter
	sound     bool

	// Terminal frontend
	screen   *ui.Screen
	renderer *ui.Renderer
	keys     *ui.KeyTracker

	stdout  io.Writer
	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) (*App, error) {
	sim, err := game.NewSimulation(cfg.GameConfig())
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:       cfg,
		sim:       sim,
		sessionID: uuid.NewString(),
		stdout:    os.Stdout,
		quit:      make(chan struct{}),
	}, nil
}

// Simulation returns the simulation driven by the app
func (a *App) Simulation() *game.Simulation {
	return a.sim
}

// SessionID identifies this run in logs and the trace header
func (a *App) SessionID() string {
	return a.sessionID
}

// Run is the main entry point for the application.
// It sets up logging, the trace and signal handling, then runs the frontend.
func (a *App) Run() error {
	if err := a.setupLogging(); err != nil {
		return err
	}
	defer a.cleanup()

	if a.cfg.TracePath != "" {
		tw, err := openTrace(a.cfg.TracePath, a.traceHeader())
		if err != nil {
			return err
		}
		a.trace = tw
	}

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if _, ok := <-a.sigChan; ok {
			close(a.quit)
		}
	}()

	a.log.Info("session started",
		"session", a.sessionID,
		"frontend", a.cfg.Frontend,
		"field_width", a.cfg.FieldWidth,
		"field_height", a.cfg.FieldHeight)

	var runErr error
	switch a.cfg.Frontend {
	case config.FrontendHeadless:
		runErr = a.runHeadless()
	case config.FrontendWindow:
		a.initSound()
		runErr = a.runWindow()
	default:
		a.initSound()
		runErr = a.runTerminal()
	}

	a.log.Info("session ended",
		"session", a.sessionID,
		"ticks", a.sim.Tick,
		"left_score", a.sim.Score.Left,
		"right_score", a.sim.Score.Right)

	return runErr
}

// initSound starts the speaker unless muted. The game runs silently if
// there is no audio device.
func (a *App) initSound() {
	if a.cfg.Mute {
		return
	}
	if err := audio.Init(); err != nil {
		a.log.Warn("sound disabled", "error", err)
		return
	}
	a.sound = true
}

// afterStep feeds one step's outcome to the sound sink, logs and trace
func (a *App) afterStep(ev game.StepEvents, frame protocol.Frame) error {
	if a.sound {
		audio.PlayEvents(ev)
	}

	if ev.Scored {
		a.log.Info("point scored",
			"side", ev.Scorer.String(),
			"left_score", frame.LeftScore,
			"right_score", frame.RightScore,
			"tick", frame.Tick)
	}

	if a.trace != nil {
		if err := a.trace.Write(&frame); err != nil {
			return err
		}
	}
	return nil
}

// reset restarts the match
func (a *App) reset() {
	a.sim.Reset()
	if a.keys != nil {
		a.keys.Release()
	}
	a.log.Info("match reset", "session", a.sessionID)
}

// runWindow hands the simulation to the ebiten frontend
func (a *App) runWindow() error {
	g := gui.NewGame(a.sim, a.afterStep, func() {
		a.log.Info("match reset", "session", a.sessionID)
	}, a.quit)
	return gui.Run(g, "pongsim")
}

// runTerminal initializes the screen and runs the terminal main loop
func (a *App) runTerminal() error {
	screen, err := ui.InitScreen()
	if err != nil {
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.keys = ui.NewKeyTracker(a.cfg.Hold)

	return a.mainLoop()
}

// mainLoop is the terminal event loop: it collects key events, steps the
// simulation on every tick and renders the result.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			a.keys.Advance(now)
			ev := a.sim.Step(dt, a.keys)
			frame := a.sim.Snapshot()
			if err := a.afterStep(ev, frame); err != nil {
				a.renderer.RenderError(err.Error())
				a.screen.PollEvent()
				return err
			}
			a.renderer.RenderGame(frame)
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if ui.IsResetKey(ev.Key(), ev.Rune()) {
			a.reset()
			return false
		}
		a.keys.HandleEvent(ev)

	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.RenderGame(a.sim.Snapshot())
	}

	return false
}

func (a *App) traceHeader() *protocol.TraceHeader {
	return &protocol.TraceHeader{
		SessionID:   a.sessionID,
		Frontend:    a.cfg.Frontend,
		FieldWidth:  a.cfg.FieldWidth,
		FieldHeight: a.cfg.FieldHeight,
		StartedAt:   time.Now().UTC(),
	}
}

// printSummary writes the final score for non-interactive runs
func (a *App) printSummary() {
	fmt.Fprintf(a.stdout, "session %s: %d ticks, score %d - %d\n",
		a.sessionID, a.sim.Tick, a.sim.Score.Left, a.sim.Score.Right)
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	if a.sound {
		audio.Close()
	}

	if a.screen != nil {
		a.screen.Fini()
	}

	if a.trace != nil {
		if err := a.trace.Close(); err != nil {
			a.log.Error("closing trace", "error", err)
		}
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
		close(a.sigChan)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}
}
