// Package gui runs the simulation in a desktop window.
package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/diegok/pongsim/internal/game"
	"github.com/diegok/pongsim/internal/protocol"
)

var (
	backgroundColor = color.RGBA{A: 255}
	lineColor       = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	spriteColor     = color.White
)

// KeyBindings maps movement keys to keyboard keys
var KeyBindings = map[game.Key]ebiten.Key{
	game.KeyLeftUp:    ebiten.KeyW,
	game.KeyLeftDown:  ebiten.KeyS,
	game.KeyRightUp:   ebiten.KeyArrowUp,
	game.KeyRightDown: ebiten.KeyArrowDown,
}

// keyboard answers key-state queries from ebiten's input state
type keyboard struct{}

func (keyboard) IsPressed(k game.Key) bool {
	key, ok := KeyBindings[k]
	return ok && ebiten.IsKeyPressed(key)
}

// StepFunc is called after every simulation step. A non-nil error stops
// the window loop and is returned from Run.
type StepFunc func(ev game.StepEvents, frame protocol.Frame) error

// Game adapts a Simulation to ebiten.Game. The logical screen is the field
// itself, one pixel per field unit, and ebiten scales it to the window.
type Game struct {
	sim     *game.Simulation
	onStep  StepFunc
	onReset func()
	quit    <-chan struct{}
	last    time.Time
	frame   protocol.Frame
}

// NewGame creates a window game; onStep, onReset and quit may be nil.
// Closing quit ends the window loop on the next Update.
func NewGame(sim *game.Simulation, onStep StepFunc, onReset func(), quit <-chan struct{}) *Game {
	return &Game{
		sim:     sim,
		onStep:  onStep,
		onReset: onReset,
		quit:    quit,
		frame:   sim.Snapshot(),
	}
}

// Run opens the window and blocks until it is closed or Esc is pressed
func Run(g *Game, title string) error {
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run window")
	}
	return nil
}

func (g *Game) Update() error {
	select {
	case <-g.quit:
		return ebiten.Termination
	default:
	}

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
		if g.onReset != nil {
			g.onReset()
		}
	}

	ev := g.sim.Step(dt, keyboard{})
	g.frame = g.sim.Snapshot()
	if g.onStep != nil {
		return g.onStep(ev, g.frame)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	f := g.frame

	// Center dashed line
	for y := 0.0; y < f.FieldHeight; y += 40 {
		vector.DrawFilledRect(screen, float32(f.FieldWidth/2-2), float32(y), 4, 20, lineColor, false)
	}

	for _, p := range f.Paddles {
		drawBox(screen, f, p.X, p.Y, p.Width, p.Height)
	}
	drawBox(screen, f, f.Ball.X, f.Ball.Y, f.Ball.Width, f.Ball.Height)

	score := fmt.Sprintf("%d   %d", f.LeftScore, f.RightScore)
	ebitenutil.DebugPrintAt(screen, score, int(f.FieldWidth/2)-len(score)*3, 16)
	ebitenutil.DebugPrintAt(screen, "W/S  Up/Down  R: reset  Esc: quit", 8, int(f.FieldHeight)-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.frame.FieldWidth), int(g.frame.FieldHeight)
}

func drawBox(screen *ebiten.Image, f protocol.Frame, cx, cy, w, h float64) {
	x, y := ToScreen(f.FieldWidth, f.FieldHeight, cx-w/2, cy+h/2)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), spriteColor, false)
}

// ToScreen converts a field point (origin at the centre, y up) to logical
// screen pixels (origin top-left, y down)
func ToScreen(fieldW, fieldH, x, y float64) (float64, float64) {
	return x + fieldW/2, fieldH/2 - y
}
