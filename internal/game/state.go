package game

import (
	"github.com/pkg/errors"

	"github.com/diegok/pongsim/internal/protocol"
)

// Default values for a session
const (
	DefaultFieldWidth  = 1280
	DefaultFieldHeight = 720
	DefaultPaddleSpeed = 256 // units per second
	DefaultServeSpeed  = 256 // per axis, units per second
	DefaultPaddleInset = 128 // distance from the field edge to the paddle centre
)

// Field is the play area centred on the origin
type Field struct {
	Width  float64
	Height float64
}

func (f Field) HalfWidth() float64  { return f.Width / 2 }
func (f Field) HalfHeight() float64 { return f.Height / 2 }

// Score holds the points of each side
type Score struct {
	Left  uint
	Right uint
}

// Add credits one point to side
func (s *Score) Add(side protocol.Side) {
	if side == protocol.SideLeft {
		s.Left++
	} else {
		s.Right++
	}
}

// Config holds the fixed parameters of a session
type Config struct {
	Field         Field
	PaddleSize    Vec2
	BallSize      Vec2
	PaddleInset   float64
	PaddleSpeed   float64
	ServeVelocity Vec2
	MaxBallStep   float64
}

// DefaultConfig returns the standard 1280x720 session
func DefaultConfig() Config {
	return Config{
		Field:         Field{Width: DefaultFieldWidth, Height: DefaultFieldHeight},
		PaddleSize:    Vec2{X: 30, Y: 120},
		BallSize:      Vec2{X: 8, Y: 8},
		PaddleInset:   DefaultPaddleInset,
		PaddleSpeed:   DefaultPaddleSpeed,
		ServeVelocity: Vec2{X: DefaultServeSpeed, Y: DefaultServeSpeed},
		MaxBallStep:   MaxBallStep,
	}
}

// Validate checks the structural preconditions of a session
func (c Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return errors.Errorf("field size must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	}
	if c.PaddleSize.X <= 0 || c.PaddleSize.Y <= 0 {
		return errors.Errorf("paddle size must be positive, got %gx%g", c.PaddleSize.X, c.PaddleSize.Y)
	}
	if c.BallSize.X <= 0 || c.BallSize.Y <= 0 {
		return errors.Errorf("ball size must be positive, got %gx%g", c.BallSize.X, c.BallSize.Y)
	}
	if c.PaddleInset < 0 || c.PaddleInset >= c.Field.HalfWidth() {
		return errors.Errorf("paddle inset must be in [0, %g), got %g", c.Field.HalfWidth(), c.PaddleInset)
	}
	if c.PaddleSpeed <= 0 {
		return errors.Errorf("paddle speed must be positive, got %g", c.PaddleSpeed)
	}
	if c.ServeVelocity.X == 0 || c.ServeVelocity.Y == 0 {
		return errors.Errorf("serve velocity components must be non-zero, got (%g, %g)",
			c.ServeVelocity.X, c.ServeVelocity.Y)
	}
	if c.MaxBallStep <= 0 {
		return errors.Errorf("max ball step must be positive, got %g", c.MaxBallStep)
	}
	return nil
}

// StepEvents describes what happened during one Step
type StepEvents struct {
	WallBounce bool
	PaddleHit  bool
	HitSide    protocol.Side
	Scored     bool
	Scorer     protocol.Side
}

// Simulation owns the ball, both paddles and the score
type Simulation struct {
	cfg     Config
	Field   Field
	Ball    Ball
	Paddles [2]Paddle // indexed by protocol.Side
	Score   Score
	Tick    uint64
	lastDT  float64
}

// NewSimulation validates cfg and builds a session with the ball served
// from the centre
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid simulation config")
	}

	s := &Simulation{cfg: cfg, Field: cfg.Field}
	s.Reset()
	return s, nil
}

// Config returns the session parameters
func (s *Simulation) Config() Config {
	return s.cfg
}

// Reset puts paddles, ball and score back to their session-start state
func (s *Simulation) Reset() {
	s.Paddles[protocol.SideLeft] = NewPaddle(protocol.SideLeft, s.Field, s.cfg.PaddleInset, s.cfg.PaddleSize)
	s.Paddles[protocol.SideRight] = NewPaddle(protocol.SideRight, s.Field, s.cfg.PaddleInset, s.cfg.PaddleSize)
	s.Ball = Ball{Size: s.cfg.BallSize}
	s.Ball.Serve(s.cfg.ServeVelocity)
	s.Score = Score{}
	s.Tick = 0
	s.lastDT = 0
}

// Step runs one frame. Velocity corrections run before the ball is
// integrated, and scoring inspects the freshly integrated position.
func (s *Simulation) Step(dt float64, keys KeyState) StepEvents {
	var ev StepEvents

	ev.WallBounce = s.bounceWalls()
	ev.HitSide, ev.PaddleHit = s.bouncePaddles()
	s.moveBall(dt)
	s.movePaddles(dt, keys)
	ev.Scorer, ev.Scored = s.checkScore()

	s.Tick++
	s.lastDT = dt
	return ev
}

func (s *Simulation) bounceWalls() bool {
	return s.Ball.BounceWalls(s.Field.HalfHeight())
}

// bouncePaddles checks both paddles every frame
func (s *Simulation) bouncePaddles() (protocol.Side, bool) {
	hitSide, hit := protocol.SideLeft, false
	for i := range s.Paddles {
		if s.Paddles[i].Deflect(&s.Ball) {
			hitSide, hit = s.Paddles[i].Side, true
		}
	}
	return hitSide, hit
}

func (s *Simulation) moveBall(dt float64) {
	s.Ball.Move(dt, s.cfg.MaxBallStep)
}

func (s *Simulation) movePaddles(dt float64, keys KeyState) {
	for i := range s.Paddles {
		p := &s.Paddles[i]
		p.Move(p.Movement(keys), s.cfg.PaddleSpeed, dt, s.Field.HalfHeight())
	}
}

// checkScore credits the side opposite the boundary the ball crossed and
// serves again from the centre
func (s *Simulation) checkScore() (protocol.Side, bool) {
	exit, ok := s.exitSide()
	if !ok {
		return protocol.SideLeft, false
	}

	scorer := exit.Opposite()
	s.Score.Add(scorer)
	s.Ball.Serve(s.cfg.ServeVelocity)
	return scorer, true
}

// exitSide reports which side boundary the ball is past, if any
func (s *Simulation) exitSide() (protocol.Side, bool) {
	switch {
	case s.Ball.Position.X > s.Field.HalfWidth():
		return protocol.SideRight, true
	case s.Ball.Position.X < -s.Field.HalfWidth():
		return protocol.SideLeft, true
	}
	return protocol.SideLeft, false
}

// Snapshot converts the state for renderers and the trace
func (s *Simulation) Snapshot() protocol.Frame {
	var paddles [2]protocol.PaddleState
	for i, p := range s.Paddles {
		paddles[i] = protocol.PaddleState{
			Side:   p.Side,
			X:      p.Position.X,
			Y:      p.Position.Y,
			Width:  p.Size.X,
			Height: p.Size.Y,
		}
	}

	b := s.Ball
	return protocol.Frame{
		Tick: s.Tick,
		DT:   s.lastDT,
		Ball: protocol.BallState{
			X: b.Position.X, Y: b.Position.Y,
			VX: b.Velocity.X, VY: b.Velocity.Y,
			Width: b.Size.X, Height: b.Size.Y,
		},
		Paddles:     paddles,
		LeftScore:   s.Score.Left,
		RightScore:  s.Score.Right,
		FieldWidth:  s.Field.Width,
		FieldHeight: s.Field.Height,
	}
}
