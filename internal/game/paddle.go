package game

import "github.com/diegok/pongsim/internal/protocol"

// Key is a movement key the input collaborator can report as held
type Key int

const (
	KeyLeftUp Key = iota
	KeyLeftDown
	KeyRightUp
	KeyRightDown
)

// KeyState reports which movement keys are held for the current frame
type KeyState interface {
	IsPressed(Key) bool
}

type noKeys struct{}

func (noKeys) IsPressed(Key) bool { return false }

// NoKeys is a KeyState with nothing held
var NoKeys KeyState = noKeys{}

// sideSpec holds the constants that differ between the two paddles
type sideSpec struct {
	xSign    float64
	up, down Key
}

var sides = [2]sideSpec{
	protocol.SideLeft:  {xSign: -1, up: KeyLeftUp, down: KeyLeftDown},
	protocol.SideRight: {xSign: 1, up: KeyRightUp, down: KeyRightDown},
}

type Paddle struct {
	Side     protocol.Side
	Position Vec2
	Size     Vec2
}

// NewPaddle places a paddle on its side, inset from the field edge
func NewPaddle(side protocol.Side, field Field, inset float64, size Vec2) Paddle {
	return Paddle{
		Side:     side,
		Position: Vec2{X: sides[side].xSign * (field.HalfWidth() - inset)},
		Size:     size,
	}
}

// Bounds returns the paddle's bounding box
func (p *Paddle) Bounds() Box {
	return Box{Center: p.Position, Size: p.Size}
}

// Movement returns -1, 0 or +1 from the keys bound to this paddle's side
func (p *Paddle) Movement(keys KeyState) float64 {
	movement := 0.0
	if keys.IsPressed(sides[p.Side].up) {
		movement++
	}
	if keys.IsPressed(sides[p.Side].down) {
		movement--
	}
	return movement
}

// Move shifts the paddle vertically and keeps its centre inside
// [-halfHeight, halfHeight]
func (p *Paddle) Move(movement, speed, dt, halfHeight float64) {
	p.Position.Y += movement * speed * dt
	p.Position.Y = Clamp(p.Position.Y, -halfHeight, halfHeight)
}

// Deflect reflects the ball's horizontal velocity if it overlaps the paddle
// and is moving toward it. Returns true if the velocity was reflected.
func (p *Paddle) Deflect(b *Ball) bool {
	if !b.Bounds().Overlaps(p.Bounds()) {
		return false
	}

	// Only reflect a ball moving toward the paddle; without push-out an
	// overlapping ball would otherwise flip every frame.
	switch p.Side {
	case protocol.SideLeft:
		if b.Velocity.X < 0 {
			b.Velocity.X = -b.Velocity.X
			return true
		}
	case protocol.SideRight:
		if b.Velocity.X > 0 {
			b.Velocity.X = -b.Velocity.X
			return true
		}
	}
	return false
}
