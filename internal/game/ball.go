package game

// MaxBallStep bounds the elapsed time integrated into the ball in one frame,
// so a stalled frame cannot carry the ball through a paddle or wall.
const MaxBallStep = 0.2

type Ball struct {
	Position Vec2
	Velocity Vec2
	Size     Vec2
}

// Bounds returns the ball's bounding box
func (b *Ball) Bounds() Box {
	return Box{Center: b.Position, Size: b.Size}
}

// Move advances the ball by its velocity over dt, clamped to [0, maxStep]
func (b *Ball) Move(dt, maxStep float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(Clamp(dt, 0, maxStep)))
}

// BounceWalls keeps the ball inside [-halfHeight, halfHeight] and reflects
// vertical velocity when it points out of the field. Returns true if the
// velocity was reflected.
func (b *Ball) BounceWalls(halfHeight float64) bool {
	bounced := false
	if b.Position.Y < -halfHeight {
		b.Position.Y = -halfHeight
		if b.Velocity.Y < 0 {
			b.Velocity.Y = -b.Velocity.Y
			bounced = true
		}
	}
	if b.Position.Y > halfHeight {
		b.Position.Y = halfHeight
		if b.Velocity.Y > 0 {
			b.Velocity.Y = -b.Velocity.Y
			bounced = true
		}
	}
	return bounced
}

// Serve places the ball at the centre with the given velocity
func (b *Ball) Serve(velocity Vec2) {
	b.Position = Vec2{}
	b.Velocity = velocity
}
