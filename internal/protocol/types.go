// Package protocol defines the snapshot types handed from the simulation to
// its collaborators: renderers, the sound sink and the frame trace.
package protocol

import "time"

// Side identifies a paddle's half of the field
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

// String returns the lowercase side name used in logs and the scoreboard
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// BallState represents the ball's position, velocity and size
type BallState struct {
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	VX     float64 `msgpack:"vx"`
	VY     float64 `msgpack:"vy"`
	Width  float64 `msgpack:"w"`
	Height float64 `msgpack:"h"`
}

// PaddleState represents a paddle's state
type PaddleState struct {
	Side   Side    `msgpack:"side"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Width  float64 `msgpack:"w"`
	Height float64 `msgpack:"h"`
}

// Frame is the complete state after one simulation tick
type Frame struct {
	Tick        uint64         `msgpack:"tick"`
	DT          float64        `msgpack:"dt"`
	Ball        BallState      `msgpack:"ball"`
	Paddles     [2]PaddleState `msgpack:"paddles"`
	LeftScore   uint           `msgpack:"left_score"`
	RightScore  uint           `msgpack:"right_score"`
	FieldWidth  float64        `msgpack:"field_w"`
	FieldHeight float64        `msgpack:"field_h"`
}

// TraceHeader opens every frame trace
type TraceHeader struct {
	SessionID   string    `msgpack:"session_id"`
	Frontend    string    `msgpack:"frontend"`
	FieldWidth  float64   `msgpack:"field_w"`
	FieldHeight float64   `msgpack:"field_h"`
	StartedAt   time.Time `msgpack:"started_at"`
}
