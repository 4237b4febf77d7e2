package game

import "testing"

func TestBox_Overlaps(t *testing.T) {
	paddle := Box{Center: Vec2{X: -512, Y: 0}, Size: Vec2{X: 30, Y: 120}}

	tests := []struct {
		name   string
		center Vec2
		want   bool
	}{
		{"centred on paddle", Vec2{X: -512, Y: 0}, true},
		{"overlapping right face", Vec2{X: -494, Y: 10}, true},
		{"overlapping top corner", Vec2{X: -500, Y: 62}, true},
		{"touching right face", Vec2{X: -493, Y: 0}, false},
		{"above paddle", Vec2{X: -512, Y: 70}, false},
		{"far away", Vec2{X: 0, Y: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := Box{Center: tt.center, Size: Vec2{X: 8, Y: 8}}
			if got := ball.Overlaps(paddle); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := paddle.Overlaps(ball); got != tt.want {
				t.Errorf("Overlaps() is not symmetric: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0.3, 0, 0.2, 0.2},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%g, %g, %g) = %g, want %g", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
