package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/diegok/pongsim/internal/game"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestSquareWave_Length(t *testing.T) {
	got := drain(squareWave(440, 100*time.Millisecond))
	want := sampleRate.N(100 * time.Millisecond)
	if got != want {
		t.Errorf("expected %d samples, got %d", want, got)
	}
}

func TestSquareWave_Amplitude(t *testing.T) {
	buf := make([][2]float64, 256)
	n, _ := squareWave(880, 50*time.Millisecond).Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0.2 && buf[i][0] != -0.2 {
			t.Fatalf("sample %d out of range: %f", i, buf[i][0])
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d: channels differ", i)
		}
	}
}

func TestScoreJingle_Length(t *testing.T) {
	got := drain(scoreJingle())
	want := sampleRate.N(100*time.Millisecond)*2 + sampleRate.N(150*time.Millisecond)
	if got != want {
		t.Errorf("expected %d samples, got %d", want, got)
	}
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		name string
		ev   game.StepEvents
		want Sound
	}{
		{"nothing happened", game.StepEvents{}, SoundNone},
		{"wall bounce", game.StepEvents{WallBounce: true}, SoundWallBounce},
		{"paddle hit", game.StepEvents{PaddleHit: true}, SoundPaddleHit},
		{"paddle hit beats wall", game.StepEvents{PaddleHit: true, WallBounce: true}, SoundPaddleHit},
		{"score beats wall", game.StepEvents{Scored: true, WallBounce: true}, SoundScore},
		{"score beats everything", game.StepEvents{Scored: true, PaddleHit: true, WallBounce: true}, SoundScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SoundFor(tt.ev); got != tt.want {
				t.Errorf("SoundFor(%+v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}
