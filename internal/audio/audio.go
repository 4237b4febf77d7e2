package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"

	"github.com/diegok/pongsim/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// scoreJingle is a descending three-note sequence
func scoreJingle() beep.Streamer {
	return beep.Seq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	)
}

// Sound identifies one of the game's effects
type Sound int

const (
	SoundNone Sound = iota
	SoundWallBounce
	SoundPaddleHit
	SoundScore
)

// SoundFor picks the effect for one simulation step. A score drowns out
// the bounce that may have happened in the same frame.
func SoundFor(ev game.StepEvents) Sound {
	switch {
	case ev.Scored:
		return SoundScore
	case ev.PaddleHit:
		return SoundPaddleHit
	case ev.WallBounce:
		return SoundWallBounce
	}
	return SoundNone
}

// PlayEvents plays the sound for one simulation step
func PlayEvents(ev game.StepEvents) {
	switch SoundFor(ev) {
	case SoundScore:
		PlayScore()
	case SoundPaddleHit:
		PlayPaddleHit()
	case SoundWallBounce:
		PlayWallBounce()
	}
}

// PlayPaddleHit plays the sound for ball hitting a paddle
func PlayPaddleHit() {
	if !initialized {
		return
	}
	speaker.Play(squareWave(880, 50*time.Millisecond))
}

// PlayWallBounce plays the sound for ball hitting top/bottom wall
func PlayWallBounce() {
	if !initialized {
		return
	}
	speaker.Play(squareWave(440, 30*time.Millisecond))
}

// PlayScore plays the sound when a side scores
func PlayScore() {
	if !initialized {
		return
	}
	speaker.Play(scoreJingle())
}
