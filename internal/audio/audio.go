// Package audio plays short square-wave cues for game events.
// Every function is a no-op until Init succeeds, so the game runs the same
// without a sound device.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

var (
	mu          sync.Mutex
	initialized bool
)

// Cue names a sound.
type Cue int

const (
	CuePaddle Cue = iota
	CueWall
	CueBrick
	CuePowerUp
	CueLaunch
	CueLifeLost
	CueLevelComplete
	CueGameOver
)

// note is one tone of a cue. A zero frequency is a rest.
type note struct {
	freq     float64
	duration time.Duration
}

// notes returns the melody of a cue.
func (c Cue) notes() []note {
	switch c {
	case CuePaddle:
		return []note{{880, 40 * time.Millisecond}}
	case CueWall:
		return []note{{440, 25 * time.Millisecond}}
	case CueBrick:
		return []note{{1320, 35 * time.Millisecond}}
	case CuePowerUp:
		return []note{{660, 60 * time.Millisecond}, {990, 60 * time.Millisecond}, {1320, 80 * time.Millisecond}}
	case CueLaunch:
		return []note{{520, 50 * time.Millisecond}}
	case CueLifeLost:
		return []note{{440, 100 * time.Millisecond}, {330, 100 * time.Millisecond}, {220, 180 * time.Millisecond}}
	case CueLevelComplete:
		return []note{{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond}, {784, 100 * time.Millisecond}, {1047, 250 * time.Millisecond}}
	case CueGameOver:
		return []note{{392, 150 * time.Millisecond}, {0, 50 * time.Millisecond}, {311, 150 * time.Millisecond}, {0, 50 * time.Millisecond}, {262, 300 * time.Millisecond}}
	default:
		return nil
	}
}

// Duration returns the total length of a cue.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range c.notes() {
		d += n.duration
	}
	return d
}

// Init opens the speaker. Calling it again is harmless.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// Enabled reports whether Init succeeded.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return initialized
}

// Play starts a cue without blocking.
func Play(c Cue) {
	if !Enabled() {
		return
	}
	speaker.Play(Stream(c))
}

// Stream returns a streamer that renders the cue once.
func Stream(c Cue) beep.Streamer {
	notes := c.notes()
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(sampleRate.N(n.duration)))
			continue
		}
		parts = append(parts, squareWave(n.freq, n.duration))
	}
	return beep.Seq(parts...)
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
			val := volume
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
