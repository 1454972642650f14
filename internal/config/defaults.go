package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// Default returns the built-in breakout configuration.
func Default() Breakout {
	return Breakout{
		Surface: Surface{
			Width:  640,
			Height: 480,
		},
		Paddle: Paddle{
			Width:        64,
			Height:       16,
			Y:            450,
			Speed:        8,
			ExpandFactor: 1.5,
			ShrinkFactor: 0.75,
		},
		Ball: Ball{
			Radius:     6,
			Speed:      4,
			SlowFactor: 0.7,
			FastFactor: 1.5,
		},
		Bricks: Bricks{
			Rows:          8,
			Cols:          14,
			Width:         40,
			Height:        16,
			Padding:       4,
			OffsetTop:     60,
			OffsetLeft:    30,
			PointsPerType: 10,
		},
		PowerUps: PowerUps{
			Chance:    0.2,
			FallSpeed: 2,
			Width:     24,
			Height:    12,
			Duration:  10 * time.Second,
			Kinds:     PowerUpKinds(),
		},
		Session: Session{
			Lives: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
