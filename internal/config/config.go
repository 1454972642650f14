// Package config provides YAML-based configuration loading and validation
// for the breakout simulation.
package config

import "time"

// Breakout contains all tunables of a breakout session.
// A value is treated as immutable once handed to the simulation.
type Breakout struct {
	Surface  Surface  `yaml:"surface"`
	Paddle   Paddle   `yaml:"paddle"`
	Ball     Ball     `yaml:"ball"`
	Bricks   Bricks   `yaml:"bricks"`
	PowerUps PowerUps `yaml:"powerups"`
	Session  Session  `yaml:"session"`
}

// Surface is the logical drawing area. Y grows downwards.
type Surface struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Paddle defines the player paddle.
type Paddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Y            float64 `yaml:"y"`             // Top edge, fixed for the whole session
	Speed        float64 `yaml:"speed"`         // Units per tick for key movement
	ExpandFactor float64 `yaml:"expand_factor"` // Width multiplier while expanded
	ShrinkFactor float64 `yaml:"shrink_factor"` // Width multiplier while shrunk
}

// Ball defines the ball.
type Ball struct {
	Radius     float64 `yaml:"radius"`
	Speed      float64 `yaml:"speed"` // Units per tick
	SlowFactor float64 `yaml:"slow_factor"`
	FastFactor float64 `yaml:"fast_factor"`
}

// Bricks defines the brick grid layout.
type Bricks struct {
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Padding       float64 `yaml:"padding"`
	OffsetTop     float64 `yaml:"offset_top"`
	OffsetLeft    float64 `yaml:"offset_left"`
	PointsPerType int     `yaml:"points_per_type"` // A brick of type t is worth (t+1) * PointsPerType
}

// PowerUps defines power-up generation and timing.
type PowerUps struct {
	Chance    float64       `yaml:"chance"` // Drop probability per destroyed brick, in [0, 1]
	FallSpeed float64       `yaml:"fall_speed"`
	Width     float64       `yaml:"width"`
	Height    float64       `yaml:"height"`
	Duration  time.Duration `yaml:"duration"` // Lifetime of timed modifiers
	Kinds     []string      `yaml:"kinds"`    // Kinds the generator draws from, uniformly
}

// Session defines session-level rules.
type Session struct {
	Lives int `yaml:"lives"`
}

// Power-up kind names accepted in PowerUps.Kinds.
const (
	KindExpandPaddle = "expand-paddle"
	KindShrinkPaddle = "shrink-paddle"
	KindSlowBall     = "slow-ball"
	KindFastBall     = "fast-ball"
	KindMultiBall    = "multi-ball"
	KindExtraLife    = "extra-life"
)

// PowerUpKinds lists every known power-up kind name in canonical order.
func PowerUpKinds() []string {
	return []string{
		KindExpandPaddle,
		KindShrinkPaddle,
		KindSlowBall,
		KindFastBall,
		KindMultiBall,
		KindExtraLife,
	}
}

// Preset represents a named difficulty preset applied at load time.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)
