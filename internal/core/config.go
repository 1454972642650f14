package core

import "time"

// RuntimeConfig contains the platform settings passed to the game at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState summarises the session for the platform layer.
type GameState struct {
	Score         int  // Current score
	Lives         int  // Remaining lives
	GameOver      bool // No lives left
	LevelComplete bool // Every brick destroyed
	Paused        bool // Simulation suspended by the player
}

// Finished reports whether the round has ended one way or the other.
func (s GameState) Finished() bool {
	return s.GameOver || s.LevelComplete
}
