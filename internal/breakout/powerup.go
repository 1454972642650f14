package breakout

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Kind identifies a power-up effect.
type Kind int

const (
	KindExpandPaddle Kind = iota // Paddle 1.5x wider for a while
	KindShrinkPaddle             // Paddle 0.75x narrower for a while
	KindSlowBall                 // In-play balls slowed for a while
	KindFastBall                 // In-play balls sped up for a while
	KindMultiBall                // Two extra balls split off the first in-play ball
	KindExtraLife                // One more life
	kindCount                    // Sentinel for counting kinds
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindExpandPaddle:
		return config.KindExpandPaddle
	case KindShrinkPaddle:
		return config.KindShrinkPaddle
	case KindSlowBall:
		return config.KindSlowBall
	case KindFastBall:
		return config.KindFastBall
	case KindMultiBall:
		return config.KindMultiBall
	case KindExtraLife:
		return config.KindExtraLife
	default:
		return "unknown"
	}
}

// Label returns the short name shown in the HUD.
func (k Kind) Label() string {
	switch k {
	case KindExpandPaddle:
		return "Wide"
	case KindShrinkPaddle:
		return "Narrow"
	case KindSlowBall:
		return "Slow"
	case KindFastBall:
		return "Fast"
	case KindMultiBall:
		return "Multi"
	case KindExtraLife:
		return "Life"
	default:
		return "?"
	}
}

// Kinds returns every power-up kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := range kindCount {
		out = append(out, k)
	}
	return out
}

// ParseKind looks a kind up by its configuration name.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// kindsOf resolves the configured kind names, skipping unknown ones.
func kindsOf(cfg config.PowerUps) []Kind {
	out := make([]Kind, 0, len(cfg.Kinds))
	for _, name := range cfg.Kinds {
		if k, ok := ParseKind(name); ok {
			out = append(out, k)
		}
	}
	return out
}

// PowerUp is a falling pickup released by a destroyed brick.
type PowerUp struct {
	X, Y   float64 // Top-left corner
	W, H   float64
	Kind   Kind
	Active bool // Cleared once it leaves the surface or is collected

	fallSpeed float64
}

// GeneratePowerUp rolls the drop chance once and, on success, returns a
// power-up with its top-left corner at (x, y) and a kind drawn uniformly
// from the configured kinds.
func GeneratePowerUp(rng *rand.Rand, cfg config.PowerUps, x, y float64) (*PowerUp, bool) {
	if rng.Float64() >= cfg.Chance {
		return nil, false
	}
	kinds := kindsOf(cfg)
	if len(kinds) == 0 {
		return nil, false
	}
	return &PowerUp{
		X:         x,
		Y:         y,
		W:         cfg.Width,
		H:         cfg.Height,
		Kind:      kinds[rng.IntN(len(kinds))],
		Active:    true,
		fallSpeed: cfg.FallSpeed,
	}, true
}

// Rect returns the power-up bounds.
func (p *PowerUp) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Advance moves the power-up down one tick and reports whether it is
// still falling. It deactivates once its top edge passes the floor.
func (p *PowerUp) Advance(surfaceH float64) bool {
	if !p.Active {
		return false
	}
	p.Y += p.fallSpeed
	if p.Y > surfaceH {
		p.Active = false
	}
	return p.Active
}

// TestPickup reports whether the paddle caught the power-up, deactivating
// it on contact.
func (p *PowerUp) TestPickup(paddle *Paddle) bool {
	if !p.Active {
		return false
	}
	if !p.Rect().Intersects(paddle.Rect()) {
		return false
	}
	p.Active = false
	return true
}
