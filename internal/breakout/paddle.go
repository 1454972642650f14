package breakout

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// SizeState is the paddle's current width class.
type SizeState int

const (
	SizeNormal SizeState = iota
	SizeExpanded
	SizeShrunk
	sizeCount
)

// SizeStates returns every size state in declaration order.
func SizeStates() []SizeState {
	return []SizeState{SizeNormal, SizeExpanded, SizeShrunk}
}

// String returns the name of the size state.
func (s SizeState) String() string {
	switch s {
	case SizeNormal:
		return "normal"
	case SizeExpanded:
		return "expanded"
	case SizeShrunk:
		return "shrunk"
	default:
		return "unknown"
	}
}

// Paddle represents the player's paddle. Y never changes.
type Paddle struct {
	X, Y   float64 // Top-left corner
	Width  float64
	Height float64
	Size   SizeState

	baseWidth    float64
	speed        float64
	expandFactor float64
	shrinkFactor float64
	surfaceW     float64
	modifier     Modifier
}

// NewPaddle creates a paddle of base width centered on the surface.
func NewPaddle(cfg config.Breakout) *Paddle {
	p := &Paddle{
		Y:            cfg.Paddle.Y,
		Width:        cfg.Paddle.Width,
		Height:       cfg.Paddle.Height,
		baseWidth:    cfg.Paddle.Width,
		speed:        cfg.Paddle.Speed,
		expandFactor: cfg.Paddle.ExpandFactor,
		shrinkFactor: cfg.Paddle.ShrinkFactor,
		surfaceW:     cfg.Surface.Width,
	}
	p.X = (cfg.Surface.Width - p.Width) / 2
	return p
}

// Rect returns the paddle bounds.
func (p *Paddle) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Modifier returns the pending size modifier, if any.
func (p *Paddle) Modifier() Modifier {
	return p.modifier
}

// MoveLeft shifts the paddle left by one tick of movement.
func (p *Paddle) MoveLeft() {
	p.X = max(0, p.X-p.speed)
}

// MoveRight shifts the paddle right by one tick of movement.
func (p *Paddle) MoveRight(surfaceW float64) {
	p.X = min(surfaceW-p.Width, p.X+p.speed)
}

// MoveToPointer centers the paddle under x.
func (p *Paddle) MoveToPointer(x, surfaceW float64) {
	p.X = core.ClampF(x-p.Width/2, 0, surfaceW-p.Width)
}

// ApplyTimedModifier resizes the paddle for expand and shrink kinds and
// arms the revert. A new modifier replaces any pending one. Other kinds
// are ignored.
func (p *Paddle) ApplyTimedModifier(kind Kind, now, duration time.Duration) {
	switch kind {
	case KindExpandPaddle:
		p.resize(p.baseWidth*p.expandFactor, SizeExpanded)
	case KindShrinkPaddle:
		p.resize(p.baseWidth*p.shrinkFactor, SizeShrunk)
	default:
		return
	}
	p.modifier = arm(kind, now, duration)
}

// Expire reverts a due modifier to the base width and reports whether
// it did.
func (p *Paddle) Expire(now time.Duration) bool {
	if !p.modifier.Due(now) {
		return false
	}
	p.resize(p.baseWidth, SizeNormal)
	p.modifier = Modifier{}
	return true
}

// resize keeps the paddle center where it was, then clamps it back inside
// the surface.
func (p *Paddle) resize(width float64, state SizeState) {
	center := p.CenterX()
	p.Width = min(width, p.surfaceW)
	p.Size = state
	p.X = core.ClampF(center-p.Width/2, 0, p.surfaceW-p.Width)
}
