package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Contact records what a ball bounced off during its last advance.
type Contact int

const (
	ContactNone Contact = iota
	ContactWall
	ContactPaddle
	ContactBrick
)

// launchAngle is the direction of a freshly served ball: 45 degrees up and
// to the right.
const launchAngle = -math.Pi / 4

// Ball represents one ball. Velocity is in units per tick and its length
// always equals Speed.
type Ball struct {
	X, Y      float64 // Center
	DX, DY    float64
	Radius    float64
	BaseSpeed float64
	Speed     float64
	InPlay    bool // False while resting on the paddle

	slowFactor float64
	fastFactor float64
	modifier   Modifier
	contact    Contact
}

// NewBall creates an idle ball resting on the paddle, aimed along the
// serve direction at base speed.
func NewBall(cfg config.Ball, paddle *Paddle) *Ball {
	b := &Ball{
		Radius:     cfg.Radius,
		BaseSpeed:  cfg.Speed,
		Speed:      cfg.Speed,
		slowFactor: cfg.SlowFactor,
		fastFactor: cfg.FastFactor,
	}
	v := core.FromAngle(launchAngle, b.Speed)
	b.DX, b.DY = v.X, v.Y
	b.FollowPaddle(paddle)
	return b
}

// Circle returns the ball's collision shape.
func (b *Ball) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.Radius}
}

// Velocity returns the velocity vector.
func (b *Ball) Velocity() core.Vec {
	return core.Vec{X: b.DX, Y: b.DY}
}

// Contact returns what the ball bounced off during the last Advance.
func (b *Ball) Contact() Contact {
	return b.contact
}

// Modifier returns the pending speed modifier, if any.
func (b *Ball) Modifier() Modifier {
	return b.modifier
}

// FollowPaddle keeps an idle ball resting on the paddle center.
func (b *Ball) FollowPaddle(p *Paddle) {
	if b.InPlay {
		return
	}
	b.X = p.CenterX()
	b.Y = p.Y - b.Radius
}

// Launch puts an idle ball in play and reports whether it was idle.
func (b *Ball) Launch() bool {
	if b.InPlay {
		return false
	}
	b.InPlay = true
	return true
}

// Advance moves the ball one tick and resolves wall and paddle contact.
// It reports fell when the ball dropped past the floor; a falling ball is
// taken out of play and never bounces off the paddle in the same tick.
func (b *Ball) Advance(surfaceW, surfaceH float64, paddle *Paddle) (fell bool) {
	b.contact = ContactNone
	if !b.InPlay {
		return false
	}

	b.X += b.DX
	b.Y += b.DY

	// Side walls set the sign explicitly and pull the ball back inside
	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.DX = math.Abs(b.DX)
		b.contact = ContactWall
	} else if b.X+b.Radius > surfaceW {
		b.X = surfaceW - b.Radius
		b.DX = -math.Abs(b.DX)
		b.contact = ContactWall
	}

	// Ceiling
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.DY = math.Abs(b.DY)
		b.contact = ContactWall
	}

	// Floor before paddle
	if b.Y+b.Radius > surfaceH {
		b.InPlay = false
		return true
	}

	if hit, _ := core.CircleIntersectsRect(b.Circle(), paddle.Rect()); hit {
		v := core.PaddleLaunch(b.X, paddle.CenterX(), paddle.Width, b.Speed)
		b.DX, b.DY = v.X, v.Y
		b.contact = ContactPaddle
	}
	return false
}

// ApplyTimedModifier changes speed for slow and fast kinds, keeping the
// direction, and arms the revert. A new modifier replaces any pending
// one. Other kinds are ignored.
func (b *Ball) ApplyTimedModifier(kind Kind, now, duration time.Duration) {
	switch kind {
	case KindSlowBall:
		b.setSpeed(b.BaseSpeed * b.slowFactor)
	case KindFastBall:
		b.setSpeed(b.BaseSpeed * b.fastFactor)
	default:
		return
	}
	b.modifier = arm(kind, now, duration)
}

// Expire reverts a due modifier to base speed, keeping the direction, and
// reports whether it did.
func (b *Ball) Expire(now time.Duration) bool {
	if !b.modifier.Due(now) {
		return false
	}
	b.setSpeed(b.BaseSpeed)
	b.modifier = Modifier{}
	return true
}

// setSpeed rescales the velocity to the new speed.
func (b *Ball) setSpeed(speed float64) {
	b.Speed = speed
	l := math.Hypot(b.DX, b.DY)
	if l == 0 {
		v := core.FromAngle(launchAngle, speed)
		b.DX, b.DY = v.X, v.Y
		return
	}
	b.DX *= speed / l
	b.DY *= speed / l
}

// split returns an in-play copy of the ball turned by offset radians.
// The copy shares the pending modifier so both revert together.
func (b *Ball) split(offset float64) *Ball {
	nb := *b
	v := core.FromAngle(b.Velocity().Angle()+offset, b.Speed)
	nb.DX, nb.DY = v.X, v.Y
	nb.InPlay = true
	nb.contact = ContactNone
	return &nb
}

// reflect flips one velocity component. Used by bricks.
func (b *Ball) reflect(axis core.Axis) {
	switch axis {
	case core.AxisHorizontal:
		b.DX = -b.DX
	case core.AxisVertical:
		b.DY = -b.DY
	}
	b.contact = ContactBrick
}
