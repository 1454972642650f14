package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// MaxBrickType is the highest brick type. Rows past it reuse it.
const MaxBrickType = 7

// Brick represents a single destructible brick.
type Brick struct {
	X, Y   float64 // Top-left corner
	W, H   float64
	Type   int // 0..MaxBrickType
	Points int
	Alive  bool
}

// Rect returns the brick bounds.
func (b *Brick) Rect() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// TestAndResolveCollision checks the ball against the brick. On contact it
// flips one component of the ball's velocity, destroys the brick and
// returns true. A destroyed brick never reports a hit.
func (b *Brick) TestAndResolveCollision(ball *Ball) bool {
	if !b.Alive {
		return false
	}
	hit, delta := core.CircleIntersectsRect(ball.Circle(), b.Rect())
	if !hit {
		return false
	}
	ball.reflect(core.ReflectAxis(delta))
	b.Alive = false
	return true
}

// BuildGrid lays out a full brick grid. Bricks are ordered column by
// column, top to bottom within each column; collision tests follow this
// order.
func BuildGrid(cfg config.Bricks) []*Brick {
	bricks := make([]*Brick, 0, cfg.Rows*cfg.Cols)
	for c := range cfg.Cols {
		for r := range cfg.Rows {
			typ := min(r, MaxBrickType)
			bricks = append(bricks, &Brick{
				X:      float64(c)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft,
				Y:      float64(r)*(cfg.Height+cfg.Padding) + cfg.OffsetTop,
				W:      cfg.Width,
				H:      cfg.Height,
				Type:   typ,
				Points: (typ + 1) * cfg.PointsPerType,
				Alive:  true,
			})
		}
	}
	return bricks
}

// countAlive returns the number of bricks still standing.
func countAlive(bricks []*Brick) int {
	n := 0
	for _, b := range bricks {
		if b.Alive {
			n++
		}
	}
	return n
}
