package config

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks every rule and reports all violations at once.
func (c Breakout) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid))
		}
	}

	check(c.Surface.Width > 0, "surface.width must be positive, got %v", c.Surface.Width)
	check(c.Surface.Height > 0, "surface.height must be positive, got %v", c.Surface.Height)

	check(c.Paddle.Width > 0, "paddle.width must be positive, got %v", c.Paddle.Width)
	check(c.Paddle.Height > 0, "paddle.height must be positive, got %v", c.Paddle.Height)
	check(c.Paddle.Width <= c.Surface.Width, "paddle.width %v exceeds surface.width %v", c.Paddle.Width, c.Surface.Width)
	check(c.Paddle.Y >= 0 && c.Paddle.Y+c.Paddle.Height <= c.Surface.Height,
		"paddle.y %v places the paddle outside the surface", c.Paddle.Y)
	check(c.Paddle.Speed > 0, "paddle.speed must be positive, got %v", c.Paddle.Speed)
	check(c.Paddle.ExpandFactor > 0, "paddle.expand_factor must be positive, got %v", c.Paddle.ExpandFactor)
	check(c.Paddle.ShrinkFactor > 0, "paddle.shrink_factor must be positive, got %v", c.Paddle.ShrinkFactor)

	check(c.Ball.Radius > 0, "ball.radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.Speed > 0, "ball.speed must be positive, got %v", c.Ball.Speed)
	check(c.Ball.SlowFactor > 0, "ball.slow_factor must be positive, got %v", c.Ball.SlowFactor)
	check(c.Ball.FastFactor > 0, "ball.fast_factor must be positive, got %v", c.Ball.FastFactor)

	check(c.Bricks.Rows > 0, "bricks.rows must be positive, got %d", c.Bricks.Rows)
	check(c.Bricks.Cols > 0, "bricks.cols must be positive, got %d", c.Bricks.Cols)
	check(c.Bricks.Width > 0, "bricks.width must be positive, got %v", c.Bricks.Width)
	check(c.Bricks.Height > 0, "bricks.height must be positive, got %v", c.Bricks.Height)
	check(c.Bricks.Padding >= 0, "bricks.padding must not be negative, got %v", c.Bricks.Padding)
	check(c.Bricks.OffsetTop >= 0, "bricks.offset_top must not be negative, got %v", c.Bricks.OffsetTop)
	check(c.Bricks.OffsetLeft >= 0, "bricks.offset_left must not be negative, got %v", c.Bricks.OffsetLeft)
	check(c.Bricks.PointsPerType >= 0, "bricks.points_per_type must not be negative, got %d", c.Bricks.PointsPerType)

	check(c.PowerUps.Chance >= 0 && c.PowerUps.Chance <= 1, "powerups.chance must be within [0, 1], got %v", c.PowerUps.Chance)
	check(c.PowerUps.FallSpeed > 0, "powerups.fall_speed must be positive, got %v", c.PowerUps.FallSpeed)
	check(c.PowerUps.Width > 0, "powerups.width must be positive, got %v", c.PowerUps.Width)
	check(c.PowerUps.Height > 0, "powerups.height must be positive, got %v", c.PowerUps.Height)
	check(c.PowerUps.Duration > 0, "powerups.duration must be positive, got %v", c.PowerUps.Duration)
	check(len(c.PowerUps.Kinds) > 0, "powerups.kinds must not be empty")
	known := PowerUpKinds()
	for _, k := range c.PowerUps.Kinds {
		check(slices.Contains(known, k), "powerups.kinds: unknown kind %q", k)
	}

	check(c.Session.Lives > 0, "session.lives must be positive, got %d", c.Session.Lives)

	return errors.Join(errs...)
}
