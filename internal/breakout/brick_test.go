package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestBuildGrid(t *testing.T) {
	cfg := config.Default().Bricks
	bricks := BuildGrid(cfg)

	if len(bricks) != 8*14 {
		t.Fatalf("len = %d, expected 112", len(bricks))
	}

	// Column-major: the first eight bricks make up column zero
	for r := range 8 {
		b := bricks[r]
		if b.X != 30 {
			t.Errorf("brick %d X = %f, expected 30", r, b.X)
		}
		if want := float64(r)*20 + 60; b.Y != want {
			t.Errorf("brick %d Y = %f, expected %f", r, b.Y, want)
		}
		if b.Type != r {
			t.Errorf("brick %d Type = %d, expected %d", r, b.Type, r)
		}
		if want := (r + 1) * 10; b.Points != want {
			t.Errorf("brick %d Points = %d, expected %d", r, b.Points, want)
		}
	}

	second := bricks[8]
	if second.X != 74 || second.Y != 60 {
		t.Errorf("first brick of column 1 at (%f, %f), expected (74, 60)", second.X, second.Y)
	}

	for i, b := range bricks {
		if !b.Alive {
			t.Errorf("brick %d should start alive", i)
		}
	}
}

func TestBuildGridCapsType(t *testing.T) {
	cfg := config.Default().Bricks
	cfg.Rows = 10
	cfg.Cols = 1
	bricks := BuildGrid(cfg)

	if got := bricks[9].Type; got != MaxBrickType {
		t.Errorf("row 9 Type = %d, expected %d", got, MaxBrickType)
	}
}

func TestBrickCollision(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		dx, dy float64
		wantDX float64
		wantDY float64
	}{
		{"from below flips y", 50, 82, 1, -4, 1, 4},
		{"from the left flips x", 25, 68, 4, 1, -4, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			brick := BuildGrid(cfg.Bricks)[0] // 40x16 at (30, 60)
			ball := NewBall(cfg.Ball, NewPaddle(cfg))
			ball.Launch()
			ball.X, ball.Y = tc.x, tc.y
			ball.DX, ball.DY = tc.dx, tc.dy
			ball.Speed = math.Hypot(tc.dx, tc.dy)

			if !brick.TestAndResolveCollision(ball) {
				t.Fatal("expected a hit")
			}
			if ball.DX != tc.wantDX || ball.DY != tc.wantDY {
				t.Errorf("velocity = (%f, %f), expected (%f, %f)", ball.DX, ball.DY, tc.wantDX, tc.wantDY)
			}
			assertSpeed(t, ball, ball.Speed)
			if brick.Alive {
				t.Error("brick should be destroyed")
			}

			// A destroyed brick is never hit again
			before := ball.Velocity()
			if brick.TestAndResolveCollision(ball) {
				t.Error("second test should report no hit")
			}
			if ball.Velocity() != before {
				t.Error("destroyed brick must not touch the ball")
			}
		})
	}
}

func TestBrickMiss(t *testing.T) {
	cfg := config.Default()
	brick := BuildGrid(cfg.Bricks)[0]
	ball := NewBall(cfg.Ball, NewPaddle(cfg))
	ball.X, ball.Y = 200, 300

	if brick.TestAndResolveCollision(ball) {
		t.Error("distant ball should not hit")
	}
	if !brick.Alive {
		t.Error("brick should survive a miss")
	}
}
