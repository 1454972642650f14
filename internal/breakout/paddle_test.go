package breakout

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestNewPaddleCentered(t *testing.T) {
	cfg := config.Default()
	p := NewPaddle(cfg)

	if p.X != 288 || p.Y != 450 || p.Width != 64 || p.Height != 16 {
		t.Errorf("paddle = %+v, expected 64x16 at (288, 450)", p.Rect())
	}
	if p.Size != SizeNormal {
		t.Errorf("Size = %v, expected normal", p.Size)
	}
}

func TestPaddleMovementClamped(t *testing.T) {
	cfg := config.Default()
	w := cfg.Surface.Width

	tests := []struct {
		name  string
		start float64
		move  func(p *Paddle)
		want  float64
	}{
		{"left by speed", 100, func(p *Paddle) { p.MoveLeft() }, 92},
		{"left clamped", 3, func(p *Paddle) { p.MoveLeft() }, 0},
		{"right by speed", 100, func(p *Paddle) { p.MoveRight(w) }, 108},
		{"right clamped", 574, func(p *Paddle) { p.MoveRight(w) }, 576},
		{"pointer centers", 0, func(p *Paddle) { p.MoveToPointer(320, w) }, 288},
		{"pointer past left", 300, func(p *Paddle) { p.MoveToPointer(-50, w) }, 0},
		{"pointer past right", 300, func(p *Paddle) { p.MoveToPointer(700, w) }, 576},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(cfg)
			p.X = tc.start
			tc.move(p)
			if p.X != tc.want {
				t.Errorf("X = %f, expected %f", p.X, tc.want)
			}
		})
	}
}

func TestPaddleTimedModifier(t *testing.T) {
	cfg := config.Default()
	p := NewPaddle(cfg)

	p.ApplyTimedModifier(KindExpandPaddle, 0, time.Second)
	if p.Width != 96 || p.Size != SizeExpanded {
		t.Errorf("expanded paddle = %f (%v), expected 96 (expanded)", p.Width, p.Size)
	}
	if p.CenterX() != 320 {
		t.Errorf("resize moved the center to %f", p.CenterX())
	}

	p.ApplyTimedModifier(KindShrinkPaddle, 500*time.Millisecond, time.Second)
	if p.Width != 48 || p.Size != SizeShrunk {
		t.Errorf("shrunk paddle = %f (%v), expected 48 (shrunk)", p.Width, p.Size)
	}

	if p.Expire(time.Second) {
		t.Error("replaced modifier should not expire at its old deadline")
	}
	if !p.Expire(1500 * time.Millisecond) {
		t.Fatal("modifier should expire at its deadline")
	}
	if p.Width != 64 || p.Size != SizeNormal {
		t.Errorf("reverted paddle = %f (%v), expected 64 (normal)", p.Width, p.Size)
	}
	if p.Expire(time.Hour) {
		t.Error("nothing left to expire")
	}
}

func TestPaddleResizeStaysInBounds(t *testing.T) {
	cfg := config.Default()
	p := NewPaddle(cfg)
	p.MoveToPointer(cfg.Surface.Width, cfg.Surface.Width)

	p.ApplyTimedModifier(KindExpandPaddle, 0, time.Second)
	if p.X < 0 || p.X+p.Width > cfg.Surface.Width {
		t.Errorf("expanded paddle out of bounds: x=%f w=%f", p.X, p.Width)
	}
	if p.X != cfg.Surface.Width-p.Width {
		t.Errorf("expanded paddle should hug the right wall, x=%f", p.X)
	}
}
