package breakout

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRenderFreshSession(t *testing.T) {
	s := newTestSession(t, nil)
	screen := core.NewScreen(80, 24)
	skin := DefaultSkin()

	s.Render(screen, skin)

	hud := screen.Row(0)
	for _, want := range []string{"Score: 0", "Lives: 3", "Bricks: 112"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q does not contain %q", hud, want)
		}
	}

	// Brick (30, 60) 40x16 scales to columns 3..7 on row 3
	for x := 3; x < 8; x++ {
		c := screen.GetCell(x, 3)
		if c.Rune != skin.Bricks[0].Glyph || c.Color != skin.Bricks[0].Color {
			t.Errorf("cell (%d, 3) = %+v, expected brick type 0", x, c)
		}
	}
	if c := screen.GetCell(8, 3); c.Rune != ' ' {
		t.Errorf("padding cell (8, 3) = %q, expected blank", c.Rune)
	}

	// Paddle (288, 450) 64 wide scales to columns 36..43 on row 22
	if c := screen.GetCell(36, 22); c.Rune != skin.Paddle[SizeNormal].Glyph {
		t.Errorf("paddle cell = %q", c.Rune)
	}

	if !strings.Contains(screen.Row(23), "SPACE to launch") {
		t.Errorf("bottom row %q should prompt for launch", screen.Row(23))
	}
	if !strings.ContainsRune(screen.String(), skin.Ball.Glyph) {
		t.Error("ball not drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := newTestSession(t, nil)
	screen := core.NewScreen(20, 8)

	s.Render(screen, DefaultSkin())

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Session)
		want  string
	}{
		{"paused", func(s *Session) { s.TogglePause() }, "PAUSED"},
		{"game over", func(s *Session) { s.status = StatusGameOver }, "GAME OVER"},
		{"level complete", func(s *Session) { s.status = StatusLevelComplete }, "LEVEL COMPLETE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, nil)
			tc.setup(s)
			screen := core.NewScreen(80, 24)
			s.Render(screen, DefaultSkin())
			if !strings.Contains(screen.String(), tc.want) {
				t.Errorf("expected %q overlay", tc.want)
			}
		})
	}
}

func TestRenderModifiersInHUD(t *testing.T) {
	s := newTestSession(t, nil)
	s.LaunchWaitingBalls()
	s.ApplyPowerUpEffect(KindExpandPaddle, 0)
	s.ApplyPowerUpEffect(KindFastBall, 0)
	s.clock = 2500 * time.Millisecond

	screen := core.NewScreen(80, 24)
	s.Render(screen, DefaultSkin())

	hud := screen.Row(0)
	for _, want := range []string{"Wide 8s", "Fast 8s"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q does not contain %q", hud, want)
		}
	}
}

func TestPointerToWorld(t *testing.T) {
	s := newTestSession(t, nil)

	tests := []struct {
		col, screenW int
		want         float64
	}{
		{0, 80, 4},
		{40, 80, 324},
		{79, 80, 636},
		{0, 0, 0},
	}

	for _, tc := range tests {
		if got := s.PointerToWorld(tc.col, tc.screenW); got != tc.want {
			t.Errorf("PointerToWorld(%d, %d) = %f, expected %f", tc.col, tc.screenW, got, tc.want)
		}
	}
}
