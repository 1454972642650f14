package breakout

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// newTestSession builds a session without random power-up drops unless the
// caller turns them back on.
func newTestSession(t *testing.T, mutate func(*config.Breakout), opts ...Option) *Session {
	t.Helper()
	cfg := config.Default()
	cfg.PowerUps.Chance = 0
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return NewSession(cfg, opts...)
}

// dropBall sends the first ball straight into the floor on the next tick.
func dropBall(b *Ball) {
	b.InPlay = true
	b.X, b.Y = 50, 472
	b.DX, b.DY = 0, b.Speed
}

func TestFreshSession(t *testing.T) {
	s := newTestSession(t, nil)

	if s.Lives() != 3 {
		t.Errorf("Lives = %d, expected 3", s.Lives())
	}
	if s.Score() != 0 {
		t.Errorf("Score = %d, expected 0", s.Score())
	}
	if s.Status() != StatusPlaying {
		t.Errorf("Status = %v, expected playing", s.Status())
	}
	if s.BricksAlive() != 8*14 {
		t.Errorf("BricksAlive = %d, expected 112", s.BricksAlive())
	}
	if len(s.Balls()) != 1 || s.Balls()[0].InPlay {
		t.Error("expected exactly one idle ball")
	}
	if len(s.PowerUps()) != 0 {
		t.Error("expected no power-ups")
	}
}

func TestLifeLostWhenLastBallFalls(t *testing.T) {
	s := newTestSession(t, nil)
	dropBall(s.Balls()[0])

	res := s.Step(Input{})

	if !res.Has(EventLifeLost) {
		t.Error("expected a life-lost event")
	}
	if s.Lives() != 2 {
		t.Errorf("Lives = %d, expected 2", s.Lives())
	}
	if s.Status() != StatusPlaying {
		t.Errorf("Status = %v, expected playing", s.Status())
	}
	balls := s.Balls()
	if len(balls) != 1 {
		t.Fatalf("expected 1 ball, got %d", len(balls))
	}
	b := balls[0]
	if b.InPlay {
		t.Error("replacement ball should be idle")
	}
	p := s.Paddle()
	if b.X != p.CenterX() || b.Y != p.Y-b.Radius {
		t.Errorf("replacement ball at (%f, %f), expected on the paddle", b.X, b.Y)
	}
	if b.Speed != s.Config().Ball.Speed {
		t.Errorf("replacement ball speed = %f, expected base speed", b.Speed)
	}
}

func TestNoLifeLostWhileOtherBallsInPlay(t *testing.T) {
	s := newTestSession(t, nil)
	s.LaunchWaitingBalls()
	s.ApplyPowerUpEffect(KindMultiBall, s.Clock())
	if len(s.Balls()) != 3 {
		t.Fatalf("expected 3 balls, got %d", len(s.Balls()))
	}

	dropBall(s.Balls()[1])
	res := s.Step(Input{})

	if res.Has(EventLifeLost) || s.Lives() != 3 {
		t.Errorf("Lives = %d, expected 3 while balls remain", s.Lives())
	}
	if len(s.Balls()) != 2 {
		t.Errorf("fallen multi-ball should be removed, %d balls left", len(s.Balls()))
	}
	for _, b := range s.Balls() {
		if !b.InPlay {
			t.Error("remaining balls should still be in play")
		}
	}
}

func TestIdleBallDoesNotCostLife(t *testing.T) {
	s := newTestSession(t, nil)
	for range 120 {
		s.Step(Input{Right: true})
	}
	if s.Lives() != 3 {
		t.Errorf("idle play should never lose lives, Lives = %d", s.Lives())
	}
	b := s.Balls()[0]
	if b.X != s.Paddle().CenterX() {
		t.Error("idle ball should ride the paddle")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	s := newTestSession(t, func(c *config.Breakout) { c.Session.Lives = 1 })
	dropBall(s.Balls()[0])

	res := s.Step(Input{})
	if !res.State.GameOver || s.Status() != StatusGameOver {
		t.Fatalf("Status = %v, expected game over", s.Status())
	}
	if !res.Has(EventGameOver) {
		t.Error("expected a game-over event")
	}

	clock := s.Clock()
	s.Step(Input{Right: true, Pause: true})
	if s.Clock() != clock {
		t.Error("clock advanced after game over")
	}
	if s.Status() != StatusGameOver {
		t.Error("pause must be ignored after game over")
	}

	res = s.Step(Input{Launch: true})
	if !res.Has(EventRestart) {
		t.Error("expected a restart event")
	}
	if s.Status() != StatusPlaying || s.Lives() != 1 || s.Score() != 0 {
		t.Errorf("after restart: status=%v lives=%d score=%d", s.Status(), s.Lives(), s.Score())
	}
	if s.BricksAlive() != 8*14 {
		t.Errorf("grid not rebuilt, %d bricks", s.BricksAlive())
	}
}

func TestGameOverSkipsPowerUpsInSameTick(t *testing.T) {
	s := newTestSession(t, func(c *config.Breakout) { c.Session.Lives = 1 })
	dropBall(s.Balls()[0])
	s.powerUps = append(s.powerUps, &PowerUp{
		X: 300, Y: 430, W: 24, H: 12,
		Kind:      KindExtraLife,
		Active:    true,
		fallSpeed: 10,
	})

	res := s.Step(Input{})

	if s.Status() != StatusGameOver || s.Lives() != 0 {
		t.Fatalf("status=%v lives=%d, expected game over with 0 lives", s.Status(), s.Lives())
	}
	if res.Has(EventPowerUpCollected) {
		t.Error("no power-up may be collected in the tick that ends the game")
	}
	if p := s.PowerUps()[0]; p.Y != 430 || !p.Active {
		t.Errorf("capsule moved or was consumed: y=%f active=%v", p.Y, p.Active)
	}
}

func TestExtraLife(t *testing.T) {
	s := newTestSession(t, nil)
	s.ApplyPowerUpEffect(KindExtraLife, 0)
	if s.Lives() != 4 {
		t.Errorf("Lives = %d, expected 4", s.Lives())
	}
}

func TestLevelCompleteHaltsSimulation(t *testing.T) {
	s := newTestSession(t, nil)
	for _, br := range s.Bricks()[1:] {
		br.Alive = false
	}
	b := s.Balls()[0]
	b.InPlay = true
	b.X, b.Y = 50, 86
	b.DX, b.DY = 0, -4

	res := s.Step(Input{})

	if !res.Has(EventBrickDestroyed) {
		t.Fatal("expected the last brick to be destroyed")
	}
	if !res.State.LevelComplete || s.Status() != StatusLevelComplete {
		t.Fatalf("Status = %v, expected level complete", s.Status())
	}
	if s.Score() != 10 {
		t.Errorf("Score = %d, expected 10", s.Score())
	}

	x, y := b.X, b.Y
	px := s.Paddle().X
	clock := s.Clock()
	for range 10 {
		s.Step(Input{Left: true})
	}
	if b.X != x || b.Y != y {
		t.Error("ball moved after level complete")
	}
	if s.Paddle().X != px {
		t.Error("paddle moved after level complete")
	}
	if s.Clock() != clock {
		t.Error("clock advanced after level complete")
	}
}

func TestOneBrickPerBallPerTick(t *testing.T) {
	s := newTestSession(t, nil)
	// Between columns 0 and 1 the ball touches both bottom-row bricks
	b := s.Balls()[0]
	b.InPlay = true
	b.X, b.Y = 72, 220
	b.DX, b.DY = 0, -4

	res := s.Step(Input{})
	if n := res.Count(EventBrickDestroyed); n != 1 {
		t.Errorf("destroyed %d bricks in one tick, expected 1", n)
	}
}

func TestMultiBall(t *testing.T) {
	s := newTestSession(t, nil)
	s.LaunchWaitingBalls()
	s.ApplyPowerUpEffect(KindFastBall, 0)
	ref := s.Balls()[0]
	refSpeed := ref.Speed
	refAngle := math.Atan2(ref.DY, ref.DX)

	s.ApplyPowerUpEffect(KindMultiBall, 0)

	balls := s.Balls()
	if len(balls) != 3 {
		t.Fatalf("expected 3 balls, got %d", len(balls))
	}
	for i, b := range balls {
		if !b.InPlay {
			t.Errorf("ball %d not in play", i)
		}
		if math.Abs(b.Speed-refSpeed) > eps || math.Abs(b.Velocity().Len()-refSpeed) > 1e-6 {
			t.Errorf("ball %d speed = %f, expected %f", i, b.Speed, refSpeed)
		}
	}
	for i, off := range []float64{-math.Pi / 6, math.Pi / 6} {
		got := math.Atan2(balls[i+1].DY, balls[i+1].DX)
		if math.Abs(got-(refAngle+off)) > 1e-9 {
			t.Errorf("split %d angle = %f, expected %f", i, got, refAngle+off)
		}
	}
}

func TestMultiBallWithoutBallInPlay(t *testing.T) {
	s := newTestSession(t, nil)
	s.ApplyPowerUpEffect(KindMultiBall, 0)
	if len(s.Balls()) != 1 {
		t.Errorf("multi-ball with only an idle ball should do nothing, got %d balls", len(s.Balls()))
	}
}

func TestSpeedModifiersOnlyAffectBallsInPlay(t *testing.T) {
	s := newTestSession(t, nil)
	s.ApplyPowerUpEffect(KindSlowBall, 0)
	if b := s.Balls()[0]; b.Speed != b.BaseSpeed || b.Modifier().Active {
		t.Error("idle ball should not be slowed")
	}
}

func TestModifierRevertsAtExpiry(t *testing.T) {
	s := newTestSession(t, func(c *config.Breakout) {
		c.Bricks.Rows = 1
		c.PowerUps.Duration = time.Second
	}, WithTickRate(50))

	s.Step(Input{Launch: true})
	start := s.Clock()
	s.ApplyPowerUpEffect(KindFastBall, start)
	s.ApplyPowerUpEffect(KindExpandPaddle, start)

	for i := 1; i < 50; i++ {
		res := s.Step(Input{})
		if res.Has(EventModifierExpired) {
			t.Fatalf("modifier expired early at step %d (clock %v)", i, s.Clock())
		}
	}
	if s.Balls()[0].Speed != 6 || s.Paddle().Width != 96 {
		t.Fatalf("modifiers not active before expiry: speed=%f width=%f", s.Balls()[0].Speed, s.Paddle().Width)
	}

	res := s.Step(Input{})
	if s.Clock()-start != time.Second {
		t.Fatalf("clock = %v after 50 steps", s.Clock()-start)
	}
	if n := res.Count(EventModifierExpired); n != 2 {
		t.Errorf("expected 2 expiries, got %d", n)
	}
	if s.Balls()[0].Speed != 4 {
		t.Errorf("ball speed = %f, expected base speed", s.Balls()[0].Speed)
	}
	if s.Paddle().Width != 64 {
		t.Errorf("paddle width = %f, expected base width", s.Paddle().Width)
	}
}

func TestPauseStopsClock(t *testing.T) {
	s := newTestSession(t, nil)
	s.Step(Input{Launch: true})
	clock := s.Clock()
	b := s.Balls()[0]
	x, y := b.X, b.Y

	res := s.Step(Input{Pause: true})
	if !res.State.Paused || !res.Has(EventPaused) {
		t.Fatal("expected paused state")
	}
	for range 5 {
		s.Step(Input{Right: true, Launch: true})
	}
	if s.Clock() != clock || b.X != x || b.Y != y {
		t.Error("simulation advanced while paused")
	}

	res = s.Step(Input{Pause: true})
	if res.State.Paused || !res.Has(EventResumed) {
		t.Fatal("expected resumed state")
	}
	if s.Clock() <= clock {
		t.Error("clock should advance after resume")
	}
}

func TestPaddleInputPrecedence(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want float64
	}{
		{"left", Input{Left: true}, 280},
		{"right", Input{Right: true}, 296},
		{"right wins over left", Input{Left: true, Right: true}, 296},
		{"pointer overrides keys", Input{Left: true, HasPointer: true, PointerX: 100}, 68},
		{"nothing", Input{}, 288},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, nil)
			s.Step(tc.in)
			if got := s.Paddle().X; got != tc.want {
				t.Errorf("paddle X = %f, expected %f", got, tc.want)
			}
			if b := s.Balls()[0]; b.X != s.Paddle().CenterX() {
				t.Error("idle ball should follow the paddle in the same tick")
			}
		})
	}
}

func TestPowerUpCollectedAndApplied(t *testing.T) {
	s := newTestSession(t, nil)
	s.powerUps = append(s.powerUps, &PowerUp{
		X: 300, Y: 430, W: 24, H: 12,
		Kind:      KindExpandPaddle,
		Active:    true,
		fallSpeed: 10,
	})

	res := s.Step(Input{})

	if !res.Has(EventPowerUpCollected) {
		t.Fatal("expected a collection event")
	}
	if s.Paddle().Size != SizeExpanded {
		t.Errorf("paddle Size = %v, expected expanded", s.Paddle().Size)
	}
	if len(s.PowerUps()) != 0 {
		t.Errorf("collected power-up should be dropped, %d left", len(s.PowerUps()))
	}
}

func TestPowerUpSpawnsUnderBrick(t *testing.T) {
	s := newTestSession(t, func(c *config.Breakout) { c.PowerUps.Chance = 1 })
	b := s.Balls()[0]
	b.InPlay = true
	b.X, b.Y = 50, 86
	b.DX, b.DY = 0, -4

	res := s.Step(Input{})

	if !res.Has(EventPowerUpSpawned) {
		t.Fatal("expected a power-up to spawn")
	}
	p := s.PowerUps()[0]
	// Brick (30, 60) 40x16: centered under it, one tick of fall already applied
	if p.X != 38 || p.Y != 76+s.Config().PowerUps.FallSpeed {
		t.Errorf("power-up at (%f, %f), expected (38, %f)", p.X, p.Y, 76+s.Config().PowerUps.FallSpeed)
	}
}

func TestStepAdvancesClockByFrame(t *testing.T) {
	s := newTestSession(t, nil, WithTickRate(50))
	for range 10 {
		s.Step(Input{})
	}
	if s.Clock() != 200*time.Millisecond {
		t.Errorf("Clock = %v, expected 200ms", s.Clock())
	}
}

func TestInputFromFrame(t *testing.T) {
	f := core.NewInputFrame()
	f.Set(core.ActionRight)
	f.Set(core.ActionLaunch)
	f.SetPointer(123)

	in := InputFromFrame(f)
	want := Input{Right: true, Launch: true, HasPointer: true, PointerX: 123}
	if in != want {
		t.Errorf("InputFromFrame() = %+v, expected %+v", in, want)
	}
}

func TestSessionDeterminism(t *testing.T) {
	inputs := make([]Input, 1500)
	for i := range inputs {
		switch {
		case i == 10:
			inputs[i].Launch = true
		case i%90 < 40:
			inputs[i].Right = true
		case i%90 < 80:
			inputs[i].Left = true
		}
		if i%400 == 399 {
			inputs[i].Launch = true
		}
	}

	run := func() Snapshot {
		s := newTestSession(t, func(c *config.Breakout) { c.PowerUps.Chance = 0.5 }, WithSeed(12345))
		for _, in := range inputs {
			s.Step(in)
		}
		return s.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}
