// Package breakout implements the brick breaker simulation: a paddle, one
// or more balls, a brick grid and falling power-ups, advanced one tick at a
// time by a Session.
package breakout

import (
	"io"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// GameID identifies breakout scores in storage.
const GameID = "breakout"

// splitAngle is the offset of each multi-ball copy from the reference ball.
const splitAngle = math.Pi / 6

// Status is the session state machine.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusGameOver
	StatusLevelComplete
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "gameover"
	case StatusLevelComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Session owns every entity of one game and advances them together.
// It is not safe for concurrent use.
type Session struct {
	cfg    config.Breakout
	seed   uint64
	rng    *rand.Rand
	frame  time.Duration
	logger *log.Logger

	paddle   *Paddle
	balls    []*Ball
	bricks   []*Brick
	powerUps []*PowerUp

	score  int
	lives  int
	status Status
	clock  time.Duration // Simulation time, advances only while playing
	tick   uint64

	events []Event
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed seeds the power-up generator.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithTickRate sets how much simulation time one Step covers.
func WithTickRate(rate int) Option {
	return func(s *Session) {
		s.frame = core.RuntimeConfig{TickRate: rate}.FrameDuration()
	}
}

// NewSession creates a session and resets it to a fresh game.
func NewSession(cfg config.Breakout, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		frame:  core.DefaultConfig().FrameDuration(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset starts a new game: fresh paddle, one idle ball, full grid, no
// power-ups, zero score, configured lives.
func (s *Session) Reset() {
	s.rng = rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))
	s.paddle = NewPaddle(s.cfg)
	s.balls = []*Ball{NewBall(s.cfg.Ball, s.paddle)}
	s.bricks = BuildGrid(s.cfg.Bricks)
	s.powerUps = nil
	s.score = 0
	s.lives = s.cfg.Session.Lives
	s.clock = 0
	s.tick = 0
	s.status = StatusPlaying
	s.logger.Debug("session reset", "lives", s.lives, "bricks", len(s.bricks))
}

// Step is the per-frame entry point. It handles the launch and pause
// edges, then advances the simulation clock by one frame and ticks when
// playing.
func (s *Session) Step(in Input) StepResult {
	s.events = nil

	if in.Launch {
		switch s.status {
		case StatusGameOver, StatusLevelComplete:
			s.Reset()
			s.emit(Event{Kind: EventRestart})
		case StatusPlaying:
			if s.LaunchWaitingBalls() > 0 {
				s.emit(Event{Kind: EventLaunch})
			}
		}
	}

	if in.Pause {
		s.TogglePause()
	}

	if s.status == StatusPlaying {
		s.clock += s.frame
		s.tick++
		s.Tick(in, s.clock)
	}

	return StepResult{State: s.State(), Events: s.events}
}

// Tick advances every entity by one tick at simulation time now. It does
// nothing unless the session is playing.
func (s *Session) Tick(in Input, now time.Duration) {
	if s.status != StatusPlaying {
		return
	}

	s.expireModifiers(now)
	s.movePaddle(in)

	w, h := s.cfg.Surface.Width, s.cfg.Surface.Height
	hadInPlay := s.inPlay() > 0
	fallen := 0
	for _, b := range s.balls {
		if !b.InPlay {
			b.FollowPaddle(s.paddle)
			continue
		}
		if b.Advance(w, h, s.paddle) {
			fallen++
			continue
		}
		switch b.Contact() {
		case ContactWall:
			s.emit(Event{Kind: EventWallBounce})
		case ContactPaddle:
			s.emit(Event{Kind: EventPaddleHit})
		}
		// At most one brick per ball per tick
		for _, br := range s.bricks {
			if br.TestAndResolveCollision(b) {
				s.destroyBrick(br)
				break
			}
		}
	}

	switch {
	case hadInPlay && s.inPlay() == 0:
		s.loseLife()
		if s.status != StatusPlaying {
			// Game over ends the tick: capsules still falling, including one
			// touching the paddle now, are never collected.
			return
		}
	case fallen > 0:
		// Idle and in-play balls never coexist, so only fallen balls go here
		s.balls = slices.DeleteFunc(s.balls, func(b *Ball) bool { return !b.InPlay })
	}

	s.advancePowerUps(now)

	if countAlive(s.bricks) == 0 {
		s.setStatus(StatusLevelComplete)
		s.emit(Event{Kind: EventLevelComplete})
	}
}

// ApplyPowerUpEffect applies a collected power-up at simulation time now.
func (s *Session) ApplyPowerUpEffect(kind Kind, now time.Duration) {
	d := s.cfg.PowerUps.Duration
	switch kind {
	case KindExpandPaddle, KindShrinkPaddle:
		s.paddle.ApplyTimedModifier(kind, now, d)
	case KindSlowBall, KindFastBall:
		for _, b := range s.balls {
			if b.InPlay {
				b.ApplyTimedModifier(kind, now, d)
			}
		}
	case KindMultiBall:
		s.splitBalls()
	case KindExtraLife:
		s.lives++
	}
	s.logger.Debug("power-up applied", "kind", kind, "lives", s.lives, "balls", len(s.balls))
}

// LaunchWaitingBalls puts every idle ball in play and returns how many
// were launched.
func (s *Session) LaunchWaitingBalls() int {
	n := 0
	for _, b := range s.balls {
		if b.Launch() {
			n++
		}
	}
	return n
}

// TogglePause flips between playing and paused. Finished sessions ignore it.
func (s *Session) TogglePause() {
	switch s.status {
	case StatusPlaying:
		s.setStatus(StatusPaused)
		s.emit(Event{Kind: EventPaused})
	case StatusPaused:
		s.setStatus(StatusPlaying)
		s.emit(Event{Kind: EventResumed})
	}
}

// State summarises the session for the platform layer.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:         s.score,
		Lives:         s.lives,
		GameOver:      s.status == StatusGameOver,
		LevelComplete: s.status == StatusLevelComplete,
		Paused:        s.status == StatusPaused,
	}
}

// Status returns the current state machine status.
func (s *Session) Status() Status { return s.status }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Clock returns the simulation time.
func (s *Session) Clock() time.Duration { return s.clock }

// Paddle returns the paddle.
func (s *Session) Paddle() *Paddle { return s.paddle }

// Balls returns the balls. Callers must not modify the slice.
func (s *Session) Balls() []*Ball { return s.balls }

// Bricks returns the bricks in collision order.
func (s *Session) Bricks() []*Brick { return s.bricks }

// PowerUps returns the falling power-ups.
func (s *Session) PowerUps() []*PowerUp { return s.powerUps }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Breakout { return s.cfg }

// BricksAlive returns the number of bricks left.
func (s *Session) BricksAlive() int { return countAlive(s.bricks) }

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) setStatus(st Status) {
	if s.status == st {
		return
	}
	s.logger.Debug("status changed", "from", s.status, "to", st, "score", s.score)
	s.status = st
}

func (s *Session) inPlay() int {
	n := 0
	for _, b := range s.balls {
		if b.InPlay {
			n++
		}
	}
	return n
}

func (s *Session) expireModifiers(now time.Duration) {
	if kind := s.paddle.Modifier().Kind; s.paddle.Expire(now) {
		s.emit(Event{Kind: EventModifierExpired, PowerUp: kind})
	}
	for _, b := range s.balls {
		if kind := b.Modifier().Kind; b.Expire(now) {
			s.emit(Event{Kind: EventModifierExpired, PowerUp: kind})
		}
	}
}

// movePaddle applies one tick of paddle input. A pointer overrides the
// keys, and right wins when both keys are held.
func (s *Session) movePaddle(in Input) {
	w := s.cfg.Surface.Width
	switch {
	case in.HasPointer:
		s.paddle.MoveToPointer(in.PointerX, w)
	case in.Right:
		s.paddle.MoveRight(w)
	case in.Left:
		s.paddle.MoveLeft()
	}
}

func (s *Session) destroyBrick(br *Brick) {
	s.score += br.Points
	s.emit(Event{Kind: EventBrickDestroyed, Points: br.Points})

	x := br.X + br.W/2 - s.cfg.PowerUps.Width/2
	y := br.Y + br.H
	if p, ok := GeneratePowerUp(s.rng, s.cfg.PowerUps, x, y); ok {
		s.powerUps = append(s.powerUps, p)
		s.emit(Event{Kind: EventPowerUpSpawned, PowerUp: p.Kind})
	}
}

// loseLife takes a life after the last ball fell. With lives left the
// balls collapse to a single idle ball on the paddle.
func (s *Session) loseLife() {
	s.lives--
	s.emit(Event{Kind: EventLifeLost})
	s.logger.Debug("life lost", "lives", s.lives, "score", s.score)

	if s.lives <= 0 {
		s.lives = 0
		s.setStatus(StatusGameOver)
		s.emit(Event{Kind: EventGameOver})
		return
	}
	s.balls = []*Ball{NewBall(s.cfg.Ball, s.paddle)}
}

func (s *Session) advancePowerUps(now time.Duration) {
	h := s.cfg.Surface.Height
	kept := s.powerUps[:0]
	for _, p := range s.powerUps {
		if !p.Advance(h) {
			continue
		}
		if p.TestPickup(s.paddle) {
			s.emit(Event{Kind: EventPowerUpCollected, PowerUp: p.Kind})
			s.ApplyPowerUpEffect(p.Kind, now)
			continue
		}
		kept = append(kept, p)
	}
	clear(s.powerUps[len(kept):])
	s.powerUps = kept
}

// splitBalls adds two balls turned ±30 degrees from the first in-play
// ball, at its current speed.
func (s *Session) splitBalls() {
	idx := slices.IndexFunc(s.balls, func(b *Ball) bool { return b.InPlay })
	if idx < 0 {
		return
	}
	ref := s.balls[idx]
	s.balls = append(s.balls, ref.split(-splitAngle), ref.split(splitAngle))
}
