package breakout

import "math"

// Snapshot contains the complete observable session state.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick        uint64
	ClockNanos  int64
	Status      string
	Score       int
	Lives       int
	PaddleX     float64
	PaddleWidth float64
	PaddleSize  int

	// Each ball is 6 values: X, Y, DX, DY, Speed, InPlay
	BallCount int
	BallData  []float64

	// Each power-up is 4 values: Kind, X, Y, Active
	PowerUpCount int
	PowerUpData  []float64

	// One entry per brick in collision order, 1 when alive
	BrickData []int
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	ballData := make([]float64, 0, len(s.balls)*6)
	for _, b := range s.balls {
		ballData = append(ballData, b.X, b.Y, b.DX, b.DY, b.Speed, boolF(b.InPlay))
	}

	powerUpData := make([]float64, 0, len(s.powerUps)*4)
	for _, p := range s.powerUps {
		powerUpData = append(powerUpData, float64(p.Kind), p.X, p.Y, boolF(p.Active))
	}

	brickData := make([]int, len(s.bricks))
	for i, br := range s.bricks {
		if br.Alive {
			brickData[i] = 1
		}
	}

	return Snapshot{
		Tick:         s.tick,
		ClockNanos:   int64(s.clock),
		Status:       s.status.String(),
		Score:        s.score,
		Lives:        s.lives,
		PaddleX:      s.paddle.X,
		PaddleWidth:  s.paddle.Width,
		PaddleSize:   int(s.paddle.Size),
		BallCount:    len(s.balls),
		BallData:     ballData,
		PowerUpCount: len(s.powerUps),
		PowerUpData:  powerUpData,
		BrickData:    brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.ClockNanos) //#nosec G115 -- hash computation
	for _, r := range snap.Status {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleSize)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpCount) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleWidth)

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.PowerUpData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
