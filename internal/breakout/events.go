package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// EventKind names something noteworthy that happened during a step.
type EventKind int

const (
	EventLaunch EventKind = iota
	EventWallBounce
	EventPaddleHit
	EventBrickDestroyed
	EventPowerUpSpawned
	EventPowerUpCollected
	EventModifierExpired
	EventLifeLost
	EventGameOver
	EventLevelComplete
	EventPaused
	EventResumed
	EventRestart
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLaunch:
		return "launch"
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleHit:
		return "paddle-hit"
	case EventBrickDestroyed:
		return "brick-destroyed"
	case EventPowerUpSpawned:
		return "powerup-spawned"
	case EventPowerUpCollected:
		return "powerup-collected"
	case EventModifierExpired:
		return "modifier-expired"
	case EventLifeLost:
		return "life-lost"
	case EventGameOver:
		return "game-over"
	case EventLevelComplete:
		return "level-complete"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by Step.
type Event struct {
	Kind    EventKind
	PowerUp Kind // Set for power-up and modifier events
	Points  int  // Set for brick events
}

// StepResult is returned by Session.Step.
type StepResult struct {
	State  core.GameState
	Events []Event
}

// Has reports whether an event of kind k happened during the step.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Count returns how many events of kind k happened during the step.
func (r StepResult) Count(k EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
