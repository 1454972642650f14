package breakout

import "time"

// Modifier is a pending timed effect on a paddle or ball.
// The zero value is an inactive modifier.
type Modifier struct {
	Kind   Kind
	Until  time.Duration // Simulation time at which the effect reverts
	Active bool
}

// arm returns a modifier of the given kind expiring duration after now.
func arm(kind Kind, now, duration time.Duration) Modifier {
	return Modifier{Kind: kind, Until: now + duration, Active: true}
}

// Due reports whether the modifier is active and has reached its expiry.
func (m Modifier) Due(now time.Duration) bool {
	return m.Active && now >= m.Until
}

// Remaining returns how long the modifier still has to run.
func (m Modifier) Remaining(now time.Duration) time.Duration {
	if !m.Active || now >= m.Until {
		return 0
	}
	return m.Until - now
}
