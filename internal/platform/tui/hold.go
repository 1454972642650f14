package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// holdWindow is how long a movement key counts as held after its last
// press. Terminals report no key releases, only auto-repeat presses, so a
// key is considered down while repeats keep arriving.
const holdWindow = 150 * time.Millisecond

// holdTracker turns repeated key presses into held states.
type holdTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// press records a key press. Pressing one direction releases the other.
func (h *holdTracker) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
	h.last[a] = now
}

// held reports whether a is still within the hold window at now.
func (h *holdTracker) held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	if !ok {
		return false
	}
	if now.Sub(t) > h.window {
		delete(h.last, a)
		return false
	}
	return true
}

// apply marks every held action in the frame.
func (h *holdTracker) apply(frame *core.InputFrame, now time.Time) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if h.held(a, now) {
			frame.Set(a)
		}
	}
}

// reset forgets every press.
func (h *holdTracker) reset() {
	clear(h.last)
}
