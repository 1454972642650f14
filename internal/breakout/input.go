package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Input is the stable input snapshot a session reads during one step.
// Left and Right are held states; Launch and Pause are edges.
type Input struct {
	Left       bool
	Right      bool
	HasPointer bool
	PointerX   float64 // Surface units, meaningful only with HasPointer
	Launch     bool    // Launch waiting balls, or restart a finished round
	Pause      bool    // Toggle pause
}

// InputFromFrame converts a platform input frame.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Left:       f.Has(core.ActionLeft),
		Right:      f.Has(core.ActionRight),
		HasPointer: f.HasPointer,
		PointerX:   f.PointerX,
		Launch:     f.Has(core.ActionLaunch),
		Pause:      f.Has(core.ActionPause),
	}
}
