package game

import (
	"chosenoffset.com/noom/internal/core/movement"
	"chosenoffset.com/noom/internal/render"
)

// Controls is a snapshot of which controls are held during one tick.
type Controls [render.ControlCount]bool

// PollControls reads every control once.
func PollControls(input render.InputManager, bindings map[render.Control][]render.Key) Controls {
	var c Controls
	for i := range c {
		c[i] = render.IsControlActive(input, bindings, render.Control(i))
	}
	return c
}

// Intents folds opposing controls into signed intents. Holding both
// directions of a pair cancels out.
func (c Controls) Intents() movement.Intents {
	var in movement.Intents
	if c[render.TurnLeft] {
		in.Turn++
	}
	if c[render.TurnRight] {
		in.Turn--
	}
	if c[render.MoveForward] {
		in.Forward++
	}
	if c[render.MoveBackward] {
		in.Forward--
	}
	if c[render.StrafeLeft] {
		in.Strafe--
	}
	if c[render.StrafeRight] {
		in.Strafe++
	}
	return in
}
