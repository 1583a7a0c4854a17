package game

import (
	"chosenoffset.com/noom/internal/core/movement"
)

// Scheduler owns the camera pose and decides, tick by tick, whether the view
// must be redrawn. Movement is resolved before the decision so a redraw in
// tick N always sees the pose of tick N.
type Scheduler struct {
	Mover *movement.Mover
	pose  movement.Pose

	started bool
	ticks   int
	redraws int
}

// NewScheduler starts a scheduler at pose. The first tick always redraws.
func NewScheduler(mover *movement.Mover, pose movement.Pose) *Scheduler {
	return &Scheduler{Mover: mover, pose: pose}
}

// Pose returns the current camera pose.
func (s *Scheduler) Pose() movement.Pose { return s.pose }

// Tick advances the pose by dt seconds of the given controls and reports
// whether the frame needs to be redrawn.
func (s *Scheduler) Tick(dt float64, controls Controls) bool {
	s.ticks++
	in := controls.Intents()
	redraw := !in.Zero() || !s.started
	s.started = true

	if !in.Zero() {
		s.Mover.Step(&s.pose, in, dt)
	}
	if redraw {
		s.redraws++
	}
	return redraw
}

// Ticks returns how many ticks have run.
func (s *Scheduler) Ticks() int { return s.ticks }

// Redraws returns how many ticks asked for a redraw.
func (s *Scheduler) Redraws() int { return s.redraws }
