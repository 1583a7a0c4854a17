// Package movement owns the camera pose and moves it through the grid with
// circle-vs-grid collision that slides along walls.
package movement

import (
	"math"

	"chosenoffset.com/noom/internal/core/trig"
	"chosenoffset.com/noom/internal/world/gridmap"
)

// Pose is the camera position in map units and its heading in whole degrees,
// always in [0, 360). Heading 0 faces +Y.
type Pose struct {
	X, Y  float64
	Angle int
}

// Intents are the per-tick control inputs, each in [-1, 1].
// Turn > 0 turns left, Forward > 0 walks ahead, Strafe > 0 steps right.
type Intents struct {
	Turn    float64
	Forward float64
	Strafe  float64
}

// Zero reports whether no control is active.
func (in Intents) Zero() bool {
	return in.Turn == 0 && in.Forward == 0 && in.Strafe == 0
}

// Mover applies intents to a pose.
type Mover struct {
	Map       *gridmap.Map
	Trig      *trig.Tables
	Radius    float64 // collision half-size in map units
	MoveSpeed float64 // map units per second
	TurnSpeed float64 // degrees per second
}

// Collides reports whether the square of half-size Radius centred on (x, y)
// overlaps a wall or door. Only the four corners are sampled, which is exact
// while Radius stays below half a cell.
func (m *Mover) Collides(x, y float64) bool {
	left := cell(x - m.Radius)
	right := cell(x + m.Radius)
	top := cell(y - m.Radius)
	bottom := cell(y + m.Radius)

	return m.blocked(left, top) ||
		m.blocked(right, top) ||
		m.blocked(left, bottom) ||
		m.blocked(right, bottom)
}

func (m *Mover) blocked(cx, cy int) bool {
	return m.Map.IsWall(cx, cy) || m.Map.IsDoor(cx, cy)
}

func cell(v float64) int {
	return int(math.Floor(v))
}

// TryMove moves p towards (nx, ny) one axis at a time: X at the current Y
// first, then Y at the resulting X. A blocked axis does not stop the other.
// It reports whether the pose changed.
func (m *Mover) TryMove(p *Pose, nx, ny float64) bool {
	moved := false
	if !m.Collides(nx, p.Y) {
		moved = moved || p.X != nx
		p.X = nx
	}
	if !m.Collides(p.X, ny) {
		moved = moved || p.Y != ny
		p.Y = ny
	}
	return moved
}

// Turn rotates p by turn*TurnSpeed*dt degrees, truncated to a whole degree
// and wrapped into [0, 360). Turning never collides.
func (m *Mover) Turn(p *Pose, turn, dt float64) {
	if turn == 0 {
		return
	}
	p.Angle = trig.Normalize(int(float64(p.Angle) + turn*m.TurnSpeed*dt))
}

// Translate walks p along its forward and right vectors.
func (m *Mover) Translate(p *Pose, forward, strafe, dt float64) bool {
	if forward == 0 && strafe == 0 {
		return false
	}
	fx, fy := m.Trig.Forward(p.Angle)
	rx, ry := m.Trig.Right(p.Angle)
	step := m.MoveSpeed * dt
	nx := p.X + (forward*fx+strafe*rx)*step
	ny := p.Y + (forward*fy+strafe*ry)*step
	return m.TryMove(p, nx, ny)
}

// Step applies one tick of intents: turn first, then translate using the
// updated heading.
func (m *Mover) Step(p *Pose, in Intents, dt float64) {
	m.Turn(p, in.Turn, dt)
	m.Translate(p, in.Forward, in.Strafe, dt)
}
