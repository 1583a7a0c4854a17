package column

import (
	"image/color"

	"chosenoffset.com/noom/internal/render"
)

// Run is a rectangle covering one or more adjacent columns with identical
// vertical span and color.
type Run struct {
	X, Width  int
	Y, Height int
	Color     color.RGBA
}

// continues reports whether next can be folded into r.
func (r Run) continues(next Run) bool {
	return next.Color == r.Color &&
		next.Y == r.Y &&
		next.Height == r.Height &&
		next.X == r.X+r.Width
}

// MergeState is the state of a RunMerger.
type MergeState uint8

const (
	// Empty means no run is pending.
	Empty MergeState = iota
	// Accumulating means a run is pending and may still grow.
	Accumulating
)

// RunMerger coalesces pushed column slices into as few FillRect calls as
// possible. Pushing a slice either extends the pending run or flushes it
// and starts a new one; Flush draws whatever is pending.
type RunMerger struct {
	dst     render.Canvas
	state   MergeState
	pending Run
	calls   int
}

// NewRunMerger returns an empty merger drawing into dst.
func NewRunMerger(dst render.Canvas) *RunMerger {
	return &RunMerger{dst: dst}
}

// State returns the current state.
func (m *RunMerger) State() MergeState { return m.state }

// Pending returns the pending run and whether there is one.
func (m *RunMerger) Pending() (Run, bool) {
	return m.pending, m.state == Accumulating
}

// DrawCalls returns the number of FillRect calls issued so far.
func (m *RunMerger) DrawCalls() int { return m.calls }

// Push adds one slice.
func (m *RunMerger) Push(r Run) {
	switch m.state {
	case Empty:
		m.pending = r
		m.state = Accumulating
	case Accumulating:
		if m.pending.continues(r) {
			m.pending.Width += r.Width
			return
		}
		m.emit()
		m.pending = r
	}
}

// Flush draws the pending run, if any, and returns to Empty.
func (m *RunMerger) Flush() {
	if m.state == Empty {
		return
	}
	m.emit()
	m.pending = Run{}
	m.state = Empty
}

func (m *RunMerger) emit() {
	p := m.pending
	m.dst.FillRect(p.X, p.Y, p.Width, p.Height, p.Color)
	m.calls++
}
