// Package trig precomputes the lookup tables the raycaster uses every frame:
// sine and cosine by whole degree, and the fixed angular offset of each
// screen column inside the field of view.
package trig

import "math"

// Degrees in a full turn.
const Degrees = 360

// Tables is immutable once built and may be shared between the renderer and
// the movement code.
type Tables struct {
	sin [Degrees]float64
	cos [Degrees]float64

	// RaySin and RayCos hold sin/cos of each column's offset from the
	// view center.
	RaySin []float64
	RayCos []float64

	fov             float64
	projectionPlane float64
}

// New builds the tables for the given number of ray columns, horizontal field
// of view in degrees and physical screen width in pixels.
func New(columns int, fovDeg float64, screenWidth int) *Tables {
	if columns < 1 {
		columns = 1
	}
	t := &Tables{
		RaySin: make([]float64, columns),
		RayCos: make([]float64, columns),
		fov:    fovDeg * math.Pi / 180,
	}
	for a := 0; a < Degrees; a++ {
		rad := float64(a) * math.Pi / 180
		t.sin[a] = math.Sin(rad)
		t.cos[a] = math.Cos(rad)
	}
	for i := 0; i < columns; i++ {
		u := (float64(i) + 0.5) / float64(columns)
		off := (u - 0.5) * t.fov
		t.RaySin[i] = math.Sin(off)
		t.RayCos[i] = math.Cos(off)
	}
	t.projectionPlane = (float64(screenWidth) / 2) / math.Tan(t.fov/2)
	return t
}

// Normalize wraps any whole degree into [0, 360).
func Normalize(deg int) int {
	deg %= Degrees
	if deg < 0 {
		deg += Degrees
	}
	return deg
}

// Sin returns the sine of a whole degree.
func (t *Tables) Sin(deg int) float64 { return t.sin[Normalize(deg)] }

// Cos returns the cosine of a whole degree.
func (t *Tables) Cos(deg int) float64 { return t.cos[Normalize(deg)] }

// Columns returns the number of ray columns the tables were built for.
func (t *Tables) Columns() int { return len(t.RaySin) }

// FOV returns the horizontal field of view in radians.
func (t *Tables) FOV() float64 { return t.fov }

// ProjectionPlane returns the distance in pixels from the eye to the
// projection plane: (screenWidth/2) / tan(fov/2).
func (t *Tables) ProjectionPlane() float64 { return t.projectionPlane }

// Forward returns the unit vector the camera faces at the given heading.
// Heading 0 looks down +Y.
func (t *Tables) Forward(deg int) (float64, float64) {
	return -t.Sin(deg), t.Cos(deg)
}

// Right returns the unit vector pointing to the camera's right.
func (t *Tables) Right(deg int) (float64, float64) {
	return t.Cos(deg), t.Sin(deg)
}

// RayDir rotates the column's fixed offset by the camera heading.
func (t *Tables) RayDir(deg, column int) (float64, float64) {
	ca, sa := t.Cos(deg), t.Sin(deg)
	rs, rc := t.RaySin[column], t.RayCos[column]
	return ca*rs - sa*rc, sa*rs + ca*rc
}
