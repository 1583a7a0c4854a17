// Package raycast marches rays through the grid map cell by cell (DDA) and
// reports the perpendicular distance to the first wall or door.
package raycast

import (
	"math"

	"chosenoffset.com/noom/internal/world/gridmap"
)

const (
	// DefaultMaxSteps bounds the number of grid cells a single ray visits.
	DefaultMaxSteps = 64

	// NoHit is the distance reported when a ray runs out of steps.
	NoHit = 1e9

	// MinDistance is the floor applied before projecting a distance.
	MinDistance = 0.05

	// epsilon replaces direction components that are too close to zero.
	epsilon = 1e-9
)

// Side tells which family of grid lines the ray crossed last.
type Side uint8

const (
	// SideX means the ray crossed a vertical grid line (x changed).
	SideX Side = iota
	// SideY means the ray crossed a horizontal grid line (y changed).
	SideY
)

// Hit is the result of casting one ray.
type Hit struct {
	Distance float64 // perpendicular distance, NoHit when Missed
	Kind     gridmap.Kind
	Side     Side
	CellX    int
	CellY    int
	Steps    int
	Missed   bool
}

// Caster casts rays against a single map.
type Caster struct {
	Map      *gridmap.Map
	MaxSteps int
}

// New returns a caster for m. A non-positive maxSteps derives the bound from
// the map size so a ray can always cross the whole grid.
func New(m *gridmap.Map, maxSteps int) *Caster {
	if maxSteps <= 0 {
		maxSteps = MaxStepsFor(m)
	}
	return &Caster{Map: m, MaxSteps: maxSteps}
}

// MaxStepsFor returns the number of steps needed to leave the grid from any
// cell in any direction.
func MaxStepsFor(m *gridmap.Map) int {
	return m.Width() + m.Height()
}

// Cast marches a ray from (x, y) along (dirX, dirY). The direction need not
// be normalised, but distances are in units of the direction's length.
func (c *Caster) Cast(x, y, dirX, dirY float64) Hit {
	dirX = nudge(dirX)
	dirY = nudge(dirY)

	mapX := int(math.Floor(x))
	mapY := int(math.Floor(y))

	deltaX := math.Abs(1 / dirX)
	deltaY := math.Abs(1 / dirY)

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if dirX < 0 {
		stepX = -1
		sideDistX = (x - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - x) * deltaX
	}
	if dirY < 0 {
		stepY = -1
		sideDistY = (y - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - y) * deltaY
	}

	hit := Hit{Kind: gridmap.Wall}
	for hit.Steps < c.MaxSteps {
		if sideDistX < sideDistY {
			sideDistX += deltaX
			mapX += stepX
			hit.Side = SideX
		} else {
			sideDistY += deltaY
			mapY += stepY
			hit.Side = SideY
		}
		hit.Steps++

		if kind := c.Map.Classify(mapX, mapY); kind != gridmap.Open {
			hit.Kind = kind
			hit.CellX, hit.CellY = mapX, mapY
			if hit.Side == SideX {
				hit.Distance = (float64(mapX) - x + float64(1-stepX)/2) / dirX
			} else {
				hit.Distance = (float64(mapY) - y + float64(1-stepY)/2) / dirY
			}
			return hit
		}
	}

	hit.Missed = true
	hit.Kind = gridmap.Wall
	hit.Distance = NoHit
	hit.CellX, hit.CellY = mapX, mapY
	return hit
}

// Clamp floors a distance at MinDistance so projection never divides by
// something close to zero.
func Clamp(d float64) float64 {
	if d < MinDistance || math.IsNaN(d) {
		return MinDistance
	}
	return d
}

func nudge(v float64) float64 {
	if math.Abs(v) < epsilon {
		if v < 0 {
			return -epsilon
		}
		return epsilon
	}
	return v
}
