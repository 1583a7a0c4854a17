// Package lighting builds the distance shading palette. Surfaces are lit by a
// small fixed set of brightness levels rather than a continuous gradient so
// adjacent wall slices often share an exact color.
package lighting

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/noom/internal/world/gridmap"
)

// Ramp is a list of shades of one base color, dimmest first.
type Ramp []color.RGBA

// NewRamp builds levels shades of base. Level i is lit by
// minFactor + i/(levels-1) * (1 - minFactor), channels rounded down.
func NewRamp(base color.RGBA, levels int, minFactor float64) Ramp {
	if levels < 2 {
		levels = 2
	}
	ramp := make(Ramp, levels)
	for i := range ramp {
		factor := minFactor + float64(i)/float64(levels-1)*(1-minFactor)
		ramp[i] = color.RGBA{
			R: scale(base.R, factor),
			G: scale(base.G, factor),
			B: scale(base.B, factor),
			A: 255,
		}
	}
	return ramp
}

func scale(c uint8, factor float64) uint8 {
	v := math.Floor(float64(c) * factor)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Palette holds one ramp per surface material.
type Palette struct {
	Wall        Ramp
	Door        Ramp
	MaxDistance float64 // distances at or beyond this use the dimmest shade
}

// NewPalette builds the wall and door ramps.
func NewPalette(wall, door color.RGBA, levels int, minFactor, maxDistance float64) *Palette {
	return &Palette{
		Wall:        NewRamp(wall, levels, minFactor),
		Door:        NewRamp(door, levels, minFactor),
		MaxDistance: maxDistance,
	}
}

// Levels returns the number of shades per ramp.
func (p *Palette) Levels() int { return len(p.Wall) }

// Index maps a distance to a ramp index: nearer is brighter.
func (p *Palette) Index(dist float64) int {
	t := 1.0
	if p.MaxDistance > 0 {
		t = dist / p.MaxDistance
	}
	if t > 1 || math.IsNaN(t) {
		t = 1
	}
	if t < 0 {
		t = 0
	}
	return int(math.Round((1 - t) * float64(p.Levels()-1)))
}

// Shade returns the color for a surface of the given kind at dist.
func (p *Palette) Shade(dist float64, kind gridmap.Kind) color.RGBA {
	i := p.Index(dist)
	if kind == gridmap.Door {
		return p.Door[i]
	}
	return p.Wall[i]
}

// ParseHex parses a "RRGGBB" or "#RRGGBB" color.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) == 7 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected RRGGBB", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex formats a color as "RRGGBB".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}
