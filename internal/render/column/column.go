// Package column turns raycast results into screen rectangles. Each logical
// column is a fixed-width strip of pixels; adjacent strips that project to
// the same rectangle are drawn with a single fill.
package column

import (
	"image/color"

	"chosenoffset.com/noom/internal/core/movement"
	"chosenoffset.com/noom/internal/core/raycast"
	"chosenoffset.com/noom/internal/core/trig"
	"chosenoffset.com/noom/internal/render"
	"chosenoffset.com/noom/internal/render/lighting"
)

// Config describes the screen the renderer draws to.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	Columns      int
	Ceiling      color.RGBA
	Floor        color.RGBA
}

// Renderer draws one frame per call to Render.
type Renderer struct {
	cfg      Config
	caster   *raycast.Caster
	tables   *trig.Tables
	palette  *lighting.Palette
	colWidth int
	horizon  int
}

// New wires a renderer. The tables must have been built for cfg.Columns.
func New(cfg Config, caster *raycast.Caster, tables *trig.Tables, palette *lighting.Palette) *Renderer {
	colWidth := cfg.ScreenWidth / cfg.Columns
	if colWidth < 1 {
		colWidth = 1
	}
	return &Renderer{
		cfg:      cfg,
		caster:   caster,
		tables:   tables,
		palette:  palette,
		colWidth: colWidth,
		horizon:  cfg.ScreenHeight / 2,
	}
}

// ColumnWidth returns the pixel width of one logical column.
func (r *Renderer) ColumnWidth() int { return r.colWidth }

// Horizon returns the row splitting ceiling and floor.
func (r *Renderer) Horizon() int { return r.horizon }

// Column is the projected wall slice for one logical column.
type Column struct {
	Index    int
	Hit      raycast.Hit
	Distance float64 // clamped perpendicular distance used for projection
	Run      Run
}

// Slice casts the ray for column col and projects it.
func (r *Renderer) Slice(pose movement.Pose, col int) Column {
	// Scale the unit ray so its forward component is 1; the caster then
	// reports distance along the view axis instead of along the ray.
	dx, dy := r.tables.RayDir(pose.Angle, col)
	rc := r.tables.RayCos[col]
	hit := r.caster.Cast(pose.X, pose.Y, dx/rc, dy/rc)
	dist := raycast.Clamp(hit.Distance)

	y0, h := r.Project(dist)
	return Column{
		Index:    col,
		Hit:      hit,
		Distance: dist,
		Run: Run{
			X:      col * r.colWidth,
			Width:  r.colWidth,
			Y:      y0,
			Height: h,
			Color:  r.palette.Shade(dist, hit.Kind),
		},
	}
}

// Project returns the top row and height of a wall slice at dist, centred
// on the horizon and clipped to the screen.
func (r *Renderer) Project(dist float64) (y0, height int) {
	lineH := int(r.tables.ProjectionPlane() / dist)
	half := lineH >> 1

	y0 = r.horizon - half
	if y0 < 0 {
		y0 = 0
	}
	y1 := r.horizon + half
	if y1 >= r.cfg.ScreenHeight {
		y1 = r.cfg.ScreenHeight - 1
	}
	return y0, y1 - y0 + 1
}

// Stats summarises one rendered frame.
type Stats struct {
	Columns   int
	Runs      int
	DrawCalls int
}

// Render draws ceiling, floor and walls for pose into dst.
func (r *Renderer) Render(dst render.Canvas, pose movement.Pose) Stats {
	w, h := r.cfg.ScreenWidth, r.cfg.ScreenHeight
	dst.FillRect(0, 0, w, r.horizon, r.cfg.Ceiling)
	dst.FillRect(0, r.horizon, w, h-r.horizon, r.cfg.Floor)

	merger := NewRunMerger(dst)
	for col := 0; col < r.cfg.Columns; col++ {
		merger.Push(r.Slice(pose, col).Run)
	}
	merger.Flush()

	return Stats{
		Columns:   r.cfg.Columns,
		Runs:      merger.DrawCalls(),
		DrawCalls: merger.DrawCalls() + 2,
	}
}
