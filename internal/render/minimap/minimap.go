// Package minimap draws a top-down overlay of the grid. Solid cells are
// merged into horizontal segments so a map costs one fill per segment
// rather than one per cell.
package minimap

import (
	"image/color"

	"chosenoffset.com/noom/internal/core/movement"
	"chosenoffset.com/noom/internal/core/trig"
	"chosenoffset.com/noom/internal/render"
	"chosenoffset.com/noom/internal/world/gridmap"
)

// Segment is a horizontal run of solid cells of one kind. X1 is exclusive.
type Segment struct {
	X0, X1, Y int
	Kind      gridmap.Kind
}

// Cells returns the number of cells the segment covers.
func (s Segment) Cells() int { return s.X1 - s.X0 }

// Segments extracts the merged solid segments of m in row-major order.
func Segments(m *gridmap.Map) []Segment {
	var cells []Segment
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			k := m.Classify(x, y)
			if k == gridmap.Open {
				continue
			}
			cells = append(cells, Segment{X0: x, X1: x + 1, Y: y, Kind: k})
		}
	}
	return mergeColinearSegments(cells)
}

// mergeColinearSegments combines neighbouring segments on the same row.
// Input must be in row-major order.
func mergeColinearSegments(segments []Segment) []Segment {
	if len(segments) == 0 {
		return segments
	}

	result := []Segment{segments[0]}
	for _, seg := range segments[1:] {
		last := &result[len(result)-1]
		if canMergeSegments(*last, seg) {
			last.X1 = seg.X1
			continue
		}
		result = append(result, seg)
	}
	return result
}

// canMergeSegments checks if two segments are adjacent on one row and
// share a kind
func canMergeSegments(a, b Segment) bool {
	return a.Kind == b.Kind && a.Y == b.Y && a.X1 == b.X0
}

// Minimap draws a map at a fixed cell size.
type Minimap struct {
	Segments []Segment
	Width    int // map width in cells
	Height   int // map height in cells
	CellSize int // pixels per cell
	X, Y     int // screen offset

	Background color.RGBA
	Wall       color.RGBA
	Door       color.RGBA
	Camera     color.RGBA

	tables *trig.Tables
}

// New builds a minimap for m. Heading marks use tables.
func New(m *gridmap.Map, tables *trig.Tables, cellSize int, wall, door color.RGBA) *Minimap {
	if cellSize < 1 {
		cellSize = 1
	}
	return &Minimap{
		Segments:   Segments(m),
		Width:      m.Width(),
		Height:     m.Height(),
		CellSize:   cellSize,
		Background: color.RGBA{0, 0, 0, 255},
		Wall:       wall,
		Door:       door,
		Camera:     color.RGBA{255, 220, 0, 255},
		tables:     tables,
	}
}

// Size returns the overlay size in pixels.
func (mm *Minimap) Size() (int, int) {
	return mm.Width * mm.CellSize, mm.Height * mm.CellSize
}

// Draw paints the map and the camera onto dst. It returns the number of
// fills issued.
func (mm *Minimap) Draw(dst render.Canvas, pose movement.Pose) int {
	cs := mm.CellSize
	w, h := mm.Size()
	dst.FillRect(mm.X, mm.Y, w, h, mm.Background)
	fills := 1

	for _, s := range mm.Segments {
		clr := mm.Wall
		if s.Kind == gridmap.Door {
			clr = mm.Door
		}
		dst.FillRect(mm.X+s.X0*cs, mm.Y+s.Y*cs, s.Cells()*cs, cs, clr)
		fills++
	}

	px := mm.X + int(pose.X*float64(cs))
	py := mm.Y + int(pose.Y*float64(cs))
	dst.FillRect(px-1, py-1, 3, 3, mm.Camera)
	fills++

	if mm.tables != nil {
		fx, fy := mm.tables.Forward(pose.Angle)
		reach := float64(cs) * 1.5
		dst.FillRect(px+int(fx*reach), py+int(fy*reach), 1, 1, mm.Camera)
		fills++
	}
	return fills
}
