// Package raster is an in-memory canvas backed by image.RGBA. It is used for
// headless snapshots and as the offscreen frame of the terminal backend.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"chosenoffset.com/noom/internal/render"
)

// Canvas implements render.Canvas on an image.RGBA.
type Canvas struct {
	img   *image.RGBA
	calls int
}

// New returns a transparent canvas.
func New(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect fills a clipped rectangle.
func (c *Canvas) FillRect(x, y, width, height int, clr color.RGBA) {
	c.calls++
	r := image.Rect(x, y, x+width, y+height).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(clr), image.Point{}, draw.Src)
}

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// FillCalls returns the number of FillRect calls received.
func (c *Canvas) FillCalls() int { return c.calls }

// Present copies the canvas onto screen one horizontal run of equal pixels
// at a time.
func (c *Canvas) Present(screen render.Screen) {
	w, h := c.Size()
	for y := 0; y < h; y++ {
		start := 0
		for x := 1; x <= w; x++ {
			if x < w && c.At(x, y) == c.At(start, y) {
				continue
			}
			screen.FillRect(start, y, x-start, 1, c.At(start, y))
			start = x
		}
	}
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot %s: %w", path, err)
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return nil
}

// Renderer hands out raster frames. Text overlays are not supported.
type Renderer struct{}

// NewFrame returns a new raster canvas.
func (Renderer) NewFrame(width, height int) render.Frame {
	return New(width, height)
}

// DebugText is a no-op.
func (Renderer) DebugText(render.Screen, string, int, int) {}
