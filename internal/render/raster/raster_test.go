package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestFillRectClips(t *testing.T) {
	c := New(4, 3)
	c.FillRect(-2, -2, 4, 4, red)
	if c.At(0, 0) != red || c.At(1, 1) != red {
		t.Error("Expected the visible part of the rectangle to be filled")
	}
	if c.At(2, 0) == red || c.At(0, 2) == red {
		t.Error("Expected pixels outside the rectangle to stay untouched")
	}
	c.FillRect(10, 10, 5, 5, blue)
	if c.FillCalls() != 2 {
		t.Errorf("Expected 2 calls, got %d", c.FillCalls())
	}
}

type recordingScreen struct {
	w, h  int
	rects [][4]int
	cols  []color.RGBA
}

func (s *recordingScreen) Size() (int, int) { return s.w, s.h }

func (s *recordingScreen) FillRect(x, y, w, h int, c color.RGBA) {
	s.rects = append(s.rects, [4]int{x, y, w, h})
	s.cols = append(s.cols, c)
}

func TestPresentMergesRows(t *testing.T) {
	c := New(4, 2)
	c.FillRect(0, 0, 4, 2, red)
	c.FillRect(2, 1, 2, 1, blue)

	s := &recordingScreen{w: 4, h: 2}
	c.Present(s)
	if len(s.rects) != 3 {
		t.Fatalf("Expected 3 row runs, got %d: %v", len(s.rects), s.rects)
	}
	if s.rects[0] != [4]int{0, 0, 4, 1} || s.cols[0] != red {
		t.Errorf("Expected full red first row, got %v %v", s.rects[0], s.cols[0])
	}
	if s.rects[2] != [4]int{2, 1, 2, 1} || s.cols[2] != blue {
		t.Errorf("Expected blue tail on second row, got %v %v", s.rects[2], s.cols[2])
	}
}

func TestWritePNG(t *testing.T) {
	c := New(3, 3)
	c.FillRect(0, 0, 3, 3, blue)
	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if r, g, b, _ := img.At(1, 1).RGBA(); r != 0 || g != 0 || b != 0xffff {
		t.Errorf("Expected blue pixel, got %d %d %d", r, g, b)
	}
}
