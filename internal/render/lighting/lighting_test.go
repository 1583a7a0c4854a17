package lighting

import (
	"image/color"
	"testing"

	"chosenoffset.com/noom/internal/world/gridmap"
)

var (
	beige = color.RGBA{220, 200, 160, 255}
	red   = color.RGBA{200, 40, 40, 255}
)

func TestRampEndpoints(t *testing.T) {
	ramp := NewRamp(beige, 16, 0.25)
	if len(ramp) != 16 {
		t.Fatalf("Expected 16 levels, got %d", len(ramp))
	}
	if ramp[15] != beige {
		t.Errorf("Expected brightest level to equal the base color, got %v", ramp[15])
	}
	if want := (color.RGBA{55, 50, 40, 255}); ramp[0] != want {
		t.Errorf("Expected dimmest level %v, got %v", want, ramp[0])
	}
}

func TestRampFloorsChannels(t *testing.T) {
	// Level 1 of 16 with min 0.25 has factor 0.3.
	ramp := NewRamp(color.RGBA{221, 201, 163, 255}, 16, 0.25)
	if want := (color.RGBA{66, 60, 48, 255}); ramp[1] != want {
		t.Errorf("Expected %v, got %v", want, ramp[1])
	}
}

func TestRampIsMonotonic(t *testing.T) {
	ramp := NewRamp(beige, 16, 0.25)
	for i := 1; i < len(ramp); i++ {
		if ramp[i].R < ramp[i-1].R || ramp[i].G < ramp[i-1].G || ramp[i].B < ramp[i-1].B {
			t.Errorf("Expected level %d to be at least as bright as level %d", i, i-1)
		}
	}
}

func TestIndex(t *testing.T) {
	p := NewPalette(beige, red, 16, 0.25, 6)
	tests := []struct {
		dist float64
		want int
	}{
		{0, 15},
		{-1, 15},
		{3, 8}, // round(7.5)
		{6, 0},
		{60, 0},
		{0.05, 15},
	}
	for _, tt := range tests {
		if got := p.Index(tt.dist); got != tt.want {
			t.Errorf("Index(%v): expected %d, got %d", tt.dist, tt.want, got)
		}
	}
}

func TestShadePicksRampByKind(t *testing.T) {
	p := NewPalette(beige, red, 16, 0.25, 6)
	if got := p.Shade(0, gridmap.Door); got != red {
		t.Errorf("Expected door base color %v, got %v", red, got)
	}
	if got := p.Shade(0, gridmap.Wall); got != beige {
		t.Errorf("Expected wall base color %v, got %v", beige, got)
	}
	if got := p.Shade(100, gridmap.Wall); got != p.Wall[0] {
		t.Errorf("Expected far wall to use the dimmest shade, got %v", got)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#dcc8a0")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if c != beige {
		t.Errorf("Expected %v, got %v", beige, c)
	}
	if Hex(c) != "dcc8a0" {
		t.Errorf("Expected 'dcc8a0', got '%s'", Hex(c))
	}
	for _, bad := range []string{"", "abc", "zzzzzz", "#1234567"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}
