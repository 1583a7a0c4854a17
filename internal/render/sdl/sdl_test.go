//go:build sdl

package sdl

import (
	"image/color"
	"testing"

	"chosenoffset.com/noom/internal/render"
)

var _ render.Disposer = (*Texture)(nil)

func TestEveryKeyHasScancode(t *testing.T) {
	seen := map[uint32]render.Key{}
	for k := render.Key(0); int(k) < render.KeyCount; k++ {
		code, ok := scancodes[k]
		if !ok {
			t.Errorf("Expected key %d to have a scancode", k)
			continue
		}
		if prev, dup := seen[uint32(code)]; dup {
			t.Errorf("Keys %d and %d share scancode %d", prev, k, code)
		}
		seen[uint32(code)] = k
	}
}

func TestNewFrameBeforeStartIsInert(t *testing.T) {
	b := NewBackend()
	e := b.Engine.(*Engine)

	frame := b.Renderer.NewFrame(320, 240)
	if w, h := frame.Size(); w != 320 || h != 240 {
		t.Errorf("Expected 320x240 frame, got %dx%d", w, h)
	}
	if len(e.textures) != 0 {
		t.Errorf("Expected no textures tracked without a renderer, got %d", len(e.textures))
	}

	// No texture: drawing and releasing are no-ops.
	frame.FillRect(0, 0, 10, 10, color.RGBA{255, 0, 0, 255})
	tex := frame.(*Texture)
	tex.Destroy()
	tex.Dispose()
}

func TestDestroyTexturesClearsTracking(t *testing.T) {
	e := &Engine{}
	e.textures = []*Texture{{width: 1, height: 1}, {width: 2, height: 2}}
	e.destroyTextures()
	if e.textures != nil {
		t.Errorf("Expected tracked textures cleared, got %d", len(e.textures))
	}
}

func TestEngineWindowSettings(t *testing.T) {
	e := &Engine{}
	e.SetWindowSize(640, 480)
	e.SetWindowTitle("noom - test")
	if e.width != 640 || e.height != 480 || e.title != "noom - test" {
		t.Errorf("Expected 640x480 \"noom - test\", got %dx%d %q", e.width, e.height, e.title)
	}
}
