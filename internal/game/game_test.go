package game

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"chosenoffset.com/noom/internal/render"
	"chosenoffset.com/noom/internal/render/raster"
	"chosenoffset.com/noom/internal/simulation"
	"chosenoffset.com/noom/internal/world/gridmap"
)

type fakeInput struct {
	held map[render.Key]bool
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool { return f.held[k] }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestGame(t *testing.T) (*Game, *fakeInput, *fakeClock) {
	t.Helper()
	input := &fakeInput{held: map[render.Key]bool{}}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	g, err := New(simulation.DefaultConfig(), gridmap.Default(), render.Backend{
		Name:     "test",
		Renderer: raster.Renderer{},
		Input:    input,
	})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	g.Clock = clock.Now
	return g, input, clock
}

func TestFirstTickRendersOnce(t *testing.T) {
	g, _, clock := newTestGame(t)
	if g.Frame() != nil {
		t.Fatal("Expected no frame before the first tick")
	}
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.Renders() != 1 {
		t.Fatalf("Expected the startup render, got %d renders", g.Renders())
	}

	for i := 0; i < 30; i++ {
		clock.Advance(16 * time.Millisecond)
		if err := g.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	if g.Renders() != 1 {
		t.Errorf("Expected idle ticks not to render, got %d renders", g.Renders())
	}
}

func TestHeldControlRedrawsEveryTick(t *testing.T) {
	g, input, clock := newTestGame(t)
	g.Update()

	input.held[render.KeyLeft] = true
	for i := 0; i < 5; i++ {
		clock.Advance(50 * time.Millisecond)
		g.Update()
	}
	if g.Renders() != 6 {
		t.Errorf("Expected 6 renders, got %d", g.Renders())
	}
	if got := g.Scheduler.Pose().Angle; got != 30 {
		t.Errorf("Expected 5 ticks of 6° to reach 30°, got %d", got)
	}

	input.held[render.KeyLeft] = false
	clock.Advance(50 * time.Millisecond)
	g.Update()
	if g.Renders() != 6 {
		t.Errorf("Expected release to stop rendering, got %d renders", g.Renders())
	}
}

func TestOpposingControlsCancel(t *testing.T) {
	g, input, clock := newTestGame(t)
	g.Update()

	input.held[render.KeyUp] = true
	input.held[render.KeyDown] = true
	clock.Advance(100 * time.Millisecond)
	g.Update()
	if g.Renders() != 1 {
		t.Errorf("Expected cancelled intents to skip rendering, got %d renders", g.Renders())
	}
}

func TestEscapeQuits(t *testing.T) {
	g, input, _ := newTestGame(t)
	input.held[render.KeyEscape] = true
	if err := g.Update(); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestTickDeltaIsCapped(t *testing.T) {
	g, input, clock := newTestGame(t)
	g.Update()

	start := g.Scheduler.Pose()
	input.held[render.KeyW] = true
	clock.Advance(10 * time.Second)
	g.Update()

	moved := g.Scheduler.Pose().Y - start.Y
	limit := 2.2 * MaxTickDelta.Seconds()
	if moved <= 0 || moved > limit+1e-9 {
		t.Errorf("Expected forward move in (0, %v], got %v", limit, moved)
	}
}

func TestDrawPresentsFrame(t *testing.T) {
	g, _, _ := newTestGame(t)
	screen := raster.New(320, 240)

	g.Draw(screen)
	if screen.FillCalls() != 0 {
		t.Errorf("Expected nothing drawn before the first tick, got %d fills", screen.FillCalls())
	}

	g.Update()
	g.Draw(screen)
	if got := screen.At(0, 0); got != (color.RGBA{235, 235, 235, 255}) {
		t.Errorf("Expected ceiling color at the top, got %v", got)
	}
	if got := screen.At(0, 239); got != (color.RGBA{70, 40, 20, 255}) {
		t.Errorf("Expected floor color at the bottom, got %v", got)
	}
	if g.Renders() != 1 {
		t.Errorf("Expected Draw not to render, got %d renders", g.Renders())
	}
}

func TestStartupFrameShowsWallAhead(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Update()

	frame := g.Frame().(*raster.Canvas)
	// The wall 2.5 cells ahead projects to about 110 pixels around row 120.
	if got := frame.At(160, 120); got == (color.RGBA{235, 235, 235, 255}) || got == (color.RGBA{70, 40, 20, 255}) {
		t.Errorf("Expected a wall pixel at the view center, got %v", got)
	}
	if got := frame.At(160, 10); got != (color.RGBA{235, 235, 235, 255}) {
		t.Errorf("Expected ceiling above the wall, got %v", got)
	}
	if stats := g.Stats(); stats.Runs == 0 || stats.Runs > stats.Columns {
		t.Errorf("Expected between 1 and %d runs, got %d", stats.Columns, stats.Runs)
	}
}

func TestDebugDrawShowsMinimap(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Debug = true
	g.Update()

	screen := raster.New(320, 240)
	g.Draw(screen)

	// 41x18 cells at 2px, anchored 2px from the bottom-left corner.
	if got := screen.At(2, 202); got != (color.RGBA{220, 200, 160, 255}) {
		t.Errorf("Expected the minimap's corner wall at (2, 202), got %v", got)
	}
	if got := screen.At(1, 202); got == (color.RGBA{220, 200, 160, 255}) {
		t.Errorf("Expected the minimap to start at x=2, got wall at x=1")
	}
	if g.Renders() != 1 {
		t.Errorf("Expected overlays not to re-render, got %d renders", g.Renders())
	}
}

type disposableFrame struct {
	*raster.Canvas
	disposed int
}

func (f *disposableFrame) Dispose() { f.disposed++ }

type disposableRenderer struct {
	raster.Renderer
	frames []*disposableFrame
}

func (r *disposableRenderer) NewFrame(width, height int) render.Frame {
	f := &disposableFrame{Canvas: raster.New(width, height)}
	r.frames = append(r.frames, f)
	return f
}

func TestCloseDisposesFrame(t *testing.T) {
	g, _, _ := newTestGame(t)
	r := &disposableRenderer{}
	g.Renderer = r

	g.Close() // nothing rendered yet
	g.Update()
	if len(r.frames) != 1 {
		t.Fatalf("Expected one frame, got %d", len(r.frames))
	}

	g.Close()
	if r.frames[0].disposed != 1 {
		t.Errorf("Expected the frame disposed once, got %d", r.frames[0].disposed)
	}
	if g.Frame() != nil {
		t.Error("Expected no frame after Close")
	}

	g.Close()
	if r.frames[0].disposed != 1 {
		t.Errorf("Expected a second Close to be a no-op, got %d disposals", r.frames[0].disposed)
	}
}
