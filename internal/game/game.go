package game

import (
	"fmt"
	"log"
	"time"

	"chosenoffset.com/noom/internal/core/movement"
	"chosenoffset.com/noom/internal/core/raycast"
	"chosenoffset.com/noom/internal/core/trig"
	"chosenoffset.com/noom/internal/render"
	"chosenoffset.com/noom/internal/render/column"
	"chosenoffset.com/noom/internal/render/lighting"
	"chosenoffset.com/noom/internal/render/minimap"
	"chosenoffset.com/noom/internal/simulation"
	"chosenoffset.com/noom/internal/world/gridmap"
)

// MaxTickDelta caps the elapsed time of one tick so a stalled window cannot
// move the camera through a wall in a single step.
const MaxTickDelta = 250 * time.Millisecond

const minimapCellSize = 2

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Bindings     map[render.Control][]render.Key
	Scheduler    *Scheduler
	View         *column.Renderer
	Minimap      *minimap.Minimap

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time

	// Debug enables the stats and minimap overlays and per-render logging.
	Debug bool

	frame   render.Frame
	last    time.Time
	stats   column.Stats
	renders int
}

// New wires the full pipeline for m from cfg.
func New(cfg *simulation.Config, m *gridmap.Map, backend render.Backend) (*Game, error) {
	colors, err := cfg.Colors.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to build palette: %w", err)
	}

	tables := trig.New(cfg.Screen.Columns, cfg.Screen.FOV, cfg.Screen.Width)
	caster := raycast.New(m, cfg.Raycast.MaxSteps)
	palette := lighting.NewPalette(colors.Wall, colors.Door, cfg.Shading.Levels, cfg.Shading.MinFactor, cfg.Shading.MaxDistance)
	view := column.New(column.Config{
		ScreenWidth:  cfg.Screen.Width,
		ScreenHeight: cfg.Screen.Height,
		Columns:      cfg.Screen.Columns,
		Ceiling:      colors.Ceiling,
		Floor:        colors.Floor,
	}, caster, tables, palette)

	mover := &movement.Mover{
		Map:       m,
		Trig:      tables,
		Radius:    cfg.Movement.Radius,
		MoveSpeed: cfg.Movement.MoveSpeed,
		TurnSpeed: cfg.Movement.TurnSpeed,
	}
	spawn := m.Spawn()
	pose := movement.Pose{X: spawn.X, Y: spawn.Y, Angle: trig.Normalize(spawn.Angle)}

	overlay := minimap.New(m, tables, minimapCellSize, colors.Wall, colors.Door)
	_, oh := overlay.Size()
	overlay.X, overlay.Y = 2, cfg.Screen.Height-oh-2

	log.Printf("Loaded map %q (%dx%d), spawn (%.2f, %.2f) at %d°, max ray steps %d",
		m.Name(), m.Width(), m.Height(), pose.X, pose.Y, pose.Angle, caster.MaxSteps)
	log.Printf("View: %d columns of %dpx, horizon at row %d",
		cfg.Screen.Columns, view.ColumnWidth(), view.Horizon())

	return &Game{
		ScreenWidth:  cfg.Screen.Width,
		ScreenHeight: cfg.Screen.Height,
		Renderer:     backend.Renderer,
		InputMgr:     backend.Input,
		Bindings:     render.DefaultBindings,
		Scheduler:    NewScheduler(mover, pose),
		View:         view,
		Minimap:      overlay,
		Clock:        time.Now,
	}, nil
}

// Update polls input, moves the camera and re-renders the frame when
// anything changed.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	now := g.Clock()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now
	if dt > MaxTickDelta {
		dt = MaxTickDelta
	}

	controls := PollControls(g.InputMgr, g.Bindings)
	if g.Scheduler.Tick(dt.Seconds(), controls) {
		g.renderFrame()
	}
	return nil
}

// renderFrame runs the raycaster into the persistent frame.
func (g *Game) renderFrame() {
	if g.frame == nil {
		g.frame = g.Renderer.NewFrame(g.ScreenWidth, g.ScreenHeight)
	}
	pose := g.Scheduler.Pose()
	g.stats = g.View.Render(g.frame, pose)
	g.renders++
	if g.Debug {
		log.Printf("Render #%d at (%.2f, %.2f) %d°: %d columns, %d runs, %d fills",
			g.renders, pose.X, pose.Y, pose.Angle, g.stats.Columns, g.stats.Runs, g.stats.DrawCalls)
	}
}

// Draw presents the last rendered frame. It never runs the raycaster.
func (g *Game) Draw(screen render.Screen) {
	if g.frame == nil {
		return
	}
	g.frame.Present(screen)

	if g.Debug {
		pose := g.Scheduler.Pose()
		msg := fmt.Sprintf("pos %.2f,%.2f  %d°\nruns %d/%d  fills %d\nrenders %d/%d ticks",
			pose.X, pose.Y, pose.Angle, g.stats.Runs, g.stats.Columns, g.stats.DrawCalls,
			g.renders, g.Scheduler.Ticks())
		g.Renderer.DebugText(screen, msg, 2, 2)
		g.Minimap.Draw(screen, pose)
	}
}

// Close releases the persistent frame. The next render allocates a new one.
func (g *Game) Close() {
	if d, ok := g.frame.(render.Disposer); ok {
		d.Dispose()
	}
	g.frame = nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// Renders returns how many times the raycaster has run.
func (g *Game) Renders() int { return g.renders }

// Stats returns the stats of the last rendered frame.
func (g *Game) Stats() column.Stats { return g.stats }

// Frame returns the persistent frame, nil before the first render.
func (g *Game) Frame() render.Frame { return g.frame }
