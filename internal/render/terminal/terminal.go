// Package terminal draws frames into a character terminal with tcell. Each
// cell shows two vertically stacked pixels using the upper half block.
package terminal

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/noom/internal/render"
	"chosenoffset.com/noom/internal/render/raster"
)

// DefaultTick is the loop period, about 30 ticks per second.
const DefaultTick = 33 * time.Millisecond

const halfBlock = '▀'

// NewBackend returns the terminal backend. The screen is opened when the
// engine starts.
func NewBackend() render.Backend {
	e := NewEngine()
	return render.Backend{
		Name:     "terminal",
		Renderer: &Renderer{engine: e},
		Input:    e.Keys,
		Engine:   e,
	}
}

// Renderer hands out raster frames and queues debug text for the engine.
type Renderer struct {
	engine *Engine
}

// NewFrame returns an offscreen raster canvas.
func (r *Renderer) NewFrame(width, height int) render.Frame {
	return raster.New(width, height)
}

// DebugText queues a line of text drawn over the next blit. Positions are in
// logical pixels and are scaled to cells.
func (r *Renderer) DebugText(_ render.Screen, text string, x, y int) {
	r.engine.overlay = append(r.engine.overlay, overlayText{text: text, x: x, y: y})
}

type overlayText struct {
	text string
	x, y int
}

// Engine runs the game loop against a tcell screen.
type Engine struct {
	// NewScreen opens the terminal. Tests swap in a simulation screen.
	NewScreen func() (tcell.Screen, error)
	Tick      time.Duration
	Keys      *KeyState

	title   string
	canvas  *raster.Canvas
	overlay []overlayText
}

// NewEngine returns an engine on the real terminal.
func NewEngine() *Engine {
	return &Engine{
		NewScreen: tcell.NewScreen,
		Tick:      DefaultTick,
		Keys:      NewKeyState(DefaultHoldWindow, nil),
	}
}

// SetWindowSize is a no-op; the terminal decides its own size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle sets the terminal title when supported.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// RunGame runs until the game returns an error or asks to quit.
func (e *Engine) RunGame(game render.Game) error {
	screen, err := e.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()
	if e.title != "" {
		screen.SetTitle(e.title)
	}

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(e.Tick)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if key, ok := keyFromEvent(ev); ok {
					e.Keys.Press(key)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if err := game.Update(); err != nil {
				if errors.Is(err, render.ErrQuit) {
					return nil
				}
				return err
			}
			e.draw(screen, game)
		}
	}
}

func (e *Engine) draw(screen tcell.Screen, game render.Game) {
	cols, rows := screen.Size()
	w, h := game.Layout(cols, rows*2)
	if e.canvas == nil {
		e.canvas = raster.New(w, h)
	} else if cw, ch := e.canvas.Size(); cw != w || ch != h {
		e.canvas = raster.New(w, h)
	}
	e.overlay = e.overlay[:0]
	game.Draw(e.canvas)
	blit(screen, e.canvas)
	e.drawOverlay(screen, w, h)
	screen.Show()
}

// blit scales the canvas onto the screen by nearest-neighbour sampling. Each
// cell covers two pixel rows: the top one as foreground, the bottom one as
// background.
func blit(screen tcell.Screen, c *raster.Canvas) {
	cols, rows := screen.Size()
	w, h := c.Size()
	if cols <= 0 || rows <= 0 || w <= 0 || h <= 0 {
		return
	}
	for cy := 0; cy < rows; cy++ {
		top := (cy * 2) * h / (rows * 2)
		bottom := (cy*2 + 1) * h / (rows * 2)
		for cx := 0; cx < cols; cx++ {
			px := cx * w / cols
			style := tcell.StyleDefault.
				Foreground(toTcell(c.At(px, top))).
				Background(toTcell(c.At(px, bottom)))
			screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

func (e *Engine) drawOverlay(screen tcell.Screen, w, h int) {
	cols, rows := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for _, o := range e.overlay {
		x0 := o.x * cols / w
		cx, cy := x0, o.y*rows/h
		for _, r := range o.text {
			if r == '\n' {
				cx, cy = x0, cy+1
				continue
			}
			if cx < cols && cy < rows {
				screen.SetContent(cx, cy, r, nil, style)
			}
			cx++
		}
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
