//go:build sdl

// Package sdl is an SDL2 window backend. Frames are render-target textures so
// each FillRect is a single accelerated SDL call.
package sdl

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"chosenoffset.com/noom/internal/render"
)

// DefaultTick is the loop period.
const DefaultTick = 16 * time.Millisecond

// NewBackend returns the SDL backend. SDL is initialised when the engine
// starts.
func NewBackend() render.Backend {
	e := &Engine{Tick: DefaultTick, width: 640, height: 480, title: "noom"}
	return render.Backend{
		Name:     "sdl",
		Renderer: &Renderer{engine: e},
		Input:    &InputManager{},
		Engine:   e,
	}
}

// Renderer creates texture frames on the engine's SDL renderer.
type Renderer struct {
	engine *Engine
}

// NewFrame allocates a render-target texture. It must be called after the
// engine has started.
func (r *Renderer) NewFrame(width, height int) render.Frame {
	sr := r.engine.renderer
	if sr == nil {
		log.Printf("sdl: frame requested before the renderer exists")
		return &Texture{width: width, height: height}
	}
	tex, err := sr.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_TARGET, int32(width), int32(height))
	if err != nil {
		log.Printf("sdl: failed to create frame texture: %v", err)
		return &Texture{width: width, height: height}
	}
	t := &Texture{renderer: sr, tex: tex, width: width, height: height}
	r.engine.textures = append(r.engine.textures, t)
	return t
}

// DebugText is unsupported without SDL_ttf.
func (r *Renderer) DebugText(render.Screen, string, int, int) {}

// Texture is a frame backed by a render-target texture.
type Texture struct {
	renderer      *sdl.Renderer
	tex           *sdl.Texture
	width, height int
}

// Size returns the texture size.
func (t *Texture) Size() (int, int) { return t.width, t.height }

// FillRect fills a rectangle on the texture.
func (t *Texture) FillRect(x, y, width, height int, clr color.RGBA) {
	if t.tex == nil || width <= 0 || height <= 0 {
		return
	}
	if err := t.renderer.SetRenderTarget(t.tex); err != nil {
		return
	}
	fillRect(t.renderer, x, y, width, height, clr)
	t.renderer.SetRenderTarget(nil)
}

// Destroy releases the texture. It is safe to call more than once.
func (t *Texture) Destroy() {
	if t.tex == nil {
		return
	}
	t.tex.Destroy()
	t.tex = nil
}

// Dispose implements render.Disposer.
func (t *Texture) Dispose() { t.Destroy() }

// Present copies the texture onto the window.
func (t *Texture) Present(screen render.Screen) {
	if t.tex == nil {
		return
	}
	t.renderer.Copy(t.tex, nil, nil)
}

// Screen draws directly into the window's back buffer.
type Screen struct {
	renderer      *sdl.Renderer
	width, height int
}

// Size returns the logical screen size.
func (s *Screen) Size() (int, int) { return s.width, s.height }

// FillRect fills a rectangle on the back buffer.
func (s *Screen) FillRect(x, y, width, height int, clr color.RGBA) {
	if width <= 0 || height <= 0 {
		return
	}
	fillRect(s.renderer, x, y, width, height, clr)
}

func fillRect(r *sdl.Renderer, x, y, width, height int, clr color.RGBA) {
	r.SetDrawColor(clr.R, clr.G, clr.B, clr.A)
	r.FillRect(&sdl.Rect{X: int32(x), Y: int32(y), W: int32(width), H: int32(height)})
}

// InputManager reads the SDL keyboard state.
type InputManager struct{}

// IsKeyPressed reports whether the key's scancode is down.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	code, ok := scancodes[key]
	if !ok {
		return false
	}
	return sdl.GetKeyboardState()[code] == 1
}

var scancodes = map[render.Key]sdl.Scancode{
	render.KeyUp:      sdl.SCANCODE_UP,
	render.KeyDown:    sdl.SCANCODE_DOWN,
	render.KeyLeft:    sdl.SCANCODE_LEFT,
	render.KeyRight:   sdl.SCANCODE_RIGHT,
	render.KeyW:       sdl.SCANCODE_W,
	render.KeyA:       sdl.SCANCODE_A,
	render.KeyS:       sdl.SCANCODE_S,
	render.KeyD:       sdl.SCANCODE_D,
	render.KeyQ:       sdl.SCANCODE_Q,
	render.KeyE:       sdl.SCANCODE_E,
	render.KeyNumpad2: sdl.SCANCODE_KP_2,
	render.KeyNumpad4: sdl.SCANCODE_KP_4,
	render.KeyNumpad6: sdl.SCANCODE_KP_6,
	render.KeyNumpad8: sdl.SCANCODE_KP_8,
	render.KeyEscape:  sdl.SCANCODE_ESCAPE,
}

// Engine owns the SDL window and runs the loop.
type Engine struct {
	Tick time.Duration

	width, height int
	title         string
	renderer      *sdl.Renderer
	textures      []*Texture
}

// destroyTextures releases every frame texture created on the renderer.
func (e *Engine) destroyTextures() {
	for _, t := range e.textures {
		t.Destroy()
	}
	e.textures = nil
}

// SetWindowSize sets the window size used when the engine starts.
func (e *Engine) SetWindowSize(width, height int) {
	e.width, e.height = width, height
}

// SetWindowTitle sets the window title.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// RunGame opens the window and runs until the window closes or the game
// asks to quit.
func (e *Engine) RunGame(game render.Game) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("failed to init sdl: %w", err)
	}
	defer sdl.Quit()

	window, renderer, err := sdl.CreateWindowAndRenderer(int32(e.width), int32(e.height), sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("failed to create sdl window: %w", err)
	}
	defer window.Destroy()
	defer renderer.Destroy()
	window.SetTitle(e.title)
	e.renderer = renderer
	defer func() {
		e.destroyTextures()
		e.renderer = nil
	}()

	w, h := game.Layout(e.width, e.height)
	renderer.SetLogicalSize(int32(w), int32(h))
	screen := &Screen{renderer: renderer, width: w, height: h}

	ticker := time.NewTicker(e.Tick)
	defer ticker.Stop()

	for range ticker.C {
		for evt := sdl.PollEvent(); evt != nil; evt = sdl.PollEvent() {
			if _, ok := evt.(*sdl.QuitEvent); ok {
				return nil
			}
		}
		if err := game.Update(); err != nil {
			if errors.Is(err, render.ErrQuit) {
				return nil
			}
			return err
		}
		renderer.SetDrawColor(0, 0, 0, 255)
		renderer.Clear()
		game.Draw(screen)
		renderer.Present()
	}
	return nil
}
