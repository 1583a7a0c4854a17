package ebiten

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/noom/internal/render"
)

// NewBackend returns the ebiten window backend.
func NewBackend() render.Backend {
	return render.Backend{
		Name:     "ebiten",
		Renderer: NewRenderer(),
		Input:    NewInputManager(),
		Engine:   NewEngine(),
	}
}

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct{}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// NewFrame creates an offscreen image frame.
func (r *EbitenRenderer) NewFrame(width, height int) render.Frame {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// DebugText draws text with the built-in debug font.
func (r *EbitenRenderer) DebugText(dst render.Screen, str string, x, y int) {
	img, ok := dst.(*EbitenImage)
	if !ok {
		return
	}
	ebitenutil.DebugPrintAt(img.img, str, x, y)
}

// EbitenImage wraps an ebiten.Image to implement render.Frame and render.Screen.
type EbitenImage struct {
	img *ebiten.Image
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// FillRect fills an axis-aligned rectangle without antialiasing so adjacent
// runs meet exactly.
func (i *EbitenImage) FillRect(x, y, width, height int, clr color.RGBA) {
	if width <= 0 || height <= 0 {
		return
	}
	vector.DrawFilledRect(i.img, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// Present draws this image onto the screen at the origin.
func (i *EbitenImage) Present(screen render.Screen) {
	dst, ok := screen.(*EbitenImage)
	if !ok {
		return
	}
	dst.img.DrawImage(i.img, nil)
}

// Dispose releases the image resources.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Dispose()
		i.img = nil
	}
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(k)
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyUp:
		return ebiten.KeyArrowUp, true
	case render.KeyDown:
		return ebiten.KeyArrowDown, true
	case render.KeyLeft:
		return ebiten.KeyArrowLeft, true
	case render.KeyRight:
		return ebiten.KeyArrowRight, true
	case render.KeyW:
		return ebiten.KeyW, true
	case render.KeyA:
		return ebiten.KeyA, true
	case render.KeyS:
		return ebiten.KeyS, true
	case render.KeyD:
		return ebiten.KeyD, true
	case render.KeyQ:
		return ebiten.KeyQ, true
	case render.KeyE:
		return ebiten.KeyE, true
	case render.KeyNumpad2:
		return ebiten.KeyNumpad2, true
	case render.KeyNumpad4:
		return ebiten.KeyNumpad4, true
	case render.KeyNumpad6:
		return ebiten.KeyNumpad6, true
	case render.KeyNumpad8:
		return ebiten.KeyNumpad8, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	default:
		return 0, false
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// RunGame runs the game loop with the provided game. A render.ErrQuit from
// Update ends the loop without an error.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
