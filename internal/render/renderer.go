package render

import (
	"errors"
	"image/color"
)

// ErrQuit is returned from Game.Update to end the loop cleanly.
var ErrQuit = errors.New("quit requested")

// Canvas is the drawing surface the renderer targets. FillRect is the only
// primitive the raycaster needs and is assumed to be the dominant per-frame
// cost, so callers should keep the number of calls small.
type Canvas interface {
	// Size returns the canvas dimensions in pixels.
	Size() (width, height int)

	// FillRect fills the axis-aligned rectangle with a solid color.
	// Rectangles partly outside the canvas are clipped.
	FillRect(x, y, width, height int, clr color.RGBA)
}

// Frame is a Canvas that can be kept between ticks and presented again
// when nothing changed.
type Frame interface {
	Canvas

	// Present copies the frame onto the backend's screen surface.
	Present(screen Screen)
}

// Disposer is implemented by frames that hold backend resources.
type Disposer interface {
	Dispose()
}

// Screen is the backend-specific surface handed to Game.Draw.
type Screen interface {
	Canvas
}

// Renderer creates backend frames.
type Renderer interface {
	// NewFrame allocates an offscreen frame of the given size.
	NewFrame(width, height int) Frame

	// DebugText draws a text overlay at (x, y). Backends without text
	// support may ignore it.
	DebugText(dst Screen, text string, x, y int)
}

// InputManager handles input from the user.
type InputManager interface {
	// IsKeyPressed reports whether the key is currently held.
	IsKeyPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds.
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyNumpad2
	KeyNumpad4
	KeyNumpad6
	KeyNumpad8
	KeyEscape
	keyCount
)

// KeyCount is the number of distinct keys.
const KeyCount = int(keyCount)

// Control is a named player action bound to one or more keys.
type Control int

const (
	TurnLeft Control = iota
	TurnRight
	MoveForward
	MoveBackward
	StrafeLeft
	StrafeRight
	controlCount
)

// ControlCount is the number of controls.
const ControlCount = int(controlCount)

// String returns the control name.
func (c Control) String() string {
	switch c {
	case TurnLeft:
		return "turn-left"
	case TurnRight:
		return "turn-right"
	case MoveForward:
		return "move-forward"
	case MoveBackward:
		return "move-backward"
	case StrafeLeft:
		return "strafe-left"
	case StrafeRight:
		return "strafe-right"
	default:
		return "unknown"
	}
}

// DefaultBindings maps each control to its keys. Arrow keys and the number
// pad follow the calculator layout; WASD with Q/E strafing is for keyboards.
var DefaultBindings = map[Control][]Key{
	TurnLeft:     {KeyLeft, KeyA},
	TurnRight:    {KeyRight, KeyD},
	MoveForward:  {KeyUp, KeyNumpad8, KeyW},
	MoveBackward: {KeyDown, KeyNumpad2, KeyS},
	StrafeLeft:   {KeyNumpad4, KeyQ},
	StrafeRight:  {KeyNumpad6, KeyE},
}

// IsControlActive reports whether any key bound to c is held.
func IsControlActive(input InputManager, bindings map[Control][]Key, c Control) bool {
	for _, k := range bindings[c] {
		if input.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Screen)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// Backend bundles the pieces a display backend provides.
type Backend struct {
	Name     string
	Renderer Renderer
	Input    InputManager
	Engine   Engine
}

// NoInput is an InputManager with nothing held, for headless runs.
type NoInput struct{}

// IsKeyPressed always reports false.
func (NoInput) IsKeyPressed(Key) bool { return false }
