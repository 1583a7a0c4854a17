package terminal

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/noom/internal/render"
)

// DefaultHoldWindow is how long a key stays held after its last press or
// repeat event. Terminals report presses only, never releases, and the first
// auto-repeat typically arrives 250-500ms after the press, so the window
// must outlast that delay.
const DefaultHoldWindow = 550 * time.Millisecond

// KeyState emulates held keys from a stream of press events. It is only
// touched from the engine loop goroutine.
type KeyState struct {
	window time.Duration
	now    func() time.Time
	last   [render.KeyCount]time.Time
}

// NewKeyState returns a KeyState that treats a key as held for window after
// each press. A nil now uses time.Now.
func NewKeyState(window time.Duration, now func() time.Time) *KeyState {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	if now == nil {
		now = time.Now
	}
	return &KeyState{window: window, now: now}
}

// Press records a press or auto-repeat of key.
func (k *KeyState) Press(key render.Key) {
	if key < 0 || int(key) >= render.KeyCount {
		return
	}
	k.last[key] = k.now()
}

// Release forgets every held key.
func (k *KeyState) Release() {
	k.last = [render.KeyCount]time.Time{}
}

// IsKeyPressed reports whether key was pressed within the hold window.
func (k *KeyState) IsKeyPressed(key render.Key) bool {
	if key < 0 || int(key) >= render.KeyCount {
		return false
	}
	t := k.last[key]
	if t.IsZero() {
		return false
	}
	return k.now().Sub(t) < k.window
}

// keyFromEvent maps a tcell key event onto a game key. Digits map to the
// number pad since most terminals send them as plain runes.
func keyFromEvent(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return render.KeyW, true
		case 'a':
			return render.KeyA, true
		case 's':
			return render.KeyS, true
		case 'd':
			return render.KeyD, true
		case 'q':
			return render.KeyQ, true
		case 'e':
			return render.KeyE, true
		case '2':
			return render.KeyNumpad2, true
		case '4':
			return render.KeyNumpad4, true
		case '6':
			return render.KeyNumpad6, true
		case '8':
			return render.KeyNumpad8, true
		}
	}
	return 0, false
}
