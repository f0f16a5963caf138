package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler translates keyboard and touch events into engine actions.
// The fire cooldown lives here: the engine appends a bullet for every Fire
// call, so the input layer is what keeps the fire rate sane.
type InputHandler struct {
	cfg      Config
	lastFire time.Time

	touchIDs []ebiten.TouchID
}

// NewInputHandler creates an input handler
func NewInputHandler(cfg Config) *InputHandler {
	return &InputHandler{
		cfg:      cfg,
		touchIDs: make([]ebiten.TouchID, 0, 4),
	}
}

// Update reads the current input state and applies actions to the engine
func (h *InputHandler) Update(engine *Engine, now time.Time) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		engine.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		engine.Reset(now)
		return
	}

	if state := engine.State(); state.Paused || state.GameOver {
		return
	}

	up := ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	down := ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	fire := ebiten.IsKeyPressed(ebiten.KeySpace)

	// Touch: upper half moves up, lower half moves down, a second
	// simultaneous touch fires
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	for i, id := range h.touchIDs {
		if i > 0 {
			fire = true
			break
		}
		_, y := ebiten.TouchPosition(id)
		if y < h.cfg.ScreenHeight/2 {
			up = true
		} else {
			down = true
		}
	}

	if up {
		engine.MoveUp()
	}
	if down {
		engine.MoveDown()
	}
	if fire && now.Sub(h.lastFire) >= h.cfg.FireCooldown {
		engine.Fire()
		h.lastFire = now
	}
}
