package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gridward/gridward/internal/game"
	"github.com/gridward/gridward/internal/game/core"
)

// Handler translates keyboard input into player intents. Arrow keys move
// the player; holding Shift turns an arrow press into a tower placement
// in that direction; Space skips the turn.
type Handler struct {
	pendingIntent *game.Intent
}

func NewHandler() *Handler {
	return &Handler{}
}

var arrowKeys = map[ebiten.Key]core.Direction{
	ebiten.KeyArrowUp:    core.North,
	ebiten.KeyArrowRight: core.East,
	ebiten.KeyArrowDown:  core.South,
	ebiten.KeyArrowLeft:  core.West,
}

// Update polls the keyboard. At most one intent is captured per frame;
// a second press before the engine consumes the first wins.
func (h *Handler) Update() {
	placing := ebiten.IsKeyPressed(ebiten.KeyShift)

	for key, dir := range arrowKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		var intent game.Intent
		if placing {
			intent = game.PlaceTowerIntent(dir)
		} else {
			intent = game.MoveIntent(dir)
		}
		h.pendingIntent = &intent
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		intent := game.SkipIntent()
		h.pendingIntent = &intent
	}
}

// ConsumeIntent returns the captured intent, if any, and clears it.
func (h *Handler) ConsumeIntent() (game.Intent, bool) {
	if h.pendingIntent == nil {
		return game.Intent{}, false
	}
	intent := *h.pendingIntent
	h.pendingIntent = nil
	return intent, true
}

// IsPlacing reports whether the placement modifier is held, for UI hints.
func (h *Handler) IsPlacing() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift)
}
