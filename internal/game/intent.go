package game

import (
	"fmt"

	"github.com/gridward/gridward/internal/game/core"
)

// IntentType represents the kind of player intent.
type IntentType int

const (
	// IntentMove steps the player one cell in a direction
	IntentMove IntentType = iota
	// IntentPlaceTower places a tower on the adjacent cell in a
	// direction; the tower fires along that direction forever
	IntentPlaceTower
	// IntentSkip passes the player phase without touching the grid
	IntentSkip
)

func (t IntentType) String() string {
	switch t {
	case IntentMove:
		return "Move"
	case IntentPlaceTower:
		return "PlaceTower"
	case IntentSkip:
		return "Skip"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Intent is the single decoded player input consumed per turn. Dir is
// ignored for IntentSkip.
type Intent struct {
	Type IntentType
	Dir  core.Direction
}

// MoveIntent builds a move intent.
func MoveIntent(dir core.Direction) Intent {
	return Intent{Type: IntentMove, Dir: dir}
}

// PlaceTowerIntent builds a tower placement intent.
func PlaceTowerIntent(dir core.Direction) Intent {
	return Intent{Type: IntentPlaceTower, Dir: dir}
}

// SkipIntent builds a skip intent.
func SkipIntent() Intent {
	return Intent{Type: IntentSkip}
}
