package game

import (
	"github.com/gridward/gridward/internal/game/core"
	"github.com/gridward/gridward/internal/game/states"
)

// EnemyView is a read-only copy of one enemy for presentation layers.
type EnemyView struct {
	Pos core.Coordinate
	HP  int
}

// TowerView is a read-only copy of one tower for presentation layers.
type TowerView struct {
	Pos    core.Coordinate
	Facing core.Direction
}

// Snapshot is an immutable copy of everything a renderer needs. It
// shares nothing with the engine, so callers can keep it across turns.
type Snapshot struct {
	W, H    int
	Tiles   []core.Tile
	Player  core.Coordinate
	Goal    core.Coordinate
	Enemies []EnemyView
	Towers  []TowerView

	Phase           states.TurnPhase
	Turn            int
	RemainingTowers int
}

// Snapshot copies the current game state.
func (e *Engine) Snapshot() Snapshot {
	tiles := make([]core.Tile, len(e.grid.T))
	copy(tiles, e.grid.T)

	enemies := make([]EnemyView, 0, len(e.grid.Enemies()))
	for _, en := range e.grid.Enemies() {
		enemies = append(enemies, EnemyView{Pos: en.Pos, HP: en.HP})
	}
	towers := make([]TowerView, 0, len(e.grid.Towers()))
	for _, t := range e.grid.Towers() {
		towers = append(towers, TowerView{Pos: t.Pos, Facing: t.Facing})
	}

	return Snapshot{
		W:               e.grid.W,
		H:               e.grid.H,
		Tiles:           tiles,
		Player:          e.grid.PlayerPos(),
		Goal:            e.grid.GoalPos(),
		Enemies:         enemies,
		Towers:          towers,
		Phase:           e.sm.CurrentPhase(),
		Turn:            e.turn,
		RemainingTowers: e.remainingTowers,
	}
}
