package rules

import (
	"github.com/rs/zerolog"

	"github.com/gridward/gridward/internal/game/core"
)

// WinConditionChecker decides when the turn loop has reached a terminal
// outcome.
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker.
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "win_checker").Logger(),
	}
}

// CheckLoss reports whether an enemy stands on the goal. The loss is
// final the moment it happens, regardless of remaining enemies.
func (wc *WinConditionChecker) CheckLoss(g *core.Grid) bool {
	if g.HasEnemyReachedGoal() {
		wc.logger.Debug().Str("goal", g.GoalPos().String()).Msg("Enemy reached the goal")
		return true
	}
	return false
}

// CheckVictory reports whether the enemy set is empty, counting spawns
// still scheduled to arrive: a wave on its way is not a victory yet.
func (wc *WinConditionChecker) CheckVictory(g *core.Grid, pendingSpawns int) bool {
	if len(g.Enemies()) == 0 && pendingSpawns == 0 {
		wc.logger.Debug().Msg("All enemies destroyed")
		return true
	}
	return false
}
