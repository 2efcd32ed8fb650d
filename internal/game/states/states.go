package states

import "fmt"

// InitializingState is the pre-game phase while the level loads.
type InitializingState struct{}

func NewInitializingState() State { return &InitializingState{} }

func (s *InitializingState) Phase() TurnPhase { return PhaseInitializing }

func (s *InitializingState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Initializing state")
	return nil
}

func (s *InitializingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Level live, turn loop starting")
	return nil
}

func (s *InitializingState) Validate(ctx *GameContext) error { return nil }

// AwaitingInputState is the player's slot in the turn cycle: exactly one
// intent is accepted, invalid intents re-prompt without advancing.
type AwaitingInputState struct{}

func NewAwaitingInputState() State { return &AwaitingInputState{} }

func (s *AwaitingInputState) Phase() TurnPhase { return PhaseAwaitingInput }

func (s *AwaitingInputState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Int("turn", ctx.Turn).Msg("Awaiting player intent")
	return nil
}

func (s *AwaitingInputState) Exit(ctx *GameContext) error { return nil }

func (s *AwaitingInputState) Validate(ctx *GameContext) error { return nil }

// EnemyPhaseState advances every live enemy one step toward the goal.
type EnemyPhaseState struct{}

func NewEnemyPhaseState() State { return &EnemyPhaseState{} }

func (s *EnemyPhaseState) Phase() TurnPhase { return PhaseEnemy }

func (s *EnemyPhaseState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("turn", ctx.Turn).
		Int("enemies", ctx.EnemiesAlive).
		Msg("Enemy phase")
	return nil
}

func (s *EnemyPhaseState) Exit(ctx *GameContext) error { return nil }

func (s *EnemyPhaseState) Validate(ctx *GameContext) error { return nil }

// TowerPhaseState lets every live tower fire once.
type TowerPhaseState struct{}

func NewTowerPhaseState() State { return &TowerPhaseState{} }

func (s *TowerPhaseState) Phase() TurnPhase { return PhaseTower }

func (s *TowerPhaseState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Int("turn", ctx.Turn).Msg("Tower phase")
	return nil
}

func (s *TowerPhaseState) Exit(ctx *GameContext) error { return nil }

func (s *TowerPhaseState) Validate(ctx *GameContext) error { return nil }

// VictoryState is terminal: the enemy set emptied after a Tower Phase.
type VictoryState struct{}

func NewVictoryState() State { return &VictoryState{} }

func (s *VictoryState) Phase() TurnPhase { return PhaseVictory }

func (s *VictoryState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().Int("turn", ctx.Turn).Msg("Victory, all enemies destroyed")
	return nil
}

func (s *VictoryState) Exit(ctx *GameContext) error { return nil }

func (s *VictoryState) Validate(ctx *GameContext) error {
	if ctx.EnemiesAlive != 0 {
		return fmt.Errorf("victory with %d enemies still alive", ctx.EnemiesAlive)
	}
	return nil
}

// GameOverState is terminal: an enemy reached the goal.
type GameOverState struct{}

func NewGameOverState() State { return &GameOverState{} }

func (s *GameOverState) Phase() TurnPhase { return PhaseGameOver }

func (s *GameOverState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Int("turn", ctx.Turn).
		Str("reason", ctx.LossReason).
		Msg("Game over")
	return nil
}

func (s *GameOverState) Exit(ctx *GameContext) error { return nil }

func (s *GameOverState) Validate(ctx *GameContext) error {
	if ctx.LossReason == "" {
		return fmt.Errorf("game over state requires a loss reason")
	}
	return nil
}
