package states

import "github.com/rs/zerolog"

// Loss reasons recorded on the context when the game ends.
const (
	ReasonEnemyReachedGoal = "enemy reached goal"
)

// GameContext carries the game-level facts states need to validate and
// log transitions. It is owned by the turn engine; states only read and
// annotate it.
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Turn is the number of completed full turn cycles
	Turn int

	// EnemiesAlive is refreshed by the engine after every phase
	EnemiesAlive int

	// TowersPlaced counts accepted placements over the whole game
	TowersPlaced int

	// LossReason is set before transitioning to GameOver
	LossReason string
}

// NewGameContext creates a new game context.
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID: gameID,
		Logger: logger.With().Str("game_id", gameID).Logger(),
	}
}
