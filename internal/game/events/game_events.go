package events

import "github.com/gridward/gridward/internal/game/core"

// Event type constants.
const (
	TypeGameStarted     = "game.started"
	TypeGameWon         = "game.won"
	TypeGameLost        = "game.lost"
	TypeTurnStarted     = "turn.started"
	TypeTurnEnded       = "turn.ended"
	TypePlayerMoved     = "player.moved"
	TypePlayerSkipped   = "player.skipped"
	TypeTowerPlaced     = "tower.placed"
	TypeIntentRejected  = "intent.rejected"
	TypeEnemyMoved      = "enemy.moved"
	TypeEnemySpawned    = "enemy.spawned"
	TypeEnemyDamaged    = "enemy.damaged"
	TypeEnemyKilled     = "enemy.killed"
	TypeTowerFired      = "tower.fired"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published once when a level is loaded and the
// engine begins accepting intents.
type GameStartedEvent struct {
	BaseEvent
	Width, Height int
	EnemyCount    int
}

func NewGameStartedEvent(gameID string, width, height, enemies int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:  newBase(TypeGameStarted, gameID),
		Width:      width,
		Height:     height,
		EnemyCount: enemies,
	}
}

// GameWonEvent is published when the last enemy dies.
type GameWonEvent struct {
	BaseEvent
	FinalTurn int
}

func NewGameWonEvent(gameID string, turn int) *GameWonEvent {
	return &GameWonEvent{BaseEvent: newBase(TypeGameWon, gameID), FinalTurn: turn}
}

// GameLostEvent is published when an enemy reaches the goal.
type GameLostEvent struct {
	BaseEvent
	Reason    string
	At        core.Coordinate
	FinalTurn int
}

func NewGameLostEvent(gameID, reason string, at core.Coordinate, turn int) *GameLostEvent {
	return &GameLostEvent{
		BaseEvent: newBase(TypeGameLost, gameID),
		Reason:    reason,
		At:        at,
		FinalTurn: turn,
	}
}

// TurnStartedEvent marks the beginning of a player turn.
type TurnStartedEvent struct {
	BaseEvent
	TurnNumber int
}

func NewTurnStartedEvent(gameID string, turn int) *TurnStartedEvent {
	return &TurnStartedEvent{BaseEvent: newBase(TypeTurnStarted, gameID), TurnNumber: turn}
}

// TurnEndedEvent marks the completion of a full turn cycle.
type TurnEndedEvent struct {
	BaseEvent
	TurnNumber   int
	EnemiesAlive int
}

func NewTurnEndedEvent(gameID string, turn, enemiesAlive int) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:    newBase(TypeTurnEnded, gameID),
		TurnNumber:   turn,
		EnemiesAlive: enemiesAlive,
	}
}

// PlayerMovedEvent is published for each accepted move intent.
type PlayerMovedEvent struct {
	BaseEvent
	From, To core.Coordinate
}

func NewPlayerMovedEvent(gameID string, from, to core.Coordinate) *PlayerMovedEvent {
	return &PlayerMovedEvent{BaseEvent: newBase(TypePlayerMoved, gameID), From: from, To: to}
}

// PlayerSkippedEvent is published when the player passes the turn.
type PlayerSkippedEvent struct {
	BaseEvent
	TurnNumber int
}

func NewPlayerSkippedEvent(gameID string, turn int) *PlayerSkippedEvent {
	return &PlayerSkippedEvent{BaseEvent: newBase(TypePlayerSkipped, gameID), TurnNumber: turn}
}

// TowerPlacedEvent is published for each accepted placement intent.
type TowerPlacedEvent struct {
	BaseEvent
	At        core.Coordinate
	Facing    core.Direction
	Remaining int // placements left, -1 when uncapped
}

func NewTowerPlacedEvent(gameID string, at core.Coordinate, facing core.Direction, remaining int) *TowerPlacedEvent {
	return &TowerPlacedEvent{
		BaseEvent: newBase(TypeTowerPlaced, gameID),
		At:        at,
		Facing:    facing,
		Remaining: remaining,
	}
}

// IntentRejectedEvent is published when a player intent fails
// validation; the turn does not advance.
type IntentRejectedEvent struct {
	BaseEvent
	Reason string
}

func NewIntentRejectedEvent(gameID, reason string) *IntentRejectedEvent {
	return &IntentRejectedEvent{BaseEvent: newBase(TypeIntentRejected, gameID), Reason: reason}
}

// EnemyMovedEvent is published for each enemy step during the Enemy Phase.
type EnemyMovedEvent struct {
	BaseEvent
	From, To core.Coordinate
}

func NewEnemyMovedEvent(gameID string, from, to core.Coordinate) *EnemyMovedEvent {
	return &EnemyMovedEvent{BaseEvent: newBase(TypeEnemyMoved, gameID), From: from, To: to}
}

// EnemySpawnedEvent is published when a scheduled spawn fires.
type EnemySpawnedEvent struct {
	BaseEvent
	At   core.Coordinate
	Turn int
}

func NewEnemySpawnedEvent(gameID string, at core.Coordinate, turn int) *EnemySpawnedEvent {
	return &EnemySpawnedEvent{BaseEvent: newBase(TypeEnemySpawned, gameID), At: at, Turn: turn}
}

// EnemyDamagedEvent is published when a shot connects.
type EnemyDamagedEvent struct {
	BaseEvent
	At          core.Coordinate
	RemainingHP int
}

func NewEnemyDamagedEvent(gameID string, at core.Coordinate, remaining int) *EnemyDamagedEvent {
	return &EnemyDamagedEvent{
		BaseEvent:   newBase(TypeEnemyDamaged, gameID),
		At:          at,
		RemainingHP: remaining,
	}
}

// EnemyKilledEvent is published when an enemy's hit points reach zero.
type EnemyKilledEvent struct {
	BaseEvent
	At core.Coordinate
}

func NewEnemyKilledEvent(gameID string, at core.Coordinate) *EnemyKilledEvent {
	return &EnemyKilledEvent{BaseEvent: newBase(TypeEnemyKilled, gameID), At: at}
}

// TowerFiredEvent is published once per tower per Tower Phase.
type TowerFiredEvent struct {
	BaseEvent
	From   core.Coordinate
	Facing core.Direction
	Hit    bool
}

func NewTowerFiredEvent(gameID string, from core.Coordinate, facing core.Direction, hit bool) *TowerFiredEvent {
	return &TowerFiredEvent{
		BaseEvent: newBase(TypeTowerFired, gameID),
		From:      from,
		Facing:    facing,
		Hit:       hit,
	}
}

// StateTransitionEvent is published by the state machine on every
// accepted phase transition.
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

func NewStateTransitionEvent(gameID, from, to, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: from,
		ToPhase:   to,
		Reason:    reason,
	}
}
