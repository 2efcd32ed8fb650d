package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gridward/gridward/internal/game/core"
	"github.com/gridward/gridward/internal/game/events"
	"github.com/gridward/gridward/internal/game/level"
	"github.com/gridward/gridward/internal/game/rules"
	"github.com/gridward/gridward/internal/game/states"
)

// Engine is the turn resolution engine. It exclusively owns the grid
// for the duration of a game and advances the phase cycle
// AwaitingInput -> EnemyPhase -> TowerPhase on every accepted intent.
// All work happens synchronously inside SubmitIntent; nothing else
// mutates the grid.
type Engine struct {
	grid   *core.Grid
	sm     *states.StateMachine
	ctx    *states.GameContext
	bus    *events.EventBus
	win    *rules.WinConditionChecker
	logger zerolog.Logger

	turn            int
	remainingTowers int // -1 = uncapped
	spawns          []level.Spawn
}

// NewEngine creates an engine around a parsed level and moves it into
// the AwaitingInput phase.
func NewEngine(lvl *level.Level, logger zerolog.Logger) *Engine {
	gameID := uuid.NewString()
	ctx := states.NewGameContext(gameID, logger)
	bus := events.NewEventBus()

	e := &Engine{
		grid:            lvl.Grid,
		ctx:             ctx,
		bus:             bus,
		win:             rules.NewWinConditionChecker(ctx.Logger),
		logger:          ctx.Logger.With().Str("component", "engine").Logger(),
		remainingTowers: lvl.MaxTowers,
		spawns:          append([]level.Spawn(nil), lvl.Spawns...),
	}
	e.ctx.EnemiesAlive = len(e.grid.Enemies())
	e.sm = states.NewStateMachine(ctx, bus)

	e.mustTransition(states.PhaseAwaitingInput, "level loaded")
	bus.Publish(events.NewGameStartedEvent(gameID, e.grid.W, e.grid.H, e.ctx.EnemiesAlive))
	bus.Publish(events.NewTurnStartedEvent(gameID, e.turn))
	return e
}

// SubmitIntent consumes exactly one player intent. A rejected intent
// leaves the turn where it was and returns the reason so the caller can
// re-prompt; an accepted intent runs the Enemy and Tower phases to
// completion before returning.
func (e *Engine) SubmitIntent(intent Intent) error {
	phase := e.sm.CurrentPhase()
	if phase.IsTerminal() {
		return core.ErrGameOver
	}
	if !phase.CanReceiveIntents() {
		return fmt.Errorf("phase %s cannot accept intents", phase)
	}

	if err := e.applyIntent(intent); err != nil {
		e.bus.Publish(events.NewIntentRejectedEvent(e.ctx.GameID, err.Error()))
		e.logger.Debug().Err(err).Str("intent", intent.Type.String()).Msg("Intent rejected")
		return err
	}

	e.runEnemyPhase()
	if e.sm.CurrentPhase().IsTerminal() {
		return nil
	}
	e.runTowerPhase()
	return nil
}

// applyIntent validates and executes the player's half of the turn.
func (e *Engine) applyIntent(intent Intent) error {
	switch intent.Type {
	case IntentMove:
		from := e.grid.PlayerPos()
		to := from.Move(intent.Dir)
		if err := e.grid.MoveEntity(core.ContentPlayer, from, to); err != nil {
			return err
		}
		e.bus.Publish(events.NewPlayerMovedEvent(e.ctx.GameID, from, to))
		return nil

	case IntentPlaceTower:
		if e.remainingTowers == 0 {
			return core.ErrNoTowersLeft
		}
		at := e.grid.PlayerPos().Move(intent.Dir)
		if err := e.grid.PlaceTower(at, intent.Dir); err != nil {
			return err
		}
		if e.remainingTowers > 0 {
			e.remainingTowers--
		}
		e.ctx.TowersPlaced++
		e.bus.Publish(events.NewTowerPlacedEvent(e.ctx.GameID, at, intent.Dir, e.remainingTowers))
		return nil

	case IntentSkip:
		e.bus.Publish(events.NewPlayerSkippedEvent(e.ctx.GameID, e.turn))
		return nil

	default:
		return fmt.Errorf("unknown intent type %d", intent.Type)
	}
}

// runEnemyPhase steps every live enemy once, in load order. An enemy
// stepping onto the goal loses the game immediately; remaining enemy
// moves are abandoned.
func (e *Engine) runEnemyPhase() {
	e.mustTransition(states.PhaseEnemy, "player intent accepted")

	for _, enemy := range e.grid.Enemies() {
		from := enemy.Pos
		e.grid.StepEnemy(enemy)
		if !from.Equal(enemy.Pos) {
			e.bus.Publish(events.NewEnemyMovedEvent(e.ctx.GameID, from, enemy.Pos))
		}
		if e.win.CheckLoss(e.grid) {
			e.loseGame(enemy.Pos)
			return
		}
	}
}

// runTowerPhase fires every tower once, in placement order. Kills apply
// immediately, so an enemy destroyed by one tower is gone before the
// next tower scans.
func (e *Engine) runTowerPhase() {
	e.mustTransition(states.PhaseTower, "enemies stepped")

	for _, tower := range e.grid.Towers() {
		res := e.grid.ResolveShot(tower)
		e.bus.Publish(events.NewTowerFiredEvent(e.ctx.GameID, tower.Pos, tower.Facing, res.Hit))
		if !res.Hit {
			continue
		}
		if res.Killed {
			e.bus.Publish(events.NewEnemyKilledEvent(e.ctx.GameID, res.Target))
		} else {
			e.bus.Publish(events.NewEnemyDamagedEvent(e.ctx.GameID, res.Target, res.Remaining))
		}
	}

	e.ctx.EnemiesAlive = len(e.grid.Enemies())
	if e.win.CheckVictory(e.grid, len(e.spawns)) {
		e.mustTransition(states.PhaseVictory, "all enemies destroyed")
		e.bus.Publish(events.NewGameWonEvent(e.ctx.GameID, e.turn))
		return
	}

	e.endTurn()
}

// endTurn closes the cycle: the turn counter advances, due spawns
// arrive, and the engine waits for the next intent.
func (e *Engine) endTurn() {
	e.bus.Publish(events.NewTurnEndedEvent(e.ctx.GameID, e.turn, e.ctx.EnemiesAlive))
	e.turn++
	e.ctx.Turn = e.turn
	e.applySpawns()
	e.ctx.EnemiesAlive = len(e.grid.Enemies())

	e.mustTransition(states.PhaseAwaitingInput, "turn complete")
	e.bus.Publish(events.NewTurnStartedEvent(e.ctx.GameID, e.turn))
}

// applySpawns places every due scheduled enemy. A spawn whose cell is
// occupied is pushed back one turn, matching the authored-level
// contract that waves eventually arrive.
func (e *Engine) applySpawns() {
	remaining := e.spawns[:0]
	for _, s := range e.spawns {
		if s.Turn > e.turn {
			remaining = append(remaining, s)
			continue
		}
		if spawned := e.grid.SpawnEnemy(s.Pos); spawned == nil {
			s.Turn = e.turn + 1
			remaining = append(remaining, s)
			continue
		}
		e.bus.Publish(events.NewEnemySpawnedEvent(e.ctx.GameID, s.Pos, e.turn))
	}
	e.spawns = remaining
}

// loseGame records the loss and moves to the terminal GameOver phase.
func (e *Engine) loseGame(at core.Coordinate) {
	e.ctx.LossReason = states.ReasonEnemyReachedGoal
	e.ctx.EnemiesAlive = len(e.grid.Enemies())
	e.mustTransition(states.PhaseGameOver, states.ReasonEnemyReachedGoal)
	e.bus.Publish(events.NewGameLostEvent(e.ctx.GameID, states.ReasonEnemyReachedGoal, at, e.turn))
}

// mustTransition performs a transition the engine's own sequencing
// guarantees is legal; failure is a programming error.
func (e *Engine) mustTransition(phase states.TurnPhase, reason string) {
	if err := e.sm.TransitionTo(phase, reason); err != nil {
		panic(fmt.Sprintf("engine: illegal transition to %s: %v", phase, err))
	}
}

// Public accessors.

// Phase returns the current turn phase.
func (e *Engine) Phase() states.TurnPhase { return e.sm.CurrentPhase() }

// Turn returns the number of completed full turn cycles.
func (e *Engine) Turn() int { return e.turn }

// IsOver reports whether the game has reached a terminal phase.
func (e *Engine) IsOver() bool { return e.sm.CurrentPhase().IsTerminal() }

// RemainingTowers returns how many placements are left, -1 if uncapped.
func (e *Engine) RemainingTowers() int { return e.remainingTowers }

// GameID returns the unique id of this game instance.
func (e *Engine) GameID() string { return e.ctx.GameID }

// Bus exposes the event bus so collaborators can subscribe read-only.
func (e *Engine) Bus() *events.EventBus { return e.bus }

// Grid exposes the grid for read-only rule queries and rendering.
// Collaborators must not mutate it; the engine is the only writer.
func (e *Engine) Grid() *core.Grid { return e.grid }
