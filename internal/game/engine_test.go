package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridward/gridward/internal/game/core"
	"github.com/gridward/gridward/internal/game/events"
	"github.com/gridward/gridward/internal/game/level"
	"github.com/gridward/gridward/internal/game/states"
	"github.com/gridward/gridward/internal/testutil"
)

func newTestEngine(t *testing.T, text string) *Engine {
	t.Helper()
	lvl, err := level.ParseString(text)
	require.NoError(t, err)
	return NewEngine(lvl, testutil.NopLogger())
}

func collectEvents(e *Engine, eventType string) *[]events.Event {
	var got []events.Event
	e.Bus().SubscribeFunc(eventType, func(ev events.Event) {
		got = append(got, ev)
	})
	return &got
}

func TestNewEngine_StartsAwaitingInput(t *testing.T) {
	e := newTestEngine(t, testutil.CorridorLevel)

	assert.Equal(t, states.PhaseAwaitingInput, e.Phase())
	assert.Equal(t, 0, e.Turn())
	assert.False(t, e.IsOver())
	assert.NotEmpty(t, e.GameID())
	assert.Equal(t, -1, e.RemainingTowers(), "corridor level has no cap")
}

func TestSubmitIntent_MoveRunsFullCycle(t *testing.T) {
	e := newTestEngine(t, testutil.CorridorLevel)
	start := e.Grid().PlayerPos()
	enemyStart := e.Grid().Enemies()[0].Pos

	require.NoError(t, e.SubmitIntent(MoveIntent(core.West)))

	assert.Equal(t, start.Move(core.West), e.Grid().PlayerPos())
	assert.Equal(t, enemyStart.Move(core.East), e.Grid().Enemies()[0].Pos,
		"enemy advanced during the cycle")
	assert.Equal(t, states.PhaseAwaitingInput, e.Phase())
	assert.Equal(t, 1, e.Turn())
}

func TestSubmitIntent_RejectedIntentDoesNotAdvance(t *testing.T) {
	e := newTestEngine(t, testutil.CorridorLevel)
	rejected := collectEvents(e, events.TypeIntentRejected)
	enemyStart := e.Grid().Enemies()[0].Pos

	// South from (3,1) is off the grid.
	err := e.SubmitIntent(MoveIntent(core.South))
	assert.ErrorIs(t, err, core.ErrOutOfBounds)

	assert.Equal(t, 0, e.Turn(), "turn did not advance")
	assert.Equal(t, enemyStart, e.Grid().Enemies()[0].Pos, "enemy did not move")
	assert.Equal(t, states.PhaseAwaitingInput, e.Phase())
	assert.Len(t, *rejected, 1)
}

func TestSubmitIntent_SkipStillAdvancesWorld(t *testing.T) {
	e := newTestEngine(t, testutil.CorridorLevel)
	enemyStart := e.Grid().Enemies()[0].Pos

	require.NoError(t, e.SubmitIntent(SkipIntent()))

	assert.Equal(t, enemyStart.Move(core.East), e.Grid().Enemies()[0].Pos)
	assert.Equal(t, 1, e.Turn())
}

func TestSubmitIntent_PlaceTower(t *testing.T) {
	text := testutil.CorridorLevel + "@max_towers 1\n"
	e := newTestEngine(t, text)
	require.Equal(t, 1, e.RemainingTowers())

	at := e.Grid().PlayerPos().Move(core.West)
	require.NoError(t, e.SubmitIntent(PlaceTowerIntent(core.West)))

	assert.Equal(t, 0, e.RemainingTowers())
	tile, err := e.Grid().TileAt(at)
	require.NoError(t, err)
	assert.Equal(t, core.ContentTower, tile.Content)

	// Budget exhausted: the next placement is rejected without advancing.
	turn := e.Turn()
	err = e.SubmitIntent(PlaceTowerIntent(core.East))
	assert.ErrorIs(t, err, core.ErrNoTowersLeft)
	assert.Equal(t, turn, e.Turn())
}

func TestEngine_GameOverWhenEnemyReachesGoal(t *testing.T) {
	// Enemy is one step from the goal; any accepted intent ends it.
	e := newTestEngine(t, "|e|g\nOpO-\n")
	lost := collectEvents(e, events.TypeGameLost)

	require.NoError(t, e.SubmitIntent(SkipIntent()))

	assert.Equal(t, states.PhaseGameOver, e.Phase())
	assert.True(t, e.IsOver())
	require.Len(t, *lost, 1)
	ev := (*lost)[0].(*events.GameLostEvent)
	assert.Equal(t, e.Grid().GoalPos(), ev.At)

	err := e.SubmitIntent(SkipIntent())
	assert.ErrorIs(t, err, core.ErrGameOver, "terminal engine rejects intents")
}

func TestEngine_GameOverAbortsTowerPhase(t *testing.T) {
	// The tower would kill the enemy, but the enemy reaches the goal
	// during the same cycle's Enemy Phase, which resolves first.
	e := newTestEngine(t, "|e|g\nOtOp\n")
	fired := collectEvents(e, events.TypeTowerFired)

	enemy := e.Grid().Enemies()[0]
	enemy.HP = 1

	require.NoError(t, e.SubmitIntent(SkipIntent()))

	assert.Equal(t, states.PhaseGameOver, e.Phase())
	assert.Empty(t, *fired, "tower phase never ran")
}

func TestEngine_VictoryAfterLastKill(t *testing.T) {
	// The enemy steps into the tower's column during the Enemy Phase and
	// the tower finishes it off in the same cycle's Tower Phase.
	e := newTestEngine(t, "|e|-|-|-|g\nO-OtOpO-O-\n")
	won := collectEvents(e, events.TypeGameWon)
	killed := collectEvents(e, events.TypeEnemyKilled)

	e.Grid().Enemies()[0].HP = 1

	require.NoError(t, e.SubmitIntent(SkipIntent()))

	assert.Equal(t, states.PhaseVictory, e.Phase())
	assert.True(t, e.IsOver())
	assert.Empty(t, e.Grid().Enemies())
	assert.Len(t, *killed, 1)
	require.Len(t, *won, 1)
	assert.Equal(t, 0, (*won)[0].(*events.GameWonEvent).FinalTurn)
}

func TestEngine_DamageAccumulatesAcrossTurns(t *testing.T) {
	// Tower on the path column just east of the enemy start; the enemy
	// steps under it on the first cycle and is shot every cycle after.
	e := newTestEngine(t, "|e|-|-|-|-|g\nO-OtOpO-O-O-\n")

	damaged := collectEvents(e, events.TypeEnemyDamaged)
	require.NoError(t, e.SubmitIntent(SkipIntent()))
	assert.Len(t, *damaged, 1, "enemy stepped into the firing line")

	ev := (*damaged)[0].(*events.EnemyDamagedEvent)
	assert.Equal(t, core.EnemyMaxHP-core.TowerDamage, ev.RemainingHP)
}

func TestEngine_ScheduledSpawns(t *testing.T) {
	text := testutil.CorridorLevel + "@event spawn enemy 0 0 1\n"
	e := newTestEngine(t, text)
	spawned := collectEvents(e, events.TypeEnemySpawned)

	require.NoError(t, e.SubmitIntent(SkipIntent()))

	assert.Len(t, *spawned, 1, "spawn due at turn 1 arrived")
	assert.Len(t, e.Grid().Enemies(), 2)
}

func TestEngine_SpawnLandsOnceCellFrees(t *testing.T) {
	// The spawn targets the enemy's start cell. The enemy steps off it
	// during the same cycle's Enemy Phase, so the cell is free by the
	// time spawns are applied at end of turn.
	text := "|e|-|-|-|-|g\nO-O-O-OpO-O-\n@event spawn enemy 0 0 0\n"
	e := newTestEngine(t, text)
	spawned := collectEvents(e, events.TypeEnemySpawned)

	require.NoError(t, e.SubmitIntent(SkipIntent()))

	assert.Len(t, *spawned, 1)
	assert.Len(t, e.Grid().Enemies(), 2)
}

func TestEngine_OccupiedSpawnIsDeferred(t *testing.T) {
	// A tower blocks the enemy's route, so its start cell never frees
	// and the spawn targeting it keeps deferring turn after turn.
	text := "|e|t|-|g\nOpO-O-O-\n@event spawn enemy 0 0 0\n"
	e := newTestEngine(t, text)
	spawned := collectEvents(e, events.TypeEnemySpawned)

	require.NoError(t, e.SubmitIntent(SkipIntent()))
	require.NoError(t, e.SubmitIntent(SkipIntent()))

	assert.Empty(t, *spawned)
	assert.Len(t, e.Grid().Enemies(), 1)
}

func TestEngine_VictoryWaitsForPendingSpawns(t *testing.T) {
	// No enemies on the grid at start, but one is scheduled for later:
	// clearing the board early must not declare victory.
	text := testutil.NoEnemyLevel + "@event spawn enemy 0 0 2\n"
	e := newTestEngine(t, text)

	require.NoError(t, e.SubmitIntent(SkipIntent()))
	assert.False(t, e.IsOver(), "spawn still pending")

	require.NoError(t, e.SubmitIntent(SkipIntent()))
	assert.False(t, e.IsOver(), "spawned enemy is alive now")
	assert.Len(t, e.Grid().Enemies(), 1)
}

func TestSubmitIntent_WaterRejections(t *testing.T) {
	e := newTestEngine(t, testutil.WaterPocketLevel)

	err := e.SubmitIntent(MoveIntent(core.North))
	assert.ErrorIs(t, err, core.ErrBlockedDestination, "player cannot step into water")

	err = e.SubmitIntent(PlaceTowerIntent(core.North))
	assert.ErrorIs(t, err, core.ErrOccupiedTile, "towers cannot stand in water")

	assert.Equal(t, 0, e.Turn(), "nothing advanced")
}

func TestEngine_Snapshot(t *testing.T) {
	e := newTestEngine(t, testutil.OpenFieldLevel)
	snap := e.Snapshot()

	assert.Equal(t, e.Grid().W, snap.W)
	assert.Equal(t, e.Grid().H, snap.H)
	assert.Len(t, snap.Tiles, snap.W*snap.H)
	assert.Equal(t, e.Grid().PlayerPos(), snap.Player)
	assert.Len(t, snap.Enemies, 1)
	assert.Equal(t, core.EnemyMaxHP, snap.Enemies[0].HP)

	// The snapshot is detached from the live grid.
	require.NoError(t, e.SubmitIntent(SkipIntent()))
	assert.Equal(t, 0, snap.Turn)
	assert.NotEqual(t, snap.Enemies[0].Pos, e.Grid().Enemies()[0].Pos)
}

func TestEngine_Board(t *testing.T) {
	e := newTestEngine(t, testutil.CorridorLevel)
	board := e.Board()

	assert.Contains(t, board, "♙", "player marker present")
	assert.Contains(t, board, "♟", "enemy marker present")
	assert.Contains(t, board, "⚑", "goal marker present")
}

func TestEngine_PublishesTurnLifecycleEvents(t *testing.T) {
	lvl, err := level.ParseString(testutil.CorridorLevel)
	require.NoError(t, err)

	e := NewEngine(lvl, zerolog.Nop())
	started := collectEvents(e, events.TypeTurnStarted)
	ended := collectEvents(e, events.TypeTurnEnded)

	require.NoError(t, e.SubmitIntent(SkipIntent()))

	assert.Len(t, *started, 1, "turn 1 started after the cycle")
	require.Len(t, *ended, 1)
	assert.Equal(t, 0, (*ended)[0].(*events.TurnEndedEvent).TurnNumber)
}
