package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFromRows decodes rows of two-character tile codes and routes the
// result, mirroring what the level parser does after validation.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	width := len(rows[0]) / 2
	tiles := make([]Tile, 0, width*len(rows))
	for y, row := range rows {
		require.Len(t, row, width*2, "row %d", y)
		for x := 0; x < width; x++ {
			tile, err := ParseTileCode(row[x*2], row[x*2+1])
			require.NoError(t, err)
			tiles = append(tiles, tile)
		}
	}
	g := NewGrid(width, len(rows), tiles)
	g.ComputePathDistances()
	return g
}

func TestNewGrid_IndexesEntities(t *testing.T) {
	g := gridFromRows(t,
		"|e|-|-|-|g",
		"O-OtO-OpO-",
	)

	assert.Equal(t, NewCoordinate(3, 1), g.PlayerPos())
	assert.Equal(t, NewCoordinate(4, 0), g.GoalPos())

	require.Len(t, g.Enemies(), 1)
	assert.Equal(t, NewCoordinate(0, 0), g.Enemies()[0].Pos)
	assert.Equal(t, EnemyMaxHP, g.Enemies()[0].HP)

	require.Len(t, g.Towers(), 1)
	assert.Equal(t, NewCoordinate(1, 1), g.Towers()[0].Pos)
	assert.Equal(t, North, g.Towers()[0].Facing, "pre-placed towers face north")
}

func TestNewGrid_ShapeMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewGrid(2, 2, make([]Tile, 3))
	})
}

func TestGrid_TileAt(t *testing.T) {
	g := gridFromRows(t,
		"|e|-|g",
		"O-OpO-",
	)

	tile, err := g.TileAt(NewCoordinate(0, 0))
	require.NoError(t, err)
	assert.Equal(t, ContentEnemy, tile.Content)

	_, err = g.TileAt(NewCoordinate(3, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = g.TileAt(NewCoordinate(-1, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestGrid_MoveEntity(t *testing.T) {
	t.Run("PlayerMoves", func(t *testing.T) {
		g := gridFromRows(t,
			"|e|-|g",
			"O-OpO-",
		)
		from := g.PlayerPos()
		to := from.Move(West)

		require.NoError(t, g.MoveEntity(ContentPlayer, from, to))
		assert.Equal(t, to, g.PlayerPos())

		src, _ := g.TileAt(from)
		dst, _ := g.TileAt(to)
		assert.Equal(t, ContentEmpty, src.Content)
		assert.Equal(t, ContentPlayer, dst.Content)
	})

	t.Run("GroundPreserved", func(t *testing.T) {
		g := gridFromRows(t,
			"|e|-|g",
			"O-OpO-",
		)
		from := g.PlayerPos()
		to := from.Move(North) // onto path

		require.NoError(t, g.MoveEntity(ContentPlayer, from, to))
		src, _ := g.TileAt(from)
		dst, _ := g.TileAt(to)
		assert.Equal(t, GroundGrass, src.Ground)
		assert.Equal(t, GroundPath, dst.Ground)
	})

	t.Run("RejectsWater", func(t *testing.T) {
		g := gridFromRows(t,
			"O-x-O-",
			"|-OpO-",
			"|e|-|g",
		)
		from := g.PlayerPos()
		err := g.MoveEntity(ContentPlayer, from, from.Move(North))
		assert.ErrorIs(t, err, ErrBlockedDestination)
		assert.Equal(t, from, g.PlayerPos(), "rejected move leaves the player in place")
	})

	t.Run("RejectsOutOfBounds", func(t *testing.T) {
		g := gridFromRows(t,
			"|e|-|g",
			"O-OpO-",
		)
		from := g.PlayerPos()
		err := g.MoveEntity(ContentPlayer, from, from.Move(South))
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("RejectsNonAdjacent", func(t *testing.T) {
		g := gridFromRows(t,
			"|e|-|g",
			"O-OpO-",
		)
		err := g.MoveEntity(ContentPlayer, g.PlayerPos(), NewCoordinate(0, 0))
		assert.ErrorIs(t, err, ErrNotAdjacent)
	})

	t.Run("RejectsOccupied", func(t *testing.T) {
		g := gridFromRows(t,
			"|e|-|g",
			"O-OpOr",
		)
		from := g.PlayerPos()
		err := g.MoveEntity(ContentPlayer, from, from.Move(East))
		assert.ErrorIs(t, err, ErrBlockedDestination)
	})
}

func TestGrid_PlaceTower(t *testing.T) {
	t.Run("AdjacentEmptyGrass", func(t *testing.T) {
		g := gridFromRows(t,
			"|e|-|g",
			"O-OpO-",
		)
		at := g.PlayerPos().Move(East)
		require.NoError(t, g.PlaceTower(at, East))

		tile, _ := g.TileAt(at)
		assert.Equal(t, ContentTower, tile.Content)
		require.Len(t, g.Towers(), 1)
		assert.Equal(t, East, g.Towers()[0].Facing)
	})

	t.Run("OnPathIsAllowed", func(t *testing.T) {
		g := gridFromRows(t,
			"|e|-|g",
			"O-OpO-",
		)
		at := g.PlayerPos().Move(North)
		require.NoError(t, g.PlaceTower(at, North))
	})

	t.Run("RejectsWater", func(t *testing.T) {
		g := gridFromRows(t,
			"O-x-O-",
			"|-OpO-",
			"|e|-|g",
		)
		err := g.PlaceTower(g.PlayerPos().Move(North), North)
		assert.ErrorIs(t, err, ErrOccupiedTile)
	})

	t.Run("RejectsOccupied", func(t *testing.T) {
		g := gridFromRows(t,
			"|e|-|g",
			"O-OpOr",
		)
		err := g.PlaceTower(g.PlayerPos().Move(East), East)
		assert.ErrorIs(t, err, ErrOccupiedTile)
	})

	t.Run("RejectsNonAdjacent", func(t *testing.T) {
		g := gridFromRows(t,
			"|e|-|g",
			"O-OpO-",
		)
		err := g.PlaceTower(NewCoordinate(0, 0), North)
		assert.ErrorIs(t, err, ErrTooFarFromPlayer)
	})

	t.Run("RejectsOutOfBounds", func(t *testing.T) {
		g := gridFromRows(t,
			"|e|-|g",
			"O-OpO-",
		)
		err := g.PlaceTower(g.PlayerPos().Move(South), South)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestGrid_SpawnEnemy(t *testing.T) {
	g := gridFromRows(t,
		"|e|-|g",
		"O-OpO-",
	)

	t.Run("OnEmptyCell", func(t *testing.T) {
		e := g.SpawnEnemy(NewCoordinate(1, 0))
		require.NotNil(t, e)
		assert.Equal(t, EnemyMaxHP, e.HP)
		assert.Len(t, g.Enemies(), 2)
	})

	t.Run("OccupiedCellRefused", func(t *testing.T) {
		assert.Nil(t, g.SpawnEnemy(NewCoordinate(0, 0)))
	})

	t.Run("OutOfBoundsRefused", func(t *testing.T) {
		assert.Nil(t, g.SpawnEnemy(NewCoordinate(9, 9)))
	})
}

func TestGrid_ApplyDamage(t *testing.T) {
	g := gridFromRows(t,
		"|e|-|g",
		"O-OpO-",
	)
	e := g.Enemies()[0]

	assert.False(t, g.ApplyDamage(e, 1))
	assert.Equal(t, EnemyMaxHP-1, e.HP)

	killed := g.ApplyDamage(e, EnemyMaxHP) // overkill clamps at zero
	assert.True(t, killed)
	assert.Equal(t, 0, e.HP)
	assert.Empty(t, g.Enemies())

	tile, _ := g.TileAt(NewCoordinate(0, 0))
	assert.Equal(t, ContentEmpty, tile.Content, "dead enemy vacates its tile")
}

func TestGrid_StepEnemy(t *testing.T) {
	t.Run("WalksTowardGoal", func(t *testing.T) {
		g := gridFromRows(t,
			"|e|-|-|g",
			"O-OpO-O-",
		)
		e := g.Enemies()[0]

		assert.False(t, g.StepEnemy(e))
		assert.Equal(t, NewCoordinate(1, 0), e.Pos)
		assert.False(t, g.StepEnemy(e))
		assert.Equal(t, NewCoordinate(2, 0), e.Pos)

		reached := g.StepEnemy(e)
		assert.True(t, reached, "stepping onto the goal reports it")
		assert.Equal(t, g.GoalPos(), e.Pos)
		assert.True(t, g.HasEnemyReachedGoal())
	})

	t.Run("BlockedByTowerWaits", func(t *testing.T) {
		g := gridFromRows(t,
			"|e|t|g",
			"O-OpO-",
		)
		e := g.Enemies()[0]
		pos := e.Pos

		assert.False(t, g.StepEnemy(e))
		assert.Equal(t, pos, e.Pos, "no smaller-distance cell available")
	})

	t.Run("OffRouteStays", func(t *testing.T) {
		g := gridFromRows(t,
			"|-|-|g",
			"OeOpO-",
		)
		e := g.Enemies()[0]
		pos := e.Pos

		assert.False(t, g.StepEnemy(e))
		assert.Equal(t, pos, e.Pos)
	})
}
