package core

import "fmt"

// Rule constants. Damage and hit points are deliberately fixed; the
// simulation has a single enemy archetype and a single tower archetype.
const (
	EnemyMaxHP  = 5
	TowerDamage = 1
)

// Enemy is a live enemy on the grid: a position plus remaining hit
// points. Enemies are removed from the grid when HP reaches zero.
type Enemy struct {
	Pos Coordinate
	HP  int
}

// Tower is a placed tower. Facing is fixed at placement time and is the
// single straight line the tower fires along every Tower Phase.
type Tower struct {
	Pos    Coordinate
	Facing Direction
}

// Grid owns the tile matrix and the derived entity indices. Shape is
// fixed after load; ground never changes, only content moves. The grid
// has exactly one logical writer at any time (the running turn loop).
type Grid struct {
	W, H int
	T    []Tile // length = W*H (row-major)

	playerPos Coordinate
	goalPos   Coordinate
	enemies   []*Enemy // load-order; deaths remove entries, order is stable
	towers    []*Tower
}

// NewGrid builds a grid from decoded tiles and indexes the entities it
// finds. The caller (the level parser) has already validated the single
// player / single goal invariants; tiles here are trusted.
func NewGrid(w, h int, tiles []Tile) *Grid {
	if len(tiles) != w*h {
		panic(fmt.Sprintf("grid: %d tiles for %dx%d shape", len(tiles), w, h))
	}
	g := &Grid{W: w, H: h, T: tiles}
	for i, t := range tiles {
		pos := FromIndex(i, w)
		switch t.Content {
		case ContentPlayer:
			g.playerPos = pos
		case ContentGoal:
			g.goalPos = pos
		case ContentEnemy:
			g.enemies = append(g.enemies, &Enemy{Pos: pos, HP: EnemyMaxHP})
		case ContentTower:
			// Pre-placed towers default to firing north; towers placed
			// during play face the direction they were placed in.
			g.towers = append(g.towers, &Tower{Pos: pos, Facing: North})
		}
	}
	return g
}

func (g *Grid) Idx(x, y int) int { return y*g.W + x }

// InBounds checks if a coordinate is within the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.IsValid(g.W, g.H)
}

// TileAt returns the tile at the given coordinate.
func (g *Grid) TileAt(c Coordinate) (Tile, error) {
	if !g.InBounds(c) {
		return Tile{}, ErrOutOfBounds
	}
	return g.T[c.ToIndex(g.W)], nil
}

func (g *Grid) tileRef(c Coordinate) *Tile {
	return &g.T[c.ToIndex(g.W)]
}

// PlayerPos returns the player's current position.
func (g *Grid) PlayerPos() Coordinate { return g.playerPos }

// GoalPos returns the goal position.
func (g *Grid) GoalPos() Coordinate { return g.goalPos }

// Enemies returns the live enemies in load order. Callers may mutate the
// enemies through the returned pointers but must not reorder them.
func (g *Grid) Enemies() []*Enemy {
	out := make([]*Enemy, len(g.enemies))
	copy(out, g.enemies)
	return out
}

// Towers returns the live towers in placement order.
func (g *Grid) Towers() []*Tower {
	out := make([]*Tower, len(g.towers))
	copy(out, g.towers)
	return out
}

// EnemyAt returns the live enemy at the given position, or nil.
func (g *Grid) EnemyAt(c Coordinate) *Enemy {
	for _, e := range g.enemies {
		if e.Pos.Equal(c) {
			return e
		}
	}
	return nil
}

// MoveEntity moves the entity of the given kind one step from `from` to
// `to`. The destination must be in bounds, 4-adjacent, and walkable by
// the entity kind; ground is preserved at both cells. A `from` cell that
// does not hold the entity is a programming error, not a user mistake.
func (g *Grid) MoveEntity(kind ContentKind, from, to Coordinate) error {
	if !g.InBounds(to) {
		return ErrOutOfBounds
	}
	if !from.IsAdjacentTo(to) {
		return ErrNotAdjacent
	}
	src := g.tileRef(from)
	if src.Content != kind {
		panic(fmt.Sprintf("grid: no %s at %s to move", kind, from))
	}
	if !g.T[to.ToIndex(g.W)].IsWalkableBy(kind) {
		return ErrBlockedDestination
	}

	src.Content = ContentEmpty
	g.tileRef(to).Content = kind

	switch kind {
	case ContentPlayer:
		g.playerPos = to
	case ContentEnemy:
		e := g.EnemyAt(from)
		if e == nil {
			panic(fmt.Sprintf("grid: enemy index missing entry for %s", from))
		}
		e.Pos = to
	}
	return nil
}

// PlaceTower places a tower on the given cell, facing the given
// direction. The cell must be in bounds, 4-adjacent to the player, empty,
// and on dry ground (towers cannot stand in water).
func (g *Grid) PlaceTower(c Coordinate, facing Direction) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if !c.IsAdjacentTo(g.playerPos) {
		return ErrTooFarFromPlayer
	}
	t := g.tileRef(c)
	if t.Content != ContentEmpty || t.Ground == GroundWater {
		return ErrOccupiedTile
	}

	t.Content = ContentTower
	g.towers = append(g.towers, &Tower{Pos: c, Facing: facing})
	return nil
}

// SpawnEnemy places a fresh enemy with full hit points on the given cell.
// Returns nil if the cell is out of bounds or not empty.
func (g *Grid) SpawnEnemy(c Coordinate) *Enemy {
	if !g.InBounds(c) {
		return nil
	}
	t := g.tileRef(c)
	if t.Content != ContentEmpty {
		return nil
	}
	t.Content = ContentEnemy
	e := &Enemy{Pos: c, HP: EnemyMaxHP}
	g.enemies = append(g.enemies, e)
	return e
}

// ApplyDamage decrements an enemy's hit points. Hit points never go
// negative; at zero the enemy is removed and its tile reset to empty.
// Returns true if the enemy was destroyed.
func (g *Grid) ApplyDamage(e *Enemy, amount int) bool {
	e.HP -= amount
	if e.HP > 0 {
		return false
	}
	e.HP = 0

	for i, live := range g.enemies {
		if live == e {
			g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
			break
		}
	}
	tile := g.tileRef(e.Pos)
	if tile.Content == ContentEnemy {
		tile.Content = ContentEmpty
	}
	return true
}

// HasEnemyReachedGoal reports whether any live enemy stands on the goal
// cell. This becomes true the instant an enemy steps onto the goal.
func (g *Grid) HasEnemyReachedGoal() bool {
	for _, e := range g.enemies {
		if e.Pos.Equal(g.goalPos) {
			return true
		}
	}
	return false
}

// NextStep returns the cell an enemy standing at `from` should step to:
// the adjacent routed tile with a strictly smaller baked distance to the
// goal. Occupied cells are not candidates, except the goal itself. The
// second return is false when no step is available this turn.
func (g *Grid) NextStep(from Coordinate) (Coordinate, bool) {
	cur, err := g.TileAt(from)
	if err != nil || cur.PathDist < 0 {
		return Coordinate{}, false
	}
	for _, dir := range Directions {
		dst := from.Move(dir)
		if !g.InBounds(dst) {
			continue
		}
		t := g.T[dst.ToIndex(g.W)]
		if t.PathDist < 0 || t.PathDist >= cur.PathDist {
			continue
		}
		if t.Content == ContentEmpty || t.Content == ContentGoal {
			return dst, true
		}
	}
	return Coordinate{}, false
}

// StepEnemy advances one enemy a single step toward the goal along its
// authored route. Returns true if the enemy stepped onto the goal, which
// ends the game. An enemy with no available step stays put.
func (g *Grid) StepEnemy(e *Enemy) bool {
	dst, ok := g.NextStep(e.Pos)
	if !ok {
		return false
	}
	dstTile := g.tileRef(dst)
	reachedGoal := dstTile.Content == ContentGoal

	g.tileRef(e.Pos).Content = ContentEmpty
	dstTile.Content = ContentEnemy
	e.Pos = dst
	return reachedGoal
}
