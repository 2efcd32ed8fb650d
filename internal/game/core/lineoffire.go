package core

// ShotResult describes the outcome of one tower's shot.
type ShotResult struct {
	Hit       bool
	Target    Coordinate
	Killed    bool
	Remaining int // target HP after the shot, 0 when killed
}

// ResolveShot scans stepwise from the tower's position along its fixed
// facing and applies one point of damage to the first live enemy in the
// line. The scan halts with no effect at the grid boundary or at the
// first cell whose occupant blocks the line (rocks and the goal absorb
// shots; any other occupant simply stands in the way). At most one enemy
// is damaged per shot.
func (g *Grid) ResolveShot(t *Tower) ShotResult {
	cur := t.Pos
	for {
		cur = cur.Move(t.Facing)
		if !g.InBounds(cur) {
			return ShotResult{}
		}
		tile := g.T[cur.ToIndex(g.W)]
		if tile.Content == ContentEnemy {
			e := g.EnemyAt(cur)
			if e == nil {
				panic("grid: enemy tile with no enemy index entry at " + cur.String())
			}
			killed := g.ApplyDamage(e, TowerDamage)
			return ShotResult{Hit: true, Target: cur, Killed: killed, Remaining: e.HP}
		}
		if tile.Content != ContentEmpty {
			// Blocked by a rock, the goal, the player, or another tower.
			return ShotResult{}
		}
	}
}
