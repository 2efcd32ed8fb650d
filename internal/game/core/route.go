package core

// ComputePathDistances bakes each routed tile's distance to the goal.
// Routes are level-authored: the walk starts at the goal cell and flows
// outward over Path ground only, so enemies never need a live search at
// turn time. Tiles off the path network keep distance -1.
func (g *Grid) ComputePathDistances() {
	for i := range g.T {
		g.T[i].PathDist = -1
	}

	goalIdx := g.goalPos.ToIndex(g.W)
	g.T[goalIdx].PathDist = 0

	// Plain BFS; the frontier is at most the whole grid.
	frontier := []Coordinate{g.goalPos}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		dist := g.T[cur.ToIndex(g.W)].PathDist

		for _, n := range cur.ValidNeighbors(g.W, g.H) {
			t := &g.T[n.ToIndex(g.W)]
			if t.Ground != GroundPath || t.PathDist != -1 {
				continue
			}
			t.PathDist = dist + 1
			frontier = append(frontier, n)
		}
	}
}
