// Package rules holds pure read-only rule queries over a grid, kept
// separate from the engine so presentation layers can use them without
// borrowing the turn loop.
package rules

import "github.com/gridward/gridward/internal/game/core"

// LegalIntentCalculator computes which player intents would currently
// be accepted. Indices follow core.Directions order (N, E, S, W).
type LegalIntentCalculator struct{}

// NewLegalIntentCalculator creates a new legal intent calculator.
func NewLegalIntentCalculator() *LegalIntentCalculator {
	return &LegalIntentCalculator{}
}

// LegalMoves returns, per direction, whether the player may step there.
func (lic *LegalIntentCalculator) LegalMoves(g *core.Grid) [4]bool {
	var mask [4]bool
	from := g.PlayerPos()
	for i, dir := range core.Directions {
		to := from.Move(dir)
		tile, err := g.TileAt(to)
		if err != nil {
			continue
		}
		mask[i] = tile.IsWalkableBy(core.ContentPlayer)
	}
	return mask
}

// LegalPlacements returns, per direction, whether a tower may be placed
// on the adjacent cell. remainingTowers caps placement; -1 is uncapped.
func (lic *LegalIntentCalculator) LegalPlacements(g *core.Grid, remainingTowers int) [4]bool {
	var mask [4]bool
	if remainingTowers == 0 {
		return mask
	}
	from := g.PlayerPos()
	for i, dir := range core.Directions {
		to := from.Move(dir)
		tile, err := g.TileAt(to)
		if err != nil {
			continue
		}
		mask[i] = tile.Content == core.ContentEmpty && tile.Ground != core.GroundWater
	}
	return mask
}
