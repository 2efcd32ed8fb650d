package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridward/gridward/internal/game/level"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a level file without playing it",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	lvl, err := level.Load(args[0])
	if err != nil {
		return fmt.Errorf("invalid level: %w", err)
	}

	g := lvl.Grid
	fmt.Printf("OK: %dx%d grid, player at %s, goal at %s\n", g.W, g.H, g.PlayerPos(), g.GoalPos())
	fmt.Printf("Enemies: %d, pre-placed towers: %d, scheduled spawns: %d\n",
		len(g.Enemies()), len(g.Towers()), len(lvl.Spawns))
	if lvl.MaxTowers >= 0 {
		fmt.Printf("Tower budget: %d\n", lvl.MaxTowers)
	} else {
		fmt.Println("Tower budget: unlimited")
	}

	// Path distances radiate from the goal; -1 means the tile has no
	// route there, so the enemy on it can never threaten the goal.
	for _, enemy := range g.Enemies() {
		tile, err := g.TileAt(enemy.Pos)
		if err == nil && tile.PathDist < 0 {
			fmt.Printf("Warning: enemy at %s cannot reach the goal\n", enemy.Pos)
		}
	}
	return nil
}
