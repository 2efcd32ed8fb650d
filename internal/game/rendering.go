package game

import (
	"strings"

	"github.com/gridward/gridward/internal/game/core"
)

// This file contains all board rendering functionality for the game engine.

// ANSI color codes for Board rendering.
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

// Board returns a colored string representation of the grid.
func (e *Engine) Board() string {
	width := e.grid.W
	height := e.grid.H

	// Each cell takes roughly: 2 chars for symbol + ~10 chars for ANSI codes
	// Plus headers and legend
	estimatedSize := (width*12+10)*(height+3) + 160

	var sb strings.Builder
	sb.Grow(estimatedSize)

	// Header row
	sb.WriteString("    ")
	for x := 0; x < width; x++ {
		sb.WriteString(core.IntToStringFixedWidth(x, 2))
	}
	sb.WriteString("\n")

	// Board rows
	for y := 0; y < height; y++ {
		sb.WriteString(core.IntToStringFixedWidth(y, 2))
		sb.WriteString(" ")
		for x := 0; x < width; x++ {
			t := e.grid.T[e.grid.Idx(x, y)]
			writeTileDisplay(&sb, t)
		}
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString(playerSymbol + "=player " + enemySymbol + "=enemy " + towerSymbol + "=tower " +
		rockSymbol + "=rock " + goalSymbol + "=goal " + pathSymbol + "=path " + waterSymbol + "=water\n")

	return sb.String()
}

const (
	grassSymbol  = "·"
	waterSymbol  = "≈"
	pathSymbol   = "░"
	playerSymbol = "♙"
	enemySymbol  = "♟"
	towerSymbol  = "♜"
	rockSymbol   = "▲"
	goalSymbol   = "⚑"
)

// writeTileDisplay writes the tile display directly to the strings.Builder
// to avoid allocations.
func writeTileDisplay(sb *strings.Builder, t core.Tile) {
	sb.WriteString(" ")
	switch t.Content {
	case core.ContentPlayer:
		sb.WriteString(ColorCyan)
		sb.WriteString(playerSymbol)
	case core.ContentEnemy:
		sb.WriteString(ColorRed)
		sb.WriteString(enemySymbol)
	case core.ContentTower:
		sb.WriteString(ColorYellow)
		sb.WriteString(towerSymbol)
	case core.ContentRock:
		sb.WriteString(ColorGray)
		sb.WriteString(rockSymbol)
	case core.ContentGoal:
		sb.WriteString(ColorPurple)
		sb.WriteString(goalSymbol)
	default:
		switch t.Ground {
		case core.GroundWater:
			sb.WriteString(ColorBlue)
			sb.WriteString(waterSymbol)
		case core.GroundPath:
			sb.WriteString(ColorWhite)
			sb.WriteString(pathSymbol)
		default:
			sb.WriteString(ColorGreen)
			sb.WriteString(grassSymbol)
		}
	}
	sb.WriteString(ColorReset)
}
