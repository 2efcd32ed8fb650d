package common

import (
	"image/color"

	"github.com/gridward/gridward/internal/config"
	"github.com/gridward/gridward/internal/game/core"
)

// RGB converts a configured [r, g, b] triple into an opaque color.
func RGB(rgb [3]int) color.RGBA {
	return color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), 255}
}

// GroundColor returns the configured fill color for a ground kind.
func GroundColor(g core.GroundKind) color.RGBA {
	tiles := config.Get().Colors.Tiles
	switch g {
	case core.GroundWater:
		return RGB(tiles.Water)
	case core.GroundPath:
		return RGB(tiles.Path)
	default:
		return RGB(tiles.Grass)
	}
}

// ContentColor returns the configured marker color for a content kind.
// ContentEmpty has no marker; callers skip it before asking.
func ContentColor(c core.ContentKind) color.RGBA {
	entities := config.Get().Colors.Entities
	switch c {
	case core.ContentPlayer:
		return RGB(entities.Player)
	case core.ContentEnemy:
		return RGB(entities.Enemy)
	case core.ContentTower:
		return RGB(entities.Tower)
	case core.ContentRock:
		return RGB(entities.Rock)
	case core.ContentGoal:
		return RGB(entities.Goal)
	default:
		return color.RGBA{255, 0, 255, 255}
	}
}

// UI colors
func BackgroundColor() color.RGBA { return RGB(config.Get().Colors.UI.Background) }
func GridLineColor() color.RGBA   { return RGB(config.Get().Colors.UI.GridLines) }
func TextColor() color.RGBA       { return RGB(config.Get().Colors.UI.Text) }
