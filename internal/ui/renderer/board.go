package renderer

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/gridward/gridward/internal/common"
	"github.com/gridward/gridward/internal/config"
	"github.com/gridward/gridward/internal/game"
	"github.com/gridward/gridward/internal/game/core"
)

// BoardRenderer draws a game snapshot onto an Ebiten screen.
type BoardRenderer struct {
	tileSize    int
	defaultFont font.Face
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(tileSize int, f font.Face) *BoardRenderer {
	return &BoardRenderer{tileSize: tileSize, defaultFont: f}
}

// Draw renders the snapshot on the supplied Ebiten screen.
func (br *BoardRenderer) Draw(screen *ebiten.Image, snap game.Snapshot) {
	hp := make(map[core.Coordinate]int, len(snap.Enemies))
	for _, e := range snap.Enemies {
		hp[e.Pos] = e.HP
	}
	facing := make(map[core.Coordinate]core.Direction, len(snap.Towers))
	for _, t := range snap.Towers {
		facing[t.Pos] = t.Facing
	}
	dev := config.Get().Development

	for i, tile := range snap.Tiles {
		gridX := i % snap.W
		gridY := i / snap.W

		screenX := float64(gridX * br.tileSize)
		screenY := float64(gridY * br.tileSize)

		cell := ebiten.NewImage(br.tileSize, br.tileSize)
		cell.Fill(common.GroundColor(tile.Ground))
		br.drawCellBorder(cell)

		// entity marker (inner square)
		if tile.Content != core.ContentEmpty {
			m := br.tileSize / 2
			sq := ebiten.NewImage(m, m)
			sq.Fill(common.ContentColor(tile.Content))
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(br.tileSize-m)/2, float64(br.tileSize-m)/2)
			cell.DrawImage(sq, op)
		}

		// tower facing notch on the fired edge
		if tile.Content == core.ContentTower {
			if dir, ok := facing[core.NewCoordinate(gridX, gridY)]; ok {
				br.drawFacingNotch(cell, dir)
			}
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(screenX, screenY)
		screen.DrawImage(cell, op)

		// enemy hit points
		if tile.Content == core.ContentEnemy && br.defaultFont != nil {
			if points, ok := hp[core.NewCoordinate(gridX, gridY)]; ok {
				hpStr := strconv.Itoa(points)

				b := text.BoundString(br.defaultFont, hpStr)
				textW := b.Max.X - b.Min.X
				textH := b.Max.Y - b.Min.Y

				x := int(screenX) + (br.tileSize-textW)/2
				y := int(screenY) + (br.tileSize+textH)/2

				text.Draw(screen, hpStr, br.defaultFont, x, y, common.TextColor())
			}
		}

		// debug overlays
		if dev.ShowCoordinates && br.defaultFont != nil {
			label := strconv.Itoa(gridX) + "," + strconv.Itoa(gridY)
			text.Draw(screen, label, br.defaultFont, int(screenX)+2, int(screenY)+10, common.GridLineColor())
		}
		if dev.ShowPathDist && br.defaultFont != nil && tile.PathDist >= 0 {
			text.Draw(screen, strconv.Itoa(tile.PathDist), br.defaultFont,
				int(screenX)+2, int(screenY)+br.tileSize-3, common.GridLineColor())
		}
	}
}

// drawCellBorder traces the top and left edges so adjacent same-ground
// cells stay visually distinct.
func (br *BoardRenderer) drawCellBorder(cell *ebiten.Image) {
	lineColor := common.GridLineColor()

	h := ebiten.NewImage(br.tileSize, 1)
	h.Fill(lineColor)
	cell.DrawImage(h, &ebiten.DrawImageOptions{})

	v := ebiten.NewImage(1, br.tileSize)
	v.Fill(lineColor)
	cell.DrawImage(v, &ebiten.DrawImageOptions{})
}

// drawFacingNotch marks the edge a tower fires along.
func (br *BoardRenderer) drawFacingNotch(cell *ebiten.Image, dir core.Direction) {
	m := br.tileSize / 6
	if m < 2 {
		m = 2
	}
	notch := ebiten.NewImage(m, m)
	notch.Fill(common.TextColor())

	mid := float64(br.tileSize-m) / 2
	op := &ebiten.DrawImageOptions{}
	switch dir {
	case core.North:
		op.GeoM.Translate(mid, 0)
	case core.East:
		op.GeoM.Translate(float64(br.tileSize-m), mid)
	case core.South:
		op.GeoM.Translate(mid, float64(br.tileSize-m))
	case core.West:
		op.GeoM.Translate(0, mid)
	}
	cell.DrawImage(notch, op)
}
