package ui

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gridward/gridward/internal/common"
	"github.com/gridward/gridward/internal/config"
	"github.com/gridward/gridward/internal/game"
	"github.com/gridward/gridward/internal/game/states"
	"github.com/gridward/gridward/internal/ui/input"
	"github.com/gridward/gridward/internal/ui/renderer"
)

// UI configuration functions
func ScreenWidth() int {
	return config.Get().UI.Window.Width
}

func ScreenHeight() int {
	return config.Get().UI.Window.Height
}

func TileSize() int {
	return config.Get().UI.Game.TileSize
}

// UIGame holds the game engine instance and UI-specific state
type UIGame struct {
	engine        *game.Engine
	boardRenderer *renderer.BoardRenderer
	inputHandler  *input.Handler
	defaultFont   font.Face

	// UI state
	statusMessage string
	messageTimer  int
	inputCooldown int // frames to ignore input after a resolved turn
}

// NewUIGame creates a new Ebitengine game instance.
func NewUIGame(engine *game.Engine) (*UIGame, error) {
	g := &UIGame{
		engine:      engine,
		defaultFont: basicfont.Face7x13,
	}

	g.boardRenderer = renderer.NewBoardRenderer(TileSize(), g.defaultFont)
	g.inputHandler = input.NewHandler()

	return g, nil
}

// Update proceeds the game state.
func (g *UIGame) Update() error {
	g.inputHandler.Update()

	if g.messageTimer > 0 {
		g.messageTimer--
	}
	if g.inputCooldown > 0 {
		g.inputCooldown--
	}

	if g.engine.IsOver() {
		return nil
	}

	intent, ok := g.inputHandler.ConsumeIntent()
	if !ok || g.inputCooldown > 0 {
		return nil
	}

	if err := g.engine.SubmitIntent(intent); err != nil {
		g.showMessage(err.Error(), 90)
		return nil
	}
	g.inputCooldown = config.Get().UI.Game.PhaseStepDelay

	return nil
}

func (g *UIGame) showMessage(msg string, duration int) {
	g.statusMessage = msg
	g.messageTimer = duration
}

// Draw renders the game screen.
func (g *UIGame) Draw(screen *ebiten.Image) {
	screen.Fill(common.BackgroundColor())

	snap := g.engine.Snapshot()

	if g.boardRenderer != nil {
		g.boardRenderer.Draw(screen, snap)
	}

	g.drawUI(screen, snap)
}

func (g *UIGame) drawUI(screen *ebiten.Image, snap game.Snapshot) {
	boardRight := snap.W*TileSize() + 10

	turnStr := fmt.Sprintf("Turn: %d", snap.Turn)
	ebitenutil.DebugPrintAt(screen, turnStr, boardRight, 5)

	towersStr := "Towers: "
	if snap.RemainingTowers < 0 {
		towersStr += "unlimited"
	} else {
		towersStr += strconv.Itoa(snap.RemainingTowers)
	}
	ebitenutil.DebugPrintAt(screen, towersStr, boardRight, 25)

	enemiesStr := fmt.Sprintf("Enemies: %d", len(snap.Enemies))
	ebitenutil.DebugPrintAt(screen, enemiesStr, boardRight, 45)

	switch snap.Phase {
	case states.PhaseVictory:
		text.Draw(screen, "VICTORY", g.defaultFont, boardRight, 80, common.TextColor())
	case states.PhaseGameOver:
		text.Draw(screen, "GAME OVER", g.defaultFont, boardRight, 80, common.TextColor())
	default:
		if g.inputHandler.IsPlacing() {
			text.Draw(screen, "Placing tower", g.defaultFont, boardRight, 80, common.TextColor())
		}
	}

	// Controls help
	helpY := ScreenHeight() - 60
	text.Draw(screen, "Arrows: Move", g.defaultFont, 5, helpY, common.TextColor())
	text.Draw(screen, "Shift+Arrow: Place tower", g.defaultFont, 5, helpY+15, common.TextColor())
	text.Draw(screen, "Space: Skip turn", g.defaultFont, 5, helpY+30, common.TextColor())

	// Status message
	if g.messageTimer > 0 && g.statusMessage != "" {
		msgX := ScreenWidth()/2 - len(g.statusMessage)*3
		msgY := ScreenHeight() - 10
		text.Draw(screen, g.statusMessage, g.defaultFont, msgX, msgY, common.TextColor())
	}
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth(), ScreenHeight()
}
