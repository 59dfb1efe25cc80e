package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/snake/internal/application/engine"
	"github.com/younwookim/snake/internal/application/state"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{128, 128, 128, 255}
	colorSnake   = color.RGBA{0, 0, 255, 255}
	colorFood    = color.RGBA{255, 0, 0, 255}
	colorButton  = color.RGBA{51, 153, 51, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

const (
	pauseBoxW = 200.0
	pauseBoxH = 40.0

	// ebitenutil debug font glyph size
	glyphW = 6
	glyphH = 16
)

// Draw renders the engine state.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	eng := g.session.Engine()
	cell := eng.CellSize()

	screen.Fill(colorBG)

	food := eng.Food()
	ebitenutil.DrawRect(screen, float64(food.X)*cell, float64(food.Y)*cell, cell, cell, colorFood)

	for _, p := range eng.Snake().Body {
		ebitenutil.DrawRect(screen, float64(p.X)*cell, float64(p.Y)*cell, cell, cell, colorSnake)
	}

	if label, ok := ButtonLabel(eng); ok {
		btn := eng.StartButton()
		ebitenutil.DrawRect(screen, btn.X, btn.Y, btn.W, btn.H, colorButton)
		drawCentredText(screen, label, btn.X+btn.W/2, btn.Y+btn.H/2)
	}

	if eng.State() == state.StatePaused {
		x := (float64(g.screenW) - pauseBoxW) / 2
		y := (float64(g.screenH) - pauseBoxH) / 2
		ebitenutil.DrawRect(screen, x, y, pauseBoxW, pauseBoxH, colorOverlay)
		drawCentredText(screen, "Paused", x+pauseBoxW/2, y+pauseBoxH/2)
	}
}

// ButtonLabel returns the start button's label and whether it is shown
func ButtonLabel(eng *engine.Engine) (string, bool) {
	switch {
	case eng.GameOver():
		return "Restart", true
	case eng.State() == state.StateNotStarted:
		return "Start", true
	default:
		return "", false
	}
}

func drawCentredText(screen *ebiten.Image, text string, cx, cy float64) {
	x := int(cx) - len(text)*glyphW/2
	y := int(cy) - glyphH/2
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
