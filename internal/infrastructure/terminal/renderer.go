package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/snake/internal/application/engine"
	"github.com/younwookim/snake/internal/application/state"
	"github.com/younwookim/snake/internal/domain/entity"
)

var (
	styleBoard  = tcell.StyleDefault.Background(tcell.ColorGray)
	styleSnake  = tcell.StyleDefault.Background(tcell.ColorBlue)
	styleFood   = tcell.StyleDefault.Background(tcell.ColorRed)
	styleButton = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorWhite)
	stylePause  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

const helpText = "arrows: steer  space: pause  click button: start  q: quit"

// ErrScreenTooSmall is returned when the terminal cannot fit the board and help line
var ErrScreenTooSmall = errors.New("terminal too small")

// MinSize returns the terminal size needed to draw eng: the board plus the help line.
func MinSize(eng *engine.Engine) (cols, rows int) {
	return eng.Width() * CellWidth, eng.Height() + 1
}

// CheckSize reports ErrScreenTooSmall if a cols x rows terminal cannot fit eng.
func CheckSize(cols, rows int, eng *engine.Engine) error {
	minCols, minRows := MinSize(eng)
	if cols < minCols || rows < minRows {
		return fmt.Errorf("%w: %dx%d, need %dx%d", ErrScreenTooSmall, cols, rows, minCols, minRows)
	}
	return nil
}

// Renderer draws engine state onto a Canvas, two columns per board cell.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a renderer for the given canvas
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Render draws one frame
func (r *Renderer) Render(eng *engine.Engine) {
	r.canvas.Clear()

	for y := 0; y < eng.Height(); y++ {
		for x := 0; x < eng.Width(); x++ {
			r.fillCell(x, y, styleBoard)
		}
	}

	r.fillCell(eng.Food().X, eng.Food().Y, styleFood)
	for _, p := range eng.Snake().Body {
		r.fillCell(p.X, p.Y, styleSnake)
	}

	if eng.GameOver() || eng.State() == state.StateNotStarted {
		label := "Start"
		if eng.GameOver() {
			label = "Restart"
		}
		r.drawButton(eng, label)
	}

	if eng.State() == state.StatePaused {
		r.drawBanner(eng, "Paused")
	}

	r.drawText(0, eng.Height(), helpText, styleStatus)
	r.canvas.Show()
}

func (r *Renderer) fillCell(x, y int, style tcell.Style) {
	for i := 0; i < CellWidth; i++ {
		r.canvas.SetContent(x*CellWidth+i, y, ' ', style)
	}
}

// drawButton fills every board cell whose centre lies inside the button rectangle
func (r *Renderer) drawButton(eng *engine.Engine, label string) {
	btn := eng.StartButton()
	cell := eng.CellSize()

	var cells []entity.Point
	for y := 0; y < eng.Height(); y++ {
		for x := 0; x < eng.Width(); x++ {
			cx, cy := (float64(x)+0.5)*cell, (float64(y)+0.5)*cell
			if btn.Contains(cx, cy) {
				cells = append(cells, entity.Point{X: x, Y: y})
			}
		}
	}
	if len(cells) == 0 {
		return
	}

	for _, c := range cells {
		r.fillCell(c.X, c.Y, styleButton)
	}

	first, last := cells[0], cells[len(cells)-1]
	midRow := (first.Y + last.Y) / 2
	left := first.X * CellWidth
	width := (last.X - first.X + 1) * CellWidth
	r.drawText(left+(width-len(label))/2, midRow, label, styleButton)
}

func (r *Renderer) drawBanner(eng *engine.Engine, text string) {
	cols := eng.Width() * CellWidth
	row := eng.Height() / 2
	boxW := len(text) + 4
	left := (cols - boxW) / 2
	for i := 0; i < boxW; i++ {
		r.canvas.SetContent(left+i, row, ' ', stylePause)
	}
	r.drawText(left+2, row, text, stylePause)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.canvas.SetContent(x+i, y, ch, style)
	}
}
