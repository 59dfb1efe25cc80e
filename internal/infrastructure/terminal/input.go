package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/snake/internal/application/session"
)

// CellWidth is the number of terminal columns per board cell, which keeps cells roughly square
const CellWidth = 2

// InputDecoder folds terminal events into one frame of session input.
type InputDecoder struct {
	cellSize float64
	pending  session.Input
	pressed  bool // primary button state from the previous mouse event
}

// NewInputDecoder creates a decoder mapping terminal cells onto a board
// drawn with cellSize pixels per cell.
func NewInputDecoder(cellSize float64) *InputDecoder {
	return &InputDecoder{cellSize: cellSize}
}

// Key records a key press. Returns true if the key asks to quit.
func (d *InputDecoder) Key(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		d.pending.Up = true
	case tcell.KeyDown:
		d.pending.Down = true
	case tcell.KeyLeft:
		d.pending.Left = true
	case tcell.KeyRight:
		d.pending.Right = true
	case tcell.KeyRune:
		switch r {
		case ' ':
			d.pending.Pause = true
		case 'q', 'Q':
			return true
		}
	}
	return false
}

// Mouse records a mouse event at terminal cell (col, row). Only the press
// edge of the primary button counts as a click.
func (d *InputDecoder) Mouse(col, row int, primary bool) {
	if primary && !d.pressed {
		x, y := d.PixelPosition(col, row)
		d.pending.Click = true
		d.pending.MouseX = x
		d.pending.MouseY = y
	}
	d.pressed = primary
}

// PixelPosition maps a terminal cell to the centre of the board cell under it, in pixels
func (d *InputDecoder) PixelPosition(col, row int) (float64, float64) {
	bx := col / CellWidth
	return (float64(bx) + 0.5) * d.cellSize, (float64(row) + 0.5) * d.cellSize
}

// Event decodes a tcell event. Returns true if it asks to quit.
func (d *InputDecoder) Event(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.Key(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		col, row := ev.Position()
		d.Mouse(col, row, ev.Buttons()&tcell.Button1 != 0)
	}
	return false
}

// Take returns the input gathered since the last call and resets it
func (d *InputDecoder) Take() session.Input {
	in := d.pending
	d.pending = session.Input{}
	return in
}
