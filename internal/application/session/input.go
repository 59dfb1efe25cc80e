package session

import (
	"github.com/younwookim/snake/internal/application/engine"
	"github.com/younwookim/snake/internal/application/replay"
)

// Input holds the logical events decoded by a frontend during one frame
type Input struct {
	Up, Down, Left, Right bool
	Pause                 bool
	Click                 bool
	MouseX, MouseY        float64 // click position in pixels
}

// Apply forwards the frame's events to the engine: keys in the order
// Up, Down, Left, Right, Space, then the click.
func Apply(eng *engine.Engine, in Input) {
	if in.Up {
		eng.OnKey(engine.KeyUp)
	}
	if in.Down {
		eng.OnKey(engine.KeyDown)
	}
	if in.Left {
		eng.OnKey(engine.KeyLeft)
	}
	if in.Right {
		eng.OnKey(engine.KeyRight)
	}
	if in.Pause {
		eng.OnKey(engine.KeySpace)
	}
	if in.Click {
		eng.OnClick(in.MouseX, in.MouseY)
	}
}

// Frame converts the input to its recorded form
func (in Input) Frame() replay.FrameInput {
	f := replay.FrameInput{
		U: in.Up,
		D: in.Down,
		L: in.Left,
		R: in.Right,
		P: in.Pause,
		C: in.Click,
	}
	if in.Click {
		f.MX, f.MY = in.MouseX, in.MouseY
	}
	return f
}

// FromFrame converts a recorded frame back into input
func FromFrame(f replay.FrameInput) Input {
	return Input{
		Up:     f.U,
		Down:   f.D,
		Left:   f.L,
		Right:  f.R,
		Pause:  f.P,
		Click:  f.C,
		MouseX: f.MX,
		MouseY: f.MY,
	}
}
