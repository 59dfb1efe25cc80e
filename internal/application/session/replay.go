package session

import (
	"fmt"
	"time"

	"github.com/younwookim/snake/internal/application/engine"
	"github.com/younwookim/snake/internal/application/replay"
)

// Replay re-runs a recorded session headlessly and returns the resulting session.
// The recorded layout overrides the tick interval, cell size and button in s;
// s is used as is for recordings made before the layout was stored.
func Replay(data replay.ReplayData, s engine.Settings) (*Session, error) {
	frame := time.Duration(data.FrameNanos)
	if frame <= 0 {
		return nil, fmt.Errorf("invalid replay frame duration %v", frame)
	}
	if l := data.Layout; l.TickNanos > 0 {
		s.TickInterval = time.Duration(l.TickNanos)
		s.CellSize = l.CellSize
		s.ButtonWidth = l.ButtonWidth
		s.ButtonHeight = l.ButtonHeight
		s.ButtonOffsetY = l.ButtonOffsetY
	}

	r := replay.NewReplayer(data)
	sess, err := New(data.Board.Width, data.Board.Height, s, r.Seed(), frame)
	if err != nil {
		return nil, err
	}
	if r.TotalFrames() == 0 {
		return nil, fmt.Errorf("replay %s has no frames", data.SessionID)
	}

	for {
		f, ok := r.GetInput()
		if !ok {
			break
		}
		sess.Step(FromFrame(f))
	}
	return sess, nil
}
