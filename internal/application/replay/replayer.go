package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
	next  int // index into data.Frames
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances.
// Frames without stored events yield an empty FrameInput. ok is false once
// all recorded frames have been played.
func (r *Replayer) GetInput() (FrameInput, bool) {
	if r.frame >= r.data.TotalFrames {
		return FrameInput{}, false
	}

	in := FrameInput{F: r.frame}
	if r.next < len(r.data.Frames) && r.data.Frames[r.next].F == r.frame {
		in = r.data.Frames[r.next]
		r.next++
	}
	r.frame++

	return in, true
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return r.data.TotalFrames
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}
