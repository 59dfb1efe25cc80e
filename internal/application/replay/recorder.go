package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64, board Board, layout Layout, frame time.Duration) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:    FormatVersion,
			SessionID:  uuid.NewString(),
			Seed:       seed,
			Board:      board,
			Layout:     layout,
			FrameNanos: int64(frame),
			StartTime:  time.Now().Format(time.RFC3339),
			Frames:     make([]FrameInput, 0, 256),
		},
		recording: true,
	}
}

// RecordFrame records one frame. Every call counts as a frame; only frames
// with events are stored.
func (r *Recorder) RecordFrame(input FrameInput) {
	if !r.recording {
		return
	}

	if !input.Empty() {
		input.F = r.frame
		r.data.Frames = append(r.data.Frames, input)
	}
	r.frame++
	r.data.TotalFrames = r.frame
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if r.data.TotalFrames == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames, including empty ones
func (r *Recorder) FrameCount() int {
	return r.frame
}

// SessionID returns the recording's session identifier
func (r *Recorder) SessionID() string {
	return r.data.SessionID
}

// Data returns the replay data recorded so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
