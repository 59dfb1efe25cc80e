// Package session drives an engine one host frame at a time on a stepped clock,
// optionally recording the input for replay.
package session

import (
	"fmt"
	"log"
	"time"

	"github.com/younwookim/snake/internal/application/engine"
	"github.com/younwookim/snake/internal/application/replay"
)

// epoch is the step clock's origin. Only differences matter to the engine.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Session couples an engine with the clock and recorder of one play session.
type Session struct {
	engine   *engine.Engine
	clock    *engine.StepClock
	frame    time.Duration
	seed     int64
	layout   replay.Layout
	recorder *replay.Recorder
	frames   int
}

// New creates a session for a width x height board.
// The settings' Clock and Rand are replaced by a step clock and a seeded source.
// frame is the host's frame duration, e.g. 1/60s.
func New(width, height int, s engine.Settings, seed int64, frame time.Duration) (*Session, error) {
	if frame <= 0 {
		return nil, fmt.Errorf("invalid frame duration %v", frame)
	}

	clock := engine.NewStepClock(epoch)
	s.Clock = clock
	s.Rand = engine.SeededRand(seed)

	eng, err := engine.NewWithSettings(width, height, s)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	return &Session{
		engine: eng,
		clock:  clock,
		frame:  frame,
		seed:   seed,
		layout: replay.Layout{
			TickNanos:     int64(s.TickInterval),
			CellSize:      s.CellSize,
			ButtonWidth:   s.ButtonWidth,
			ButtonHeight:  s.ButtonHeight,
			ButtonOffsetY: s.ButtonOffsetY,
		},
	}, nil
}

// StartRecording begins recording every subsequent frame
func (s *Session) StartRecording() *replay.Recorder {
	s.recorder = replay.NewRecorder(s.seed, replay.Board{
		Width:  s.engine.Width(),
		Height: s.engine.Height(),
	}, s.layout, s.frame)
	log.Printf("Recording enabled (session: %s, seed: %d)", s.recorder.SessionID(), s.seed)
	return s.recorder
}

// Step runs one host frame: record, apply input, advance the clock, update.
func (s *Session) Step(in Input) {
	if s.recorder != nil {
		s.recorder.RecordFrame(in.Frame())
	}
	Apply(s.engine, in)
	s.clock.Advance(s.frame)
	s.engine.Update()
	s.frames++
}

// Recording reports whether frames are currently being recorded
func (s *Session) Recording() bool {
	return s.recorder != nil && s.recorder.IsRecording()
}

// Engine returns the session's engine
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// Recorder returns the active recorder, or nil
func (s *Session) Recorder() *replay.Recorder {
	return s.recorder
}

// Seed returns the food placement seed
func (s *Session) Seed() int64 {
	return s.seed
}

// Frames returns the number of frames stepped
func (s *Session) Frames() int {
	return s.frames
}

// FrameDuration returns the host frame duration
func (s *Session) FrameDuration() time.Duration {
	return s.frame
}

// SaveRecording writes the recording to filename, or to a timestamped name if empty
func (s *Session) SaveRecording(filename string) (string, error) {
	if s.recorder == nil {
		return "", fmt.Errorf("recording not enabled")
	}
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := s.recorder.Save(filename); err != nil {
		return "", err
	}
	return filename, nil
}

// StopRecording stops recording and saves what was recorded.
// Frames stepped afterwards are not recorded.
func (s *Session) StopRecording(filename string) (string, error) {
	if s.recorder == nil {
		return "", fmt.Errorf("recording not enabled")
	}
	s.recorder.Stop()
	return s.SaveRecording(filename)
}
