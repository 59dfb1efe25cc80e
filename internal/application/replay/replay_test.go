package replay

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLayout = Layout{
	TickNanos:     int64(200 * time.Millisecond),
	CellSize:      20,
	ButtonWidth:   120,
	ButtonHeight:  40,
	ButtonOffsetY: 50,
}

func TestRecorder_RecordFrame_StoresOnlyEventFrames(t *testing.T) {
	r := NewRecorder(42, Board{Width: 30, Height: 30}, testLayout, 16*time.Millisecond)

	r.RecordFrame(FrameInput{})
	r.RecordFrame(FrameInput{C: true, MX: 250, MY: 260})
	r.RecordFrame(FrameInput{})
	r.RecordFrame(FrameInput{R: true})

	data := r.Data()
	assert.Equal(t, 4, r.FrameCount())
	assert.Equal(t, 4, data.TotalFrames)
	require.Len(t, data.Frames, 2)
	assert.Equal(t, 1, data.Frames[0].F)
	assert.True(t, data.Frames[0].C)
	assert.Equal(t, 250.0, data.Frames[0].MX)
	assert.Equal(t, 3, data.Frames[1].F)
	assert.True(t, data.Frames[1].R)
}

func TestRecorder_Metadata(t *testing.T) {
	r := NewRecorder(7, Board{Width: 20, Height: 15}, testLayout, 16*time.Millisecond)
	data := r.Data()

	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, Board{Width: 20, Height: 15}, data.Board)
	assert.Equal(t, int64(16*time.Millisecond), data.FrameNanos)
	assert.Equal(t, testLayout, data.Layout)
	_, err := uuid.Parse(r.SessionID())
	assert.NoError(t, err)
}

func TestRecorder_Stop(t *testing.T) {
	r := NewRecorder(1, Board{Width: 5, Height: 5}, testLayout, time.Millisecond)
	r.RecordFrame(FrameInput{U: true})
	r.Stop()
	r.RecordFrame(FrameInput{D: true})

	assert.False(t, r.IsRecording())
	assert.Equal(t, 1, r.FrameCount())
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	r := NewRecorder(99, Board{Width: 30, Height: 30}, testLayout, 16*time.Millisecond)
	r.RecordFrame(FrameInput{C: true, MX: 300, MY: 270})
	r.RecordFrame(FrameInput{})
	r.RecordFrame(FrameInput{P: true})

	path := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, r.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, r.Data().SessionID, loaded.SessionID)
	assert.Equal(t, int64(99), loaded.Seed)
	assert.Equal(t, 3, loaded.TotalFrames)
	assert.Equal(t, testLayout, loaded.Layout)
	assert.Equal(t, r.Data().Frames, loaded.Frames)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder(1, Board{Width: 5, Height: 5}, testLayout, time.Millisecond)
	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Seed:        42,
		TotalFrames: 4,
		Frames: []FrameInput{
			{F: 1, C: true, MX: 100, MY: 120},
			{F: 2, L: true},
		},
	}
	replayer := NewReplayer(data)

	// Frame 0: nothing recorded
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Empty())

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.C)
	assert.Equal(t, 100.0, input.MX)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.L)
	assert.False(t, input.C)

	// Frame 3: trailing empty frame
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Empty())

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_Metadata(t *testing.T) {
	replayer := NewReplayer(ReplayData{Seed: 5, TotalFrames: 3, Frames: []FrameInput{{F: 0, U: true}}})

	assert.Equal(t, 3, replayer.TotalFrames())
	assert.Equal(t, int64(5), replayer.Seed())
}
