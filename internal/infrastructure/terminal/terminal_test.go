package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/snake/internal/application/engine"
	"github.com/younwookim/snake/internal/application/session"
	"github.com/younwookim/snake/internal/application/state"
)

// fakeCanvas records the last rune and style written to each cell
type fakeCanvas struct {
	cells map[[2]int]rune
	style map[[2]int]tcell.Style
	shown int
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{cells: map[[2]int]rune{}, style: map[[2]int]tcell.Style{}}
}

func (c *fakeCanvas) Clear() {
	c.cells = map[[2]int]rune{}
	c.style = map[[2]int]tcell.Style{}
}

func (c *fakeCanvas) SetContent(x, y int, r rune, style tcell.Style) {
	c.cells[[2]int{x, y}] = r
	c.style[[2]int{x, y}] = style
}

func (c *fakeCanvas) Show() { c.shown++ }

func (c *fakeCanvas) row(y, from, to int) string {
	out := make([]rune, 0, to-from)
	for x := from; x < to; x++ {
		r, ok := c.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		out = append(out, r)
	}
	return string(out)
}

// chanSource returns nil from PollEvent once its channel is closed
type chanSource chan tcell.Event

func (s chanSource) PollEvent() tcell.Event {
	return <-s
}

func createTestSession(t *testing.T, frame time.Duration) *session.Session {
	t.Helper()
	sess, err := session.New(30, 30, engine.DefaultSettings(), 1, frame)
	require.NoError(t, err)
	return sess
}

func TestInputDecoder_Keys(t *testing.T) {
	d := NewInputDecoder(20)

	assert.False(t, d.Key(tcell.KeyUp, 0))
	assert.False(t, d.Key(tcell.KeyLeft, 0))
	assert.False(t, d.Key(tcell.KeyRune, ' '))
	assert.False(t, d.Key(tcell.KeyRune, 'x'))

	in := d.Take()
	assert.True(t, in.Up)
	assert.True(t, in.Left)
	assert.True(t, in.Pause)
	assert.False(t, in.Down)
	assert.False(t, in.Right)

	assert.Equal(t, session.Input{}, d.Take(), "Take resets pending input")
}

func TestInputDecoder_QuitKeys(t *testing.T) {
	d := NewInputDecoder(20)
	assert.True(t, d.Key(tcell.KeyEscape, 0))
	assert.True(t, d.Key(tcell.KeyCtrlC, 0))
	assert.True(t, d.Key(tcell.KeyRune, 'q'))
	assert.True(t, d.Key(tcell.KeyRune, 'Q'))
}

func TestInputDecoder_MousePressEdge(t *testing.T) {
	d := NewInputDecoder(20)

	// Column 25 is board cell 12; row 13
	d.Mouse(25, 13, true)
	in := d.Take()
	require.True(t, in.Click)
	assert.Equal(t, 250.0, in.MouseX)
	assert.Equal(t, 270.0, in.MouseY)

	// Held button does not click again
	d.Mouse(26, 13, true)
	assert.False(t, d.Take().Click)

	d.Mouse(26, 13, false)
	d.Mouse(26, 13, true)
	assert.True(t, d.Take().Click)
}

func TestInputDecoder_ClickHitsEngineButton(t *testing.T) {
	sess := createTestSession(t, engine.FrameDuration(60))
	eng := sess.Engine()
	d := NewInputDecoder(eng.CellSize())

	// Centre of the 30x30 board's button is at cell (15, 13), column 30
	d.Mouse(30, 13, true)
	sess.Step(d.Take())

	assert.Equal(t, state.StateRunning, eng.State())
}

func TestRenderer_Render(t *testing.T) {
	sess := createTestSession(t, engine.FrameDuration(60))
	eng := sess.Engine()
	canvas := newFakeCanvas()
	r := NewRenderer(canvas)

	r.Render(eng)

	assert.Equal(t, 1, canvas.shown)
	assert.Equal(t, styleSnake, canvas.style[[2]int{0, 0}])
	assert.Equal(t, styleSnake, canvas.style[[2]int{1, 2}])
	assert.Equal(t, styleFood, canvas.style[[2]int{30, 15}])
	assert.Equal(t, styleFood, canvas.style[[2]int{31, 15}])
	assert.Equal(t, styleBoard, canvas.style[[2]int{10, 10}])

	// Button spans cells 12..17 x 12..14, label on the middle row
	assert.Equal(t, styleButton, canvas.style[[2]int{24, 12}])
	assert.Contains(t, canvas.row(13, 24, 36), "Start")
	assert.Contains(t, canvas.row(30, 0, 60), "space: pause")
}

func TestRenderer_PausedBanner(t *testing.T) {
	sess := createTestSession(t, engine.FrameDuration(60))
	eng := sess.Engine()
	eng.SetState(state.StatePaused)
	canvas := newFakeCanvas()

	NewRenderer(canvas).Render(eng)

	assert.Contains(t, canvas.row(15, 0, 60), "Paused")
	assert.NotContains(t, canvas.row(13, 0, 60), "Start", "button hidden once started")
}

func TestCheckSize(t *testing.T) {
	sess := createTestSession(t, engine.FrameDuration(60))
	eng := sess.Engine()

	cols, rows := MinSize(eng)
	assert.Equal(t, 60, cols)
	assert.Equal(t, 31, rows)

	assert.NoError(t, CheckSize(60, 31, eng))
	assert.NoError(t, CheckSize(120, 40, eng))
	assert.ErrorIs(t, CheckSize(59, 31, eng), ErrScreenTooSmall)
	assert.ErrorIs(t, CheckSize(60, 30, eng), ErrScreenTooSmall)
}

func TestHost_Run_StopsWhenSourceCloses(t *testing.T) {
	sess := createTestSession(t, engine.FrameDuration(60))
	src := make(chanSource)
	close(src)

	h := NewHost(sess, src, newFakeCanvas(), nil)

	done := make(chan error, 1)
	go func() { done <- h.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after source closed")
	}
}

func TestHost_Run_StepsUntilCancelled(t *testing.T) {
	sess := createTestSession(t, time.Millisecond)
	src := make(chanSource)
	defer close(src)
	canvas := newFakeCanvas()
	h := NewHost(sess, src, canvas, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := h.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, sess.Frames(), 0)
	assert.Greater(t, canvas.shown, 1)
}
