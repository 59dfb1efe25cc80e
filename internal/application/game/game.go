// Package game hosts the engine in an ebiten window: it reads input, steps the
// session once per frame and draws the engine's public state.
package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/snake/internal/application/session"
	"github.com/younwookim/snake/internal/domain/entity"
)

// InputSource decodes one frame of platform input
type InputSource interface {
	GetInput() session.Input
	Quit() bool
}

// Game implements ebiten.Game on top of a session.
type Game struct {
	session    *session.Session
	input      InputSource
	screenW    int
	screenH    int
	recordPath string
}

// New creates a window host for sess. If recordPath is not empty and the
// session is recording, the recording is saved there on game over and on quit.
func New(sess *session.Session, input InputSource, screenW, screenH int, recordPath string) *Game {
	g := &Game{
		session:    sess,
		input:      input,
		screenW:    screenW,
		screenH:    screenH,
		recordPath: recordPath,
	}

	eng := sess.Engine()
	prev := eng.OnGameOver
	eng.OnGameOver = func(head entity.Point, length int) {
		if prev != nil {
			prev(head, length)
		}
		g.saveRecording()
	}

	return g
}

// Update steps the session with this frame's input.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.input.Quit() {
		g.finishRecording()
		return ebiten.Termination
	}

	g.session.Step(g.input.GetInput())
	return nil
}

// Layout returns the board size in pixels.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Session returns the hosted session
func (g *Game) Session() *session.Session {
	return g.session
}

func (g *Game) saveRecording() {
	if !g.session.Recording() {
		return
	}

	filename, err := g.session.SaveRecording(g.recordPath)
	g.logSaved(filename, err)
}

// finishRecording stops the recorder so a late frame cannot follow the final save
func (g *Game) finishRecording() {
	if !g.session.Recording() {
		return
	}

	filename, err := g.session.StopRecording(g.recordPath)
	g.logSaved(filename, err)
}

func (g *Game) logSaved(filename string, err error) {
	if err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d frames)", filename, g.session.Recorder().FrameCount())
}
