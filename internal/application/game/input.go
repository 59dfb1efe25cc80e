package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/snake/internal/application/session"
)

// InputSystem reads keyboard and mouse state from ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the keys and clicks that started this frame
func (s *InputSystem) GetInput() session.Input {
	mx, my := ebiten.CursorPosition()
	return session.Input{
		Up:     inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Down:   inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Left:   inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		Right:  inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		Pause:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Click:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseX: float64(mx),
		MouseY: float64(my),
	}
}

// Quit reports whether Escape was pressed
func (s *InputSystem) Quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
