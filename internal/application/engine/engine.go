// Package engine implements the snake game-state engine: the state machine,
// the fixed-tick update policy and food placement on a toroidal board.
//
// The engine is single-threaded. Update, OnKey and OnClick must be called from
// the same goroutine; none of them block.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/younwookim/snake/internal/application/state"
	"github.com/younwookim/snake/internal/domain/entity"
)

// Engine owns the snake, the food cell and the game state.
type Engine struct {
	snake    *entity.Snake
	food     entity.Point
	width    int
	height   int
	gameOver bool
	state    state.GameState

	lastUpdate time.Time
	interval   time.Duration

	cellSize    float64
	startButton entity.Rect

	clock Clock
	rng   Rand

	// Event hooks, called synchronously. All are optional.
	OnStart    func(restarted bool)
	OnEat      func(food entity.Point, length int)
	OnGameOver func(head entity.Point, length int)
	OnPause    func(paused bool)
}

// New creates an engine for a width x height board with default settings.
func New(width, height int) (*Engine, error) {
	return NewWithSettings(width, height, DefaultSettings())
}

// NewWithSettings creates an engine for a width x height board.
// A nil Clock or Rand in s falls back to the defaults.
func NewWithSettings(width, height int, s Settings) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBoard, width, height)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.Clock == nil {
		s.Clock = SystemClock{}
	}
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	boardW := float64(width) * s.CellSize
	boardH := float64(height) * s.CellSize

	return &Engine{
		snake:      entity.NewSnake(),
		food:       centre(width, height),
		width:      width,
		height:     height,
		state:      state.StateNotStarted,
		lastUpdate: s.Clock.Now(),
		interval:   s.TickInterval,
		cellSize:   s.CellSize,
		startButton: entity.Rect{
			X: (boardW - s.ButtonWidth) / 2,
			Y: boardH/2 - s.ButtonOffsetY,
			W: s.ButtonWidth,
			H: s.ButtonHeight,
		},
		clock: s.Clock,
		rng:   s.Rand,
	}, nil
}

func centre(width, height int) entity.Point {
	return entity.Point{X: width / 2, Y: height / 2}
}

// Update advances the simulation by at most one tick.
// It is meant to be called every frame; calls inside the tick interval are no-ops.
func (e *Engine) Update() {
	if e.state != state.StateRunning || e.gameOver {
		return
	}

	now := e.clock.Now()
	if now.Sub(e.lastUpdate) < e.interval {
		return
	}
	e.lastUpdate = now

	if !e.snake.MoveForward(e.width, e.height) {
		e.gameOver = true
		if e.OnGameOver != nil {
			e.OnGameOver(e.snake.Head(), e.snake.Len())
		}
		return
	}

	if e.snake.Head() == e.food {
		eaten := e.food
		e.snake.Grow()
		e.food = entity.Point{X: e.rng.Intn(e.width), Y: e.rng.Intn(e.height)}
		if e.OnEat != nil {
			e.OnEat(eaten, e.snake.Len())
		}
	}
}

// OnKey handles a decoded key press.
//
// Arrow keys only steer while Running. The guard ignores game over, so steering
// and pausing are still accepted after a collision until the restart click.
func (e *Engine) OnKey(k Key) {
	switch k {
	case KeyUp:
		e.steer(entity.Up)
	case KeyDown:
		e.steer(entity.Down)
	case KeyLeft:
		e.steer(entity.Left)
	case KeyRight:
		e.steer(entity.Right)
	case KeySpace:
		e.togglePause()
	}
}

func (e *Engine) steer(dir entity.Point) {
	if e.state == state.StateRunning {
		e.snake.ChangeDirection(dir)
	}
}

func (e *Engine) togglePause() {
	switch e.state {
	case state.StateRunning:
		e.state = state.StatePaused
		if e.OnPause != nil {
			e.OnPause(true)
		}
	case state.StatePaused:
		e.state = state.StateRunning
		// No catch-up tick for the time spent paused
		e.lastUpdate = e.clock.Now()
		if e.OnPause != nil {
			e.OnPause(false)
		}
	}
}

// OnClick handles a pointer click at (x, y) in pixel space.
// Only a click on the start button while not started or game over does anything.
func (e *Engine) OnClick(x, y float64) {
	if !e.startButton.Contains(x, y) {
		return
	}
	if e.state != state.StateNotStarted && !e.gameOver {
		return
	}

	restarted := e.gameOver
	if restarted {
		e.snake = entity.NewSnake()
		e.food = centre(e.width, e.height)
		e.gameOver = false
	}

	e.state = state.StateRunning
	e.lastUpdate = e.clock.Now()
	if e.OnStart != nil {
		e.OnStart(restarted)
	}
}

// Snake returns the snake. Callers must treat it as read-only.
func (e *Engine) Snake() *entity.Snake {
	return e.snake
}

// Food returns the current food cell
func (e *Engine) Food() entity.Point {
	return e.food
}

// Width returns the board width in cells
func (e *Engine) Width() int {
	return e.width
}

// Height returns the board height in cells
func (e *Engine) Height() int {
	return e.height
}

// State returns the state machine value
func (e *Engine) State() state.GameState {
	return e.state
}

// GameOver reports whether the snake has collided with itself since the last (re)start
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// StartButton returns the start/restart button rectangle in pixels
func (e *Engine) StartButton() entity.Rect {
	return e.startButton
}

// Interval returns the tick interval
func (e *Engine) Interval() time.Duration {
	return e.interval
}

// CellSize returns the pixel size of a grid cell
func (e *Engine) CellSize() float64 {
	return e.cellSize
}

// SetFood places the food at p, wrapped onto the board.
func (e *Engine) SetFood(p entity.Point) {
	e.food = p.Wrap(e.width, e.height)
}

// SetState forces the state machine value. Used by scenario tests and tooling.
func (e *Engine) SetState(s state.GameState) {
	e.state = s
}
