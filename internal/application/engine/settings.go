package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Defaults for a window-sized board
const (
	DefaultCellSize      = 20.0
	DefaultTickInterval  = 200 * time.Millisecond
	DefaultButtonWidth   = 120.0
	DefaultButtonHeight  = 40.0
	DefaultButtonOffsetY = 50.0
)

var (
	// ErrInvalidBoard is returned for boards with a non-positive dimension
	ErrInvalidBoard = errors.New("invalid board size")
	// ErrInvalidSettings is returned for unusable engine settings
	ErrInvalidSettings = errors.New("invalid engine settings")
)

// Rand is the random source for food placement. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Settings configures an Engine beyond its board size.
type Settings struct {
	// CellSize is the pixel size of one grid cell. The start button is laid out in pixels.
	CellSize float64
	// TickInterval is the minimum time between two simulation ticks
	TickInterval time.Duration

	ButtonWidth   float64
	ButtonHeight  float64
	ButtonOffsetY float64 // distance from the board's vertical centre up to the button's top edge

	Clock Clock
	Rand  Rand
}

// DefaultSettings returns the standard layout with a system clock and a time-seeded RNG.
func DefaultSettings() Settings {
	return Settings{
		CellSize:      DefaultCellSize,
		TickInterval:  DefaultTickInterval,
		ButtonWidth:   DefaultButtonWidth,
		ButtonHeight:  DefaultButtonHeight,
		ButtonOffsetY: DefaultButtonOffsetY,
		Clock:         SystemClock{},
		Rand:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SeededRand returns a deterministic random source for the given seed
func SeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func (s Settings) validate() error {
	if s.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %v", ErrInvalidSettings, s.CellSize)
	}
	if s.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v", ErrInvalidSettings, s.TickInterval)
	}
	if s.ButtonWidth <= 0 || s.ButtonHeight <= 0 {
		return fmt.Errorf("%w: button %vx%v", ErrInvalidSettings, s.ButtonWidth, s.ButtonHeight)
	}
	return nil
}
