package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/younwookim/snake/internal/application/engine"
)

// ErrInvalidConfig is returned when a loaded config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads and validates game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/game.json: %w", l.basePath, err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s/game.json: %w", l.basePath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configs the engine or hosts cannot run with
func (c *GameConfig) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	case c.Display.CellSize <= 0:
		return fmt.Errorf("%w: cell size %v", ErrInvalidConfig, c.Display.CellSize)
	case c.Display.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, c.Display.Scale)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, c.Display.Framerate)
	case c.Timing.TickIntervalMs <= 0:
		return fmt.Errorf("%w: tick interval %dms", ErrInvalidConfig, c.Timing.TickIntervalMs)
	case c.Button.Width <= 0 || c.Button.Height <= 0:
		return fmt.Errorf("%w: button %vx%v", ErrInvalidConfig, c.Button.Width, c.Button.Height)
	}
	return nil
}

// EngineSettings maps the config onto engine settings.
// Clock and Rand are left to the caller.
func (c *GameConfig) EngineSettings() engine.Settings {
	return engine.Settings{
		CellSize:      c.Display.CellSize,
		TickInterval:  time.Duration(c.Timing.TickIntervalMs) * time.Millisecond,
		ButtonWidth:   c.Button.Width,
		ButtonHeight:  c.Button.Height,
		ButtonOffsetY: c.Button.OffsetY,
	}
}

// FrameDuration returns the host frame duration
func (c *GameConfig) FrameDuration() time.Duration {
	return engine.FrameDuration(c.Display.Framerate)
}

// ScreenSize returns the logical screen size in pixels
func (c *GameConfig) ScreenSize() (int, int) {
	return int(float64(c.Board.Width) * c.Display.CellSize),
		int(float64(c.Board.Height) * c.Display.CellSize)
}
